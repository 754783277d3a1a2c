package gojaforeign

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/dop251/goja"
)

// ToValue converts a Go value to a script value.
//
// nil and nil pointers convert to null. A [*Object] converts to the handle
// it wraps. time.Time converts to a new Date, and [Rect] and [Point] to
// instances of the configured classes (see [WithRectClass]) or plain
// objects. Non-nil pointers are dereferenced. Channels, complex numbers
// and unsafe pointers return [ErrNotConvertible]; everything else is
// passed to [goja.Runtime.ToValue].
func (h *Host) ToValue(v any) (goja.Value, error) {
	switch v := v.(type) {
	case nil:
		return goja.Null(), nil
	case *goja.Object:
		if v == nil {
			return goja.Null(), nil
		}
		return v, nil
	case goja.Value:
		return v, nil
	case *Object:
		if v == nil || v.handle == nil {
			return goja.Null(), nil
		}
		return v.handle, nil
	case time.Time:
		return h.newDate(v)
	case Rect:
		return h.newRect(v), nil
	case Point:
		return h.newPoint(v), nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return h.runtime.ToValue(v), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return goja.Null(), nil
		}
		return h.ToValue(rv.Elem().Interface())
	case reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil, fmt.Errorf("gojaforeign: %w: %T", ErrNotConvertible, v)
	default:
		return h.runtime.ToValue(v), nil
	}
}

// toValueOrNull converts v, substituting null for values that are not
// convertible.
func (h *Host) toValueOrNull(v any) goja.Value {
	val, err := h.ToValue(v)
	if err != nil {
		h.logger.Debug().
			Str(`op`, `convert`).
			Err(err).
			Log(`substituting null`)
		return goja.Null()
	}
	return val
}

func (h *Host) newDate(t time.Time) (goja.Value, error) {
	obj, err := h.runtime.New(h.dateCtor, h.runtime.ToValue(t.UnixMilli()))
	if err != nil {
		return nil, fmt.Errorf("gojaforeign: new Date: %w", err)
	}
	return obj, nil
}

func (h *Host) newRect(r Rect) goja.Value {
	if h.rectClass != nil {
		obj, err := h.NewObject(*h.rectClass,
			h.runtime.ToValue(r.X),
			h.runtime.ToValue(r.Y),
			h.runtime.ToValue(r.Width),
			h.runtime.ToValue(r.Height),
		)
		if err == nil {
			return obj
		}
		h.logger.Debug().
			Str(`op`, `convert`).
			Str(`class`, *h.rectClass).
			Err(err).
			Log(`falling back to plain rect object`)
	}
	obj := h.runtime.NewObject()
	_ = obj.Set("x", r.X)
	_ = obj.Set("y", r.Y)
	_ = obj.Set("width", r.Width)
	_ = obj.Set("height", r.Height)
	return obj
}

func (h *Host) newPoint(p Point) goja.Value {
	if h.pointClass != nil {
		obj, err := h.NewObject(*h.pointClass,
			h.runtime.ToValue(p.X),
			h.runtime.ToValue(p.Y),
		)
		if err == nil {
			return obj
		}
		h.logger.Debug().
			Str(`op`, `convert`).
			Str(`class`, *h.pointClass).
			Err(err).
			Log(`falling back to plain point object`)
	}
	obj := h.runtime.NewObject()
	_ = obj.Set("x", p.X)
	_ = obj.Set("y", p.Y)
	return obj
}

// exportPrimitive exports v if it is a primitive (not an object, and not
// nil, undefined or null).
func exportPrimitive(v goja.Value) (any, bool) {
	if isAbsent(v) {
		return nil, false
	}
	if _, ok := v.(*goja.Object); ok {
		return nil, false
	}
	return v.Export(), true
}

// ToString returns v if it is a string primitive.
func (h *Host) ToString(v goja.Value) (string, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return "", false
	}
	s, ok := e.(string)
	return s, ok
}

// ToBool returns v if it is a boolean primitive.
func (h *Host) ToBool(v goja.Value) (bool, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return false, false
	}
	b, ok := e.(bool)
	return b, ok
}

// ToInt coerces a number (truncated toward zero) or BigInt to int. NaN,
// infinities and values outside the int range fail.
func (h *Host) ToInt(v goja.Value) (int, bool) {
	i, ok := h.toInt64(v)
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// ToUint coerces a non-negative number (truncated toward zero) or BigInt
// to uint.
func (h *Host) ToUint(v goja.Value) (uint, bool) {
	u, ok := h.toUint64(v)
	if !ok || u > math.MaxUint {
		return 0, false
	}
	return uint(u), true
}

// ToFloat32 coerces a number to float32. Finite values beyond the float32
// range fail; NaN and infinities are preserved.
func (h *Host) ToFloat32(v goja.Value) (float32, bool) {
	f, ok := h.ToFloat64(v)
	if !ok {
		return 0, false
	}
	if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

// ToFloat64 coerces a number, or a BigInt exactly representable as a
// float64, to float64.
func (h *Host) ToFloat64(v goja.Value) (float64, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return 0, false
	}
	switch n := e.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case *big.Int:
		f, acc := new(big.Float).SetInt(n).Float64()
		return f, acc == big.Exact
	default:
		return 0, false
	}
}

// ToNumber coerces a number or BigInt to a boxed Go number: int64 when the
// value is integral and fits, float64 otherwise.
func (h *Host) ToNumber(v goja.Value) (any, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return nil, false
	}
	switch n := e.(type) {
	case int64:
		return n, true
	case float64:
		if i, ok := truncInt64(n); ok && float64(i) == n {
			return i, true
		}
		return n, true
	case *big.Int:
		if n.IsInt64() {
			return n.Int64(), true
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	default:
		return nil, false
	}
}

// ToRect coerces an object with numeric x, y, width and height.
func (h *Host) ToRect(v goja.Value) (Rect, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return Rect{}, false
	}
	var r Rect
	for _, f := range [...]struct {
		name string
		dst  *float64
	}{{"x", &r.X}, {"y", &r.Y}, {"width", &r.Width}, {"height", &r.Height}} {
		if *f.dst, ok = h.ToFloat64(h.Get(obj, f.name)); !ok {
			return Rect{}, false
		}
	}
	return r, true
}

// ToPoint coerces an object with numeric x and y.
func (h *Host) ToPoint(v goja.Value) (Point, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return Point{}, false
	}
	x, ok := h.ToFloat64(h.Get(obj, "x"))
	if !ok {
		return Point{}, false
	}
	y, ok := h.ToFloat64(h.Get(obj, "y"))
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// ToDate coerces a Date object holding a valid time.
func (h *Host) ToDate(v goja.Value) (time.Time, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil || obj.ClassName() != "Date" {
		return time.Time{}, false
	}
	t, ok := obj.Export().(time.Time)
	return t, ok
}

func (h *Host) toInt64(v goja.Value) (int64, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return 0, false
	}
	switch n := e.(type) {
	case int64:
		return n, true
	case float64:
		return truncInt64(n)
	case *big.Int:
		if !n.IsInt64() {
			return 0, false
		}
		return n.Int64(), true
	default:
		return 0, false
	}
}

func (h *Host) toUint64(v goja.Value) (uint64, bool) {
	e, ok := exportPrimitive(v)
	if !ok {
		return 0, false
	}
	switch n := e.(type) {
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		if math.IsNaN(n) || n < 0 {
			return 0, false
		}
		t := math.Trunc(n)
		if t >= 1<<64 {
			return 0, false
		}
		return uint64(t), true
	case *big.Int:
		if !n.IsUint64() {
			return 0, false
		}
		return n.Uint64(), true
	default:
		return 0, false
	}
}

// truncInt64 truncates f toward zero, failing for NaN, infinities and
// values outside the int64 range.
func truncInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < -(1<<63) || t >= 1<<63 {
		return 0, false
	}
	return int64(t), true
}
