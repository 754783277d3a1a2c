package gojaforeign

import (
	"time"

	"github.com/dop251/goja"
)

// Object provides typed access to the properties of a script object.
//
// An Object does not own its handle, which may be nil. Every accessor
// treats a nil handle (or a nil *Object) as an object with no properties,
// and every setter as a no-op. See the package documentation for the
// failure semantics of the LookupT and T method forms.
type Object struct {
	host   *Host
	handle *goja.Object
}

// Wrap returns an [Object] for handle. The handle may be nil.
func Wrap(host *Host, handle *goja.Object) *Object {
	return &Object{host: host, handle: handle}
}

// Construct instantiates className through [Host.NewObject] and wraps the
// result. Each argument is converted independently with [Host.ToValue];
// arguments that are not convertible are passed as null, so the
// constructor always receives len(args) positional arguments in order.
//
// Construct returns nil if the class cannot be resolved or instantiated.
func Construct(host *Host, className string, args ...any) *Object {
	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = host.toValueOrNull(arg)
	}
	handle, err := host.NewObject(className, values...)
	if err != nil {
		host.logger.Debug().
			Str(`op`, `construct`).
			Str(`class`, className).
			Err(err).
			Log(`construct failed`)
		return nil
	}
	return Wrap(host, handle)
}

// Raw returns the wrapped handle, which may be nil.
func (o *Object) Raw() *goja.Object {
	if o == nil {
		return nil
	}
	return o.handle
}

// Host returns the [Host] this object was created with.
func (o *Object) Host() *Host {
	if o == nil {
		return nil
	}
	return o.host
}

// Value returns the exported Go form of the wrapped handle, as per
// [goja.Object.Export], or nil if the handle is absent.
func (o *Object) Value() any {
	if !o.present() {
		return nil
	}
	return o.handle.Export()
}

// HasOwnProperty reports whether the wrapped object has an own property
// with the given name. It returns false if the handle is absent.
func (o *Object) HasOwnProperty(name string) bool {
	if !o.present() {
		return false
	}
	return o.host.HasOwnProperty(o.handle, name)
}

// Get returns the raw value of the named property, or nil.
func (o *Object) Get(name string) goja.Value {
	if !o.present() {
		return nil
	}
	return o.host.Get(o.handle, name)
}

// SetRaw writes value, without conversion, to the named property. A nil
// value is written as null.
func (o *Object) SetRaw(name string, value goja.Value) {
	if !o.present() {
		return
	}
	o.write(name, value)
}

// Set converts value with [Host.ToValue] and writes it to the named
// property. Values that are not convertible are written as null.
func (o *Object) Set(name string, value any) {
	if !o.present() {
		return
	}
	o.write(name, o.host.toValueOrNull(value))
}

func (o *Object) LookupString(name string) (string, bool) {
	if !o.present() {
		return "", false
	}
	return o.host.ToString(o.host.Get(o.handle, name))
}

func (o *Object) LookupBool(name string) (bool, bool) {
	if !o.present() {
		return false, false
	}
	return o.host.ToBool(o.host.Get(o.handle, name))
}

func (o *Object) LookupInt(name string) (int, bool) {
	if !o.present() {
		return 0, false
	}
	return o.host.ToInt(o.host.Get(o.handle, name))
}

func (o *Object) LookupUint(name string) (uint, bool) {
	if !o.present() {
		return 0, false
	}
	return o.host.ToUint(o.host.Get(o.handle, name))
}

func (o *Object) LookupFloat32(name string) (float32, bool) {
	if !o.present() {
		return 0, false
	}
	return o.host.ToFloat32(o.host.Get(o.handle, name))
}

func (o *Object) LookupFloat64(name string) (float64, bool) {
	if !o.present() {
		return 0, false
	}
	return o.host.ToFloat64(o.host.Get(o.handle, name))
}

// LookupNumber returns the named property as int64 if it holds an
// integral number, or as float64 otherwise.
func (o *Object) LookupNumber(name string) (any, bool) {
	if !o.present() {
		return nil, false
	}
	return o.host.ToNumber(o.host.Get(o.handle, name))
}

func (o *Object) LookupRect(name string) (Rect, bool) {
	if !o.present() {
		return Rect{}, false
	}
	return o.host.ToRect(o.host.Get(o.handle, name))
}

func (o *Object) LookupPoint(name string) (Point, bool) {
	if !o.present() {
		return Point{}, false
	}
	return o.host.ToPoint(o.host.Get(o.handle, name))
}

func (o *Object) LookupDate(name string) (time.Time, bool) {
	if !o.present() {
		return time.Time{}, false
	}
	return o.host.ToDate(o.host.Get(o.handle, name))
}

// LookupObject returns the named property wrapped as an [Object], if it
// holds an object.
func (o *Object) LookupObject(name string) (*Object, bool) {
	if !o.present() {
		return nil, false
	}
	obj, ok := o.host.Get(o.handle, name).(*goja.Object)
	if !ok || obj == nil {
		return nil, false
	}
	return Wrap(o.host, obj), true
}

// String returns the named property if it is a string, or "".
func (o *Object) String(name string) string {
	v, _ := o.LookupString(name)
	return v
}

// Bool returns the named property if it is a boolean, or false.
func (o *Object) Bool(name string) bool {
	v, _ := o.LookupBool(name)
	return v
}

// Int returns the named property coerced to int, or 0.
func (o *Object) Int(name string) int {
	v, _ := o.LookupInt(name)
	return v
}

// Uint returns the named property coerced to uint, or 0.
func (o *Object) Uint(name string) uint {
	v, _ := o.LookupUint(name)
	return v
}

// Float32 returns the named property coerced to float32, or 0.
func (o *Object) Float32(name string) float32 {
	v, _ := o.LookupFloat32(name)
	return v
}

// Float64 returns the named property coerced to float64, or 0.
func (o *Object) Float64(name string) float64 {
	v, _ := o.LookupFloat64(name)
	return v
}

// Number returns the named property as per [Object.LookupNumber], or
// int64(0).
func (o *Object) Number(name string) any {
	if v, ok := o.LookupNumber(name); ok {
		return v
	}
	return int64(0)
}

func (o *Object) SetString(name string, value string) { o.Set(name, value) }

func (o *Object) SetBool(name string, value bool) { o.Set(name, value) }

func (o *Object) SetInt(name string, value int) { o.Set(name, value) }

func (o *Object) SetUint(name string, value uint) { o.Set(name, value) }

func (o *Object) SetFloat32(name string, value float32) { o.Set(name, value) }

func (o *Object) SetFloat64(name string, value float64) { o.Set(name, value) }

func (o *Object) SetRect(name string, value Rect) { o.Set(name, value) }

func (o *Object) SetPoint(name string, value Point) { o.Set(name, value) }

func (o *Object) SetDate(name string, value time.Time) { o.Set(name, value) }

func (o *Object) write(name string, value goja.Value) {
	if err := o.host.Set(o.handle, name, value); err != nil {
		o.host.logger.Debug().
			Str(`op`, `set`).
			Str(`name`, name).
			Err(err).
			Log(`property set failed`)
	}
}

func (o *Object) present() bool {
	return o != nil && o.host != nil && o.handle != nil
}
