package gojaforeign

import (
	"time"

	"github.com/dop251/goja"
)

// Lookup returns the named property of o coerced to T, selecting the
// coercion by T. Supported types are string, bool, int, uint, float32,
// float64, [Rect], [Point], time.Time, goja.Value, *goja.Object and
// *[Object]. Lookup returns false for any other T.
func Lookup[T any](o *Object, name string) (T, bool) {
	var (
		zero T
		v    any
		ok   bool
	)
	switch any(zero).(type) {
	case string:
		v, ok = o.LookupString(name)
	case bool:
		v, ok = o.LookupBool(name)
	case int:
		v, ok = o.LookupInt(name)
	case uint:
		v, ok = o.LookupUint(name)
	case float32:
		v, ok = o.LookupFloat32(name)
	case float64:
		v, ok = o.LookupFloat64(name)
	case Rect:
		v, ok = o.LookupRect(name)
	case Point:
		v, ok = o.LookupPoint(name)
	case time.Time:
		v, ok = o.LookupDate(name)
	case *goja.Object:
		var obj *goja.Object
		obj, ok = o.Get(name).(*goja.Object)
		v = obj
	case *Object:
		v, ok = o.LookupObject(name)
	default:
		// goja.Value, the only supported interface type
		if _, isValue := any(&zero).(*goja.Value); isValue {
			raw := o.Get(name)
			v, ok = raw, raw != nil
		}
	}
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Get returns the named property of o coerced to T as per [Lookup], or
// the zero value of T.
func Get[T any](o *Object, name string) T {
	v, _ := Lookup[T](o, name)
	return v
}
