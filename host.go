package gojaforeign

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/joeycumines/logiface"
)

var (
	// ErrClassNotFound is returned by [Host.NewObject] when a class name
	// does not resolve to any value.
	ErrClassNotFound = errors.New("class not found")

	// ErrNotConstructor is returned by [Host.NewObject] when a class name
	// resolves to a value that cannot be called with new.
	ErrNotConstructor = errors.New("not a constructor")

	// ErrNotConvertible is returned by [Host.ToValue] for Go values that
	// have no script representation.
	ErrNotConvertible = errors.New("value not convertible")

	// ErrSetRejected is returned by [Host.Set] when the runtime refuses the
	// write without throwing, e.g. a non-writable or frozen property.
	ErrSetRejected = errors.New("property set rejected")
)

// Host provides the primitives used by [Object] against a single
// [goja.Runtime]: property get, set and hasOwnProperty, construction by
// class name, and value conversion.
//
// The primitives call the runtime's Reflect.get, Reflect.set and
// Object.prototype.hasOwnProperty, as captured when the Host is created.
// Script exceptions are returned as errors, never panics.
type Host struct {
	runtime    *goja.Runtime
	logger     *logiface.Logger[logiface.Event]
	resolver   ClassResolver
	rectClass  *string
	pointClass *string

	reflectGet     goja.Callable
	reflectSet     goja.Callable
	hasOwnProperty goja.Callable
	dateCtor       goja.Value
}

// New creates a new [Host] bound to the given [goja.Runtime].
//
// New panics if runtime is nil, as this is a programming error. It
// returns an error if option validation fails, or if the runtime lacks
// the builtins the primitives depend on.
func New(runtime *goja.Runtime, opts ...Option) (*Host, error) {
	if runtime == nil {
		panic("gojaforeign: runtime must not be nil")
	}

	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("gojaforeign: %w", err)
	}

	h := &Host{
		runtime:    runtime,
		logger:     cfg.logger,
		resolver:   cfg.resolver,
		rectClass:  cfg.rectClass,
		pointClass: cfg.pointClass,
	}

	if h.reflectGet, err = builtinFunction(runtime, "Reflect", "get"); err != nil {
		return nil, err
	}
	if h.reflectSet, err = builtinFunction(runtime, "Reflect", "set"); err != nil {
		return nil, err
	}
	if h.hasOwnProperty, err = builtinFunction(runtime, "Object", "prototype", "hasOwnProperty"); err != nil {
		return nil, err
	}
	h.dateCtor = runtime.Get("Date")
	if _, ok := goja.AssertConstructor(h.dateCtor); !ok {
		return nil, errors.New("gojaforeign: runtime has no Date constructor")
	}

	return h, nil
}

// Runtime returns the [goja.Runtime] this host is bound to.
func (h *Host) Runtime() *goja.Runtime {
	return h.runtime
}

// Get returns the value of the named property, or nil if the handle is
// nil, the property is undefined, or reading it threw.
func (h *Host) Get(handle *goja.Object, name string) goja.Value {
	if handle == nil {
		return nil
	}
	v, err := h.reflectGet(goja.Undefined(), handle, h.runtime.ToValue(name))
	if err != nil {
		h.logger.Debug().
			Str(`op`, `get`).
			Str(`name`, name).
			Err(err).
			Log(`property get failed`)
		return nil
	}
	if v == nil || goja.IsUndefined(v) {
		return nil
	}
	return v
}

// Set writes value to the named property. A nil value is written as null.
// Setting on a nil handle is a no-op.
func (h *Host) Set(handle *goja.Object, name string, value goja.Value) error {
	if handle == nil {
		return nil
	}
	if value == nil {
		value = goja.Null()
	}
	ok, err := h.reflectSet(goja.Undefined(), handle, h.runtime.ToValue(name), value)
	if err != nil {
		return fmt.Errorf("gojaforeign: set %q: %w", name, err)
	}
	if !ok.ToBoolean() {
		return fmt.Errorf("gojaforeign: set %q: %w", name, ErrSetRejected)
	}
	return nil
}

// HasOwnProperty reports whether the handle has an own property with the
// given name. It returns false for a nil handle.
func (h *Host) HasOwnProperty(handle *goja.Object, name string) bool {
	if handle == nil {
		return false
	}
	v, err := h.hasOwnProperty(handle, h.runtime.ToValue(name))
	if err != nil {
		h.logger.Debug().
			Str(`op`, `hasOwnProperty`).
			Str(`name`, name).
			Err(err).
			Log(`property check failed`)
		return false
	}
	return v.ToBoolean()
}

// NewObject instantiates the named class with the given positional
// arguments.
//
// The class name is resolved with the configured [ClassResolver] (if
// any), then as a global binding with exactly that name, then as a dotted
// path from the global object, e.g. "com.example.Person" resolves to
// globalThis.com.example.Person.
func (h *Host) NewObject(className string, args ...goja.Value) (*goja.Object, error) {
	ctor := h.resolveClass(className)
	if ctor == nil {
		return nil, fmt.Errorf("gojaforeign: %w: %q", ErrClassNotFound, className)
	}
	if _, ok := goja.AssertConstructor(ctor); !ok {
		return nil, fmt.Errorf("gojaforeign: %w: %q", ErrNotConstructor, className)
	}
	values := make([]goja.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			arg = goja.Null()
		}
		values[i] = arg
	}
	obj, err := h.runtime.New(ctor, values...)
	if err != nil {
		return nil, fmt.Errorf("gojaforeign: new %q: %w", className, err)
	}
	return obj, nil
}

func (h *Host) resolveClass(className string) goja.Value {
	if className == "" {
		return nil
	}

	if h.resolver != nil {
		if v := h.resolver(h.runtime, className); !isAbsent(v) {
			return v
		}
	}

	if v := h.runtime.Get(className); !isAbsent(v) {
		return v
	}

	if !strings.Contains(className, ".") {
		return nil
	}
	var v goja.Value = h.runtime.GlobalObject()
	for _, segment := range strings.Split(className, ".") {
		obj, ok := v.(*goja.Object)
		if !ok || segment == "" {
			return nil
		}
		if v = h.Get(obj, segment); v == nil {
			return nil
		}
	}
	return v
}

// builtinFunction walks path from the global object, returning the
// function found at the end.
func builtinFunction(runtime *goja.Runtime, path ...string) (goja.Callable, error) {
	var v goja.Value = runtime.GlobalObject()
	for _, name := range path {
		obj, ok := v.(*goja.Object)
		if !ok {
			return nil, fmt.Errorf("gojaforeign: runtime has no %s", strings.Join(path, "."))
		}
		v = obj.Get(name)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("gojaforeign: runtime has no %s", strings.Join(path, "."))
	}
	return fn, nil
}

// isAbsent reports whether v is nil, undefined or null.
func isAbsent(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}
