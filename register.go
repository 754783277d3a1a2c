package gojaforeign

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
)

// Require returns a [require.ModuleLoader] that initialises the module
// when loaded by a [goja.Runtime]. The integrator registers the loader
// under whatever module name they choose:
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("foreign", gojaforeign.Require())
//	registry.Enable(runtime)
//
// After registration, JavaScript code loads the module by name:
//
//	const foreign = require('foreign');
//
// The provided options are captured and applied each time a new
// runtime calls require for this module.
func Require(opts ...Option) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		h, err := New(runtime, opts...)
		if err != nil {
			panic(runtime.NewGoError(err))
		}
		exports := module.Get("exports").(*goja.Object)
		h.setupExports(exports)
	}
}

// SetupExports wires the module's JS API onto the given exports object.
// This is equivalent to the setup performed by [Require] but allows
// external consumers to configure exports without the require() mechanism.
func (h *Host) SetupExports(exports *goja.Object) {
	h.setupExports(exports)
}

func (h *Host) setupExports(exports *goja.Object) {
	_ = exports.Set("construct", h.jsConstruct)
	_ = exports.Set("hasOwnProperty", h.jsHasOwnProperty)
	_ = exports.Set("toString", h.coercion(func(v goja.Value) (any, bool) { return h.ToString(v) }))
	_ = exports.Set("toBool", h.coercion(func(v goja.Value) (any, bool) { return h.ToBool(v) }))
	_ = exports.Set("toInt", h.coercion(func(v goja.Value) (any, bool) { return h.ToInt(v) }))
	_ = exports.Set("toUint", h.coercion(func(v goja.Value) (any, bool) { return h.ToUint(v) }))
	_ = exports.Set("toFloat32", h.coercion(func(v goja.Value) (any, bool) { return h.ToFloat32(v) }))
	_ = exports.Set("toFloat64", h.coercion(func(v goja.Value) (any, bool) { return h.ToFloat64(v) }))
	_ = exports.Set("toRect", h.coercion(func(v goja.Value) (any, bool) { return h.ToRect(v) }))
	_ = exports.Set("toPoint", h.coercion(func(v goja.Value) (any, bool) { return h.ToPoint(v) }))
	_ = exports.Set("toDate", h.coercion(func(v goja.Value) (any, bool) { return h.ToDate(v) }))
}

// jsConstruct is the JS-facing implementation of
// foreign.construct(className, ...args). It returns the new object, or
// null if construction failed.
func (h *Host) jsConstruct(call goja.FunctionCall) goja.Value {
	className, ok := h.ToString(call.Argument(0))
	if !ok {
		panic(h.runtime.NewTypeError("construct: class name must be a string"))
	}
	args := make([]any, 0, len(call.Arguments))
	for _, arg := range call.Arguments[1:] {
		args = append(args, arg)
	}
	obj := Construct(h, className, args...)
	if obj == nil {
		return goja.Null()
	}
	return obj.Raw()
}

// jsHasOwnProperty is the JS-facing implementation of
// foreign.hasOwnProperty(obj, name). Non-object targets yield false.
func (h *Host) jsHasOwnProperty(call goja.FunctionCall) goja.Value {
	obj, _ := call.Argument(0).(*goja.Object)
	return h.runtime.ToValue(Wrap(h, obj).HasOwnProperty(call.Argument(1).String()))
}

// coercion adapts a coercion to a JS function of one argument, returning
// the coerced value converted back with [Host.ToValue], or null.
func (h *Host) coercion(fn func(goja.Value) (any, bool)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		v, ok := fn(call.Argument(0))
		if !ok {
			return goja.Null()
		}
		return h.toValueOrNull(v)
	}
}
