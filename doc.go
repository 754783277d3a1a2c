// Package gojaforeign provides typed property access over objects owned by
// a [goja] JavaScript runtime, for Go code that receives object handles
// from script code (or hands them back).
//
// # Overview
//
// A [Host] is bound to a single [goja.Runtime] and supplies the low level
// primitives: property get, set and hasOwnProperty, construction of new
// objects by class name, and value conversion in both directions.
//
// An [Object] wraps one (possibly absent) *goja.Object and exposes typed
// accessors on top of those primitives:
//
//	person := gojaforeign.Construct(host, "com.example.Person", "Alice", 30)
//	if person == nil {
//	    // class not found, not a constructor, or the constructor threw
//	}
//	name, ok := person.LookupString("name")
//	age := person.Int("age") // 0 if missing or not a number
//	person.SetDate("birthday", time.Now())
//
// The adapter never takes ownership of the handle. The runtime manages
// its lifetime.
//
// # Failure Semantics
//
// Accessors on [Object] never panic and never return errors:
//   - LookupT methods return (zero, false) when the handle is absent, the
//     property is missing, or the value cannot be coerced to T.
//   - T methods (Bool, Int, Uint, Float32, Float64, Number, String) return
//     the zero value in the same conditions, so a stored 0 and a missing
//     property are indistinguishable.
//   - Setters are no-ops when the handle is absent, and discard write
//     failures.
//
// Callers that need to tell these conditions apart should use the [Host]
// primitives, which return errors. Swallowed failures are logged at debug
// level when a logger is configured via [WithLogger].
//
// # Type Mapping
//
// Script values are coerced to Go types as follows:
//   - string → string primitives only
//   - bool → boolean primitives only
//   - int, uint → numbers truncated toward zero, and BigInts, within range
//   - float32, float64 → numbers
//   - [Rect] → objects with numeric x, y, width and height
//   - [Point] → objects with numeric x and y
//   - time.Time → Date objects
//
// # Script Module
//
// [Require] exposes construction and the coercions to script code through
// the [goja_nodejs/require] module system:
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("foreign", gojaforeign.Require())
//	registry.Enable(rt)
//
//	const foreign = require('foreign');
//	const p = foreign.construct('com.example.Person', 'Alice');
//	foreign.toInt(p.age); // null unless p.age is a number in range
//
// # Thread Safety
//
// A goja.Runtime is not safe for concurrent use, and neither is anything
// in this package. All calls must be made from the goroutine that owns
// the runtime.
//
// [goja]: github.com/dop251/goja
// [goja_nodejs/require]: github.com/dop251/goja_nodejs/require
package gojaforeign
