package gojaforeign

import (
	"bytes"
	"testing"

	"github.com/dop251/goja"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	rt   *goja.Runtime
	h    *Host
	logs *bytes.Buffer
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	rt := goja.New()
	logs := new(bytes.Buffer)
	opts = append([]Option{WithLogger(newTestLogger(logs))}, opts...)
	h, err := New(rt, opts...)
	require.NoError(t, err)
	return &testEnv{rt: rt, h: h, logs: logs}
}

func newTestLogger(buf *bytes.Buffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
}

func (e *testEnv) run(t *testing.T, code string) goja.Value {
	t.Helper()
	v, err := e.rt.RunString(code)
	require.NoError(t, err)
	return v
}

// object evaluates code, which must produce an object, and wraps it.
func (e *testEnv) object(t *testing.T, code string) *Object {
	t.Helper()
	v := e.run(t, code)
	obj, ok := v.(*goja.Object)
	require.True(t, ok, "expected object, got %v", v)
	return Wrap(e.h, obj)
}

// defineClasses installs the classes used by the construction tests.
func (e *testEnv) defineClasses(t *testing.T) {
	t.Helper()
	e.run(t, `
		var com = {
			example: {
				Person: class {
					constructor(name, age) {
						this.name = name;
						this.age = age;
					}
				},
			},
		};
		var Recorder = function() {
			this.args = Array.prototype.slice.call(arguments);
			this.count = arguments.length;
		};
		var Exploding = class {
			constructor() { throw new Error('kaboom'); }
		};
		var notAClass = 42;
		var arrowFn = () => ({});
	`)
}
