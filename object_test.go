package gojaforeign

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Children(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({children: 3})`)

	assert.Equal(t, 3, obj.Int("children"))
	v, ok := obj.LookupInt("children")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, uint(3), obj.Uint("children"))

	assert.Equal(t, 0, obj.Int("missingProp"))
	v, ok = obj.LookupInt("missingProp")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestObject_AbsentHandle(t *testing.T) {
	env := newTestEnv(t)
	for name, obj := range map[string]*Object{
		"nil handle":  Wrap(env.h, nil),
		"nil adapter": nil,
	} {
		t.Run(name, func(t *testing.T) {
			for _, prop := range []string{"", "x", "constructor", "toString"} {
				assert.False(t, obj.HasOwnProperty(prop))
				assert.Nil(t, obj.Get(prop))
			}

			_, ok := obj.LookupString("x")
			assert.False(t, ok)
			_, ok = obj.LookupBool("x")
			assert.False(t, ok)
			_, ok = obj.LookupInt("x")
			assert.False(t, ok)
			_, ok = obj.LookupUint("x")
			assert.False(t, ok)
			_, ok = obj.LookupFloat32("x")
			assert.False(t, ok)
			_, ok = obj.LookupFloat64("x")
			assert.False(t, ok)
			_, ok = obj.LookupNumber("x")
			assert.False(t, ok)
			_, ok = obj.LookupRect("x")
			assert.False(t, ok)
			_, ok = obj.LookupPoint("x")
			assert.False(t, ok)
			_, ok = obj.LookupDate("x")
			assert.False(t, ok)
			_, ok = obj.LookupObject("x")
			assert.False(t, ok)

			assert.Equal(t, "", obj.String("x"))
			assert.False(t, obj.Bool("x"))
			assert.Equal(t, 0, obj.Int("x"))
			assert.Equal(t, uint(0), obj.Uint("x"))
			assert.Equal(t, float32(0), obj.Float32("x"))
			assert.Equal(t, float64(0), obj.Float64("x"))
			assert.Equal(t, int64(0), obj.Number("x"))
			assert.Nil(t, obj.Value())
			assert.Nil(t, obj.Raw())

			assert.NotPanics(t, func() {
				obj.Set("x", 1)
				obj.SetRaw("x", nil)
				obj.SetString("x", "s")
				obj.SetBool("x", true)
				obj.SetInt("x", 1)
				obj.SetUint("x", 1)
				obj.SetFloat32("x", 1)
				obj.SetFloat64("x", 1)
				obj.SetRect("x", Rect{})
				obj.SetPoint("x", Point{})
				obj.SetDate("x", time.Now())
			})
		})
	}
}

func TestObject_DefaultsOnTypeMismatch(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({s: 'text', n: 12, b: true, o: {}, nan: NaN, neg: -4})`)

	assert.Equal(t, 0, obj.Int("s"))
	assert.Equal(t, float64(0), obj.Float64("b"))
	assert.False(t, obj.Bool("n"))
	assert.Equal(t, "", obj.String("n"))
	assert.Equal(t, 0, obj.Int("o"))
	assert.Equal(t, 0, obj.Int("nan"))
	assert.True(t, math.IsNaN(obj.Float64("nan")))
	assert.Equal(t, uint(0), obj.Uint("neg"))
	assert.Equal(t, -4, obj.Int("neg"))

	_, ok := obj.LookupInt("s")
	assert.False(t, ok)
	_, ok = obj.LookupUint("neg")
	assert.False(t, ok)
}

func TestObject_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({})`)
	when := time.Date(1999, 12, 31, 23, 59, 59, 999e6, time.UTC)

	obj.SetString("s", "héllo")
	obj.SetBool("b", true)
	obj.SetInt("i", -42)
	obj.SetUint("u", 42)
	obj.SetFloat32("f32", 1.1)
	obj.SetFloat64("f64", math.Pi)
	obj.SetRect("r", Rect{X: 1, Y: 2, Width: 3, Height: 4})
	obj.SetPoint("p", Point{X: -5, Y: 6})
	obj.SetDate("d", when)

	s, ok := obj.LookupString("s")
	assert.True(t, ok)
	assert.Equal(t, "héllo", s)

	b, ok := obj.LookupBool("b")
	assert.True(t, ok)
	assert.True(t, b)

	i, ok := obj.LookupInt("i")
	assert.True(t, ok)
	assert.Equal(t, -42, i)

	u, ok := obj.LookupUint("u")
	assert.True(t, ok)
	assert.Equal(t, uint(42), u)

	f32, ok := obj.LookupFloat32("f32")
	assert.True(t, ok)
	assert.Equal(t, float32(1.1), f32)

	f64, ok := obj.LookupFloat64("f64")
	assert.True(t, ok)
	assert.Equal(t, math.Pi, f64)

	r, ok := obj.LookupRect("r")
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 3, Height: 4}, r)

	p, ok := obj.LookupPoint("p")
	assert.True(t, ok)
	assert.Equal(t, Point{X: -5, Y: 6}, p)

	d, ok := obj.LookupDate("d")
	assert.True(t, ok)
	assert.True(t, when.Equal(d), "got %v", d)

	for _, name := range []string{"s", "b", "i", "u", "f32", "f64", "r", "p", "d"} {
		assert.True(t, obj.HasOwnProperty(name), name)
	}
}

func TestObject_SetDate_TruncatesToMillis(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({})`)
	when := time.Date(2000, 1, 1, 0, 0, 0, 1_500_000, time.UTC)

	obj.SetDate("d", when)
	d, ok := obj.LookupDate("d")
	require.True(t, ok)
	assert.True(t, when.Truncate(time.Millisecond).Equal(d), "got %v", d)
}

func TestObject_Set_Generic(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `var target = {}; target`)
	other := env.object(t, `({name: 'other'})`)

	obj.Set("n", nil)
	obj.Set("nested", other)
	obj.Set("ch", make(chan int))
	obj.Set("list", []any{1, 2, 3})

	assert.True(t, env.run(t, `
		target.n === null &&
		target.nested.name === 'other' &&
		target.ch === null &&
		target.list.length === 3
	`).ToBoolean())
	assert.Contains(t, env.logs.String(), `"msg":"substituting null"`)
}

func TestObject_SetRaw(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `var target = {a: 1}; target`)

	obj.SetRaw("a", env.rt.ToValue("raw"))
	assert.Equal(t, "raw", obj.Get("a").String())

	obj.SetRaw("a", nil)
	assert.True(t, env.run(t, `target.a === null`).ToBoolean())
}

func TestObject_Set_Frozen(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `Object.freeze({a: 1})`)

	assert.NotPanics(t, func() { obj.SetInt("a", 2) })
	assert.Equal(t, 1, obj.Int("a"))
	assert.Contains(t, env.logs.String(), `"op":"set"`)
	assert.Contains(t, env.logs.String(), `"msg":"property set failed"`)
}

func TestObject_ThrowingGetter(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({ get boom() { throw new Error('nope'); } })`)

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, obj.Int("boom"))
		_, ok := obj.LookupString("boom")
		assert.False(t, ok)
	})
	assert.True(t, obj.HasOwnProperty("boom"))
}

func TestObject_Number(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({i: 5, f: 5.5, s: '5'})`)

	assert.Equal(t, int64(5), obj.Number("i"))
	assert.Equal(t, 5.5, obj.Number("f"))
	assert.Equal(t, int64(0), obj.Number("s"))
}

func TestObject_LookupObject(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({owner: {name: 'Bob', pets: 2}, leaf: 1})`)

	owner, ok := obj.LookupObject("owner")
	require.True(t, ok)
	assert.Equal(t, "Bob", owner.String("name"))
	assert.Equal(t, 2, owner.Int("pets"))
	assert.Same(t, obj.Host(), owner.Host())

	_, ok = obj.LookupObject("leaf")
	assert.False(t, ok)
	_, ok = obj.LookupObject("missing")
	assert.False(t, ok)
}

func TestObject_Value(t *testing.T) {
	env := newTestEnv(t)
	obj := env.object(t, `({a: 1, b: 'two'})`)
	assert.Equal(t, map[string]any{"a": int64(1), "b": "two"}, obj.Value())
}

func TestObject_ViewsShareHandle(t *testing.T) {
	env := newTestEnv(t)
	first := env.object(t, `var shared = {}; shared`)
	second := Wrap(env.h, first.Raw())

	first.SetInt("count", 7)
	assert.Equal(t, 7, second.Int("count"))
}
