package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValueConstructors(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		v := Scalar(cty.NumberIntVal(4))
		assert.True(t, v.IsValid())
		assert.False(t, v.IsGroup())
		assert.True(t, cty.NumberIntVal(4).RawEquals(v.Scalar()))
		assert.Nil(t, v.Elements())
	})

	t.Run("group", func(t *testing.T) {
		v := Group(cty.NumberIntVal(1), cty.NumberIntVal(2))
		assert.True(t, v.IsValid())
		assert.True(t, v.IsGroup())
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, cty.NilVal, v.Scalar())
	})

	t.Run("empty group is valid", func(t *testing.T) {
		v := Group()
		assert.True(t, v.IsValid())
		assert.True(t, v.IsGroup())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var v Value
		assert.False(t, v.IsValid())
		assert.False(t, v.IsGroup())
	})

	t.Run("scalar wrapping nil is still constructed", func(t *testing.T) {
		v := Scalar(cty.NilVal)
		assert.True(t, v.IsValid())
	})
}

func TestValueImmutability(t *testing.T) {
	elems := []cty.Value{cty.StringVal("bi"), cty.StringVal("tri")}
	v := Group(elems...)

	// Mutating the input slice must not leak into the group.
	elems[0] = cty.StringVal("mutated")
	require.True(t, cty.StringVal("bi").RawEquals(v.Elements()[0]))

	// Mutating the returned slice must not leak into the group either.
	got := v.Elements()
	got[1] = cty.StringVal("mutated")
	assert.True(t, cty.StringVal("tri").RawEquals(v.Elements()[1]))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Scalar(cty.NumberIntVal(4)).Equal(Scalar(cty.NumberIntVal(4))))
	assert.False(t, Scalar(cty.NumberIntVal(4)).Equal(Scalar(cty.NumberIntVal(5))))
	assert.False(t, Scalar(cty.NumberIntVal(4)).Equal(Group(cty.NumberIntVal(4))))
	assert.True(t, Group(cty.StringVal("a")).Equal(Group(cty.StringVal("a"))))
	assert.False(t, Group(cty.StringVal("a")).Equal(Group(cty.StringVal("a"), cty.StringVal("b"))))

	var a, b Value
	assert.True(t, a.Equal(b))
}

func TestMappingSetGet(t *testing.T) {
	m := NewMapping()
	m.Set("a", Scalar(cty.NumberIntVal(1))).
		Set("b", Group(cty.StringVal("x"), cty.StringVal("y")))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.False(t, v.IsGroup())

	v, ok = m.Get("b")
	require.True(t, ok)
	assert.True(t, v.IsGroup())

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("missing"))
	assert.Equal(t, 2, m.Len())
}

func TestMappingInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("run", Scalar(cty.StringVal("bi")))
	m.Set("a", Scalar(cty.NumberIntVal(1)))
	m.Set("b", Scalar(cty.NumberIntVal(2)))

	assert.Equal(t, []string{"run", "a", "b"}, m.Keys())

	// Replacing a value keeps the original position.
	m.Set("a", Scalar(cty.NumberIntVal(9)))
	assert.Equal(t, []string{"run", "a", "b"}, m.Keys())
}

func TestMappingDelete(t *testing.T) {
	m := NewMapping()
	m.Set("a", Scalar(cty.NumberIntVal(1)))
	m.Set("b", Scalar(cty.NumberIntVal(2)))
	m.Set("c", Scalar(cty.NumberIntVal(3)))

	m.Delete("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))

	m.Delete("missing") // no-op
	assert.Equal(t, 2, m.Len())
}

func TestMappingClone(t *testing.T) {
	m := NewMapping()
	m.Set("a", Scalar(cty.NumberIntVal(1)))
	m.Set("b", Group(cty.NumberIntVal(1), cty.NumberIntVal(2)))

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	clone.Set("a", Scalar(cty.NumberIntVal(99)))
	clone.Set("extra", Scalar(cty.BoolVal(true)))

	v, _ := m.Get("a")
	assert.True(t, cty.NumberIntVal(1).RawEquals(v.Scalar()), "clone mutation leaked into the original")
	assert.False(t, m.Has("extra"))
}

func TestMappingEqual(t *testing.T) {
	build := func() *Mapping {
		m := NewMapping()
		m.Set("a", Scalar(cty.NumberIntVal(1)))
		m.Set("b", Group(cty.StringVal("x")))
		return m
	}

	assert.True(t, build().Equal(build()))

	// Key order does not matter for equality.
	reordered := NewMapping()
	reordered.Set("b", Group(cty.StringVal("x")))
	reordered.Set("a", Scalar(cty.NumberIntVal(1)))
	assert.True(t, build().Equal(reordered))

	different := build()
	different.Set("a", Scalar(cty.NumberIntVal(2)))
	assert.False(t, build().Equal(different))

	smaller := build()
	smaller.Delete("b")
	assert.False(t, build().Equal(smaller))
}
