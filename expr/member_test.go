package expr

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Count int
}

func (widget) GetColor() string { return "red" }

func (widget) Render(w, h int) string { return "rendered" }

func (widget) Join(parts ...string) string { return "joined" }

func (widget) Stringer(s interface{ String() string }) string { return s.String() }

func TestFindMember(t *testing.T) {
	typ := reflect.TypeOf(widget{})

	t.Run("get prefix", func(t *testing.T) {
		m := findMember(typ, "color", nil)
		require.NotNil(t, m)
		assert.Equal(t, methodMember, m.kind)
		assert.Equal(t, "GetColor", m.name)
	})

	t.Run("field with zero args", func(t *testing.T) {
		m := findMember(typ, "count", nil)
		require.NotNil(t, m)
		assert.Equal(t, fieldMember, m.kind)
		assert.Equal(t, "Count", m.name)
	})

	t.Run("field rejected when args are present", func(t *testing.T) {
		assert.Nil(t, findMember(typ, "count", []any{1}))
	})

	t.Run("arity must match", func(t *testing.T) {
		assert.Nil(t, findMember(typ, "render", []any{1}))
		require.NotNil(t, findMember(typ, "render", []any{1, 2}))
	})

	t.Run("variadic methods are not candidates", func(t *testing.T) {
		assert.Nil(t, findMember(typ, "join", []any{"a"}))
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Nil(t, findMember(typ, "", nil))
	})

	t.Run("pointer receiver methods via pointer type", func(t *testing.T) {
		m := findMember(reflect.TypeOf(&account{}), "owner", nil)
		require.NotNil(t, m)
		assert.Equal(t, "GetOwner", m.name)
	})
}

func TestParamCompatible(t *testing.T) {
	intT := reflect.TypeOf(0)
	int64T := reflect.TypeOf(int64(0))
	floatT := reflect.TypeOf(0.0)
	stringT := reflect.TypeOf("")
	anyT := reflect.TypeOf((*any)(nil)).Elem()

	t.Run("nil argument matches anything", func(t *testing.T) {
		assert.True(t, paramCompatible(intT, nil))
		assert.True(t, paramCompatible(stringT, nil))
	})

	t.Run("assignable", func(t *testing.T) {
		assert.True(t, paramCompatible(stringT, stringT))
		assert.True(t, paramCompatible(anyT, stringT))
	})

	t.Run("numeric kinds widen to each other", func(t *testing.T) {
		assert.True(t, paramCompatible(intT, int64T))
		assert.True(t, paramCompatible(floatT, intT))
		assert.True(t, paramCompatible(int64T, floatT))
	})

	t.Run("incompatible", func(t *testing.T) {
		assert.False(t, paramCompatible(intT, stringT))
		assert.False(t, paramCompatible(stringT, int64T))
	})
}

type named struct{}

func (named) String() string { return "named" }

func TestInterfaceParameter(t *testing.T) {
	t.Run("implementing argument matches", func(t *testing.T) {
		v, err := callAttr(widget{}, "stringer", named{}).Evaluate(lenientCtx())
		require.NoError(t, err)
		assert.Equal(t, "named", v)
	})

	t.Run("non-implementing argument does not match", func(t *testing.T) {
		v, err := callAttr(widget{}, "stringer", "plain").Evaluate(lenientCtx())
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
