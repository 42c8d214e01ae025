package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextVariables(t *testing.T) {
	ctx := NewContext(map[string]any{"name": "ada"})

	v, ok := ctx.Get("name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)

	_, ok = ctx.Get("missing")
	assert.False(t, ok)

	ctx.Set("age", 36)
	v, ok = ctx.Get("age")
	require.True(t, ok)
	assert.Equal(t, 36, v)
}

func TestContextScopes(t *testing.T) {
	ctx := NewContext(map[string]any{"name": "outer"})

	ctx.PushScope()
	ctx.Set("name", "inner")
	v, _ := ctx.Get("name")
	assert.Equal(t, "inner", v)

	ctx.PopScope()
	v, _ = ctx.Get("name")
	assert.Equal(t, "outer", v)

	t.Run("outer variables stay visible in inner scopes", func(t *testing.T) {
		ctx.PushScope()
		defer ctx.PopScope()
		v, ok := ctx.Get("name")
		require.True(t, ok)
		assert.Equal(t, "outer", v)
	})

	t.Run("popping the root scope panics", func(t *testing.T) {
		fresh := NewContext(nil)
		assert.Panics(t, func() { fresh.PopScope() })
	})
}

func TestContextOptions(t *testing.T) {
	assert.False(t, NewContext(nil).StrictVariables())
	assert.True(t, NewContext(nil, WithStrictVariables(true)).StrictVariables())
	assert.NotNil(t, NewContext(nil).Logger())
}
