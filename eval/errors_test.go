package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceString(t *testing.T) {
	assert.Equal(t, "index.peb:12", Source{File: "index.peb", Line: 12}.String())
	assert.Equal(t, "line 3", Source{Line: 3}.String())
}

func TestErrorMessages(t *testing.T) {
	src := Source{File: "index.peb", Line: 4}

	t.Run("root attribute", func(t *testing.T) {
		err := &RootAttributeNotFoundError{Attribute: "user", Root: true, Source: src}
		assert.Contains(t, err.Error(), "root attribute [user]")
		assert.Contains(t, err.Error(), "index.peb:4")
	})

	t.Run("chained null", func(t *testing.T) {
		err := &RootAttributeNotFoundError{Attribute: "name", Source: src}
		assert.Contains(t, err.Error(), "attribute [name] of null value")
	})

	t.Run("attribute not found", func(t *testing.T) {
		err := &AttributeNotFoundError{Attribute: "total", TypeName: "*main.Order", Source: src}
		assert.Contains(t, err.Error(), "attribute [total] of *main.Order")
	})

	t.Run("index out of bounds", func(t *testing.T) {
		err := &AttributeNotFoundError{Attribute: "9", TypeName: "[]int", OutOfBounds: true, Source: src}
		assert.Contains(t, err.Error(), "index [9] out of bounds")
	})

	t.Run("key coercion", func(t *testing.T) {
		err := &KeyCoercionError{Key: int64(7), KeyType: "uint64", Source: src}
		assert.Contains(t, err.Error(), "uint64")
		assert.Contains(t, err.Error(), "7")
	})
}

func TestInvocationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &InvocationError{TypeName: "*main.Order", Member: "Total", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "[Total]")
	assert.Contains(t, err.Error(), "*main.Order")
}
