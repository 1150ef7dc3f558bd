package item_test

import (
	"errors"
	"testing"

	"github.com/ruminaider/selectv2/internal/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		assert.NoError(t, item.Validate(item.Item{Value: "x", Title: "X"}))
	})

	t.Run("zero number is a valid value", func(t *testing.T) {
		assert.NoError(t, item.Validate(item.Item{Value: 0, Title: "Zero"}))
	})

	t.Run("missing title", func(t *testing.T) {
		err := item.Validate(item.Item{Value: "x"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, item.ErrInvalidItem))

		var verr *item.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "missing title", verr.Reason)
	})

	t.Run("whitespace title", func(t *testing.T) {
		assert.ErrorIs(t, item.Validate(item.Item{Value: "x", Title: "   "}), item.ErrInvalidItem)
	})

	t.Run("missing value", func(t *testing.T) {
		assert.ErrorIs(t, item.Validate(item.Item{Title: "X"}), item.ErrInvalidItem)
		assert.ErrorIs(t, item.Validate(item.Item{Value: "", Title: "X"}), item.ErrInvalidItem)
	})

	t.Run("non-comparable value", func(t *testing.T) {
		err := item.Validate(item.Item{Value: []string{"a"}, Title: "X"})
		assert.ErrorIs(t, err, item.ErrInvalidItem)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "", item.Key(nil))
	assert.Equal(t, "42", item.Key(42))
	assert.Equal(t, "abc", item.Key("abc"))
}
