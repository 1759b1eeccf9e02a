package entities_test

import (
	"testing"

	"github.com/ecomlab/storefront-admin/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderRef(t *testing.T) {
	t.Run("uid", func(t *testing.T) {
		ref, err := entities.ParseOrderRef("0195b2da-3a7e-7f90-b7d1-6f2a9c4e8d01")
		require.NoError(t, err)
		require.NotNil(t, ref.UID)
		assert.Equal(t, "0195b2da-3a7e-7f90-b7d1-6f2a9c4e8d01", ref.UID.String())
		assert.Nil(t, ref.NumericID)
	})

	t.Run("numeric id", func(t *testing.T) {
		ref, err := entities.ParseOrderRef("42")
		require.NoError(t, err)
		assert.Nil(t, ref.UID)
		require.NotNil(t, ref.NumericID)
		assert.Equal(t, int64(42), *ref.NumericID)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		ref, err := entities.ParseOrderRef("  42\n")
		require.NoError(t, err)
		require.NotNil(t, ref.NumericID)
		assert.Equal(t, int64(42), *ref.NumericID)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := entities.ParseOrderRef("")
		assert.ErrorIs(t, err, entities.ErrInvalidOrderRef)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := entities.ParseOrderRef("   ")
		assert.ErrorIs(t, err, entities.ErrInvalidOrderRef)
	})

	t.Run("neither uid nor number", func(t *testing.T) {
		_, err := entities.ParseOrderRef("abc")
		assert.ErrorIs(t, err, entities.ErrInvalidOrderRef)
	})

	t.Run("negative number", func(t *testing.T) {
		_, err := entities.ParseOrderRef("-5")
		assert.ErrorIs(t, err, entities.ErrInvalidOrderRef)
	})
}

func TestResolvedByString(t *testing.T) {
	assert.Equal(t, "uid", entities.ResolvedByUID.String())
	assert.Equal(t, "numeric_id", entities.ResolvedByNumericID.String())
	assert.Equal(t, "unknown", entities.ResolvedBy(0).String())
}
