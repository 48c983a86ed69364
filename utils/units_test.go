package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertWithinDimension(t *testing.T) {
	got, err := Convert(2, "cup", "tbsp")
	require.NoError(t, err)
	assert.InDelta(t, 32, got, 0.05)

	got, err = Convert(1, "lb", "g")
	require.NoError(t, err)
	assert.InDelta(t, 453.6, got, 0.1)

	got, err = Convert(1500, "ml", "l")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-9)

	got, err = Convert(3, "each", "each")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestConvertCrossDimensionFails(t *testing.T) {
	// cups -> grams depends on ingredient density, never guessed
	_, err := Convert(1, "cup", "g")
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = Convert(1, "each", "kg")
	require.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestConvertUnknownUnitFails(t *testing.T) {
	_, err := Convert(1, "can", "g")
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = Convert(1, "g", "handful")
	require.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestConvertIsDeterministic(t *testing.T) {
	first, err := Convert(0.5, "lb", "oz")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := Convert(0.5, "lb", "oz")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCanonicalUnitAliases(t *testing.T) {
	cases := map[string]string{
		"Grams": "g", "lbs.": "lb", "Tablespoons": "tbsp", "cups": "cup",
		"fl oz": "floz", "pieces": "each", "": "each", "KG": "kg",
	}
	for raw, want := range cases {
		got, known := CanonicalUnit(raw)
		assert.True(t, known, "expected %q to be known", raw)
		assert.Equal(t, want, got, "alias %q", raw)
	}

	got, known := CanonicalUnit("bunch")
	assert.False(t, known)
	assert.Equal(t, "bunch", got)
}

func TestUnitDimension(t *testing.T) {
	dim, ok := UnitDimension("tbsp")
	require.True(t, ok)
	assert.Equal(t, Volume, dim)

	dim, ok = UnitDimension("pounds")
	require.True(t, ok)
	assert.Equal(t, Mass, dim)

	_, ok = UnitDimension("sprig")
	assert.False(t, ok)
}
