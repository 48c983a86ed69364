package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIngredientAmounts(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		wantQty  float64
		wantUnit string
	}{
		{"flour", "2 cups", 2, "cup"},
		{"chicken breast", "150g", 150, "g"},
		{"butter", "1/2 lb", 0.5, "lb"},
		{"cream", "3/4 cup", 0.75, "cup"},
		{"cheese", "1 / 2 lb", 0.5, "lb"},
		{"milk", "1 1/2 cups", 1.5, "cup"},
		{"eggs", "3", 3, "each"},
		{"salt", "0.25 tsp", 0.25, "tsp"},
		{"olive oil", "2 Tablespoons", 2, "tbsp"},
		{"water", "8 fl oz", 8, "floz"},
		{"bread", "", 1, "each"},
		{"sugar", "some", 1, "some"}, // unknown token kept raw
	}
	for _, tc := range cases {
		got := NormalizeIngredient(Ingredient{Name: tc.name, Amount: tc.amount})
		assert.Equal(t, tc.wantQty, got.Quantity, "%s %q", tc.name, tc.amount)
		assert.Equal(t, tc.wantUnit, got.Unit, "%s %q", tc.name, tc.amount)
	}
}

func TestNormalizeIngredientUnknownUnitFlagged(t *testing.T) {
	got := NormalizeIngredient(Ingredient{Name: "tomatoes", Amount: "2 cans"})
	assert.Equal(t, 2.0, got.Quantity)
	assert.Equal(t, "cans", got.Unit)
	assert.False(t, got.UnitKnown)

	known := NormalizeIngredient(Ingredient{Name: "rice", Amount: "1 cup"})
	assert.True(t, known.UnitKnown)
}

func TestNormalizeNameStripsQualifiers(t *testing.T) {
	assert.Equal(t, "chicken breast", NormalizeName("Boneless Skinless Chicken Breast, diced"))
	assert.Equal(t, "onion", NormalizeName("Large Onion (chopped)"))
	assert.Equal(t, "garlic", NormalizeName("Fresh Garlic, minced"))
	assert.Equal(t, "eggs", NormalizeName("Eggs"))
}

func TestNormalizeIngredientIsIdempotent(t *testing.T) {
	ing := Ingredient{Name: "Diced Tomatoes, fresh", Amount: "1 1/2 cups"}
	first := NormalizeIngredient(ing)
	second := NormalizeIngredient(ing)
	assert.Equal(t, first, second)

	// normalizing an already-normalized name changes nothing
	assert.Equal(t, first.Name, NormalizeName(first.Name))
}

func TestNormalizeIngredientNeverFails(t *testing.T) {
	for _, amount := range []string{"", "   ", "???", "a pinch", "/2", "1/0"} {
		got := NormalizeIngredient(Ingredient{Name: "x", Amount: amount})
		assert.GreaterOrEqual(t, got.Quantity, 0.0, "amount %q", amount)
		assert.NotEmpty(t, got.Unit, "amount %q", amount)
	}
}
