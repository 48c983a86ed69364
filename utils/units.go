package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Dimension groups units that can be converted between each other.
type Dimension string

const (
	Mass   Dimension = "mass"
	Volume Dimension = "volume"
	Count  Dimension = "count"
)

// ErrUnsupportedConversion is returned when two units belong to different
// dimensions (e.g. cup -> g, which depends on ingredient density) or when
// either unit is unrecognized. Callers must treat it as "cannot verify
// sufficiency", not as a hard failure.
var ErrUnsupportedConversion = errors.New("unsupported unit conversion")

// unitDef anchors a unit to its dimension and its factor relative to the
// dimension's base unit (g for mass, ml for volume, each for count).
type unitDef struct {
	Dim    Dimension
	Factor float64
}

var unitTable = map[string]unitDef{
	// mass -> g
	"g":  {Mass, 1},
	"kg": {Mass, 1000},
	"oz": {Mass, 28.35},
	"lb": {Mass, 453.59},
	// volume -> ml
	"ml":   {Volume, 1},
	"l":    {Volume, 1000},
	"tsp":  {Volume, 4.93},
	"tbsp": {Volume, 14.79},
	"floz": {Volume, 29.57},
	"cup":  {Volume, 236.59},
	// count
	"each": {Count, 1},
}

// unitAliases maps the spellings found in free-text amounts and pantry rows
// onto canonical unit names.
var unitAliases = map[string]string{
	"gram": "g", "grams": "g", "gr": "g",
	"kilogram": "kg", "kilograms": "kg", "kgs": "kg",
	"ounce": "oz", "ounces": "oz",
	"pound": "lb", "pounds": "lb", "lbs": "lb",
	"milliliter": "ml", "milliliters": "ml",
	"liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsps": "tsp",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbs": "tbsp", "tbsps": "tbsp",
	"cups": "cup", "c": "cup",
	"fl oz": "floz", "fluid ounce": "floz", "fluid ounces": "floz",
	"unit": "each", "units": "each", "piece": "each", "pieces": "each",
	"count": "each", "ea": "each",
}

// CanonicalUnit resolves a raw unit token ("Lbs.", "Grams") to its canonical
// name. An empty token means an implied count. known is false for tokens the
// conversion table knows nothing about; the lower-cased token is still
// returned so callers can log it verbatim.
func CanonicalUnit(token string) (unit string, known bool) {
	u := strings.ToLower(strings.TrimSpace(token))
	u = strings.ReplaceAll(u, ".", "")
	if u == "" {
		return "each", true
	}
	if alias, ok := unitAliases[u]; ok {
		u = alias
	}
	_, ok := unitTable[u]
	return u, ok
}

// UnitDimension reports which dimension a unit belongs to.
func UnitDimension(unit string) (Dimension, bool) {
	u, known := CanonicalUnit(unit)
	if !known {
		return "", false
	}
	return unitTable[u].Dim, true
}

// Convert converts a quantity between two units of the same dimension. Every
// call goes through the dimension's base unit, so chained conversions never
// accumulate floating-point drift.
func Convert(quantity float64, fromUnit, toUnit string) (float64, error) {
	from, okFrom := CanonicalUnit(fromUnit)
	to, okTo := CanonicalUnit(toUnit)
	if !okFrom || !okTo {
		return 0, fmt.Errorf("%w: %q -> %q", ErrUnsupportedConversion, fromUnit, toUnit)
	}
	fd := unitTable[from]
	td := unitTable[to]
	if fd.Dim != td.Dim {
		return 0, fmt.Errorf("%w: %s (%s) -> %s (%s)", ErrUnsupportedConversion, from, fd.Dim, to, td.Dim)
	}
	return quantity * fd.Factor / td.Factor, nil
}
