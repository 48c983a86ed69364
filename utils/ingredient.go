package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Ingredient is one recipe line as it arrives from meal-plan data. Both
// fields are free text ("Chicken Breast, diced", "1/2 lb").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// NormalizedIngredient is the canonical comparable form the matcher and the
// converter work with.
type NormalizedIngredient struct {
	RawName   string
	Name      string  // lower-cased, qualifier words stripped
	Quantity  float64
	Unit      string // canonical unit, or the raw token when unrecognized
	UnitKnown bool   // false flags the unit for the conversion log
}

// Prep and size qualifiers that never help identify a pantry item.
var nameStopWords = map[string]struct{}{
	"diced": {}, "chopped": {}, "minced": {}, "sliced": {}, "shredded": {},
	"grated": {}, "crushed": {}, "boneless": {}, "skinless": {}, "fresh": {},
	"frozen": {}, "cooked": {}, "raw": {}, "large": {}, "medium": {},
	"small": {}, "whole": {}, "organic": {}, "ripe": {}, "finely": {},
	"thinly": {}, "peeled": {}, "trimmed": {},
}

// Leading numeric value (mixed number, fraction or decimal — longest form
// first, alternation is leftmost-first), then an optional unit token.
// Tolerant on purpose: "2 cups", "150g", "1 1/2 lb", "1" and "" all parse
// without error.
var amountPattern = regexp.MustCompile(`^\s*(\d+\s+\d+\s*/\s*\d+|\d+\s*/\s*\d+|\d+(?:\.\d+)?)\s*(.*)$`)

var namePunctuation = strings.NewReplacer(",", " ", "(", " ", ")", " ", "-", " ")

// NormalizeName lower-cases an ingredient name and strips qualifier words so
// "Boneless Chicken Breast, diced" and "chicken breast" compare equal.
func NormalizeName(name string) string {
	cleaned := namePunctuation.Replace(strings.ToLower(name))
	fields := strings.Fields(cleaned)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := nameStopWords[f]; stop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// NormalizeIngredient turns a free-text ingredient into its canonical form.
// It never fails: a missing or unparseable amount defaults to quantity 1,
// unit "each".
func NormalizeIngredient(ing Ingredient) NormalizedIngredient {
	norm := NormalizedIngredient{
		RawName:   ing.Name,
		Name:      NormalizeName(ing.Name),
		Quantity:  1,
		Unit:      "each",
		UnitKnown: true,
	}

	amount := strings.TrimSpace(ing.Amount)
	if amount == "" {
		return norm
	}

	rest := amount
	if m := amountPattern.FindStringSubmatch(amount); m != nil {
		if qty, ok := parseNumber(m[1]); ok {
			norm.Quantity = qty
		}
		rest = m[2]
	}

	if token := unitToken(rest); token != "" {
		unit, known := CanonicalUnit(token)
		if known {
			norm.Unit = unit
		} else {
			norm.Unit = strings.ToLower(token)
			norm.UnitKnown = false
		}
	}
	return norm
}

// parseNumber handles "2", "2.5", "1/2" and "1 1/2".
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	fields := strings.Fields(s)
	if len(fields) == 2 {
		whole, okW := parseNumber(fields[0])
		frac, okF := parseNumber(fields[1])
		if okW && okF {
			return whole + frac, true
		}
		return 0, false
	}
	if num, den, found := strings.Cut(s, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// unitToken extracts the unit word following the numeric value. "fl oz" is
// the one two-word unit worth keeping together.
func unitToken(rest string) string {
	fields := strings.Fields(strings.TrimSpace(rest))
	if len(fields) == 0 {
		return ""
	}
	if len(fields) >= 2 && strings.EqualFold(fields[0], "fl") {
		return fields[0] + " " + fields[1]
	}
	return fields[0]
}
