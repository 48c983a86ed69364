package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PantrySnapshotItem is the engine's view of one pantry row. Reconcile
// mutates Quantity in place; persisting the new quantities is the caller's
// job.
type PantrySnapshotItem struct {
	ID        uint
	Name      string
	Category  string
	Quantity  float64
	Unit      string
	UpdatedAt time.Time
}

// MatcherConfig enumerates the pantry categories and the keyword lists used
// to infer an ingredient's category for tie-breaking. Categories are
// configuration, not code, so extending them never touches matching logic.
type MatcherConfig struct {
	Categories        []string
	CategoryKeywords  map[string][]string
	MaxSubstringWords int // substring matching only for names this short
}

// DefaultMatcherConfig covers the stock pantry categories.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Categories: []string{"meat", "spices", "grains", "vegetables", "other"},
		CategoryKeywords: map[string][]string{
			"meat": {
				"chicken", "beef", "pork", "turkey", "lamb", "fish", "salmon",
				"tuna", "shrimp", "bacon", "sausage", "ham",
			},
			"spices": {
				"salt", "pepper", "oregano", "basil", "thyme", "paprika",
				"cumin", "cinnamon", "nutmeg", "garlic powder", "onion powder",
				"chili powder", "rosemary", "turmeric", "curry", "ginger",
				"coriander", "cayenne",
			},
			"grains": {
				"rice", "quinoa", "pasta", "oats", "flour", "bread", "couscous",
				"cornmeal", "barley", "noodle",
			},
			"vegetables": {
				"onion", "garlic", "tomato", "carrot", "celery", "potato",
				"spinach", "broccoli", "bell pepper", "lettuce", "cucumber",
				"zucchini", "mushroom", "kale", "cauliflower",
			},
		},
		MaxSubstringWords: 3,
	}
}

// InferCategory guesses which pantry category an ingredient name belongs to.
// Empty string when no keyword list claims it.
func InferCategory(name string, cfg MatcherConfig) string {
	name = strings.ToLower(name)
	for _, cat := range cfg.Categories {
		for _, kw := range cfg.CategoryKeywords[cat] {
			if strings.Contains(name, kw) {
				return cat
			}
		}
	}
	return ""
}

// MatchPantryItem finds the best pantry candidate for a normalized
// ingredient name. Precedence: exact case-insensitive match, then substring
// containment in either direction (short names only, to avoid false
// positives), then same-category tie-break, then most recently updated.
// Returns the index into pantry, or -1 for no match.
func MatchPantryItem(name string, pantry []PantrySnapshotItem, cfg MatcherConfig) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return -1
	}

	var candidates []int
	for i := range pantry {
		if strings.ToLower(strings.TrimSpace(pantry[i].Name)) == name {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 && len(strings.Fields(name)) <= cfg.MaxSubstringWords {
		for i := range pantry {
			pn := strings.ToLower(strings.TrimSpace(pantry[i].Name))
			if pn == "" {
				continue
			}
			if strings.Contains(pn, name) || strings.Contains(name, pn) {
				candidates = append(candidates, i)
			}
		}
	}

	switch len(candidates) {
	case 0:
		return -1
	case 1:
		return candidates[0]
	}

	if cat := InferCategory(name, cfg); cat != "" {
		var same []int
		for _, i := range candidates {
			if strings.EqualFold(pantry[i].Category, cat) {
				same = append(same, i)
			}
		}
		if len(same) > 0 {
			candidates = same
		}
	}

	best := candidates[0]
	for _, i := range candidates[1:] {
		if pantry[i].UpdatedAt.After(pantry[best].UpdatedAt) {
			best = i
		}
	}
	return best
}

// ReductionEntry records one deduction, full or partial.
type ReductionEntry struct {
	Ingredient        string  `json:"ingredient"`
	PantryItem        string  `json:"pantryItem"`
	PantryItemID      uint    `json:"pantryItemId"`
	Reduced           float64 `json:"reduced"`
	Unit              string  `json:"unit"`
	RemainingQuantity float64 `json:"remainingQuantity"`
	UnitConversion    string  `json:"unitConversion,omitempty"`
}

// InsufficientEntry records a shortfall, or a requested amount that could not
// be verified against the stored unit.
type InsufficientEntry struct {
	Ingredient        string  `json:"ingredient"`
	PantryItem        string  `json:"pantryItem"`
	Requested         float64 `json:"requested"`
	Available         float64 `json:"available"`
	Unit              string  `json:"unit"`
	ConversionMessage string  `json:"conversionMessage,omitempty"`
}

// NoMatchEntry records an ingredient with no pantry counterpart.
type NoMatchEntry struct {
	Ingredient       string `json:"ingredient"`
	IngredientAmount string `json:"ingredientAmount"`
}

// ConversionTrace is one attempted unit conversion, kept for diagnostics.
type ConversionTrace struct {
	Ingredient string  `json:"ingredient"`
	FromUnit   string  `json:"fromUnit"`
	ToUnit     string  `json:"toUnit"`
	Quantity   float64 `json:"quantity"`
	Converted  float64 `json:"converted,omitempty"`
	OK         bool    `json:"ok"`
	Message    string  `json:"message,omitempty"`
}

// Summary carries the per-meal counts and success rate.
type Summary struct {
	TotalIngredients       int `json:"totalIngredients"`
	TotalReductions        int `json:"totalReductions"`
	TotalInsufficientItems int `json:"totalInsufficientItems"`
	TotalNoMatchItems      int `json:"totalNoMatchItems"`
	SuccessRate            int `json:"successRate"`
}

// ReconciliationResult is the structured outcome of one consumption event.
type ReconciliationResult struct {
	ReductionLog      []ReductionEntry    `json:"reductionLog"`
	InsufficientItems []InsufficientEntry `json:"insufficientItems"`
	NoMatchItems      []NoMatchEntry      `json:"noMatchItems"`
	UnitConversionLog []ConversionTrace   `json:"unitConversionLog"`
	Summary           Summary             `json:"summary"`
}

// Reconcile deducts a meal's ingredients from the pantry snapshot.
//
// Ingredients are processed in input order so logs are reproducible and a
// second ingredient hitting the same pantry item sees the already-reduced
// quantity. Data-quality problems (no match, unknown units, insufficient
// stock) are result categories, never errors: one bad ingredient never stops
// the rest of the meal.
//
// On insufficiency the engine deducts what is available (clamped at zero) and
// logs both the partial reduction and the shortfall. An amount whose unit
// cannot be converted to the stored unit is never deducted.
func Reconcile(ingredients []Ingredient, pantry []PantrySnapshotItem, cfg MatcherConfig) ReconciliationResult {
	res := ReconciliationResult{
		ReductionLog:      []ReductionEntry{},
		InsufficientItems: []InsufficientEntry{},
		NoMatchItems:      []NoMatchEntry{},
		UnitConversionLog: []ConversionTrace{},
	}

	for _, ing := range ingredients {
		norm := NormalizeIngredient(ing)

		idx := MatchPantryItem(norm.Name, pantry, cfg)
		if idx < 0 {
			res.NoMatchItems = append(res.NoMatchItems, NoMatchEntry{
				Ingredient:       ing.Name,
				IngredientAmount: ing.Amount,
			})
			continue
		}
		item := &pantry[idx]

		itemUnit, _ := CanonicalUnit(item.Unit)
		requested := norm.Quantity
		conversionNote := ""

		if !sameUnit(norm.Unit, item.Unit) {
			converted, err := Convert(norm.Quantity, norm.Unit, item.Unit)
			trace := ConversionTrace{
				Ingredient: ing.Name,
				FromUnit:   norm.Unit,
				ToUnit:     itemUnit,
				Quantity:   norm.Quantity,
			}
			if err != nil {
				trace.Message = err.Error()
				res.UnitConversionLog = append(res.UnitConversionLog, trace)
				// Fail safe: an unverifiable amount is never deducted.
				res.InsufficientItems = append(res.InsufficientItems, InsufficientEntry{
					Ingredient:        ing.Name,
					PantryItem:        item.Name,
					Requested:         norm.Quantity,
					Available:         item.Quantity,
					Unit:              itemUnit,
					ConversionMessage: fmt.Sprintf("cannot compare %s to %s; nothing deducted", norm.Unit, itemUnit),
				})
				continue
			}
			trace.Converted = converted
			trace.OK = true
			res.UnitConversionLog = append(res.UnitConversionLog, trace)
			requested = converted
			conversionNote = fmt.Sprintf("%g %s -> %g %s", norm.Quantity, norm.Unit, roundQty(converted), itemUnit)
		} else if !norm.UnitKnown {
			// unrecognized but identical to the stored unit: comparable
			// verbatim, still worth a diagnostic entry
			res.UnitConversionLog = append(res.UnitConversionLog, ConversionTrace{
				Ingredient: ing.Name,
				FromUnit:   norm.Unit,
				ToUnit:     itemUnit,
				Quantity:   norm.Quantity,
				OK:         true,
				Message:    fmt.Sprintf("unrecognized unit %q matches stored unit", norm.Unit),
			})
		}

		available := item.Quantity
		if available >= requested {
			item.Quantity = roundQty(available - requested)
			res.ReductionLog = append(res.ReductionLog, ReductionEntry{
				Ingredient:        ing.Name,
				PantryItem:        item.Name,
				PantryItemID:      item.ID,
				Reduced:           roundQty(requested),
				Unit:              itemUnit,
				RemainingQuantity: item.Quantity,
				UnitConversion:    conversionNote,
			})
			continue
		}

		// Partial credit: deduct what is truly there, flag the shortfall.
		item.Quantity = 0
		res.InsufficientItems = append(res.InsufficientItems, InsufficientEntry{
			Ingredient: ing.Name,
			PantryItem: item.Name,
			Requested:  roundQty(requested),
			Available:  available,
			Unit:       itemUnit,
		})
		if available > 0 {
			res.ReductionLog = append(res.ReductionLog, ReductionEntry{
				Ingredient:        ing.Name,
				PantryItem:        item.Name,
				PantryItemID:      item.ID,
				Reduced:           available,
				Unit:              itemUnit,
				RemainingQuantity: 0,
				UnitConversion:    conversionNote,
			})
		}
	}

	total := len(ingredients)
	res.Summary = Summary{
		TotalIngredients:       total,
		TotalReductions:        len(res.ReductionLog),
		TotalInsufficientItems: len(res.InsufficientItems),
		TotalNoMatchItems:      len(res.NoMatchItems),
	}
	if total > 0 {
		res.Summary.SuccessRate = int(math.Round(100 * float64(len(res.ReductionLog)) / float64(total)))
	}
	return res
}

// sameUnit compares units after alias resolution. Unrecognized units still
// compare verbatim ("can" == "can"), so identically-labelled stock stays
// deductible.
func sameUnit(a, b string) bool {
	ca, _ := CanonicalUnit(a)
	cb, _ := CanonicalUnit(b)
	return ca == cb
}

// roundQty keeps stored quantities readable after conversions like
// 0.5 lb -> 226.795 g.
func roundQty(v float64) float64 {
	return math.Round(v*100) / 100
}
