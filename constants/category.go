package constants

import "strings"

// Category is a sales-mix category as printed on POS category summaries.
type Category string

const (
	CupsCones    Category = "Cups & Cones"
	Sundaes      Category = "Sundaes"
	Beverages    Category = "Beverages"
	Cakes        Category = "Cakes"
	HandPacked   Category = "Hand Packed"
	Prepacked    Category = "Prepacked"
	Novelties    Category = "Novelties"
	Toppings     Category = "Toppings"
	OtherRetail  Category = "Other Retail"
	Uncategorized Category = "Uncategorized"
)

var allCategories = []Category{
	CupsCones,
	Sundaes,
	Beverages,
	Cakes,
	HandPacked,
	Prepacked,
	Novelties,
	Toppings,
	OtherRetail,
	Uncategorized,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps an OCR-derived category label onto a known category.
// Receipts abbreviate these inconsistently ("C&C", "H/P", "Sundae").
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Uncategorized, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Category{
		"c&c":          CupsCones,
		"cups and cones": CupsCones,
		"cup & cone":   CupsCones,
		"sundae":       Sundaes,
		"beverage":     Beverages,
		"drinks":       Beverages,
		"cake":         Cakes,
		"h/p":          HandPacked,
		"hand pack":    HandPacked,
		"handpacked":   HandPacked,
		"hp":           HandPacked,
		"prepack":      Prepacked,
		"novelty":      Novelties,
		"topping":      Toppings,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Uncategorized, false
}
