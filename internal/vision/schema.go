package vision

// BuildBudgetSheetSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Passed to the vision model as a structured-output constraint
// and used locally to validate what actually came back.
func BuildBudgetSheetSchema() map[string]any {
	day := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"day":            map[string]any{"type": "integer", "minimum": 1, "maximum": 31},
			"weekday":        map[string]any{"type": "string"},
			"budget":         nullableNumber(),
			"ly_sales":       nullableNumber(),
			"ly_guest_count": nullableInteger(),
			"mtd_budget":     nullableNumber(),
			"mtd_ly_sales":   nullableNumber(),
		},
		"required": []string{"day"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"header": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"parlor_name":  map[string]any{"type": "string", "minLength": 1},
					"month_code":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}$`},
					"area_manager": map[string]any{"type": "string"},
				},
				"required": []string{"parlor_name", "month_code"},
			},
			"days": map[string]any{
				"type":     "array",
				"items":    day,
				"minItems": 1,
				"maxItems": 31,
			},
			"totals": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"budget":         nullableNumber(),
					"ly_sales":       nullableNumber(),
					"ly_guest_count": nullableInteger(),
				},
			},
			"kpis": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"ly_atv":           nullableNumber(),
					"ly_auv":           nullableNumber(),
					"ly_cake_qty":      nullableNumber(),
					"ly_hand_pack_qty": nullableNumber(),
				},
			},
		},
		"required": []string{"header", "days"},
	}
}

func nullableNumber() map[string]any {
	return map[string]any{"type": []string{"number", "null"}}
}

func nullableInteger() map[string]any {
	return map[string]any{"type": []string{"integer", "null"}}
}
