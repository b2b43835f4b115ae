package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// DecodeBudgetSheet runs the full intake for raw vision output: fence
// stripping, lenient sanitation, schema validation, decode.
func DecodeBudgetSheet(raw string) (*BudgetSheet, error) {
	cleaned, _, err := SanitizeBudgetJSON([]byte(StripFences(raw)), nil)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSONAgainstSchema(BuildBudgetSheetSchema(), cleaned); err != nil {
		return nil, err
	}
	var sheet BudgetSheet
	if err := json.Unmarshal(cleaned, &sheet); err != nil {
		return nil, fmt.Errorf("decode budget sheet: %w", err)
	}
	return &sheet, nil
}
