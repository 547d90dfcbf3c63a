package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the record contract. Parsed records are validated
// against it before anything is written to the database, so a parser
// regression cannot silently poison stored rows.
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{
		"lab_name":   map[string]any{"type": "string", "minLength": 1},
		"water_type": map[string]any{"type": "string", "enum": constants.WaterTypes},
		"test_id":    map[string]any{"type": "string", "pattern": `^\d+$`},

		"test_date":      dateTimeProp(),
		"sample_date":    dateTimeProp(),
		"received_date":  dateTimeProp(),
		"evaluated_date": dateTimeProp(),

		"score_major_elements": scoreProp(),
		"score_minor_elements": scoreProp(),
		"score_pollutants":     scoreProp(),
		"score_base_elements":  scoreProp(),
		"score_overall":        scoreProp(),

		"recommendations":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"dosing_instructions": map[string]any{"type": "string"},
	}

	for _, el := range atiparse.Elements() {
		props[el.Key] = map[string]any{"type": "number"}
		props[el.Key+"_status"] = map[string]any{"type": "string", "enum": constants.ElementStatuses}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"lab_name", "water_type", "test_date"},
	}
}

func dateTimeProp() map[string]any {
	// Record dates marshal as RFC 3339 timestamps at midnight UTC.
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`}
}

func scoreProp() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0.0, "maximum": 100.0}
}

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
