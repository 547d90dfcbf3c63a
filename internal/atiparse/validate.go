package atiparse

import (
	"fmt"
	"strings"
)

// anchorKeys names the element fields whose presence decides whether a
// document was meaningfully parsed at all. Legitimate reports always
// populate at least one of these, by value or by status; RO reports often
// carry only status fields because most values read "---".
var anchorKeys = []string{"ca", "mg", "kh", "salinity", "li", "si", "al", "no3", "po4"}

// Validate rejects an assembled record that lacks the structurally required
// fields or contains no recoverable element data. Validation failure is
// scoped to this one record; sibling sections of the same document are
// unaffected.
func Validate(rec *Record) error {
	var missing []string
	if rec.LabName == "" {
		missing = append(missing, "lab_name")
	}
	if rec.TestDate == nil {
		missing = append(missing, "test_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}

	for _, el := range elementTable {
		if !isAnchor(el.Key) {
			continue
		}
		r := el.Reading(rec)
		if r.Value != nil || r.Status != nil {
			return nil
		}
	}
	return fmt.Errorf("%w (water_type: %s)", ErrNoExtractableData, rec.WaterType)
}

func isAnchor(key string) bool {
	for _, k := range anchorKeys {
		if k == key {
			return true
		}
	}
	return false
}
