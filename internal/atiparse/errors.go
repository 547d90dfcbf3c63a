package atiparse

import "errors"

// Failure kinds for a parse run. All are non-retryable: a bad document will
// not parse better on a second attempt. Callers distinguish them with
// errors.Is to choose between a user-facing "could not read this PDF" and a
// partial-success path.
var (
	// ErrMissingRequiredField marks a record that lacks lab_name or
	// test_date after assembly; every known report format prints both.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrNoExtractableData marks a record with none of the anchor element
	// fields populated. It separates garbled or unsupported documents from
	// legitimately sparse ones.
	ErrNoExtractableData = errors.New("no element data could be extracted")
)
