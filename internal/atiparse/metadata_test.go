package atiparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetadataATILabels(t *testing.T) {
	text := `ICP-OES Analysis
Barcode: 482913
Created: 02/01/2026
Arrived in the laboratory: 02/04/2026
Evaluated: 02/07/2026
`
	md := extractMetadata(text)

	require.NotNil(t, md.testID)
	assert.Equal(t, "482913", *md.testID)

	require.NotNil(t, md.sampleDate)
	assert.Equal(t, date(2026, time.February, 1), *md.sampleDate)
	require.NotNil(t, md.receivedDate)
	assert.Equal(t, date(2026, time.February, 4), *md.receivedDate)
	require.NotNil(t, md.evaluatedDate)
	assert.Equal(t, date(2026, time.February, 7), *md.evaluatedDate)

	// No explicit test date printed: evaluated date doubles as test date.
	require.NotNil(t, md.testDate)
	assert.Equal(t, date(2026, time.February, 7), *md.testDate)
}

func TestExtractMetadataGenericLabels(t *testing.T) {
	text := `Test ID: 7001
Test Date: 2026-02-07
Sample Date: 2026-02-01
Received: 2026-02-04
`
	md := extractMetadata(text)

	require.NotNil(t, md.testID)
	assert.Equal(t, "7001", *md.testID)
	require.NotNil(t, md.testDate)
	assert.Equal(t, date(2026, time.February, 7), *md.testDate)
	require.NotNil(t, md.sampleDate)
	assert.Equal(t, date(2026, time.February, 1), *md.sampleDate)
	require.NotNil(t, md.receivedDate)
	assert.Equal(t, date(2026, time.February, 4), *md.receivedDate)
}

func TestExtractMetadataFirstSynonymWins(t *testing.T) {
	// "Created" is scanned before "Sample Date"; when both appear the first
	// match by scan order is kept.
	text := "Created: 01/15/2026\nSample Date: 2026-01-20\n"
	md := extractMetadata(text)

	require.NotNil(t, md.sampleDate)
	assert.Equal(t, date(2026, time.January, 15), *md.sampleDate)
}

func TestExtractMetadataExplicitTestDateBeatsEvaluated(t *testing.T) {
	text := "Test Date: 2026-03-01\nEvaluated: 02/07/2026\n"
	md := extractMetadata(text)

	require.NotNil(t, md.testDate)
	assert.Equal(t, date(2026, time.March, 1), *md.testDate)
}

func TestExtractMetadataUnparseableDateLeavesFieldUnset(t *testing.T) {
	md := extractMetadata("Evaluated: -\nBarcode: 12\n")
	assert.Nil(t, md.evaluatedDate)
	assert.Nil(t, md.testDate)
	require.NotNil(t, md.testID)
}

func TestExtractMetadataEmpty(t *testing.T) {
	md := extractMetadata("nothing useful here")
	assert.Nil(t, md.testID)
	assert.Nil(t, md.testDate)
	assert.Nil(t, md.sampleDate)
	assert.Nil(t, md.receivedDate)
	assert.Nil(t, md.evaluatedDate)
}
