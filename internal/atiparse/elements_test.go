package atiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/constants"
)

func TestExtractValueAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantValue  *float64
		wantStatus *constants.ElementStatus
	}{
		{"value and status", "KH    8.5   dKH    NORMAL", ptr(8.5), ptr(constants.StatusNormal)},
		{"two word status wins over normal", "Na   10789  mg/l   BELOW NORMAL", ptr(10789.0), ptr(constants.StatusBelowNormal)},
		{"critically low", "Ca   310  mg/l  CRITICALLY LOW", ptr(310.0), ptr(constants.StatusCriticallyLow)},
		{"slightly high", "K    420  mg/l  SLIGHTLY HIGH", ptr(420.0), ptr(constants.StatusSlightlyHigh)},
		{"scientific notation", "Hg   1.2e-3  µg/l", ptr(1.2e-3), nil},
		{"integer value no status", "Cl   19345  mg/l", ptr(19345.0), nil},
		{"status lowercase in source", "Fe   2.1  µg/l  slightly low", ptr(2.1), ptr(constants.StatusSlightlyLow)},
		{"no value no status", "Sr        µg/l", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, status := extractValueAndStatus(tt.line)
			if tt.wantValue == nil {
				assert.Nil(t, value)
			} else {
				require.NotNil(t, value)
				assert.Equal(t, *tt.wantValue, *value)
			}
			if tt.wantStatus == nil {
				assert.Nil(t, status)
			} else {
				require.NotNil(t, status)
				assert.Equal(t, *tt.wantStatus, *status)
			}
		})
	}
}

func TestExtractElementsValueAndStatus(t *testing.T) {
	var rec Record
	extractElements("KH    8.5   dKH   NORMAL\n", &rec)

	require.NotNil(t, rec.KH)
	assert.Equal(t, 8.5, *rec.KH)
	require.NotNil(t, rec.KHStatus)
	assert.Equal(t, constants.StatusNormal, *rec.KHStatus)
}

func TestExtractElementsNotDetectedMarker(t *testing.T) {
	// "---" suppresses the value but keeps the status, and the status
	// resolves to the full two-word phrase.
	var rec Record
	extractElements("Ca    ---   mg/l   CRITICALLY LOW\n", &rec)

	assert.Nil(t, rec.Ca)
	require.NotNil(t, rec.CaStatus)
	assert.Equal(t, constants.StatusCriticallyLow, *rec.CaStatus)
}

func TestExtractElementsLineStartAnchor(t *testing.T) {
	// A bare "S" must not match inside the Sr or Sb lines, and "Sal. total"
	// must not satisfy the S pattern either.
	var rec Record
	extractElements("Sal. total   34.5  PSU  NORMAL\nSr   8100  µg/l  NORMAL\nSb   0.2  µg/l\n", &rec)

	assert.Nil(t, rec.S)
	assert.Nil(t, rec.SStatus)
	require.NotNil(t, rec.Salinity)
	assert.Equal(t, 34.5, *rec.Salinity)
	require.NotNil(t, rec.Sr)
	assert.Equal(t, 8100.0, *rec.Sr)
	require.NotNil(t, rec.Sb)
	assert.Equal(t, 0.2, *rec.Sb)
}

func TestExtractElementsSymbolCasingIsStrict(t *testing.T) {
	// Lowercase narrative lines must never read as element lines: "be
	// patient..." is not a Be reading and "w 15 dni..." is not a W reading.
	var rec Record
	extractElements("Recommendations:\nbe patient and dose 25 ml daily\nw 15 dni powtorz test 2\n", &rec)

	assert.Nil(t, rec.Be)
	assert.Nil(t, rec.BeStatus)
	assert.Nil(t, rec.W)
	assert.Nil(t, rec.WStatus)
}

func TestExtractElementsFirstMatchingLineWins(t *testing.T) {
	var rec Record
	extractElements("Mg   1280  mg/l  SLIGHTLY LOW\nMg   9999  mg/l  NORMAL\n", &rec)

	require.NotNil(t, rec.Mg)
	assert.Equal(t, 1280.0, *rec.Mg)
	require.NotNil(t, rec.MgStatus)
	assert.Equal(t, constants.StatusSlightlyLow, *rec.MgStatus)
}

func TestExtractElementsMissingSymbolYieldsNoReading(t *testing.T) {
	var rec Record
	extractElements("Ca   412  mg/l  NORMAL\n", &rec)

	assert.Nil(t, rec.W)
	assert.Nil(t, rec.WStatus)
	assert.Nil(t, rec.Hg)
	assert.Nil(t, rec.HgStatus)
}

func TestElementsTableCoversAllFieldPairs(t *testing.T) {
	els := Elements()
	require.Len(t, els, 43)

	seen := make(map[string]bool, len(els))
	for _, el := range els {
		assert.False(t, seen[el.Key], "duplicate key %s", el.Key)
		seen[el.Key] = true
	}

	// Every anchor key must exist in the table.
	for _, k := range anchorKeys {
		assert.True(t, seen[k], "anchor key %s missing from table", k)
	}
}
