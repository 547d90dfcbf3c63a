package atiparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/constants"
)

func TestSplitSectionsBothHeaders(t *testing.T) {
	text := "header junk\nResults of Salt water\nCa 412 mg/l\nResults of Osmosis water\nCu --- µg/l\ntrailer"

	secs := splitSections(text)
	require.Len(t, secs, 2)

	assert.Equal(t, constants.WaterTypeSaltwater, secs[0].waterType)
	assert.True(t, strings.HasPrefix(secs[0].text, "Results of Salt water"))
	assert.Contains(t, secs[0].text, "Ca 412")
	assert.NotContains(t, secs[0].text, "Cu ---")

	assert.Equal(t, constants.WaterTypeROWater, secs[1].waterType)
	assert.Contains(t, secs[1].text, "Cu ---")
	assert.Contains(t, secs[1].text, "trailer")
}

func TestSplitSectionsROSpelledOut(t *testing.T) {
	secs := splitSections("Results of RO water\nSi 12 µg/l")
	require.Len(t, secs, 1)
	assert.Equal(t, constants.WaterTypeROWater, secs[0].waterType)
}

func TestSplitSectionsCaseInsensitive(t *testing.T) {
	secs := splitSections("RESULTS OF SALT WATER\nCa 412")
	require.Len(t, secs, 1)
	assert.Equal(t, constants.WaterTypeSaltwater, secs[0].waterType)
}

func TestSplitSectionsStopAtUnrecognizedSampleType(t *testing.T) {
	text := "Results of Salt water\nCa 412 mg/l\nResults of Fresh water\nPb 99 µg/l\nResults of Osmosis water\nCu --- µg/l"

	secs := splitSections(text)
	require.Len(t, secs, 2)

	assert.Equal(t, constants.WaterTypeSaltwater, secs[0].waterType)
	assert.Contains(t, secs[0].text, "Ca 412")
	assert.NotContains(t, secs[0].text, "Pb 99")

	assert.Equal(t, constants.WaterTypeROWater, secs[1].waterType)
	assert.Contains(t, secs[1].text, "Cu ---")
}

func TestSplitSectionsNoHeadersFallsBackToSaltwater(t *testing.T) {
	text := "old layout without section headers\nCa 412 mg/l NORMAL"

	secs := splitSections(text)
	require.Len(t, secs, 1)
	assert.Equal(t, constants.WaterTypeSaltwater, secs[0].waterType)
	assert.Equal(t, text, secs[0].text)
}
