package atiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNarrativeRecommendations(t *testing.T) {
	text := `Recommendations:
Raise magnesium to 1350 mg/l
- dose 25 ml of Elementals Mg daily
Check potassium again in two weeks

Some unrelated trailer text
`
	var rec Record
	extractNarrative(text, &rec)

	// Bullet-dash continuation lines are dropped; the blank line ends the block.
	require.Len(t, rec.Recommendations, 2)
	assert.Equal(t, "Raise magnesium to 1350 mg/l", rec.Recommendations[0])
	assert.Equal(t, "Check potassium again in two weeks", rec.Recommendations[1])
}

func TestExtractNarrativeDosingBlob(t *testing.T) {
	text := "Dosing Instructions:\nDose 30 ml of Elementals Mg\nspread over 3 days.\n\nnext block"

	var rec Record
	extractNarrative(text, &rec)

	require.NotNil(t, rec.DosingInstructions)
	assert.Equal(t, "Dose 30 ml of Elementals Mg\nspread over 3 days.", *rec.DosingInstructions)
}

func TestExtractNarrativeRunsToEndOfSection(t *testing.T) {
	var rec Record
	extractNarrative("Recommendation: Keep dosing as before", &rec)

	require.Len(t, rec.Recommendations, 1)
	assert.Equal(t, "Keep dosing as before", rec.Recommendations[0])
}

func TestExtractNarrativeAbsentBlocksAreNotAnError(t *testing.T) {
	var rec Record
	extractNarrative("Ca 412 mg/l NORMAL\n", &rec)

	assert.Nil(t, rec.Recommendations)
	assert.Nil(t, rec.DosingInstructions)
}
