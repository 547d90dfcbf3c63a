package atiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScoresAllPresent(t *testing.T) {
	text := `Your analysis achieved the following scores:
Base Elements: 92
Major Elements: 88
Minor Elements 75
Pollutants: 97
Overall: 90
`
	var rec Record
	extractScores(text, &rec)

	require.NotNil(t, rec.ScoreBaseElements)
	assert.Equal(t, 92, *rec.ScoreBaseElements)
	require.NotNil(t, rec.ScoreMajorElements)
	assert.Equal(t, 88, *rec.ScoreMajorElements)
	require.NotNil(t, rec.ScoreMinorElements)
	assert.Equal(t, 75, *rec.ScoreMinorElements) // colon optional
	require.NotNil(t, rec.ScorePollutants)
	assert.Equal(t, 97, *rec.ScorePollutants)
	require.NotNil(t, rec.ScoreOverall)
	assert.Equal(t, 90, *rec.ScoreOverall)
}

func TestExtractScoresIndependentPerLabel(t *testing.T) {
	var rec Record
	extractScores("Overall: 81\n", &rec)

	require.NotNil(t, rec.ScoreOverall)
	assert.Equal(t, 81, *rec.ScoreOverall)
	assert.Nil(t, rec.ScoreMajorElements)
	assert.Nil(t, rec.ScoreMinorElements)
	assert.Nil(t, rec.ScorePollutants)
	assert.Nil(t, rec.ScoreBaseElements)
}
