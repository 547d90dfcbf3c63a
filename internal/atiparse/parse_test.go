package atiparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/constants"
)

// reportFixture mimics a pdftotext -layout dump of a current ATI report
// with both water sections.
const reportFixture = `ATI Aquaristik ICP-OES Analysis
Barcode: 482913
Created: 02/01/2026
Arrived in the laboratory: 02/04/2026
Evaluated: 02/07/2026

Results of Salt water

Your analysis achieved the following scores:
Base Elements: 92
Major Elements: 88
Minor Elements: 75
Pollutants: 97
Overall: 90

Sal. total   34.5    PSU     NORMAL
KH           8.5     dKH     NORMAL
Cl           19345   mg/l    NORMAL
Na           10789   mg/l    BELOW NORMAL
Mg           1280    mg/l    SLIGHTLY LOW
Ca           412     mg/l    NORMAL
K            420     mg/l    SLIGHTLY HIGH
Sr           8100    µg/l    NORMAL
Li           180     µg/l    NORMAL
I            52      µg/l    BELOW NORMAL
Fe           ---     µg/l
Cu           2.1     µg/l    ABOVE NORMAL
NO3          4.8     mg/l    NORMAL
PO4          0.04    mg/l    NORMAL
Al           6.3     µg/l    NORMAL
Hg           1.2e-3  µg/l    NORMAL

Recommendations:
Raise magnesium to 1350 mg/l
- dose 25 ml of Elementals Mg daily
Check potassium again in two weeks

Dosing Instructions:
Dose 30 ml of Elementals Mg spread over 3 days.

Results of Osmosis water

Base Elements: 100
Overall: 100

Si           12      µg/l    ABOVE NORMAL
Cu           ---     µg/l    NORMAL
Zn           ---     µg/l
`

func TestParseTwoSections(t *testing.T) {
	records := Parse(reportFixture, "482913_report.pdf")
	require.Len(t, records, 2)

	salt, ro := records[0], records[1]
	assert.Equal(t, constants.WaterTypeSaltwater, salt.WaterType)
	assert.Equal(t, constants.WaterTypeROWater, ro.WaterType)

	for _, rec := range records {
		assert.Equal(t, constants.LabNameATI, rec.LabName)
		require.NotNil(t, rec.TestID)
		assert.Equal(t, "482913", *rec.TestID)
		require.NotNil(t, rec.TestDate)
		assert.Equal(t, date(2026, time.February, 7), *rec.TestDate)
		require.NotNil(t, rec.SampleDate)
		assert.Equal(t, date(2026, time.February, 1), *rec.SampleDate)
		require.NotNil(t, rec.ReceivedDate)
		assert.Equal(t, date(2026, time.February, 4), *rec.ReceivedDate)
	}
}

func TestParseSaltwaterSection(t *testing.T) {
	records := Parse(reportFixture, "482913_report.pdf")
	require.Len(t, records, 2)
	salt := records[0]

	require.NotNil(t, salt.ScoreOverall)
	assert.Equal(t, 90, *salt.ScoreOverall)
	require.NotNil(t, salt.ScorePollutants)
	assert.Equal(t, 97, *salt.ScorePollutants)

	require.NotNil(t, salt.Salinity)
	assert.Equal(t, 34.5, *salt.Salinity)
	require.NotNil(t, salt.KH)
	assert.Equal(t, 8.5, *salt.KH)
	require.NotNil(t, salt.NaStatus)
	assert.Equal(t, constants.StatusBelowNormal, *salt.NaStatus)
	require.NotNil(t, salt.Hg)
	assert.Equal(t, 1.2e-3, *salt.Hg)

	// "---" line: no value, and no status was printed either.
	assert.Nil(t, salt.Fe)
	assert.Nil(t, salt.FeStatus)

	// Symbols absent from the report yield no reading at all.
	assert.Nil(t, salt.Pb)
	assert.Nil(t, salt.PbStatus)

	require.Len(t, salt.Recommendations, 2)
	assert.Equal(t, "Raise magnesium to 1350 mg/l", salt.Recommendations[0])
	require.NotNil(t, salt.DosingInstructions)
	assert.Equal(t, "Dose 30 ml of Elementals Mg spread over 3 days.", *salt.DosingInstructions)
}

func TestParseROSection(t *testing.T) {
	records := Parse(reportFixture, "482913_report.pdf")
	require.Len(t, records, 2)
	ro := records[1]

	require.NotNil(t, ro.Si)
	assert.Equal(t, 12.0, *ro.Si)
	require.NotNil(t, ro.SiStatus)
	assert.Equal(t, constants.StatusAboveNormal, *ro.SiStatus)

	assert.Nil(t, ro.Cu)
	require.NotNil(t, ro.CuStatus)
	assert.Equal(t, constants.StatusNormal, *ro.CuStatus)

	assert.Nil(t, ro.Zn)
	assert.Nil(t, ro.ZnStatus)

	// Saltwater readings must not bleed into the RO section.
	assert.Nil(t, ro.Salinity)
	assert.Nil(t, ro.Ca)
	assert.Nil(t, ro.Recommendations)
}

func TestParseHeaderlessDocument(t *testing.T) {
	text := "Evaluated: 02/07/2026\nCa   412  mg/l  NORMAL\nKH   8.5  dKH  NORMAL\n"
	records := Parse(text, "report.pdf")

	require.Len(t, records, 1)
	assert.Equal(t, constants.WaterTypeSaltwater, records[0].WaterType)
	require.NoError(t, Validate(records[0]))
}

func TestParseTestDateFromFilename(t *testing.T) {
	text := "Ca   412  mg/l  NORMAL\n"
	records := Parse(text, "tank-export-2026-02-07.pdf")

	require.Len(t, records, 1)
	require.NotNil(t, records[0].TestDate)
	assert.Equal(t, date(2026, time.February, 7), *records[0].TestDate)
	require.NoError(t, Validate(records[0]))
}

func TestParseDeterministic(t *testing.T) {
	first := Parse(reportFixture, "482913_report.pdf")
	second := Parse(reportFixture, "482913_report.pdf")
	assert.Equal(t, first, second)
}

func TestValidateMissingTestDate(t *testing.T) {
	records := Parse("Ca   412  mg/l  NORMAL\n", "no-date-here.pdf")
	require.Len(t, records, 1)

	err := Validate(records[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "test_date")
}

func TestValidateNoExtractableData(t *testing.T) {
	records := Parse("Evaluated: 02/07/2026\nnothing resembling element lines\n", "r.pdf")
	require.Len(t, records, 1)

	err := Validate(records[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExtractableData)
	assert.Contains(t, err.Error(), string(constants.WaterTypeSaltwater))
}

func TestValidateStatusOnlyAnchorSuffices(t *testing.T) {
	records := Parse("Evaluated: 02/07/2026\nSi   ---   µg/l   NORMAL\n", "r.pdf")
	require.Len(t, records, 1)
	require.NoError(t, Validate(records[0]))
}
