package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
)

func TestRecordContractAcceptsParsedRecord(t *testing.T) {
	testDate := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	ca := 421.0
	caStatus := constants.StatusNormal
	score := 90

	rec := &atiparse.Record{
		LabName:      constants.LabNameATI,
		WaterType:    constants.WaterTypeSaltwater,
		TestDate:     &testDate,
		ScoreOverall: &score,
		Ca:           &ca,
		CaStatus:     &caStatus,
	}
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildRecordJSONSchema(), payload))
}

func TestRecordContractRejections(t *testing.T) {
	schema := BuildRecordJSONSchema()

	tests := []struct {
		name string
		json string
	}{
		{"missing test_date", `{"lab_name":"ATI Aquaristik","water_type":"saltwater"}`},
		{"unknown water_type", `{"lab_name":"ATI Aquaristik","water_type":"tap","test_date":"2026-05-14T00:00:00Z"}`},
		{"unknown property", `{"lab_name":"ATI Aquaristik","water_type":"saltwater","test_date":"2026-05-14T00:00:00Z","unobtainium":1}`},
		{"score out of range", `{"lab_name":"ATI Aquaristik","water_type":"saltwater","test_date":"2026-05-14T00:00:00Z","score_overall":140}`},
		{"status outside vocabulary", `{"lab_name":"ATI Aquaristik","water_type":"saltwater","test_date":"2026-05-14T00:00:00Z","ca_status":"WEIRD"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.json)))
		})
	}
}
