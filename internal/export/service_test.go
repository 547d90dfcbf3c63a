package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent"
	"github.com/reefwatch/icp-tracker/internal/repository"
)

type fakeTestsRepo struct {
	rows []*ent.IcpTest
}

func (f *fakeTestsRepo) GetByID(context.Context, uuid.UUID) (*ent.IcpTest, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTestsRepo) ListByTank(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.IcpTest, error) {
	return f.rows, nil
}

func (f *fakeTestsRepo) LatestByTank(context.Context, uuid.UUID) (*ent.IcpTest, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTestsRepo) CreateFromRecord(context.Context, *repository.CreateTestRequest) (*ent.IcpTest, error) {
	return nil, nil
}

func (f *fakeTestsRepo) Delete(context.Context, uuid.UUID) error {
	return &ent.NotFoundError{}
}

func TestExportTestsXLSX(t *testing.T) {
	ca := 421.0
	overall := 90
	testID := "473829"
	filename := "ati-2026-05-14.pdf"

	repo := &fakeTestsRepo{rows: []*ent.IcpTest{
		{
			ID:           uuid.New(),
			TankID:       uuid.New(),
			TestDate:     time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC),
			LabName:      constants.LabNameATI,
			WaterType:    constants.WaterTypeSaltwater,
			TestID:       &testID,
			ScoreOverall: &overall,
			Ca:           &ca,
			PdfFilename:  &filename,
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportTestsXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	const sheet = "ICP Tests"
	got := func(cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Test Date", got("A1"))
	assert.Equal(t, "Water Type", got("B1"))
	assert.Equal(t, "Overall", got("D1"))

	assert.Equal(t, "2026-05-14", got("A2"))
	assert.Equal(t, "saltwater", got("B2"))
	assert.Equal(t, "473829", got("C2"))
	assert.Equal(t, "90", got("D2"))

	// The CA element column carries the reading; SALINITY is the first
	// element column (I) and CA follows the table order.
	salHeader := got("I1")
	assert.Equal(t, "SALINITY", salHeader)
}
