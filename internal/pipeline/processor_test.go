package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
	"github.com/reefwatch/icp-tracker/internal/entity"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/textextract"
)

// reportText mimics a pdftotext -layout dump with a healthy salt water
// section and an RO section that carries real readings.
const reportText = `ATI Aquaristik ICP-OES Analysis
Test ID: 473829
Test Date: 2026-05-14

Results of Salt water

Base Elements: 92
Overall: 90

Sal. total   34.5    PSU     NORMAL
KH           8.2     dKH     NORMAL
Ca           421     mg/l    NORMAL
Mg           1290    mg/l    SLIGHTLY LOW

Recommendations:
Raise magnesium over the next 7 days.

Results of RO water

Si           12.4    µg/l    ABOVE NORMAL
`

// brokenSiblingText has a parseable salt section and an RO section without
// any recognizable element line.
const brokenSiblingText = `Test Date: 2026-05-14

Results of Salt water

Ca           421     mg/l    NORMAL

Results of RO water

Fe           1.0     µg/l    NORMAL
`

type stubRunner struct {
	out []byte
	err error
}

func (s stubRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return s.out, nil, s.err
}

type fakeFilesRepo struct {
	files map[uuid.UUID]*ent.ReportFile
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.ReportFile, error) {
	if row, ok := f.files[id]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeFilesRepo) GetByTankAndHash(context.Context, uuid.UUID, []byte) (*ent.ReportFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeFilesRepo) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.ReportFile, error) {
	return nil, nil
}

func (f *fakeFilesRepo) UpsertByHash(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.ReportFile, bool, error) {
	return nil, false, nil
}

type fakeJobsRepo struct {
	job     *ent.ParseJob
	file    *ent.ReportFile
	status  string
	errMsg  string
	records int
}

func (f *fakeJobsRepo) Start(_ context.Context, fileID, tankID uuid.UUID, format string) (*ent.ParseJob, error) {
	f.job = &ent.ParseJob{ID: uuid.New(), FileID: fileID, TankID: tankID, Format: format}
	f.status = string(constants.JobStatusRunning)
	return f.job, nil
}

func (f *fakeJobsRepo) FinishText(_ context.Context, _ uuid.UUID, rawText string, pages int) error {
	f.job.RawText = &rawText
	f.job.Pages = &pages
	f.status = string(constants.JobStatusTextOK)
	return nil
}

func (f *fakeJobsRepo) FinishParseSuccess(_ context.Context, _ uuid.UUID, recordsCount int, parsedJSON json.RawMessage) error {
	f.status = string(constants.JobStatusParsed)
	f.records = recordsCount
	f.job.ParsedJSON = parsedJSON
	return nil
}

func (f *fakeJobsRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.status = string(constants.JobStatusFailed)
	f.errMsg = message
	return nil
}

func (f *fakeJobsRepo) GetWithFile(context.Context, uuid.UUID) (*ent.ParseJob, error) {
	job := *f.job
	job.Edges.File = f.file
	return &job, nil
}

func (f *fakeJobsRepo) ListByTank(context.Context, uuid.UUID) ([]*entity.ParseJob, error) {
	return nil, nil
}

type fakeTestsRepo struct {
	created []*repository.CreateTestRequest
}

func (f *fakeTestsRepo) GetByID(context.Context, uuid.UUID) (*ent.IcpTest, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTestsRepo) ListByTank(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.IcpTest, error) {
	return nil, nil
}

func (f *fakeTestsRepo) LatestByTank(context.Context, uuid.UUID) (*ent.IcpTest, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeTestsRepo) CreateFromRecord(_ context.Context, req *repository.CreateTestRequest) (*ent.IcpTest, error) {
	f.created = append(f.created, req)
	return &ent.IcpTest{
		ID:        uuid.New(),
		TankID:    req.File.TankID,
		TestDate:  *req.Record.TestDate,
		LabName:   req.Record.LabName,
		WaterType: req.Record.WaterType,
	}, nil
}

func (f *fakeTestsRepo) Delete(context.Context, uuid.UUID) error {
	return &ent.NotFoundError{}
}

func newTestProcessor(t *testing.T, text string, runErr error) (*Processor, *fakeJobsRepo, *fakeTestsRepo, uuid.UUID) {
	t.Helper()

	fileID := uuid.New()
	file := &ent.ReportFile{
		ID:         fileID,
		TankID:     uuid.New(),
		SourcePath: "/reports/ati-2026-05-14.pdf",
		Filename:   "ati-2026-05-14.pdf",
		FileExt:    "pdf",
	}
	files := &fakeFilesRepo{files: map[uuid.UUID]*ent.ReportFile{fileID: file}}
	jobs := &fakeJobsRepo{file: file}
	tests := &fakeTestsRepo{}

	extractor := textextract.NewExtractor(textextract.Config{}, nil).
		WithRunner(stubRunner{out: []byte(text), err: runErr})

	return NewProcessor(nil, extractor, files, jobs, tests), jobs, tests, fileID
}

func TestProcessFileBothSections(t *testing.T) {
	p, jobs, tests, fileID := newTestProcessor(t, reportText, nil)

	jobID, rows, err := p.ProcessFile(context.Background(), fileID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)

	require.Len(t, rows, 2)
	assert.Equal(t, constants.WaterTypeSaltwater, rows[0].WaterType)
	assert.Equal(t, constants.WaterTypeROWater, rows[1].WaterType)

	assert.Equal(t, string(constants.JobStatusParsed), jobs.status)
	assert.Equal(t, 2, jobs.records)
	assert.NotEmpty(t, jobs.job.ParsedJSON)
	require.Len(t, tests.created, 2)
	assert.Equal(t, "2026-05-14", tests.created[0].Record.TestDate.Format("2006-01-02"))
}

func TestProcessFileExtractionFailure(t *testing.T) {
	p, jobs, tests, fileID := newTestProcessor(t, "", context.DeadlineExceeded)

	_, _, err := p.ProcessFile(context.Background(), fileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, textextract.ErrExtractionTool)

	assert.Equal(t, string(constants.JobStatusFailed), jobs.status)
	assert.Empty(t, tests.created)
}

func TestProcessFileSkipsBrokenSibling(t *testing.T) {
	p, jobs, tests, fileID := newTestProcessor(t, brokenSiblingText, nil)

	_, rows, err := p.ProcessFile(context.Background(), fileID)
	require.NoError(t, err)

	// The RO section has no anchor element, so only the salt water record
	// survives; the job still finishes PARSED.
	require.Len(t, rows, 1)
	assert.Equal(t, constants.WaterTypeSaltwater, rows[0].WaterType)
	assert.Equal(t, string(constants.JobStatusParsed), jobs.status)
	assert.Equal(t, 1, jobs.records)
	require.Len(t, tests.created, 1)
}

func TestProcessFileNoExtractableData(t *testing.T) {
	p, jobs, tests, fileID := newTestProcessor(t, "nothing resembling a report 2026-05-14", nil)

	_, _, err := p.ProcessFile(context.Background(), fileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, atiparse.ErrNoExtractableData)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.status)
	assert.NotEmpty(t, jobs.errMsg)
	assert.Empty(t, tests.created)
}

func TestProcessFileKeepsMissingFieldKind(t *testing.T) {
	// Readings are present but no date can be found anywhere, so the failed
	// job must carry the missing-required-field kind, not no-extractable-data.
	p, jobs, tests, fileID := newTestProcessor(t, "Results of Salt water\n\nCa   421   mg/l   NORMAL\n", nil)
	filesRepo := p.filesRepo.(*fakeFilesRepo)
	filesRepo.files[fileID].Filename = "report.pdf"
	filesRepo.files[fileID].SourcePath = "/reports/report.pdf"

	_, _, err := p.ProcessFile(context.Background(), fileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, atiparse.ErrMissingRequiredField)
	assert.NotErrorIs(t, err, atiparse.ErrNoExtractableData)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.status)
	assert.Empty(t, tests.created)
}

func TestProcessFileUnsupportedExtension(t *testing.T) {
	p, jobs, _, fileID := newTestProcessor(t, reportText, nil)
	filesRepo := p.filesRepo.(*fakeFilesRepo)
	filesRepo.files[fileID].FileExt = "heic"

	_, _, err := p.ProcessFile(context.Background(), fileID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Nil(t, jobs.job)
}
