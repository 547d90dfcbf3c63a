// Package pipeline coordinates the two processing stages for an uploaded
// report: text extraction (pdftotext) and record parsing. Each stage advances
// the file's parse_job row so a crash leaves an inspectable trail.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/textextract"
)

// Processor coordinates text extraction then record parsing.
type Processor struct {
	logger    *slog.Logger
	extractor *textextract.Extractor
	filesRepo repository.ReportFileRepository
	jobsRepo  repository.ParseJobRepository
	testsRepo repository.IcpTestRepository
}

func NewProcessor(
	logger *slog.Logger,
	extractor *textextract.Extractor,
	filesRepo repository.ReportFileRepository,
	jobsRepo repository.ParseJobRepository,
	testsRepo repository.IcpTestRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		filesRepo: filesRepo,
		jobsRepo:  jobsRepo,
		testsRepo: testsRepo,
	}
}

// ProcessFile runs text extraction for a fileID (creating/advancing the
// parse_job), then parses the text dump and persists one test row per water
// section. Returns the job ID and the stored rows.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, []*ent.IcpTest, error) {
	jobID, res, err := p.runExtract(ctx, fileID)
	if err != nil {
		p.logger.Error("processor.extract.failed", "file_id", fileID, "err", err)
		return jobID, nil, err
	}
	p.logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", jobID,
		"pages", res.Pages,
		"duration", res.Duration,
	)

	tests, err := p.runParse(ctx, jobID)
	if err != nil {
		p.logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, nil, err
	}
	p.logger.Info("processor.parse.ok", "job_id", jobID, "records", len(tests))
	return jobID, tests, nil
}

// runExtract starts a parse_job, runs pdftotext, and persists the raw text.
// Returns the job ID and the extraction summary. Parsing is NOT called.
func (p *Processor) runExtract(ctx context.Context, fileID uuid.UUID) (uuid.UUID, textextract.Result, error) {
	row, err := p.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, textextract.Result{}, fmt.Errorf("get file: %w", err)
	}

	ext := constants.NormalizeExt(row.FileExt)
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return uuid.Nil, textextract.Result{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.jobsRepo.Start(ctx, row.ID, row.TankID, constants.FileTypePDF)
	if err != nil {
		return uuid.Nil, textextract.Result{}, err
	}

	res, err := p.extractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := p.jobsRepo.FinishText(ctx, job.ID, res.Text, res.Pages); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}

// runParse executes the parse stage for a job that holds extracted text.
// Each water section becomes its own record; a section that fails validation
// is skipped with a warning and does not block its siblings.
func (p *Processor) runParse(ctx context.Context, jobID uuid.UUID) ([]*ent.IcpTest, error) {
	job, err := p.jobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	file := job.Edges.File
	if job.RawText == nil || file == nil {
		return nil, fmt.Errorf("job not ready for parse: status=%v raw_text_empty=%t", job.Status, job.RawText == nil)
	}

	records := atiparse.Parse(*job.RawText, file.Filename)
	if len(records) == 0 {
		err := fmt.Errorf("%w: no water sections found", atiparse.ErrNoExtractableData)
		_ = p.jobsRepo.FinishFailure(ctx, jobID, err.Error())
		return nil, err
	}

	schema := BuildRecordJSONSchema()
	var (
		tests    []*ent.IcpTest
		failures []string
		firstErr error
	)
	reject := func(rec *atiparse.Record, err error) {
		failures = append(failures, fmt.Sprintf("%s: %v", rec.WaterType, err))
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, rec := range records {
		if err := atiparse.Validate(rec); err != nil {
			p.logger.Warn("record failed validation", "job_id", jobID, "water_type", rec.WaterType, "err", err)
			reject(rec, err)
			continue
		}

		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		if err := ValidateJSONAgainstSchema(schema, payload); err != nil {
			p.logger.Warn("record violates contract", "job_id", jobID, "water_type", rec.WaterType, "err", err)
			reject(rec, err)
			continue
		}

		row, err := p.testsRepo.CreateFromRecord(ctx, &repository.CreateTestRequest{
			File:   file,
			JobID:  jobID,
			Record: rec,
		})
		if err != nil {
			_ = p.jobsRepo.FinishFailure(ctx, jobID, err.Error())
			return nil, fmt.Errorf("persist record: %w", err)
		}
		tests = append(tests, row)
	}

	if len(tests) == 0 {
		// Preserve the failure kind of the first rejected section so
		// callers can still tell a missing-required-field document from
		// one with no extractable data.
		msg := "all records rejected: " + strings.Join(failures, "; ")
		_ = p.jobsRepo.FinishFailure(ctx, jobID, msg)
		return nil, fmt.Errorf("all records rejected: %w", firstErr)
	}

	parsedJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal parsed records: %w", err)
	}
	if err := p.jobsRepo.FinishParseSuccess(ctx, jobID, len(tests), parsedJSON); err != nil {
		return nil, err
	}
	return tests, nil
}
