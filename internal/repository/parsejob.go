package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/gen/ent"
	entjob "github.com/reefwatch/icp-tracker/gen/ent/parsejob"
	"github.com/reefwatch/icp-tracker/internal/entity"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

type ParseJobRepository interface {
	Start(ctx context.Context, fileID, tankID uuid.UUID, format string) (*ent.ParseJob, error)
	FinishText(ctx context.Context, jobID uuid.UUID, rawText string, pages int) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, recordsCount int, parsedJSON json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error)
	ListByTank(ctx context.Context, tankID uuid.UUID) ([]*entity.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID, tankID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetTankID(tankID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *parseJobRepo) FinishText(ctx context.Context, jobID uuid.UUID, rawText string, pages int) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetPages(pages).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job text extracted", "job_id", jobID, "pages", pages, "text_len", len(rawText))
	return nil
}

func (r *parseJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, recordsCount int, parsedJSON json.RawMessage) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRecordsCount(recordsCount).
		SetParsedJSON(parsedJSON).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID, "records", recordsCount)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error) {
	return r.ent.ParseJob.Query().
		Where(entjob.ID(jobID)).
		WithFile().
		Only(ctx)
}

func (r *parseJobRepo) ListByTank(ctx context.Context, tankID uuid.UUID) ([]*entity.ParseJob, error) {
	jobs, err := r.ent.ParseJob.Query().
		Where(entjob.TankID(tankID)).
		Order(entjob.ByStartedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list parse jobs", "tank_id", tankID, "err", err)
		return nil, err
	}
	result := make([]*entity.ParseJob, len(jobs))
	for i, j := range jobs {
		result[i] = utils.ToParseJob(j)
	}
	return result, nil
}
