package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/gen/ent"
	enttest "github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
)

// CreateTestRequest wraps parameters for persisting one parsed record.
type CreateTestRequest struct {
	File   *ent.ReportFile
	JobID  uuid.UUID
	Record *atiparse.Record
}

type IcpTestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.IcpTest, error)
	ListByTank(ctx context.Context, tankID uuid.UUID, fromDate, toDate *time.Time) ([]*ent.IcpTest, error)
	LatestByTank(ctx context.Context, tankID uuid.UUID) (*ent.IcpTest, error)
	CreateFromRecord(ctx context.Context, request *CreateTestRequest) (*ent.IcpTest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type icpTestRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIcpTestRepository(client *ent.Client, logger *slog.Logger) IcpTestRepository {
	return &icpTestRepository{
		client: client,
		logger: logger,
	}
}

func (r *icpTestRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.IcpTest, error) {
	return r.client.IcpTest.Get(ctx, id)
}

func (r *icpTestRepository) ListByTank(ctx context.Context, tankID uuid.UUID, fromDate, toDate *time.Time) ([]*ent.IcpTest, error) {
	q := r.client.IcpTest.Query().Where(enttest.TankID(tankID))
	if fromDate != nil {
		q = q.Where(enttest.TestDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(enttest.TestDateLTE(*toDate))
	}
	tests, err := q.Order(enttest.ByTestDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list tests", "tank_id", tankID, "error", err)
		return nil, err
	}
	return tests, nil
}

func (r *icpTestRepository) LatestByTank(ctx context.Context, tankID uuid.UUID) (*ent.IcpTest, error) {
	return r.client.IcpTest.Query().
		Where(enttest.TankID(tankID)).
		Order(enttest.ByTestDate(entsql.OrderDesc()), enttest.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
}

func (r *icpTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.IcpTest.DeleteOneID(id).Exec(ctx); err != nil {
		if !ent.IsNotFound(err) {
			r.logger.Error("failed to delete test", "test_id", id, "error", err)
		}
		return err
	}
	r.logger.Info("test deleted", "test_id", id)
	return nil
}

func (r *icpTestRepository) CreateFromRecord(ctx context.Context, request *CreateTestRequest) (*ent.IcpTest, error) {
	rec := request.Record
	file := request.File

	if rec.TestDate == nil {
		r.logger.Error("record has no test date", "job_id", request.JobID, "file_id", file.ID)
		return nil, fmt.Errorf("%w: test_date", atiparse.ErrMissingRequiredField)
	}

	builder := r.client.IcpTest.Create().
		SetTankID(file.TankID).
		SetFileID(file.ID).
		SetTestDate(*rec.TestDate).
		SetLabName(rec.LabName).
		SetWaterType(rec.WaterType).
		SetNillableTestID(rec.TestID).
		SetNillableSampleDate(rec.SampleDate).
		SetNillableReceivedDate(rec.ReceivedDate).
		SetNillableEvaluatedDate(rec.EvaluatedDate).
		SetNillableScoreMajorElements(rec.ScoreMajorElements).
		SetNillableScoreMinorElements(rec.ScoreMinorElements).
		SetNillableScorePollutants(rec.ScorePollutants).
		SetNillableScoreBaseElements(rec.ScoreBaseElements).
		SetNillableScoreOverall(rec.ScoreOverall).
		SetNillableDosingInstructions(rec.DosingInstructions).
		SetPdfFilename(file.Filename).
		SetPdfPath(file.SourcePath)

	if len(rec.Recommendations) > 0 {
		builder = builder.SetRecommendations(rec.Recommendations)
	}

	// Element columns are named after the parser's element table, so one
	// loop over it covers the full value/status pair set.
	m := builder.Mutation()
	for _, el := range atiparse.Elements() {
		rd := el.Reading(rec)
		if rd.Value != nil {
			if err := m.SetField(el.Key, *rd.Value); err != nil {
				r.logger.Error("failed to set element value", "element", el.Key, "error", err)
				return nil, err
			}
		}
		if rd.Status != nil {
			if err := m.SetField(el.Key+"_status", *rd.Status); err != nil {
				r.logger.Error("failed to set element status", "element", el.Key, "error", err)
				return nil, err
			}
		}
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create test", "tank_id", file.TankID, "file_id", file.ID, "error", err)
		return nil, err
	}
	return row, nil
}
