package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/gen/ent"
	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/common"
	"github.com/reefwatch/icp-tracker/internal/export"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

type TestsService struct {
	icppb.UnimplementedTestsServiceServer
	testsRepo repository.IcpTestRepository
	exportSvc *export.Service
	logger    *slog.Logger
}

func NewTestsService(testsRepo repository.IcpTestRepository, exportSvc *export.Service, logger *slog.Logger) *TestsService {
	return &TestsService{
		testsRepo: testsRepo,
		exportSvc: exportSvc,
		logger:    logger,
	}
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	v := common.NewValidator().Field(field, raw, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(strings.TrimSpace(raw))
}

func parseDateWindow(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	v := common.NewValidator().
		Field("from_date", fromRaw, common.DateYMD).
		Field("to_date", toRaw, common.DateYMD)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, nil, err
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(fromRaw); fd != "" {
		from, _ := utils.ParseYMD(fd)
		fromDate = &from
	}
	if td := strings.TrimSpace(toRaw); td != "" {
		to, _ := utils.ParseYMD(td)
		toDate = &to
	}
	return fromDate, toDate, nil
}

// ListTests returns test summaries for a tank, oldest first.
func (s *TestsService) ListTests(ctx context.Context, req *icppb.ListTestsRequest) (*icppb.ListTestsResponse, error) {
	tankID, err := parseUUID(req.GetTankId(), "tank_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing tests", "tank_id", tankID, "from_date", fromDate, "to_date", toDate)
	tests, err := s.testsRepo.ListByTank(ctx, tankID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list tests", "tank_id", tankID, "error", err)
		return nil, common.InternalErrorf("list tests: %v", err)
	}

	out := make([]*icppb.TestSummary, 0, len(tests))
	for _, t := range tests {
		out = append(out, utils.ToPBTestSummary(t))
	}
	return &icppb.ListTestsResponse{Tests: out}, nil
}

// GetTest returns one test with the full parsed record as JSON.
func (s *TestsService) GetTest(ctx context.Context, req *icppb.GetTestRequest) (*icppb.GetTestResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}

	row, err := s.testsRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("test not found")
		}
		s.logger.Error("failed to get test", "id", id, "error", err)
		return nil, common.InternalErrorf("get test: %v", err)
	}
	return s.toGetTestResponse(row)
}

// GetLatestTest returns the most recent test for a tank.
func (s *TestsService) GetLatestTest(ctx context.Context, req *icppb.GetLatestTestRequest) (*icppb.GetTestResponse, error) {
	tankID, err := parseUUID(req.GetTankId(), "tank_id")
	if err != nil {
		return nil, err
	}

	row, err := s.testsRepo.LatestByTank(ctx, tankID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("no tests for tank")
		}
		s.logger.Error("failed to get latest test", "tank_id", tankID, "error", err)
		return nil, common.InternalErrorf("get latest test: %v", err)
	}
	return s.toGetTestResponse(row)
}

// DeleteTest removes a stored test record.
func (s *TestsService) DeleteTest(ctx context.Context, req *icppb.DeleteTestRequest) (*icppb.DeleteTestResponse, error) {
	id, err := parseUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}

	if err := s.testsRepo.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("test not found")
		}
		s.logger.Error("failed to delete test", "id", id, "error", err)
		return nil, common.InternalErrorf("delete test: %v", err)
	}

	s.logger.Info("test deleted", "id", id)
	return &icppb.DeleteTestResponse{}, nil
}

// ExportTests returns an XLSX workbook of the tank's test history.
func (s *TestsService) ExportTests(ctx context.Context, req *icppb.ExportTestsRequest) (*icppb.ExportTestsResponse, error) {
	tankID, err := parseUUID(req.GetTankId(), "tank_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exportSvc.ExportTestsXLSX(ctx, tankID, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "tank_id", tankID, "err", err)
		return nil, common.InternalErrorf("export tests: %v", err)
	}
	return &icppb.ExportTestsResponse{Xlsx: xlsx}, nil
}

func (s *TestsService) toGetTestResponse(row *ent.IcpTest) (*icppb.GetTestResponse, error) {
	recordJSON, err := json.Marshal(utils.ToRecord(row))
	if err != nil {
		s.logger.Error("failed to marshal record", "id", row.ID, "error", err)
		return nil, common.InternalErrorf("marshal record: %v", err)
	}
	return &icppb.GetTestResponse{
		Test:       utils.ToPBTestSummary(row),
		RecordJson: recordJSON,
	}, nil
}
