package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/async"
	"github.com/reefwatch/icp-tracker/internal/ingest"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

type IngestionService struct {
	icppb.UnimplementedIngestionServiceServer
	ingestor  ingest.Ingestor
	tanksRepo repository.TankRepository
	jobsRepo  repository.ParseJobRepository
	queue     async.Queue
	logger    *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, tanks repository.TankRepository, jobs repository.ParseJobRepository, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor:  ing,
		queue:     queue,
		tanksRepo: tanks,
		jobsRepo:  jobs,
		logger:    logger,
	}
}

func (s *IngestionService) parseTankID(ctx context.Context, raw string) (uuid.UUID, error) {
	tid := strings.TrimSpace(raw)
	if tid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "tank_id is required")
	}
	tankID, err := uuid.Parse(tid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "tank_id must be a UUID")
	}
	if exists, _ := s.tanksRepo.Exists(ctx, tankID); !exists {
		return uuid.Nil, status.Error(codes.NotFound, "tank not found")
	}
	return tankID, nil
}

// IngestFile stores one report PDF and queues it for parsing.
func (s *IngestionService) IngestFile(ctx context.Context, req *icppb.IngestFileRequest) (*icppb.IngestResponse, error) {
	tankID, err := s.parseTankID(ctx, req.GetTankId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "tank_id", tankID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "tank_id", tankID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, tankID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "tank_id", tankID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)

	if fileUUID, err := uuid.Parse(r.FileID); err == nil {
		if err := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("enqueue failed", "file_id", r.FileID, "err", err)
			resp.Error = err.Error()
		}
	}
	return resp, nil
}

// IngestDirectory walks a directory, storing and queueing every report PDF.
func (s *IngestionService) IngestDirectory(ctx context.Context, req *icppb.IngestDirectoryRequest) (*icppb.IngestDirectoryResponse, error) {
	tankID, err := s.parseTankID(ctx, req.GetTankId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "tank_id", tankID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "tank_id", tankID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, tankID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"tank_id", tankID,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	out := &icppb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*icppb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngestResponse(r)
		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if err := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now()}); err != nil {
					s.logger.Error("enqueue failed", "file_id", r.FileID, "err", err)
					item.Error = err.Error()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

// ListJobs returns the pipeline lifecycle rows for a tank, oldest first.
func (s *IngestionService) ListJobs(ctx context.Context, req *icppb.ListJobsRequest) (*icppb.ListJobsResponse, error) {
	tankID, err := s.parseTankID(ctx, req.GetTankId())
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobsRepo.ListByTank(ctx, tankID)
	if err != nil {
		s.logger.Error("failed to list parse jobs", "tank_id", tankID, "err", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*icppb.ParseJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBParseJob(j))
	}
	return &icppb.ListJobsResponse{Jobs: out}, nil
}

func toPBIngestResponse(r ingest.IngestionResult) *icppb.IngestResponse {
	resp := &icppb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
	if !r.UploadedAt.IsZero() {
		resp.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
