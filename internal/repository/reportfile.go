package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/gen/ent"
	entfile "github.com/reefwatch/icp-tracker/gen/ent/reportfile"
)

type ReportFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ReportFile, error)
	GetByTankAndHash(ctx context.Context, tankID uuid.UUID, hash []byte) (*ent.ReportFile, error)
	Create(ctx context.Context, tankID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, error)
	UpsertByHash(ctx context.Context, tankID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, bool, error)
}

type reportFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReportFileRepository(entc *ent.Client, logger *slog.Logger) ReportFileRepository {
	return &reportFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *reportFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ReportFile, error) {
	return r.ent.ReportFile.Get(ctx, id)
}

func (r *reportFileRepo) GetByTankAndHash(ctx context.Context, tankID uuid.UUID, hash []byte) (*ent.ReportFile, error) {
	row, err := r.ent.ReportFile.Query().
		Where(
			entfile.TankID(tankID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *reportFileRepo) Create(ctx context.Context, tankID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, error) {
	row, err := r.ent.ReportFile.Create().
		SetTankID(tankID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report file", "tank_id", tankID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the same content was already
// stored for this tank; the bool reports whether it was a duplicate.
func (r *reportFileRepo) UpsertByHash(ctx context.Context, tankID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, bool, error) {
	if existing, err := r.GetByTankAndHash(ctx, tankID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, tankID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert report file by hash", "tank_id", tankID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
