package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/utils"
)

// FSIngestor reads report PDFs from the local filesystem and registers them
// for a tank. Dedup is by sha256 content hash, so re-ingesting a directory
// is idempotent.
type FSIngestor struct {
	TanksRepo repository.TankRepository
	FilesRepo repository.ReportFileRepository
	Logger    *slog.Logger
}

func NewFSIngestor(tanks repository.TankRepository, files repository.ReportFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		TanksRepo: tanks,
		FilesRepo: files,
		Logger:    logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, tankID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	if err := ValidateTank(ctx, i.TanksRepo, tankID); err != nil {
		return out, err
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("open error", "path", abs, "error", err)
		return out, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.Logger.Error("close file error", "path", abs, "error", err)
		}
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.Logger.Error("hash error", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, tankID, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	stored := utils.ToReportFile(row)
	out = IngestionResult{
		SourcePath:   stored.SourcePath,
		FileID:       stored.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(stored.ContentHash),
		FileExt:      stored.FileExt,
		UploadedAt:   stored.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each matching file. Returns per-file results + aggregate
// stats; individual failures never abort the walk.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	tankID uuid.UUID,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	if err := ValidateTank(ctx, i.TanksRepo, tankID); err != nil {
		return nil, DirStats{}, err
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, tankID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
