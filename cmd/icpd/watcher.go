package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/internal/async"
	"github.com/reefwatch/icp-tracker/internal/common"
	"github.com/reefwatch/icp-tracker/internal/ingest"
	repo "github.com/reefwatch/icp-tracker/internal/repository"
)

// defaultWatchTank receives files dropped directly into the watch root,
// outside any tank subdirectory.
const defaultWatchTank = "Drop Folder"

// runWatcher ingests PDFs appearing under cfg.Ingest.WatchDir and enqueues
// them for processing. The first path component below the root names the
// tank, which is created on first sight.
func runWatcher(
	ctx context.Context,
	cfg *common.Config,
	tanks repo.TankRepository,
	ingestor *ingest.FSIngestor,
	queue async.Queue,
	logger *slog.Logger,
) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Ingest.WatchDir},
		InitialScan: true,
		Debounce:    cfg.Ingest.SettleWindow,
	})
	if err != nil {
		logger.Error("watcher start failed", "dir", cfg.Ingest.WatchDir, "error", err)
		return
	}
	logger.Info("watching drop folder", "dir", cfg.Ingest.WatchDir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			handleWatchedFile(ctx, cfg.Ingest.WatchDir, path, tanks, ingestor, queue, logger)
		}
	}
}

func handleWatchedFile(
	ctx context.Context,
	root, path string,
	tanks repo.TankRepository,
	ingestor *ingest.FSIngestor,
	queue async.Queue,
	logger *slog.Logger,
) {
	tank, err := tanks.GetOrCreateByName(ctx, tankNameFor(root, path))
	if err != nil {
		logger.Error("tank lookup failed", "path", path, "error", err)
		return
	}

	res, err := ingestor.IngestPath(ctx, tank.ID, path)
	if err != nil {
		logger.Error("watched file ingest failed", "path", path, "error", err)
		return
	}
	if res.Deduplicated {
		logger.Info("watched file already known", "path", path, "file_id", res.FileID)
		return
	}

	fileID, err := uuid.Parse(res.FileID)
	if err != nil {
		logger.Error("bad file id from ingest", "file_id", res.FileID, "error", err)
		return
	}
	if err := queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()}); err != nil {
		logger.Error("enqueue failed", "file_id", res.FileID, "error", err)
	}
}

func tankNameFor(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return defaultWatchTank
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 || parts[0] == "" || parts[0] == "." {
		return defaultWatchTank
	}
	return parts[0]
}
