package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/reefwatch/icp-tracker/internal/common"
	"github.com/reefwatch/icp-tracker/internal/export"
	"github.com/reefwatch/icp-tracker/internal/ingest"
	"github.com/reefwatch/icp-tracker/internal/pipeline"
	repo "github.com/reefwatch/icp-tracker/internal/repository"
	"github.com/reefwatch/icp-tracker/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath  = flag.String("db", "", "SQLite database path (ignored with --inmem)")
		dir     = flag.String("dir", "", "directory to process lab reports from (required)")
		tank    = flag.String("tank", "Local Batch", "tank name to attribute reports to")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "icp-tests.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dsn := repo.InMemoryDSN
	if !*inmem && *dbPath != "" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", *dbPath)
	}
	entc, err := repo.OpenSQLite(dsn, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	tanksRepo := repo.NewTankRepository(entc, logger)
	filesRepo := repo.NewReportFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	testsRepo := repo.NewIcpTestRepository(entc, logger)

	target, err := tanksRepo.GetOrCreateByName(ctx, *tank)
	if err != nil {
		logger.Error("failed to get or create tank", "name", *tank, "error", err)
		os.Exit(1)
	}
	logger.Info("using tank", "id", target.ID, "name", target.Name)

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		Timeout:   cfg.Extract.Timeout,
	}, logger)
	processor := pipeline.NewProcessor(logger, extractor, filesRepo, jobsRepo, testsRepo)
	ingestor := ingest.NewFSIngestor(tanksRepo, filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "tank", target.ID)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, target.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			fileID, err := uuid.Parse(result.FileID)
			if err != nil {
				logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
				continue
			}
			ingested = append(ingested, fileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	records := 0

	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		_, rows, err := processor.ProcessFile(ctx, fileID)
		if err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
			records += len(rows)
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(testsRepo, logger)

	xlsxBytes, err := exportService.ExportTestsXLSX(ctx, target.ID, from, to)
	if err != nil {
		logger.Error("failed to export tests", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"test_records", records,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Test records stored: %d\n", records)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
