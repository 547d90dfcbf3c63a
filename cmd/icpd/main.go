package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	icppb "github.com/reefwatch/icp-tracker/gen/proto/icp/v1"
	"github.com/reefwatch/icp-tracker/internal/async"
	"github.com/reefwatch/icp-tracker/internal/common"
	"github.com/reefwatch/icp-tracker/internal/export"
	"github.com/reefwatch/icp-tracker/internal/ingest"
	"github.com/reefwatch/icp-tracker/internal/pipeline"
	repo "github.com/reefwatch/icp-tracker/internal/repository"
	svc "github.com/reefwatch/icp-tracker/internal/server"
	"github.com/reefwatch/icp-tracker/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.UnaryLoggingInterceptor(zlog)))

	tanksRepo := repo.NewTankRepository(entc, logger)
	filesRepo := repo.NewReportFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	testsRepo := repo.NewIcpTestRepository(entc, logger)

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		Timeout:   cfg.Extract.Timeout,
	}, logger)
	processor := pipeline.NewProcessor(logger, extractor, filesRepo, jobsRepo, testsRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Extract.Timeout+time.Minute),
	)

	ingestor := ingest.NewFSIngestor(tanksRepo, filesRepo, logger)
	exportSvc := export.NewService(testsRepo, logger)

	icppb.RegisterTanksServiceServer(grpcServer, svc.NewTanksService(tanksRepo, logger))
	icppb.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, queue, tanksRepo, jobsRepo, logger))
	icppb.RegisterTestsServiceServer(grpcServer, svc.NewTestsService(testsRepo, exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-folder watcher: every PDF landing under WATCH_DIR is
	// ingested for its tank (one subdirectory per tank name).
	if cfg.Ingest.WatchDir != "" {
		go runWatcher(ctx, cfg, tanksRepo, ingestor, queue, logger)
	}

	logger.Info("icpd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
