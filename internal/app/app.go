package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/naturecounter/insights-server/api/v1"
	"github.com/naturecounter/insights-server/internal/config"
	handler "github.com/naturecounter/insights-server/internal/grpc"
	"github.com/naturecounter/insights-server/internal/repository"
	"github.com/naturecounter/insights-server/internal/service"
	"github.com/naturecounter/insights-server/pkg/cache"
	dbbuilder "github.com/naturecounter/insights-server/pkg/database"
	grpcsrv "github.com/naturecounter/insights-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	handler.EnsureJSONCodec()

	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	permissionRepo := repository.NewPermissionRepository(dbPool)
	if err := permissionRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("permission schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	datasetRepo, err := newDatasetRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dataset source init failed: %w", err)
	}
	logger.Info("Dataset source initialized", zap.String("source", cfg.DataSource))

	reportService := service.NewReportService(datasetRepo, permissionRepo, logger)

	grpcHandlers := handler.NewGRPCHandlers(reportService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterDashboardAnalyticsServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

func newDatasetRepository(ctx context.Context, cfg *config.Config) (service.DatasetRepository, error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		return repository.NewCSVDatasetRepository(cfg.DataFilePath), nil
	case config.SourceSheets:
		if cfg.SheetsSpreadsheetID == "" {
			return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID is required for the sheets source")
		}
		return repository.NewSheetsDatasetRepository(ctx,
			cfg.GoogleCredentialsFile,
			cfg.SheetsSpreadsheetID,
			cfg.SheetsWorksheet,
		)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC shutdown did not complete cleanly", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
