package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fin_api/internal/adapters/database/memory"
	"github.com/SscSPs/fin_api/internal/adapters/database/pgsql"
	"github.com/SscSPs/fin_api/internal/adapters/events/kafka"
	"github.com/SscSPs/fin_api/internal/adapters/events/noop"
	portsevents "github.com/SscSPs/fin_api/internal/core/ports/events"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	"github.com/SscSPs/fin_api/internal/core/services"
	"github.com/SscSPs/fin_api/internal/handlers"
	"github.com/SscSPs/fin_api/internal/middleware"
	"github.com/SscSPs/fin_api/internal/platform/config"
	"github.com/SscSPs/fin_api/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Fin API
// @version 1.0
// @description Personal finance ledger: users, deposits, withdrawals, transfers and balances.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher := newPublisher(cfg, logger)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(cfg, repos, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, request deadline)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RequestTimeout(cfg.RequestTimeout),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore builds the repositories for the configured backend.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// runMigrations applies all pending "up" migrations over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newPublisher selects Kafka when brokers are configured and a no-op publisher otherwise.
func newPublisher(cfg *config.Config, logger *slog.Logger) portsevents.StatementPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set; statement events are not published")
		return noop.NewPublisher()
	}
	logger.Info("Publishing statement events to Kafka", slog.String("topic", cfg.KafkaStatementsTopic))
	return kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaStatementsTopic)
}
