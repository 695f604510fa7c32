package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"safesign/docs"
	"safesign/internal/auth"
	"safesign/internal/config"
	"safesign/internal/database"
	"safesign/internal/database/migration"
	handlers "safesign/internal/http/handler"
	"safesign/internal/http/middleware"
	"safesign/internal/logger"
	"safesign/internal/otel"
	"safesign/internal/repository"
	"safesign/internal/repository/memory"
	"safesign/internal/repository/postgres"
	"safesign/internal/service"
	"safesign/internal/storage"
	"safesign/internal/template"
)

// @title SafeSign API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing init; OTEL_SDK_DISABLED=true turns it into a noop
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		zlog.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	// Repository: postgres for shared deployments, snapshot-backed memory otherwise
	var (
		docRepo     repository.DocumentRepository
		snapshotter *memory.Snapshotter
		db          *sql.DB
	)
	switch cfg.Repository.Driver {
	case "postgres":
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			zlog.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			zlog.Fatal("failed to migrate database", zap.Error(err))
		}
		docRepo = postgres.NewDocumentPostgres(db)
	default:
		store := memory.NewDocumentMemory()
		snapshotter = memory.NewSnapshotter(store, cfg.Repository.SnapshotPath, cfg.Repository.SnapshotInterval, zlog)
		if err := snapshotter.Restore(); err != nil {
			zlog.Fatal("failed to restore snapshot", zap.Error(err))
		}
		go snapshotter.Run(ctx)
		docRepo = store
	}

	// Object storage is optional; archiving is skipped when unconfigured
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			zlog.Fatal("failed to initialize object storage", zap.Error(err))
		}
	}

	registry := template.NewDefault()

	promRegistry := prometheus.NewRegistry()
	metrics, err := service.NewMetrics(promRegistry)
	if err != nil {
		zlog.Fatal("failed to register service metrics", zap.Error(err))
	}

	docSvc := service.NewDocumentService(docRepo, registry, objStore, zlog, metrics)

	janitor := service.NewJanitor(docSvc, docRepo, zlog, metrics, cfg.JanitorInterval)
	go janitor.Run(ctx)

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		zlog.Fatal("failed to register http metrics", zap.Error(err))
	}
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, docSvc, tokens)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown error", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}

	// Final snapshot flush happens in Stop after the listener has drained
	if snapshotter != nil {
		snapshotter.Stop()
	}
}
