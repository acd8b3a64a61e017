package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"mdlib/docs"
	"mdlib/internal/config"
	"mdlib/internal/database"
	handlers "mdlib/internal/http/handler"
	"mdlib/internal/http/middleware"
	"mdlib/internal/logging"
	"mdlib/internal/otel"
	"mdlib/internal/recent"
	"mdlib/internal/repository/sqlite"
	"mdlib/internal/service"
	"mdlib/internal/storage"
)

// @title Markdown Library API
// @version 1.0
// @BasePath /
func main() {
	flags := pflag.NewFlagSet("mdlib", pflag.ExitOnError)
	dataDir := flags.String("data-dir", "", "directory holding the library database, recent files and exports (env MDLIB_DATA_DIR)")
	host := flags.String("host", "", "listen host (env MDLIB_HOST)")
	port := flags.String("port", "", "listen port (env MDLIB_PORT)")
	logLevel := flags.String("log-level", "", "trace, debug, info, warn or error (env MDLIB_LOG_LEVEL)")
	_ = flags.Parse(os.Args[1:])

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.LoadWithDataDir(*dataDir)
	if *host != "" {
		cfg.Host = *host
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log := logging.New(os.Stdout, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("mdlib stopped")
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown failed")
		}
	}()

	// The library is the one dependency the process cannot run without.
	library := database.NewLibrary(cfg.Library, log)
	db, err := library.Open(ctx)
	if err != nil {
		var initErr *database.StorageInitError
		if errors.As(err, &initErr) {
			log.Error().Str("event", "storage_init_failed").Str("op", initErr.Op).Str("path", initErr.Path).Err(initErr.Err).Msg("cannot open library")
		}
		return err
	}
	defer func() {
		if err := library.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close library")
		}
	}()

	exportStore, err := newExportStorage(cfg.Export)
	if err != nil {
		return err
	}

	deps := handlers.Deps{
		DB:      db,
		Library: service.NewLibraryService(sqlite.NewDocumentStore(db), log),
		Folders: service.NewFolderService(sqlite.NewFolderStore(db), log),
		Tags:    service.NewTagService(sqlite.NewTagStore(db), log),
		Export:  service.NewExportService(exportStore, log),
		Recent:  recent.New(cfg.Recent.Path, log),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, deps)
	app.Get("/metrics", handlers.Metrics(reg))

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

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("event", "listening").Str("addr", cfg.Addr()).Str("library", cfg.Library.Path).Msg("mdlib started")
		listenErr <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Str("event", "shutdown").Msg("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}

func newExportStorage(cfg config.ExportConfig) (storage.Storage, error) {
	switch cfg.Backend {
	case "minio":
		return storage.NewMinIO(cfg.MinIO)
	case "local", "":
		return storage.NewLocal(cfg.Dir)
	default:
		return nil, errors.New("unknown export backend: " + cfg.Backend)
	}
}
