// Copyright (c) 2026 Volare Charters. All rights reserved.

// Command api is the entry point for the Volare Charters web server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire content, session, and page handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/volarecharters/volare/internal/admin"
	"github.com/volarecharters/volare/internal/api"
	"github.com/volarecharters/volare/internal/core/contact"
	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/image"
	"github.com/volarecharters/volare/internal/core/legal"
	"github.com/volarecharters/volare/internal/core/sitecontent"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/config"
	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/migration"
	pgstore "github.com/volarecharters/volare/internal/platform/postgres"
	redisstore "github.com/volarecharters/volare/internal/platform/redis"
	"github.com/volarecharters/volare/internal/platform/sec"
	"github.com/volarecharters/volare/internal/site/home"
	"github.com/volarecharters/volare/internal/site/meta"
	"github.com/volarecharters/volare/internal/site/sitemap"
	"github.com/volarecharters/volare/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "volare"))
	slog.SetDefault(log)

	log.Info("[Volare] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "volare"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Session Tokens ─────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc, log)

	destinationService := destination.NewService(destination.NewPostgresRepository(pool), log)
	tourService := tour.NewService(tour.NewPostgresRepository(pool), log)
	contentService := sitecontent.NewService(sitecontent.NewPostgresRepository(pool), log)
	legalService := legal.NewService(legal.NewPostgresRepository(pool), log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	imageService := image.NewService(image.NewPostgresRepository(pool), log)

	metaBuilder := meta.NewBuilder(cfg.PublicBaseURL, constants.SiteName)

	homeService := home.NewService(contentService, destinationService, tourService, imageService, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Home:        home.NewHandler(homeService, metaBuilder),
		Destination: destination.NewHandler(destinationService, metaBuilder),
		Tour:        tour.NewHandler(tourService, metaBuilder),
		Legal:       legal.NewHandler(legalService, metaBuilder),
		Contact:     contact.NewHandler(contactService, contentService, metaBuilder),
		Sitemap:     sitemap.NewGenerator(metaBuilder, destinationService, tourService, log),
		Admin: admin.NewHandler(
			authService,
			destinationService,
			tourService,
			contentService,
			legalService,
			contactService,
			imageService,
		),
	}

	server := api.NewServer(context.Background(), cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure", slog.String("step", context), slog.Any("error", err))
		os.Exit(1)
	}
}
