// Copyright (c) 2026 NitikBatik. All rights reserved.

// Command web is the entry point of the NitikBatik storefront server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the token revocation list (Redis, or memory when unset).
//  4. Build the backend client and the visitor workspaces.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/api"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/classify"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/config"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	redisstore "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/redis"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/workspace"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("[NitikBatik] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	// Root context for background routines; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Revocation list ────────────────────────────────────────────────
	var (
		revocations      session.Revocations = session.NewMemoryRevocations()
		checkRevocations func(ctx context.Context) error
	)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		revocations = session.NewRedisRevocations(rdb)
		checkRevocations = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	} else {
		log.Warn("revocations_in_memory", slog.String("reason", "REDIS_URL is not set"))
	}

	// ── 4. Backend client & workspaces ────────────────────────────────────
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithUnauthorized(workspace.OnUnauthorized))
	registry := workspace.NewRegistry(client, revocations, cfg.WorkspaceIdleTTL)
	go registry.Run(rootCtx, log)

	codec := session.NewCodec(cfg.SessionCookieName, cfg.SessionFallbackTTL, cfg.SecureCookies)

	// ── 5. Handlers ───────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckBackend:     client.Ping,
		CheckRevocations: checkRevocations,
	}, log)

	handlers := api.NewHandlers(codec, classify.New(client), liveness, readiness)
	server := api.NewServer(rootCtx, cfg, log, api.State{
		Codec:       codec,
		Revocations: revocations,
		Registry:    registry,
	}, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	rootCancel()

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
