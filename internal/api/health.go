// Copyright (c) 2026 NitikBatik. All rights reserved.

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
)

// HealthDependencies holds the dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckBackend pings the REST backend.
	CheckBackend func(ctx context.Context) error

	// CheckRevocations pings Redis. Nil when revocations are kept in memory.
	CheckRevocations func(ctx context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready.
//
// The server is ready when the backend answers; a configured Redis must answer too.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{}
	isReady := true

	run := func(name string, check func(ctx context.Context) error) {
		if check == nil {
			return
		}
		if err := check(request.Context()); err != nil {
			checks[name] = err.Error()
			isReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
			return
		}
		checks[name] = "ok"
	}

	run("backend", handler.dependencies.CheckBackend)
	run("redis", handler.dependencies.CheckRevocations)

	respond.Health(writer, isReady, checks)
}
