// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
page handlers into a runnable [http.Server].

Architecture:

  - This package is the composition root of the HTTP transport (chi router).
  - Every page handler resolves its stores from the visitor's workspace,
    injected by the middleware chain.
  - Dashboards are guarded twice: at the edge on the cookie session, and
    again on the workspace's live auth state.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/article"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/category"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/classify"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/guard"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/config"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/middleware"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/user"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/view"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/workspace"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all page handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	Auth       *auth.Handler
	Articles   *article.Handler
	Categories *category.Handler
	Products   *product.Handler
	Shops      *shop.Handler
	Users      *user.Handler
	Views      *view.Handler
	Classifier *classify.Classifier
}

// NewHandlers builds every page handler on top of the request's workspace.
func NewHandlers(codec *session.Codec, classifier *classify.Classifier, liveness, readiness http.HandlerFunc) Handlers {
	visitor := func(request *http.Request) *workspace.Workspace {
		return workspace.From(request.Context())
	}

	return Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(func(r *http.Request) *auth.Store { return visitor(r).Auth }, codec),
		Articles:   article.NewHandler(func(r *http.Request) *article.Store { return visitor(r).Articles }),
		Categories: category.NewHandler(func(r *http.Request) *category.Store { return visitor(r).Categories }),
		Products:   product.NewHandler(func(r *http.Request) *product.Store { return visitor(r).Products }),
		Shops:      shop.NewHandler(func(r *http.Request) *shop.Store { return visitor(r).Shops }),
		Users:      user.NewHandler(func(r *http.Request) *user.Store { return visitor(r).Users }),
		Views:      view.NewHandler(func(r *http.Request) *view.Models { return visitor(r).Views }),
		Classifier: classifier,
	}
}

// State is the per-visitor plumbing shared by the middleware chain.
type State struct {
	Codec       *session.Codec
	Revocations session.Revocations
	Registry    *workspace.Registry
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, state State, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Pages
	r.Group(func(pages chi.Router) {
		pages.Use(middleware.Session(state.Codec, state.Revocations))
		pages.Use(guard.Middleware(guard.Dashboards, cookieSession))
		pages.Use(middleware.Workspace(state.Registry, cfg.SecureCookies))

		pages.Get(constants.RouteHome, h.Views.Landing)
		pages.Group(h.Auth.RegisterRoutes)
		pages.Route("/articles", h.Articles.PublicRoutes)
		pages.Route("/categories", h.Categories.RegisterRoutes)
		pages.Route("/products", func(products chi.Router) {
			h.Views.CatalogRoutes(products)
			h.Products.RegisterRoutes(products)
		})
		pages.Route("/stores", h.Views.ShopRoutes)

		pages.Route(constants.RouteAdminDashboard, func(admin chi.Router) {
			admin.Use(guard.Middleware(guard.Dashboards, workspaceSession))
			h.Views.AdminRoutes(admin)
			admin.Route("/articles", h.Articles.AdminRoutes)
			admin.Route("/users", h.Users.AdminRoutes)
		})

		pages.Route(constants.RouteSellerDashboard, func(seller chi.Router) {
			seller.Use(guard.Middleware(guard.Dashboards, workspaceSession))
			h.Views.SellerRoutes(seller)
			seller.Route("/shop", h.Shops.SellerRoutes)
			seller.Route("/classify", h.Classifier.RegisterRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

func cookieSession(request *http.Request) *session.Session {
	return ctxutil.GetSession(request.Context())
}

func workspaceSession(request *http.Request) *session.Session {
	return workspace.From(request.Context()).Auth.Session()
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
