// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
site and back-office handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/volarecharters/volare/internal/admin"
	"github.com/volarecharters/volare/internal/core/contact"
	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/legal"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/config"
	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/middleware"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/home"
	"github.com/volarecharters/volare/internal/site/sitemap"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
//
// # Usage
//
// New page or catalog areas add a field here — no other change to server.go
// is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Home serves the landing page composition.
	Home *home.Handler

	// Destination serves the public destination catalog.
	Destination *destination.Handler

	// Tour serves the public tour catalog.
	Tour *tour.Handler

	// Legal serves the privacy/terms/cookies pages.
	Legal *legal.Handler

	// Contact serves the contact page.
	Contact *contact.Handler

	// Sitemap serves the bilingual /sitemap.xml document.
	Sitemap *sitemap.Generator

	// Admin handles the staff back office (login, dashboard, CRUD).
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The session guard sits in the global chain: every request resolves its
// session cookies exactly once, and the admin redirect rules apply before
// any route handler runs.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, sessions middleware.SessionResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.SessionGuard(sessions))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Crawler surface. One document covers both locales.
	r.Get("/sitemap.xml", h.Sitemap.ServeHTTP)

	// The bare origin carries no locale. Send first-time visitors to the
	// Spanish tree; returning visitors keep whatever locale their links carry.
	r.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		respond.Redirect(writer, request, "/"+string(i18n.Default))
	})

	// # Public Site
	// Every public page lives under a locale prefix. RequireLocale rejects
	// anything that is not an exact supported code.
	r.Route("/{locale}", func(site chi.Router) {
		site.Use(middleware.RequireLocale)

		site.Get("/", h.Home.GetHome)
		site.Mount("/destinations", h.Destination.Routes())
		site.Mount("/tours", h.Tour.Routes())
		site.Mount("/legal", h.Legal.Routes())
		site.Mount("/contact", h.Contact.Routes())
	})

	// # Back Office
	// Unprefixed: staff tooling is not a localized public surface.
	r.Mount(constants.AdminPathPrefix, h.Admin.Routes())

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
