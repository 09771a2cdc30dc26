// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package admin implements the back-office HTTP surface under /admin.

The session guard in front of the router has already decided access: every
handler here except login runs with authenticated claims in context. The
per-route middleware below is defense in depth and supplies API-correct
401/403 envelopes for direct calls.

# Routing Strategy

  - Session: GET/POST /admin/login, POST /admin/logout, GET /admin/dashboard.
  - Catalog: CRUD for destinations and tours (editor level).
  - Content: copy blocks, legal pages, contact details, photos (editor level).
  - Destructive deletes require the admin role.
*/
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/volarecharters/volare/internal/core/contact"
	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/image"
	"github.com/volarecharters/volare/internal/core/legal"
	"github.com/volarecharters/volare/internal/core/sitecontent"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/middleware"
	"github.com/volarecharters/volare/internal/platform/sec"
	"github.com/volarecharters/volare/internal/users/auth"
)

// Handler implements the back-office HTTP layer.
type Handler struct {
	auth         *auth.Service
	destinations *destination.Service
	tours        *tour.Service
	content      *sitecontent.Service
	legal        *legal.Service
	contact      *contact.Service
	images       *image.Service
}

// NewHandler constructs the back-office [Handler].
func NewHandler(
	authService *auth.Service,
	destinations *destination.Service,
	tours *tour.Service,
	content *sitecontent.Service,
	legalService *legal.Service,
	contactService *contact.Service,
	images *image.Service,
) *Handler {
	return &Handler{
		auth:         authService,
		destinations: destinations,
		tours:        tours,
		content:      content,
		legal:        legalService,
		contact:      contactService,
		images:       images,
	}
}

// Routes returns a [chi.Router] for mounting at /admin.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Session (login is the only unguarded page)
	router.Get("/login", handler.getLoginPage)
	router.Post("/login", handler.postLogin)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/logout", handler.postLogout)
		protected.Get("/dashboard", handler.getDashboard)

		// ## Catalog
		editor := protected.With(middleware.RequireRole(sec.RoleEditor))
		admin := protected.With(middleware.RequireRole(sec.RoleAdmin))

		editor.Get("/destinations", handler.listDestinations)
		editor.Post("/destinations", handler.createDestination)
		editor.Get("/destinations/{id}", handler.getDestination)
		editor.Put("/destinations/{id}", handler.updateDestination)
		admin.Delete("/destinations/{id}", handler.deleteDestination)

		editor.Get("/tours", handler.listTours)
		editor.Post("/tours", handler.createTour)
		editor.Get("/tours/{id}", handler.getTour)
		editor.Put("/tours/{id}", handler.updateTour)
		admin.Delete("/tours/{id}", handler.deleteTour)

		// ## Site Content
		editor.Get("/content", handler.listContent)
		editor.Put("/content", handler.upsertContent)

		editor.Get("/legal", handler.listLegalPages)
		editor.Put("/legal", handler.upsertLegalPage)

		editor.Get("/contact", handler.getContact)
		editor.Put("/contact", handler.updateContact)

		editor.Get("/images", handler.listImages)
		editor.Post("/images", handler.createImage)
		admin.Delete("/images/{id}", handler.deleteImage)
	})

	return router
}
