// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package destination provides the public HTTP surface for the destination catalog.

# Routing Strategy

  - Public (locale-scoped): Listing and detail views (GET /{locale}/destinations).

Routes are mounted inside a locale group, so a validated [i18n.Locale] is
always present in the request context. Admin mutations live in the back
office, not here.
*/
package destination

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/volarecharters/volare/internal/platform/i18n"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/meta"
	"github.com/volarecharters/volare/pkg/pagination"
)

// Static copy for the catalog index page.
var (
	indexTitle = map[i18n.Locale]string{
		i18n.LocaleES: "Destinos | Volare Charters",
		i18n.LocaleEN: "Destinations | Volare Charters",
	}
	indexDescription = map[i18n.Locale]string{
		i18n.LocaleES: "Descubre los destinos de vuelos chárter de Volare: Los Roques, Canaima y más.",
		i18n.LocaleEN: "Discover Volare's charter flight destinations: Los Roques, Canaima and more.",
	}
)

// # Handler Implementation

// Handler implements the public HTTP layer for the destination catalog.
type Handler struct {
	service *Service
	meta    *meta.Builder
}

// NewHandler constructs a new destination [Handler].
func NewHandler(service *Service, metaBuilder *meta.Builder) *Handler {
	return &Handler{service: service, meta: metaBuilder}
}

// Routes returns a [chi.Router] with the public destination endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listDestinations)
	router.Get("/{slug}", handler.getDestination)

	return router
}

// indexPage is the payload for the catalog index.
type indexPage struct {
	Meta       meta.Page       `json:"meta"`
	Items      []View          `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

// detailPage is the payload for one destination detail view.
type detailPage struct {
	Meta        meta.Page `json:"meta"`
	Destination View      `json:"destination"`
}

/*
GET /{locale}/destinations.

Description: Retrieves the active destination catalog in the request locale.

Request:
  - featured: bool (Featured destinations only)
  - limit: int
  - page: int

Response:
  - 200: indexPage: Localized catalog with page metadata
*/
func (handler *Handler) listDestinations(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	paginationParams := pagination.FromRequest(request)
	featuredOnly := request.URL.Query().Get("featured") == "true"

	records, total, err := handler.service.ListPublic(request.Context(), featuredOnly, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, indexPage{
		Meta:       handler.meta.Build(locale, "/destinations", indexTitle[locale], indexDescription[locale]),
		Items:      LocalizeAll(records, locale),
		Pagination: pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total),
	})
}

/*
GET /{locale}/destinations/{slug}.

Description: Retrieves one active destination with its resolved page metadata.

Request:
  - slug: string (Stable ASCII identifier)

Response:
  - 200: detailPage: Localized detail view
  - 404: 404: ErrNotFound: Missing or inactive destination
*/
func (handler *Handler) getDestination(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	slugValue := requestutil.Param(request, "slug")

	record, err := handler.service.GetPublicBySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := record.Localize(locale)

	respond.OK(writer, detailPage{
		Meta:        handler.meta.Build(locale, "/destinations/"+record.Slug, view.Name+" | Volare Charters", view.Description),
		Destination: view,
	})
}
