// Copyright (c) 2026 Volare Charters. All rights reserved.

package tour

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/volarecharters/volare/internal/platform/i18n"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/meta"
	"github.com/volarecharters/volare/pkg/pagination"
)

// Static copy for the tour index page.
var (
	indexTitle = map[i18n.Locale]string{
		i18n.LocaleES: "Tours | Volare Charters",
		i18n.LocaleEN: "Tours | Volare Charters",
	}
	indexDescription = map[i18n.Locale]string{
		i18n.LocaleES: "Paquetes de tours en vuelos chárter por Venezuela y el Caribe.",
		i18n.LocaleEN: "Charter flight tour packages across Venezuela and the Caribbean.",
	}
)

// Handler implements the public HTTP layer for the tour catalog.
type Handler struct {
	service *Service
	meta    *meta.Builder
}

// NewHandler constructs a new tour [Handler].
func NewHandler(service *Service, metaBuilder *meta.Builder) *Handler {
	return &Handler{service: service, meta: metaBuilder}
}

// Routes returns a [chi.Router] with the public tour endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTours)
	router.Get("/{slug}", handler.getTour)

	return router
}

type indexPage struct {
	Meta       meta.Page       `json:"meta"`
	Items      []View          `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

type detailPage struct {
	Meta meta.Page `json:"meta"`
	Tour View      `json:"tour"`
}

/*
GET /{locale}/tours.

Description: Retrieves the active tour catalog in the request locale.

Request:
  - destination: string (Filter by destination UUID)
  - featured: bool (Featured tours only)
  - limit: int
  - page: int

Response:
  - 200: indexPage: Localized catalog with page metadata
*/
func (handler *Handler) listTours(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	records, total, err := handler.service.ListPublic(request.Context(),
		queryParams.Get("destination"),
		queryParams.Get("featured") == "true",
		paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, indexPage{
		Meta:       handler.meta.Build(locale, "/tours", indexTitle[locale], indexDescription[locale]),
		Items:      LocalizeAll(records, locale),
		Pagination: pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total),
	})
}

/*
GET /{locale}/tours/{slug}.

Description: Retrieves one active tour with its resolved page metadata.

Response:
  - 200: detailPage: Localized detail view
  - 404: 404: ErrNotFound: Missing or inactive tour
*/
func (handler *Handler) getTour(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	slugValue := requestutil.Param(request, "slug")

	record, err := handler.service.GetPublicBySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := record.Localize(locale)

	respond.OK(writer, detailPage{
		Meta: handler.meta.Build(locale, "/tours/"+record.Slug, view.Title+" | Volare Charters", view.Summary),
		Tour: view,
	})
}
