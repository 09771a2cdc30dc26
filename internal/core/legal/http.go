// Copyright (c) 2026 Volare Charters. All rights reserved.

package legal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/meta"
)

// Handler implements the public HTTP layer for legal pages.
type Handler struct {
	service *Service
	meta    *meta.Builder
}

// NewHandler constructs a new legal [Handler].
func NewHandler(service *Service, metaBuilder *meta.Builder) *Handler {
	return &Handler{service: service, meta: metaBuilder}
}

// Routes returns a [chi.Router] with the public legal page endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{slug}", handler.getPage)

	return router
}

type detailPage struct {
	Meta meta.Page `json:"meta"`
	Page View      `json:"page"`
}

/*
GET /{locale}/legal/{slug}.

Description: Retrieves one legal page. Known slugs always render, with
fallback titles when unauthored.

Response:
  - 200: detailPage: Localized page
  - 404: 404: ErrNotFound: Slug outside the closed set
*/
func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)
	slug := requestutil.Param(request, "slug")

	view, err := handler.service.Resolve(request.Context(), slug, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detailPage{
		Meta: handler.meta.Build(locale, "/legal/"+slug, view.Title+" | Volare Charters", view.Title),
		Page: view,
	})
}
