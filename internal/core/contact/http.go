// Copyright (c) 2026 Volare Charters. All rights reserved.

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/volarecharters/volare/internal/core/sitecontent"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/meta"
)

// Handler implements the public HTTP layer for the contact page.
type Handler struct {
	service *Service
	content *sitecontent.Service
	meta    *meta.Builder
}

// NewHandler constructs a new contact [Handler].
func NewHandler(service *Service, content *sitecontent.Service, metaBuilder *meta.Builder) *Handler {
	return &Handler{service: service, content: content, meta: metaBuilder}
}

// Routes returns a [chi.Router] with the public contact endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getContactPage)

	return router
}

type contactPage struct {
	Meta    meta.Page        `json:"meta"`
	Intro   sitecontent.View `json:"intro"`
	Contact View             `json:"contact"`
}

/*
GET /{locale}/contact.

Description: Retrieves the contact page: intro copy block plus the
company's contact details. Both halves degrade independently, so the page
always renders.

Response:
  - 200: contactPage: Localized contact page
*/
func (handler *Handler) getContactPage(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)

	intro := handler.content.Resolve(request.Context(), sitecontent.KeyContactIntro, locale)
	details := handler.service.Resolve(request.Context(), locale)

	respond.OK(writer, contactPage{
		Meta:    handler.meta.Build(locale, "/contact", intro.Title+" | Volare Charters", intro.Body),
		Intro:   intro,
		Contact: details,
	})
}
