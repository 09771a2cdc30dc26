// Copyright (c) 2026 Volare Charters. All rights reserved.

package home

import (
	"net/http"

	"github.com/volarecharters/volare/internal/platform/i18n"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/site/meta"
)

// Static descriptions for the landing page head.
var homeDescription = map[i18n.Locale]string{
	i18n.LocaleES: "Vuelos chárter privados a Los Roques, Canaima y los mejores destinos de Venezuela.",
	i18n.LocaleEN: "Private charter flights to Los Roques, Canaima and Venezuela's finest destinations.",
}

// Handler renders the public landing page.
type Handler struct {
	service *Service
	meta    *meta.Builder
}

// NewHandler constructs a home [Handler].
func NewHandler(service *Service, metaBuilder *meta.Builder) *Handler {
	return &Handler{service: service, meta: metaBuilder}
}

type homePage struct {
	Meta meta.Page `json:"meta"`
	Page
}

/*
GET /{locale}.

Description: Retrieves the localized landing page. Sections degrade
independently; this endpoint does not return store errors.

Response:
  - 200: homePage: Localized landing page
*/
func (handler *Handler) GetHome(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request)

	page, err := handler.service.Build(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var heroImageURL *string
	if page.HeroImage != nil {
		heroImageURL = &page.HeroImage.URL
	}

	respond.OK(writer, homePage{
		Meta: handler.meta.BuildWithImage(locale, "", page.Hero.Title+" | Volare Charters", homeDescription[locale], heroImageURL),
		Page: page,
	})
}
