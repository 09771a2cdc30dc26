// Copyright (c) 2026 Volare Charters. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/ctxutil"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/respond"
)

// RequireLocale validates the {locale} path segment on public page routes.
//
// Every routable public path is prefixed by exactly one supported locale;
// anything else is terminal NotFound — the request never reaches a handler.
// On success the parsed [i18n.Locale] is injected into the request context.
func RequireLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		segment := chi.URLParam(request, "locale")

		locale, ok := i18n.Parse(segment)
		if !ok {
			respond.Error(writer, request, apperr.NotFound("Page"))
			return
		}

		ctx := ctxutil.WithLocale(request.Context(), locale)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
