// Copyright (c) 2026 Volare Charters. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/volarecharters/volare/internal/platform/ctxutil"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/middleware"
)

func TestRequireLocale(t *testing.T) {
	var seen i18n.Locale

	router := chi.NewRouter()
	router.Route("/{locale}", func(r chi.Router) {
		r.Use(middleware.RequireLocale)
		r.Get("/", func(writer http.ResponseWriter, request *http.Request) {
			seen = ctxutil.GetLocale(request.Context())
			writer.WriteHeader(http.StatusOK)
		})
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLocale i18n.Locale
	}{
		{"spanish", "/es/", http.StatusOK, i18n.LocaleES},
		{"english", "/en/", http.StatusOK, i18n.LocaleEN},
		{"unknown_locale", "/fr/", http.StatusNotFound, ""},
		{"uppercase_rejected", "/ES/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantLocale, seen)
			}
		})
	}
}
