// Copyright (c) 2026 Volare Charters. All rights reserved.

package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/site/meta"
	"github.com/volarecharters/volare/pkg/pointer"
)

const baseURL = "https://www.volarecharters.com"

func TestBuild_CanonicalAndAlternates(t *testing.T) {
	builder := meta.NewBuilder(baseURL, "Volare Charters")

	page := builder.Build(i18n.LocaleEN, "/destinations/los-roques", "Los Roques", "Caribbean archipelago charters.")

	assert.Equal(t, baseURL+"/en/destinations/los-roques", page.Canonical)

	// Both locales plus x-default, always in presentation order.
	require.Len(t, page.Alternates, 3)
	assert.Equal(t, meta.Alternate{Hreflang: "es", URL: baseURL + "/es/destinations/los-roques"}, page.Alternates[0])
	assert.Equal(t, meta.Alternate{Hreflang: "en", URL: baseURL + "/en/destinations/los-roques"}, page.Alternates[1])
	assert.Equal(t, meta.Alternate{Hreflang: "x-default", URL: baseURL + "/es/destinations/los-roques"}, page.Alternates[2])
}

func TestBuild_HomePath(t *testing.T) {
	builder := meta.NewBuilder(baseURL, "Volare Charters")

	page := builder.Build(i18n.LocaleES, "", "Volare Charters", "Vuelos chárter en Venezuela.")

	assert.Equal(t, baseURL+"/es", page.Canonical)
	assert.Equal(t, baseURL+"/es", page.Alternates[2].URL)
}

func TestBuild_OpenGraph(t *testing.T) {
	builder := meta.NewBuilder(baseURL, "Volare Charters")

	page := builder.Build(i18n.LocaleES, "/contact", "Contacto", "Escríbenos.")

	assert.Equal(t, "Contacto", page.OpenGraph.Title)
	assert.Equal(t, page.Canonical, page.OpenGraph.URL)
	assert.Equal(t, "Volare Charters", page.OpenGraph.SiteName)
	assert.Equal(t, "es_VE", page.OpenGraph.Locale)
	assert.Equal(t, "website", page.OpenGraph.Type)
	assert.Nil(t, page.OpenGraph.Image)
}

func TestBuildWithImage(t *testing.T) {
	builder := meta.NewBuilder(baseURL, "Volare Charters")

	image := pointer.To("https://cdn.volarecharters.com/tours/canaima.jpg")
	page := builder.BuildWithImage(i18n.LocaleEN, "/tours/canaima", "Canaima", "Fly to Canaima.", image)

	require.NotNil(t, page.OpenGraph.Image)
	assert.Equal(t, *image, *page.OpenGraph.Image)
}

// Build is pure: identical inputs must yield identical blocks.
func TestBuild_Deterministic(t *testing.T) {
	builder := meta.NewBuilder(baseURL, "Volare Charters")

	first := builder.Build(i18n.LocaleEN, "/tours", "Tours", "Our tours.")
	second := builder.Build(i18n.LocaleEN, "/tours", "Tours", "Our tours.")

	assert.Equal(t, first, second)
}
