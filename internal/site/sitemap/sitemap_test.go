// Copyright (c) 2026 Volare Charters. All rights reserved.

package sitemap

import (
	"context"
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/site/meta"
)

const baseURL = "https://www.volarecharters.com"

type fakeDestinations struct {
	records []*destination.Destination
	err     error
}

func (f *fakeDestinations) ListPublic(_ context.Context, _ bool, _, _ int) ([]*destination.Destination, int, error) {
	return f.records, len(f.records), f.err
}

type fakeTours struct {
	records []*tour.Tour
	err     error
}

func (f *fakeTours) ListPublic(_ context.Context, _ string, _ bool, _, _ int) ([]*tour.Tour, int, error) {
	return f.records, len(f.records), f.err
}

func newTestGenerator(destinations DestinationCatalog, tours TourCatalog) *Generator {
	return NewGenerator(meta.NewBuilder(baseURL, "Volare Charters"), destinations, tours, slog.Default())
}

var editedAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

/*
TestGenerate_EntryCount: with D destinations and T tours the document has
2*(7+D+T) entries, one per locale per routable page.
*/
func TestGenerate_EntryCount(t *testing.T) {
	destinations := &fakeDestinations{records: []*destination.Destination{
		{Slug: "los-roques", UpdatedAt: editedAt},
		{Slug: "canaima", UpdatedAt: editedAt},
		{Slug: "margarita", UpdatedAt: editedAt},
	}}
	tours := &fakeTours{records: []*tour.Tour{
		{Slug: "fin-de-semana-los-roques", UpdatedAt: editedAt},
		{Slug: "salto-angel-express", UpdatedAt: editedAt},
		{Slug: "ruta-caribe", UpdatedAt: editedAt},
	}}

	document := newTestGenerator(destinations, tours).Generate(context.Background())

	assert.Len(t, document.Entries, 2*(7+3+3))
}

func TestGenerate_PrioritiesAndURLs(t *testing.T) {
	destinations := &fakeDestinations{records: []*destination.Destination{
		{Slug: "los-roques", UpdatedAt: editedAt},
	}}
	document := newTestGenerator(destinations, &fakeTours{}).Generate(context.Background())

	byURL := make(map[string]Entry, len(document.Entries))
	for _, entry := range document.Entries {
		byURL[entry.URL] = entry
	}

	// 1. Locale homes carry top priority
	assert.Equal(t, "1.0", byURL[baseURL+"/es"].Priority)
	assert.Equal(t, "1.0", byURL[baseURL+"/en"].Priority)

	// 2. Detail pages next, with a lastmod date
	detail := byURL[baseURL+"/es/destinations/los-roques"]
	assert.Equal(t, "0.9", detail.Priority)
	assert.Equal(t, "2026-08-01", detail.LastModified)

	// 3. Everything else trails
	assert.Equal(t, "0.8", byURL[baseURL+"/en/legal/cookies"].Priority)
	assert.Equal(t, "0.8", byURL[baseURL+"/es/contact"].Priority)
}

// A failing catalog degrades to the fixed routes instead of erroring.
func TestGenerate_DegradesToStaticRoutes(t *testing.T) {
	down := errors.New("connection refused")
	document := newTestGenerator(
		&fakeDestinations{err: down},
		&fakeTours{err: down},
	).Generate(context.Background())

	assert.Len(t, document.Entries, 2*7)
}

func TestServeHTTP_ValidXML(t *testing.T) {
	generator := newTestGenerator(&fakeDestinations{}, &fakeTours{})

	recorder := httptest.NewRecorder()
	generator.ServeHTTP(recorder, httptest.NewRequest("GET", "/sitemap.xml", nil))

	assert.Equal(t, 200, recorder.Code)
	assert.Equal(t, "application/xml; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(recorder.Body.String(), xml.Header))

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(recorder.Body.Bytes(), &decoded))
	assert.Equal(t, xmlns, decoded.Xmlns)
	assert.Len(t, decoded.Entries, 14)
}
