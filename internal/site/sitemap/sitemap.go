// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package sitemap generates the XML sitemap for the bilingual public site.

Every routable page appears once per locale: the seven fixed routes plus
one detail entry per active destination and tour. The root pages carry the
highest priority, detail pages follow, and everything else trails. When
the content store is unreachable the generator degrades to the fixed
routes, so crawlers always get a valid document.
*/
package sitemap

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"

	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/site/meta"
)

// Fixed public routes, without locale prefix. "" is the locale home.
var staticPaths = []string{
	"",
	"/destinations",
	"/tours",
	"/contact",
	"/legal/privacy",
	"/legal/terms",
	"/legal/cookies",
}

// Priorities by page class.
const (
	priorityHome   = "1.0"
	priorityDetail = "0.9"
	priorityOther  = "0.8"
)

// catalogPageSize bounds one catalog fetch. Far above the real fleet of
// destinations and tours; pagination is not needed here.
const catalogPageSize = 500

// # Document Model

// Entry is one <url> element.
type Entry struct {
	XMLName      xml.Name `xml:"url"`
	URL          string   `xml:"loc"`
	LastModified string   `xml:"lastmod,omitempty"`
	ChangeFreq   string   `xml:"changefreq,omitempty"`
	Priority     string   `xml:"priority"`
}

// URLSet is the <urlset> document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Entries []Entry  `xml:"url"`
}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// # Content Sources

// DestinationCatalog lists active destinations for detail entries.
type DestinationCatalog interface {
	ListPublic(context context.Context, featuredOnly bool, limit, offset int) ([]*destination.Destination, int, error)
}

// TourCatalog lists active tours for detail entries.
type TourCatalog interface {
	ListPublic(context context.Context, destinationID string, featuredOnly bool, limit, offset int) ([]*tour.Tour, int, error)
}

// # Generator

// Generator assembles the sitemap document from the content catalogs.
type Generator struct {
	meta         *meta.Builder
	destinations DestinationCatalog
	tours        TourCatalog
	logger       *slog.Logger
}

// NewGenerator constructs a sitemap [Generator].
func NewGenerator(metaBuilder *meta.Builder, destinations DestinationCatalog, tours TourCatalog, logger *slog.Logger) *Generator {
	return &Generator{
		meta:         metaBuilder,
		destinations: destinations,
		tours:        tours,
		logger:       logger,
	}
}

/*
Generate assembles all entries: both locales over the fixed routes, then
both locales over each active destination and tour.

Returns:
  - URLSet: Complete document, valid even when a catalog fetch failed
*/
func (generator *Generator) Generate(context context.Context) URLSet {
	entries := make([]Entry, 0, 2*len(staticPaths))

	for _, locale := range i18n.Supported {
		for _, path := range staticPaths {
			entries = append(entries, Entry{
				URL:        generator.meta.LocalizedURL(locale, path),
				ChangeFreq: "weekly",
				Priority:   staticPriority(path),
			})
		}
	}

	entries = append(entries, generator.destinationEntries(context)...)
	entries = append(entries, generator.tourEntries(context)...)

	return URLSet{Xmlns: xmlns, Entries: entries}
}

func staticPriority(path string) string {
	if path == "" {
		return priorityHome
	}
	return priorityOther
}

func (generator *Generator) destinationEntries(context context.Context) []Entry {
	records, _, err := generator.destinations.ListPublic(context, false, catalogPageSize, 0)
	if err != nil {
		generator.logger.WarnContext(context, "sitemap_destinations_skipped",
			slog.String("error", err.Error()))
		return nil
	}

	entries := make([]Entry, 0, 2*len(records))
	for _, locale := range i18n.Supported {
		for _, record := range records {
			entries = append(entries, Entry{
				URL:          generator.meta.LocalizedURL(locale, "/destinations/"+record.Slug),
				LastModified: record.UpdatedAt.Format(time.DateOnly),
				ChangeFreq:   "monthly",
				Priority:     priorityDetail,
			})
		}
	}
	return entries
}

func (generator *Generator) tourEntries(context context.Context) []Entry {
	records, _, err := generator.tours.ListPublic(context, "", false, catalogPageSize, 0)
	if err != nil {
		generator.logger.WarnContext(context, "sitemap_tours_skipped",
			slog.String("error", err.Error()))
		return nil
	}

	entries := make([]Entry, 0, 2*len(records))
	for _, locale := range i18n.Supported {
		for _, record := range records {
			entries = append(entries, Entry{
				URL:          generator.meta.LocalizedURL(locale, "/tours/"+record.Slug),
				LastModified: record.UpdatedAt.Format(time.DateOnly),
				ChangeFreq:   "monthly",
				Priority:     priorityDetail,
			})
		}
	}
	return entries
}

// # HTTP Surface

/*
ServeHTTP renders GET /sitemap.xml.

The sitemap is locale-complete by construction, so it lives outside the
locale-prefixed route tree.
*/
func (generator *Generator) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	document := generator.Generate(request.Context())

	writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	writer.WriteHeader(http.StatusOK)

	_, _ = writer.Write([]byte(xml.Header))
	_ = xml.NewEncoder(writer).Encode(document)
}
