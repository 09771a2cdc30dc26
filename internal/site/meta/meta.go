// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package meta builds the per-page SEO metadata block the website frontend
renders into the document head.

Every public page carries a resolved title, description, canonical URL, the
full hreflang alternate set, and an Open Graph block. Construction is pure:
the [Builder] holds only the site's base URL and name, so the same inputs
always produce the same [Page].

# Canonical & Alternates

The canonical URL is always the locale-prefixed absolute URL of the page
being served. Alternates list every supported locale plus an x-default
pointing at the default-locale variant, so search engines index the Spanish
and English trees as one site.
*/
package meta

import (
	"github.com/volarecharters/volare/internal/platform/i18n"
)

// # Page Model

// Alternate is one hreflang link relation.
type Alternate struct {
	Hreflang string `json:"hreflang"`
	URL      string `json:"url"`
}

// OpenGraph is the og:* property block for social sharing cards.
type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	SiteName    string  `json:"site_name"`
	Locale      string  `json:"locale"`
	Type        string  `json:"type"`
	Image       *string `json:"image,omitempty"`
}

// Page is the complete metadata block for one rendered page.
type Page struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Canonical   string      `json:"canonical"`
	Alternates  []Alternate `json:"alternates"`
	OpenGraph   OpenGraph   `json:"open_graph"`
}

// ogLocale maps a site locale to the underscore form Open Graph expects.
var ogLocale = map[i18n.Locale]string{
	i18n.LocaleES: "es_VE",
	i18n.LocaleEN: "en_US",
}

// # Builder

// Builder constructs [Page] blocks for a fixed site origin.
type Builder struct {
	baseURL  string
	siteName string
}

// NewBuilder constructs a metadata [Builder]. baseURL must not end with a
// slash.
func NewBuilder(baseURL, siteName string) *Builder {
	return &Builder{baseURL: baseURL, siteName: siteName}
}

// LocalizedURL returns the absolute URL for a site-relative path in the
// given locale. path is "" for the locale home or starts with "/".
func (builder *Builder) LocalizedURL(l i18n.Locale, path string) string {
	return builder.baseURL + "/" + string(l) + path
}

/*
Build assembles the metadata block for one page.

Parameters:
  - locale: i18n.Locale (The locale being served)
  - path: string (Site-relative path without locale prefix, "" for home)
  - title: string (Resolved, never empty)
  - description: string (Resolved, never empty)

Returns:
  - Page: Complete metadata block
*/
func (builder *Builder) Build(locale i18n.Locale, path, title, description string) Page {
	alternates := make([]Alternate, 0, len(i18n.Supported)+1)
	for _, alt := range i18n.Supported {
		alternates = append(alternates, Alternate{
			Hreflang: string(alt),
			URL:      builder.LocalizedURL(alt, path),
		})
	}
	alternates = append(alternates, Alternate{
		Hreflang: "x-default",
		URL:      builder.LocalizedURL(i18n.Default, path),
	})

	canonical := builder.LocalizedURL(locale, path)

	return Page{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Alternates:  alternates,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    builder.siteName,
			Locale:      ogLocale[locale],
			Type:        "website",
		},
	}
}

// BuildWithImage assembles a metadata block whose sharing card carries an
// image, used by detail pages with a primary photo.
func (builder *Builder) BuildWithImage(locale i18n.Locale, path, title, description string, imageURL *string) Page {
	page := builder.Build(locale, path, title, description)
	page.OpenGraph.Image = imageURL
	return page
}
