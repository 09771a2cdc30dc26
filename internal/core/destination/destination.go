// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package destination manages the charter destinations shown across the public site.

A destination is the bilingual editorial record behind every destination card,
detail page, and sitemap entry. Spanish copy is the source of record; English
columns are optional and fall back per the locale resolution rules.

# Core Responsibility

  - Catalog: Defines the [Destination] entity and its ordering.
  - Localization: Projects records into locale-bound [View] values.
  - Publishing: Only active records are visible on the public surface.

Admin mutations go through [Service]; public reads never expose inactive rows.
*/
package destination

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// # Core Entities

// Destination represents one place the company flies to, with parallel
// Spanish and English copy.
type Destination struct {
	ID            string    `json:"id"` // UUIDv7
	Slug          string    `json:"slug"`
	NameES        string    `json:"name_es"`
	NameEN        *string   `json:"name_en,omitempty"`
	DescriptionES *string   `json:"description_es,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	Region        *string   `json:"region,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// View is a destination projected into a single locale. Name and
// Description are resolved and never empty.
type View struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Region      *string `json:"region,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
}

// Localize projects the record into the given locale. Spanish copy is the
// static fallback for missing English columns.
func (d *Destination) Localize(l i18n.Locale) View {
	return View{
		ID:          d.ID,
		Slug:        d.Slug,
		Name:        i18n.Resolve(l, i18n.Field(l, d.NameES, pointer.Val(d.NameEN)), d.NameES),
		Description: i18n.Resolve(l, i18n.Field(l, pointer.Val(d.DescriptionES), pointer.Val(d.DescriptionEN)), pointer.Val(d.DescriptionES)),
		Region:      d.Region,
		IsFeatured:  d.IsFeatured,
	}
}

// LocalizeAll projects a slice of records into one locale, preserving order.
func LocalizeAll(records []*Destination, l i18n.Locale) []View {
	views := make([]View, 0, len(records))
	for _, record := range records {
		views = append(views, record.Localize(l))
	}
	return views
}

// # Search & Filtering

// Filter holds parameters for listing destinations.
type Filter struct {
	FeaturedOnly bool
	ActiveOnly   bool
}

// # Field Identifiers

const (
	FieldNameES        = "name_es"
	FieldNameEN        = "name_en"
	FieldDescriptionES = "description_es"
	FieldDescriptionEN = "description_en"
	FieldRegion        = "region"
	FieldSlug          = "slug"
	FieldSortOrder     = "sort_order"
)
