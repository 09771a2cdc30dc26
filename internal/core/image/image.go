// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package image manages the site's photo assets, grouped by category.

A category is a free-form grouping key like "hero" or "destination:los-roques".
Pages render a category's full set or just its lead photo; [SelectPrimary]
is the single place that decides which photo leads.
*/
package image

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// Well-known category prefixes.
const (
	CategoryHero              = "hero"
	CategoryPrefixDestination = "destination:"
	CategoryPrefixTour        = "tour:"
)

// Image is one stored photo asset.
type Image struct {
	ID        string    `json:"id"` // UUIDv7
	Category  string    `json:"category"`
	URL       string    `json:"url"`
	AltES     *string   `json:"alt_es,omitempty"`
	AltEN     *string   `json:"alt_en,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// View is a photo projected into one locale.
type View struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

// Localize projects the record into the given locale. Alt text falls back
// across locales and may legitimately end up as the placeholder.
func (i *Image) Localize(l i18n.Locale) View {
	return View{
		ID:        i.ID,
		URL:       i.URL,
		Alt:       i18n.Resolve(l, i18n.Field(l, pointer.Val(i.AltES), pointer.Val(i.AltEN)), pointer.Val(i.AltES)),
		IsPrimary: i.IsPrimary,
	}
}

// LocalizeAll projects a slice of records into one locale, preserving order.
func LocalizeAll(records []*Image, l i18n.Locale) []View {
	views := make([]View, 0, len(records))
	for _, record := range records {
		views = append(views, record.Localize(l))
	}
	return views
}

// SelectPrimary picks the lead photo from a category's record set, which
// is assumed to be in store order (sortorder ascending).
//
// The first record flagged primary wins; without a flag the first record
// leads; an empty set has no lead photo.
func SelectPrimary(records []*Image) *Image {
	for _, record := range records {
		if record.IsPrimary {
			return record
		}
	}
	if len(records) > 0 {
		return records[0]
	}
	return nil
}
