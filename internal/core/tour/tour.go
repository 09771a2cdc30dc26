// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package tour manages the charter tour packages sold on the public site.

A tour bundles bilingual editorial copy with commercial attributes
(duration, indicative price) and an optional link to the destination it
flies to. Spanish copy is the source of record.
*/
package tour

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// Tour represents one bookable charter package.
type Tour struct {
	ID            string    `json:"id"` // UUIDv7
	Slug          string    `json:"slug"`
	DestinationID *string   `json:"destination_id,omitempty"`
	TitleES       string    `json:"title_es"`
	TitleEN       *string   `json:"title_en,omitempty"`
	SummaryES     *string   `json:"summary_es,omitempty"`
	SummaryEN     *string   `json:"summary_en,omitempty"`
	BodyES        *string   `json:"body_es,omitempty"`
	BodyEN        *string   `json:"body_en,omitempty"`
	DurationDays  int       `json:"duration_days"`
	PriceUSD      *int      `json:"price_usd,omitempty"` // Indicative, quoted per charter
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// View is a tour projected into a single locale. Title, Summary and Body
// are resolved and never empty.
type View struct {
	ID            string  `json:"id"`
	Slug          string  `json:"slug"`
	DestinationID *string `json:"destination_id,omitempty"`
	Title         string  `json:"title"`
	Summary       string  `json:"summary"`
	Body          string  `json:"body"`
	DurationDays  int     `json:"duration_days"`
	PriceUSD      *int    `json:"price_usd,omitempty"`
	IsFeatured    bool    `json:"is_featured"`
}

// Localize projects the record into the given locale with Spanish copy as
// the static fallback.
func (t *Tour) Localize(l i18n.Locale) View {
	return View{
		ID:            t.ID,
		Slug:          t.Slug,
		DestinationID: t.DestinationID,
		Title:         i18n.Resolve(l, i18n.Field(l, t.TitleES, pointer.Val(t.TitleEN)), t.TitleES),
		Summary:       i18n.Resolve(l, i18n.Field(l, pointer.Val(t.SummaryES), pointer.Val(t.SummaryEN)), pointer.Val(t.SummaryES)),
		Body:          i18n.Resolve(l, i18n.Field(l, pointer.Val(t.BodyES), pointer.Val(t.BodyEN)), pointer.Val(t.BodyES)),
		DurationDays:  t.DurationDays,
		PriceUSD:      t.PriceUSD,
		IsFeatured:    t.IsFeatured,
	}
}

// LocalizeAll projects a slice of records into one locale, preserving order.
func LocalizeAll(records []*Tour, l i18n.Locale) []View {
	views := make([]View, 0, len(records))
	for _, record := range records {
		views = append(views, record.Localize(l))
	}
	return views
}

// Filter holds parameters for listing tours.
type Filter struct {
	DestinationID string
	FeaturedOnly  bool
	ActiveOnly    bool
}

// # Field Identifiers

const (
	FieldTitleES       = "title_es"
	FieldDestinationID = "destination_id"
	FieldDurationDays  = "duration_days"
	FieldPriceUSD      = "price_usd"
)
