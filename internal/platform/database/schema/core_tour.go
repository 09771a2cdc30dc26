// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreTourTable represents the 'core.tour' table
type CoreTourTable struct {
	Table         string
	ID            string
	Slug          string
	DestinationID string
	TitleES       string
	TitleEN       string
	SummaryES     string
	SummaryEN     string
	BodyES        string
	BodyEN        string
	DurationDays  string
	PriceUSD      string
	IsFeatured    string
	IsActive      string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// CoreTour is the schema definition for core.tour
var CoreTour = CoreTourTable{
	Table:         "core.tour",
	ID:            "id",
	Slug:          "slug",
	DestinationID: "destinationid",
	TitleES:       "titlees",
	TitleEN:       "titleen",
	SummaryES:     "summaryes",
	SummaryEN:     "summaryen",
	BodyES:        "bodyes",
	BodyEN:        "bodyen",
	DurationDays:  "durationdays",
	PriceUSD:      "priceusd",
	IsFeatured:    "isfeatured",
	IsActive:      "isactive",
	SortOrder:     "sortorder",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CoreTourTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.DestinationID, t.TitleES, t.TitleEN, t.SummaryES, t.SummaryEN,
		t.BodyES, t.BodyEN, t.DurationDays, t.PriceUSD, t.IsFeatured, t.IsActive,
		t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}
