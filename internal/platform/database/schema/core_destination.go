// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreDestinationTable represents the 'core.destination' table
type CoreDestinationTable struct {
	Table         string
	ID            string
	Slug          string
	NameES        string
	NameEN        string
	DescriptionES string
	DescriptionEN string
	Region        string
	IsFeatured    string
	IsActive      string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// CoreDestination is the schema definition for core.destination
var CoreDestination = CoreDestinationTable{
	Table:         "core.destination",
	ID:            "id",
	Slug:          "slug",
	NameES:        "namees",
	NameEN:        "nameen",
	DescriptionES: "descriptiones",
	DescriptionEN: "descriptionen",
	Region:        "region",
	IsFeatured:    "isfeatured",
	IsActive:      "isactive",
	SortOrder:     "sortorder",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CoreDestinationTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.NameES, t.NameEN, t.DescriptionES, t.DescriptionEN,
		t.Region, t.IsFeatured, t.IsActive, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}
