// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreSiteImageTable represents the 'core.siteimage' table
type CoreSiteImageTable struct {
	Table     string
	ID        string
	Category  string
	URL       string
	AltES     string
	AltEN     string
	IsPrimary string
	SortOrder string
	CreatedAt string
}

// CoreSiteImage is the schema definition for core.siteimage
var CoreSiteImage = CoreSiteImageTable{
	Table:     "core.siteimage",
	ID:        "id",
	Category:  "category",
	URL:       "url",
	AltES:     "altes",
	AltEN:     "alten",
	IsPrimary: "isprimary",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
}

func (t CoreSiteImageTable) Columns() []string {
	return []string{t.ID, t.Category, t.URL, t.AltES, t.AltEN, t.IsPrimary, t.SortOrder, t.CreatedAt}
}
