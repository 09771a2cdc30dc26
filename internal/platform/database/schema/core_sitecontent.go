// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreSiteContentTable represents the 'core.sitecontent' table
type CoreSiteContentTable struct {
	Table     string
	ID        string
	Key       string
	TitleES   string
	TitleEN   string
	BodyES    string
	BodyEN    string
	UpdatedAt string
}

// CoreSiteContent is the schema definition for core.sitecontent
var CoreSiteContent = CoreSiteContentTable{
	Table:     "core.sitecontent",
	ID:        "id",
	Key:       "contentkey",
	TitleES:   "titlees",
	TitleEN:   "titleen",
	BodyES:    "bodyes",
	BodyEN:    "bodyen",
	UpdatedAt: "updatedat",
}

func (t CoreSiteContentTable) Columns() []string {
	return []string{t.ID, t.Key, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt}
}
