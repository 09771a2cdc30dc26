// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreLegalPageTable represents the 'core.legalpage' table
type CoreLegalPageTable struct {
	Table     string
	ID        string
	Slug      string
	TitleES   string
	TitleEN   string
	BodyES    string
	BodyEN    string
	UpdatedAt string
}

// CoreLegalPage is the schema definition for core.legalpage
var CoreLegalPage = CoreLegalPageTable{
	Table:     "core.legalpage",
	ID:        "id",
	Slug:      "slug",
	TitleES:   "titlees",
	TitleEN:   "titleen",
	BodyES:    "bodyes",
	BodyEN:    "bodyen",
	UpdatedAt: "updatedat",
}

func (t CoreLegalPageTable) Columns() []string {
	return []string{t.ID, t.Slug, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt}
}
