// Copyright (c) 2026 Volare Charters. All rights reserved.

package schema

// CoreContactInfoTable represents the 'core.contactinfo' table
type CoreContactInfoTable struct {
	Table        string
	ID           string
	Email        string
	Phone        string
	WhatsApp     string
	AddressES    string
	AddressEN    string
	InstagramURL string
	FacebookURL  string
	UpdatedAt    string
}

// CoreContactInfo is the schema definition for core.contactinfo
var CoreContactInfo = CoreContactInfoTable{
	Table:        "core.contactinfo",
	ID:           "id",
	Email:        "email",
	Phone:        "phone",
	WhatsApp:     "whatsapp",
	AddressES:    "addresses",
	AddressEN:    "addressen",
	InstagramURL: "instagramurl",
	FacebookURL:  "facebookurl",
	UpdatedAt:    "updatedat",
}

func (t CoreContactInfoTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Phone, t.WhatsApp, t.AddressES, t.AddressEN,
		t.InstagramURL, t.FacebookURL, t.UpdatedAt,
	}
}
