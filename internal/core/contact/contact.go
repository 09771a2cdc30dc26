// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package contact manages the company's contact details shown on the contact
page and in the site footer.

The table holds a single row. Reads degrade to the shipped details below
when the store is unreachable, so the contact page always shows a way to
reach the company.
*/
package contact

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// Contact is the single editable contact record.
type Contact struct {
	ID           string    `json:"id"` // UUIDv7
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	WhatsApp     *string   `json:"whatsapp,omitempty"`
	AddressES    *string   `json:"address_es,omitempty"`
	AddressEN    *string   `json:"address_en,omitempty"`
	InstagramURL *string   `json:"instagram_url,omitempty"`
	FacebookURL  *string   `json:"facebook_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// View is the contact record projected into one locale.
type View struct {
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	WhatsApp     *string `json:"whatsapp,omitempty"`
	Address      string  `json:"address"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
}

// shipped is the fallback record used when the store has no row or is
// unreachable. Kept current by hand.
var shipped = Contact{
	Email:     "reservas@volarecharters.com",
	Phone:     "+58 212 555 0134",
	AddressES: pointer.To("Aeropuerto Caracas, Hangar 7, Charallave, Venezuela"),
	AddressEN: pointer.To("Caracas Airport, Hangar 7, Charallave, Venezuela"),
}

// Fallback returns the shipped contact details for a locale.
func Fallback(l i18n.Locale) View {
	return shipped.Localize(l)
}

// Localize projects the record into the given locale.
func (c *Contact) Localize(l i18n.Locale) View {
	return View{
		Email:        c.Email,
		Phone:        c.Phone,
		WhatsApp:     c.WhatsApp,
		Address:      i18n.Resolve(l, i18n.Field(l, pointer.Val(c.AddressES), pointer.Val(c.AddressEN)), pointer.Val(c.AddressES)),
		InstagramURL: c.InstagramURL,
		FacebookURL:  c.FacebookURL,
	}
}
