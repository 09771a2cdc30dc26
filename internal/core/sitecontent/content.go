// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package sitecontent manages key-addressed editorial copy blocks.

Each block is a bilingual title/body pair addressed by a stable key like
"home.hero". Blocks are edited in the back office and rendered on the
public pages through the locale fallback chain: the record's locale
column, then the statically shipped copy below, then the "coming soon"
placeholder. A page never renders an empty block, even when the store is
unreachable.
*/
package sitecontent

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// Well-known block keys. The store may hold more; these are the ones the
// site renders today and the ones with shipped fallback copy.
const (
	KeyHomeHero     = "home.hero"
	KeyHomeAbout    = "home.about"
	KeyHomeFleet    = "home.fleet"
	KeyContactIntro = "contact.intro"
)

// Content is one editable copy block.
type Content struct {
	ID        string    `json:"id"` // UUIDv7
	Key       string    `json:"key"`
	TitleES   *string   `json:"title_es,omitempty"`
	TitleEN   *string   `json:"title_en,omitempty"`
	BodyES    *string   `json:"body_es,omitempty"`
	BodyEN    *string   `json:"body_en,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View is a copy block projected into one locale. Title and Body are
// resolved and never empty.
type View struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// fallbackCopy is the statically shipped copy per key, the middle step of
// the resolution chain. Shipping it in the binary keeps the home page
// renderable when the content store has no row yet.
var fallbackCopy = map[string]map[i18n.Locale]View{
	KeyHomeHero: {
		i18n.LocaleES: {Title: "Vuela a tu ritmo", Body: "Vuelos chárter privados a los destinos más hermosos de Venezuela."},
		i18n.LocaleEN: {Title: "Fly at your own pace", Body: "Private charter flights to Venezuela's most beautiful destinations."},
	},
	KeyHomeAbout: {
		i18n.LocaleES: {Title: "Sobre Volare", Body: "Más de una década conectando el Caribe venezolano."},
		i18n.LocaleEN: {Title: "About Volare", Body: "Over a decade connecting the Venezuelan Caribbean."},
	},
	KeyHomeFleet: {
		i18n.LocaleES: {Title: "Nuestra flota", Body: "Aeronaves certificadas y tripulación con experiencia."},
		i18n.LocaleEN: {Title: "Our fleet", Body: "Certified aircraft and experienced crews."},
	},
	KeyContactIntro: {
		i18n.LocaleES: {Title: "Contacto", Body: "Escríbenos y arma tu próximo vuelo."},
		i18n.LocaleEN: {Title: "Contact", Body: "Write to us and plan your next flight."},
	},
}

// Fallback returns the shipped copy for a key, or a placeholder-only view
// for keys without shipped copy.
func Fallback(key string, l i18n.Locale) View {
	if byLocale, ok := fallbackCopy[key]; ok {
		if view, ok := byLocale[l]; ok {
			view.Key = key
			return view
		}
	}
	return View{Key: key, Title: i18n.ComingSoon(l), Body: i18n.ComingSoon(l)}
}

// Localize projects the record into the given locale, falling back to the
// shipped copy column by column.
func (c *Content) Localize(l i18n.Locale) View {
	static := Fallback(c.Key, l)
	return View{
		Key:   c.Key,
		Title: i18n.Resolve(l, i18n.Field(l, pointer.Val(c.TitleES), pointer.Val(c.TitleEN)), static.Title),
		Body:  i18n.Resolve(l, i18n.Field(l, pointer.Val(c.BodyES), pointer.Val(c.BodyEN)), static.Body),
	}
}
