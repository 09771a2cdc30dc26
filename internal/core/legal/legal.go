// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package legal manages the site's legal pages: privacy policy, terms of
service, and cookie policy.

The slug set is closed. A known slug always renders — with fallback titles
and placeholder copy if the page has not been authored — while unknown
slugs are a 404. This keeps the footer links and the sitemap stable
regardless of editorial state.
*/
package legal

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// The closed slug set.
const (
	SlugPrivacy = "privacy"
	SlugTerms   = "terms"
	SlugCookies = "cookies"
)

// Slugs lists the closed set in footer order.
var Slugs = []string{SlugPrivacy, SlugTerms, SlugCookies}

// KnownSlug reports whether slug is part of the closed set.
func KnownSlug(slug string) bool {
	for _, s := range Slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Page is one legal page record.
type Page struct {
	ID        string    `json:"id"` // UUIDv7
	Slug      string    `json:"slug"`
	TitleES   *string   `json:"title_es,omitempty"`
	TitleEN   *string   `json:"title_en,omitempty"`
	BodyES    *string   `json:"body_es,omitempty"`
	BodyEN    *string   `json:"body_en,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View is a legal page projected into one locale.
type View struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// fallbackTitle is the shipped title per slug, used when the record has no
// title column for the locale or no record exists at all.
var fallbackTitle = map[string]map[i18n.Locale]string{
	SlugPrivacy: {
		i18n.LocaleES: "Política de Privacidad",
		i18n.LocaleEN: "Privacy Policy",
	},
	SlugTerms: {
		i18n.LocaleES: "Términos y Condiciones",
		i18n.LocaleEN: "Terms and Conditions",
	},
	SlugCookies: {
		i18n.LocaleES: "Política de Cookies",
		i18n.LocaleEN: "Cookie Policy",
	},
}

// FallbackTitle returns the shipped title for a known slug.
func FallbackTitle(slug string, l i18n.Locale) string {
	if byLocale, ok := fallbackTitle[slug]; ok {
		if title, ok := byLocale[l]; ok {
			return title
		}
	}
	return i18n.ComingSoon(l)
}

// Fallback returns the unauthored view for a known slug.
func Fallback(slug string, l i18n.Locale) View {
	return View{
		Slug:  slug,
		Title: FallbackTitle(slug, l),
		Body:  i18n.ComingSoon(l),
	}
}

// Localize projects the record into the given locale.
func (p *Page) Localize(l i18n.Locale) View {
	return View{
		Slug:  p.Slug,
		Title: i18n.Resolve(l, i18n.Field(l, pointer.Val(p.TitleES), pointer.Val(p.TitleEN)), FallbackTitle(p.Slug, l)),
		Body:  i18n.Resolve(l, i18n.Field(l, pointer.Val(p.BodyES), pointer.Val(p.BodyEN)), pointer.Val(p.BodyES)),
	}
}
