// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package i18n defines the closed set of display locales and the fallback rules
for localized content fields.

The public site is strictly bilingual: every routable page path is prefixed by
exactly one of the supported locale segments ("es" or "en"). Anything else is
rejected before a handler runs.

Fallback Invariant:

A localized field is never rendered empty. Resolution is left-to-right:
the record's locale column, then a statically defined fallback string, then
the locale's "coming soon" placeholder. See [Resolve].
*/
package i18n

// Locale is a supported display-language code.
type Locale string

const (
	// LocaleES is Spanish, the company's primary market.
	LocaleES Locale = "es"

	// LocaleEN is English.
	LocaleEN Locale = "en"
)

// Default is the locale used for the root-path redirect and as the
// hreflang x-default alternate.
const Default = LocaleES

// Supported is the closed set of locales, in presentation order.
var Supported = []Locale{LocaleES, LocaleEN}

// Parse validates a raw path segment against the supported set.
//
// It returns the matching [Locale] and true, or ("", false) for anything
// else — including near-misses like "ES", "es-VE", or "fr". Callers must
// treat false as NotFound.
func Parse(segment string) (Locale, bool) {
	switch segment {
	case string(LocaleES):
		return LocaleES, true
	case string(LocaleEN):
		return LocaleEN, true
	default:
		return "", false
	}
}

// Valid reports whether the locale is part of the supported set.
func (l Locale) Valid() bool {
	_, ok := Parse(string(l))
	return ok
}

// Field selects the locale-specific variant from a parallel (es, en) pair.
//
// It performs no fallback — an empty column comes back empty. Use [Resolve]
// when the never-render-empty invariant applies.
func Field(l Locale, es, en string) string {
	if l == LocaleEN {
		return en
	}
	return es
}

// Resolve applies the left-to-right fallback chain for a localized field:
// record value, then static fallback, then the "coming soon" placeholder.
//
// The result is guaranteed non-empty.
func Resolve(l Locale, value, fallback string) string {
	if value != "" {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return ComingSoon(l)
}

// # Static Copy

// comingSoon is the deliberate UX placeholder for regions whose content has
// not been authored yet. Rendering it is not an error condition.
var comingSoon = map[Locale]string{
	LocaleES: "Contenido disponible próximamente.",
	LocaleEN: "Content coming soon.",
}

// ComingSoon returns the placeholder copy for the given locale.
func ComingSoon(l Locale) string {
	if s, ok := comingSoon[l]; ok {
		return s
	}
	return comingSoon[Default]
}

// credentialError is the one failure class surfaced verbatim to users:
// a bad admin login. Translated, never a raw backend error.
var credentialError = map[Locale]string{
	LocaleES: "Correo o contraseña incorrectos.",
	LocaleEN: "Invalid email or password.",
}

// CredentialError returns the translated bad-credentials message.
func CredentialError(l Locale) string {
	if s, ok := credentialError[l]; ok {
		return s
	}
	return credentialError[Default]
}
