// Copyright (c) 2026 Volare Charters. All rights reserved.

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/i18n"
)

/*
TestParse verifies that only the exact supported segments are accepted.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    i18n.Locale
		ok      bool
	}{
		{"spanish", "es", i18n.LocaleES, true},
		{"english", "en", i18n.LocaleEN, true},
		{"uppercase_rejected", "ES", "", false},
		{"regional_variant_rejected", "es-VE", "", false},
		{"unsupported_language", "fr", "", false},
		{"empty", "", "", false},
		{"garbage", "admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := i18n.Parse(tt.segment)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField(t *testing.T) {
	assert.Equal(t, "Destinos", i18n.Field(i18n.LocaleES, "Destinos", "Destinations"))
	assert.Equal(t, "Destinations", i18n.Field(i18n.LocaleEN, "Destinos", "Destinations"))
}

/*
TestResolve exercises the left-to-right fallback chain: record value, then
static fallback, then the locale placeholder. The result is never empty.
*/
func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		locale   i18n.Locale
		value    string
		fallback string
		want     string
	}{
		{"record_wins", i18n.LocaleES, "Términos", "Términos y Condiciones", "Términos"},
		{"static_fallback", i18n.LocaleES, "", "Términos y Condiciones", "Términos y Condiciones"},
		{"placeholder_es", i18n.LocaleES, "", "", "Contenido disponible próximamente."},
		{"placeholder_en", i18n.LocaleEN, "", "", "Content coming soon."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := i18n.Resolve(tt.locale, tt.value, tt.fallback)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialError(t *testing.T) {
	assert.Equal(t, "Correo o contraseña incorrectos.", i18n.CredentialError(i18n.LocaleES))
	assert.Equal(t, "Invalid email or password.", i18n.CredentialError(i18n.LocaleEN))
}
