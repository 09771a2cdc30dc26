// Copyright (c) 2026 Volare Charters. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/volarecharters/volare/pkg/slug"
)

/*
TestFrom covers accent stripping and sanitization for the kind of Spanish
titles the catalog actually carries.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_english", "Angel Falls", "angel-falls"},
		{"spanish_accents", "Archipiélago Los Roques", "archipielago-los-roques"},
		{"enye", "Cañón del Diablo", "canon-del-diablo"},
		{"punctuation", "Canaima: Salto Ángel (3 días)", "canaima-salto-angel-3-dias"},
		{"multiple_spaces", "Isla   de   Margarita", "isla-de-margarita"},
		{"leading_trailing", "  ¡Médanos de Coro!  ", "medanos-de-coro"},
		{"already_slug", "los-roques", "los-roques"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
