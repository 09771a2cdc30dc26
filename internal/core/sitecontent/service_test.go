// Copyright (c) 2026 Volare Charters. All rights reserved.

package sitecontent

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

type fakeRepository struct {
	byKey map[string]*Content
	err   error
}

func (f *fakeRepository) FindByKey(_ context.Context, key string) (*Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byKey[key]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Content")
}

func (f *fakeRepository) List(_ context.Context) ([]*Content, error) { return nil, f.err }
func (f *fakeRepository) Upsert(_ context.Context, _ *Content) error { return f.err }

/*
TestResolve_ColumnFallback verifies per-column resolution: an authored
English title with a null Spanish title falls back to the shipped Spanish
copy, not to an empty string.
*/
func TestResolve_ColumnFallback(t *testing.T) {
	repo := &fakeRepository{byKey: map[string]*Content{
		KeyHomeHero: {
			ID:  "c1",
			Key: KeyHomeHero,
			// TitleES deliberately null
			TitleEN: pointer.To("Fly with us"),
			BodyES:  pointer.To("Vuelos chárter privados."),
		},
	}}
	service := NewService(repo, slog.Default())

	esView := service.Resolve(context.Background(), KeyHomeHero, i18n.LocaleES)
	assert.Equal(t, Fallback(KeyHomeHero, i18n.LocaleES).Title, esView.Title)
	assert.Equal(t, "Vuelos chárter privados.", esView.Body)

	enView := service.Resolve(context.Background(), KeyHomeHero, i18n.LocaleEN)
	assert.Equal(t, "Fly with us", enView.Title)
	// English body not authored: shipped English copy
	assert.Equal(t, Fallback(KeyHomeHero, i18n.LocaleEN).Body, enView.Body)
}

// A missing row or an unreachable store must degrade to shipped copy.
func TestResolve_Degrades(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepository
	}{
		{"missing_row", &fakeRepository{}},
		{"store_down", &fakeRepository{err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.repo, slog.Default())

			view := service.Resolve(context.Background(), KeyHomeAbout, i18n.LocaleEN)
			assert.Equal(t, Fallback(KeyHomeAbout, i18n.LocaleEN), view)
			assert.NotEmpty(t, view.Title)
			assert.NotEmpty(t, view.Body)
		})
	}
}

// Unknown keys have no shipped copy and resolve to the placeholder.
func TestFallback_UnknownKey(t *testing.T) {
	view := Fallback("promo.unknown", i18n.LocaleES)

	assert.Equal(t, i18n.ComingSoon(i18n.LocaleES), view.Title)
	assert.Equal(t, i18n.ComingSoon(i18n.LocaleES), view.Body)
}
