// Copyright (c) 2026 Volare Charters. All rights reserved.

package destination

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	bySlug  map[string]*Destination
	created *Destination
}

func (f *fakeRepository) List(_ context.Context, _ Filter, _, _ int) ([]*Destination, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) FindByID(_ context.Context, _ string) (*Destination, error) {
	return nil, apperr.NotFound("Destination")
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Destination, error) {
	if d, ok := f.bySlug[slug]; ok {
		return d, nil
	}
	return nil, apperr.NotFound("Destination")
}

func (f *fakeRepository) Create(_ context.Context, d *Destination) error {
	f.created = d
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _ *Destination) error { return nil }
func (f *fakeRepository) Delete(_ context.Context, _ string) error       { return nil }
func (f *fakeRepository) Count(_ context.Context) (int, error)           { return 0, nil }

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

/*
TestLocalize_FallbackChain verifies locale resolution: the locale column
first, the Spanish copy for missing English, the placeholder when nothing
is authored.
*/
func TestLocalize_FallbackChain(t *testing.T) {
	record := &Destination{
		ID:     "d1",
		Slug:   "los-roques",
		NameES: "Los Roques",
		// NameEN deliberately missing
		DescriptionES: pointer.To("Archipiélago caribeño."),
		DescriptionEN: pointer.To("Caribbean archipelago."),
	}

	// 1. English name falls back to the Spanish copy
	enView := record.Localize(i18n.LocaleEN)
	assert.Equal(t, "Los Roques", enView.Name)
	assert.Equal(t, "Caribbean archipelago.", enView.Description)

	// 2. Spanish locale reads its own columns
	esView := record.Localize(i18n.LocaleES)
	assert.Equal(t, "Archipiélago caribeño.", esView.Description)

	// 3. Nothing authored at all: placeholder, never empty
	bare := &Destination{ID: "d2", Slug: "canaima", NameES: "Canaima"}
	assert.Equal(t, i18n.ComingSoon(i18n.LocaleEN), bare.Localize(i18n.LocaleEN).Description)
	assert.Equal(t, i18n.ComingSoon(i18n.LocaleES), bare.Localize(i18n.LocaleES).Description)
}

/*
TestGetPublicBySlug_InactiveHidden verifies that unpublished destinations
are indistinguishable from missing ones on the public surface.
*/
func TestGetPublicBySlug_InactiveHidden(t *testing.T) {
	repo := &fakeRepository{bySlug: map[string]*Destination{
		"los-roques": {ID: "d1", Slug: "los-roques", NameES: "Los Roques", IsActive: true},
		"canaima":    {ID: "d2", Slug: "canaima", NameES: "Canaima", IsActive: false},
	}}
	service := newTestService(repo)

	// 1. Active record resolves
	active, err := service.GetPublicBySlug(context.Background(), "los-roques")
	require.NoError(t, err)
	assert.Equal(t, "d1", active.ID)

	// 2. Inactive record is a 404
	_, err = service.GetPublicBySlug(context.Background(), "canaima")
	assert.True(t, apperr.IsNotFound(err))

	// 3. Missing record is a 404
	_, err = service.GetPublicBySlug(context.Background(), "margarita")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestCreate_SlugFromSpanishName verifies slug derivation strips accents and
that validation rejects a missing Spanish name.
*/
func TestCreate_SlugFromSpanishName(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	input := &Destination{NameES: "Archipiélago Los Roques", IsActive: true}
	require.NoError(t, service.Create(context.Background(), input))

	require.NotNil(t, repo.created)
	assert.Equal(t, "archipielago-los-roques", repo.created.Slug)
	assert.NotEmpty(t, repo.created.ID)

	// Spanish name is the source of record and cannot be empty.
	err := service.Create(context.Background(), &Destination{})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}
