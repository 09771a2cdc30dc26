// Copyright (c) 2026 Volare Charters. All rights reserved.

package tour

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
	bySlug     map[string]*Tour
	created    *Tour
	lastFilter Filter
}

func (f *fakeRepository) List(_ context.Context, filter Filter, _, _ int) ([]*Tour, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeRepository) FindByID(_ context.Context, _ string) (*Tour, error) {
	return nil, apperr.NotFound("Tour")
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Tour, error) {
	if t, ok := f.bySlug[slug]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Tour")
}

func (f *fakeRepository) Create(_ context.Context, t *Tour) error {
	f.created = t
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _ *Tour) error  { return nil }
func (f *fakeRepository) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeRepository) Count(_ context.Context) (int, error)     { return 0, nil }

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

/*
TestLocalize_FallbackChain verifies locale resolution on the three copy
columns: locale column first, Spanish copy for missing English, placeholder
when nothing is authored.
*/
func TestLocalize_FallbackChain(t *testing.T) {
	record := &Tour{
		ID:      "t1",
		Slug:    "sobrevuelo-canaima",
		TitleES: "Sobrevuelo del Salto Ángel",
		// TitleEN deliberately missing
		SummaryES:    pointer.To("Vuelo panorámico de un día."),
		SummaryEN:    pointer.To("One-day scenic flight."),
		DurationDays: 1,
	}

	// 1. English title falls back to the Spanish copy
	enView := record.Localize(i18n.LocaleEN)
	assert.Equal(t, "Sobrevuelo del Salto Ángel", enView.Title)
	assert.Equal(t, "One-day scenic flight.", enView.Summary)

	// 2. Spanish locale reads its own columns
	esView := record.Localize(i18n.LocaleES)
	assert.Equal(t, "Vuelo panorámico de un día.", esView.Summary)

	// 3. Body never authored: placeholder, never empty
	assert.Equal(t, i18n.ComingSoon(i18n.LocaleEN), enView.Body)
	assert.Equal(t, i18n.ComingSoon(i18n.LocaleES), esView.Body)
}

/*
TestListPublic_ForcesActiveFilter verifies the public listing cannot be
talked into returning unpublished tours.
*/
func TestListPublic_ForcesActiveFilter(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	_, _, err := service.ListPublic(context.Background(), "", true, 10, 0)
	require.NoError(t, err)

	assert.True(t, repo.lastFilter.ActiveOnly)
	assert.True(t, repo.lastFilter.FeaturedOnly)
}

/*
TestGetPublicBySlug_InactiveHidden verifies that unpublished tours are
indistinguishable from missing ones on the public surface.
*/
func TestGetPublicBySlug_InactiveHidden(t *testing.T) {
	repo := &fakeRepository{bySlug: map[string]*Tour{
		"sobrevuelo-canaima": {ID: "t1", Slug: "sobrevuelo-canaima", TitleES: "Sobrevuelo", IsActive: true, DurationDays: 1},
		"ruta-medanos":       {ID: "t2", Slug: "ruta-medanos", TitleES: "Ruta Médanos", IsActive: false, DurationDays: 2},
	}}
	service := newTestService(repo)

	active, err := service.GetPublicBySlug(context.Background(), "sobrevuelo-canaima")
	require.NoError(t, err)
	assert.Equal(t, "t1", active.ID)

	_, err = service.GetPublicBySlug(context.Background(), "ruta-medanos")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestCreate_Validation verifies slug derivation from the Spanish title and
the commercial attribute bounds.
*/
func TestCreate_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	// 1. Valid input: slug derived with accents stripped
	input := &Tour{TitleES: "Sobrevuelo del Salto Ángel", DurationDays: 1, IsActive: true}
	require.NoError(t, service.Create(context.Background(), input))
	require.NotNil(t, repo.created)
	assert.Equal(t, "sobrevuelo-del-salto-angel", repo.created.Slug)
	assert.NotEmpty(t, repo.created.ID)

	// 2. Missing Spanish title
	err := service.Create(context.Background(), &Tour{DurationDays: 1})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)

	// 3. Duration out of range
	err = service.Create(context.Background(), &Tour{TitleES: "Vuelo", DurationDays: 0})
	require.Error(t, err)

	// 4. Negative price
	err = service.Create(context.Background(), &Tour{TitleES: "Vuelo", DurationDays: 1, PriceUSD: pointer.To(-50)})
	require.Error(t, err)
}
