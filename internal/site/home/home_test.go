// Copyright (c) 2026 Volare Charters. All rights reserved.

package home

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/image"
	"github.com/volarecharters/volare/internal/core/sitecontent"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/i18n"
)

type fakeDestinations struct {
	records []*destination.Destination
	err     error
}

func (f *fakeDestinations) ListPublic(_ context.Context, _ bool, _, _ int) ([]*destination.Destination, int, error) {
	return f.records, len(f.records), f.err
}

type fakeTours struct {
	records []*tour.Tour
	err     error
}

func (f *fakeTours) ListPublic(_ context.Context, _ string, _ bool, _, _ int) ([]*tour.Tour, int, error) {
	return f.records, len(f.records), f.err
}

type fakeGallery struct {
	records []*image.Image
	err     error
}

func (f *fakeGallery) ListByCategory(_ context.Context, _ string) ([]*image.Image, error) {
	return f.records, f.err
}

// contentRepo backs a real sitecontent.Service in these tests.
type contentRepo struct{ err error }

func (c *contentRepo) FindByKey(_ context.Context, _ string) (*sitecontent.Content, error) {
	if c.err != nil {
		return nil, c.err
	}
	return nil, apperr.NotFound("Content")
}

func (c *contentRepo) List(_ context.Context) ([]*sitecontent.Content, error)   { return nil, c.err }
func (c *contentRepo) Upsert(_ context.Context, _ *sitecontent.Content) error { return c.err }

func newTestService(destinations DestinationCatalog, tours TourCatalog, gallery Gallery, contentErr error) *Service {
	content := sitecontent.NewService(&contentRepo{err: contentErr}, slog.Default())
	return NewService(content, destinations, tours, gallery, slog.Default())
}

func TestBuild_AllSectionsPopulated(t *testing.T) {
	destinations := &fakeDestinations{records: []*destination.Destination{
		{ID: "d1", Slug: "los-roques", NameES: "Los Roques", IsFeatured: true, IsActive: true},
	}}
	tours := &fakeTours{records: []*tour.Tour{
		{ID: "t1", Slug: "ruta-caribe", TitleES: "Ruta Caribe", IsFeatured: true, IsActive: true},
	}}
	gallery := &fakeGallery{records: []*image.Image{
		{ID: "i1", URL: "https://cdn.volarecharters.com/hero.jpg", IsPrimary: true},
	}}

	page, err := newTestService(destinations, tours, gallery, nil).Build(context.Background(), i18n.LocaleES)
	require.NoError(t, err)

	assert.Len(t, page.Destinations, 1)
	assert.Equal(t, "Los Roques", page.Destinations[0].Name)
	assert.Len(t, page.Tours, 1)
	require.NotNil(t, page.HeroImage)
	assert.Equal(t, "https://cdn.volarecharters.com/hero.jpg", page.HeroImage.URL)
	assert.NotEmpty(t, page.Hero.Title)
}

/*
TestBuild_EverySourceDown: with every backing store failing, the page must
still come back fully renderable — shipped copy, empty strips, no hero
photo, and no error.
*/
func TestBuild_EverySourceDown(t *testing.T) {
	down := errors.New("connection refused")

	page, err := newTestService(
		&fakeDestinations{err: down},
		&fakeTours{err: down},
		&fakeGallery{err: down},
		down,
	).Build(context.Background(), i18n.LocaleEN)
	require.NoError(t, err)

	// Strips empty but non-nil, so the frontend renders empty sections.
	assert.NotNil(t, page.Destinations)
	assert.Empty(t, page.Destinations)
	assert.NotNil(t, page.Tours)
	assert.Empty(t, page.Tours)
	assert.Nil(t, page.HeroImage)

	// Copy blocks resolve to shipped fallback, never empty.
	assert.Equal(t, sitecontent.Fallback(sitecontent.KeyHomeHero, i18n.LocaleEN), page.Hero)
	assert.NotEmpty(t, page.About.Title)
	assert.NotEmpty(t, page.Fleet.Body)
}

// One failing section must not drag the healthy ones down.
func TestBuild_PartialDegrade(t *testing.T) {
	destinations := &fakeDestinations{records: []*destination.Destination{
		{ID: "d1", Slug: "canaima", NameES: "Canaima", IsFeatured: true, IsActive: true},
	}}

	page, err := newTestService(
		destinations,
		&fakeTours{err: errors.New("connection refused")},
		&fakeGallery{},
		nil,
	).Build(context.Background(), i18n.LocaleES)
	require.NoError(t, err)

	assert.Len(t, page.Destinations, 1)
	assert.Empty(t, page.Tours)
	assert.Nil(t, page.HeroImage)
}
