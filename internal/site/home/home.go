// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package home composes the public landing page.

The page is assembled from four independent sources: editorial copy blocks,
the featured destination strip, the featured tour strip, and the hero
photo. Fetches run concurrently and each degrades on its own — a failing
store empties its section and the page still renders, per the site's
degrade-over-error rule.
*/
package home

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/image"
	"github.com/volarecharters/volare/internal/core/sitecontent"
	"github.com/volarecharters/volare/internal/core/tour"
	"github.com/volarecharters/volare/internal/platform/i18n"
)

// featuredStripSize is how many cards each strip shows.
const featuredStripSize = 6

// # Content Sources

// DestinationCatalog lists active destinations for the featured strip.
type DestinationCatalog interface {
	ListPublic(context context.Context, featuredOnly bool, limit, offset int) ([]*destination.Destination, int, error)
}

// TourCatalog lists active tours for the featured strip.
type TourCatalog interface {
	ListPublic(context context.Context, destinationID string, featuredOnly bool, limit, offset int) ([]*tour.Tour, int, error)
}

// Gallery provides the hero photo set.
type Gallery interface {
	ListByCategory(context context.Context, category string) ([]*image.Image, error)
}

// # Page Model

// Page is the complete localized landing page payload.
type Page struct {
	Hero         sitecontent.View   `json:"hero"`
	About        sitecontent.View   `json:"about"`
	Fleet        sitecontent.View   `json:"fleet"`
	HeroImage    *image.View        `json:"hero_image,omitempty"`
	Destinations []destination.View `json:"destinations"`
	Tours        []tour.View        `json:"tours"`
}

// # Service

// Service assembles the landing page from the content stores.
type Service struct {
	content      *sitecontent.Service
	destinations DestinationCatalog
	tours        TourCatalog
	gallery      Gallery
	logger       *slog.Logger
}

// NewService constructs a home [Service].
func NewService(content *sitecontent.Service, destinations DestinationCatalog, tours TourCatalog, gallery Gallery, logger *slog.Logger) *Service {
	return &Service{
		content:      content,
		destinations: destinations,
		tours:        tours,
		gallery:      gallery,
		logger:       logger,
	}
}

/*
Build assembles the landing page for one locale.

The four fetches run concurrently. None of them can fail the page: copy
blocks resolve to shipped fallbacks, the strips degrade to empty, the hero
photo to none. The returned error exists to satisfy future composition and
is always nil today.
*/
func (service *Service) Build(ctx context.Context, locale i18n.Locale) (Page, error) {
	page := Page{
		Destinations: make([]destination.View, 0),
		Tours:        make([]tour.View, 0),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	// 1. Editorial copy blocks (internally degrading)
	group.Go(func() error {
		page.Hero = service.content.Resolve(groupCtx, sitecontent.KeyHomeHero, locale)
		page.About = service.content.Resolve(groupCtx, sitecontent.KeyHomeAbout, locale)
		page.Fleet = service.content.Resolve(groupCtx, sitecontent.KeyHomeFleet, locale)
		return nil
	})

	// 2. Featured destination strip
	group.Go(func() error {
		records, _, err := service.destinations.ListPublic(groupCtx, true, featuredStripSize, 0)
		if err != nil {
			service.logger.WarnContext(groupCtx, "home_destinations_degraded",
				slog.String("error", err.Error()))
			return nil
		}
		page.Destinations = destination.LocalizeAll(records, locale)
		return nil
	})

	// 3. Featured tour strip
	group.Go(func() error {
		records, _, err := service.tours.ListPublic(groupCtx, "", true, featuredStripSize, 0)
		if err != nil {
			service.logger.WarnContext(groupCtx, "home_tours_degraded",
				slog.String("error", err.Error()))
			return nil
		}
		page.Tours = tour.LocalizeAll(records, locale)
		return nil
	})

	// 4. Hero photo
	group.Go(func() error {
		records, err := service.gallery.ListByCategory(groupCtx, image.CategoryHero)
		if err != nil {
			service.logger.WarnContext(groupCtx, "home_hero_image_degraded",
				slog.String("error", err.Error()))
			return nil
		}
		if lead := image.SelectPrimary(records); lead != nil {
			view := lead.Localize(locale)
			page.HeroImage = &view
		}
		return nil
	})

	_ = group.Wait()

	return page, nil
}
