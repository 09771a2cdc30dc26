// Copyright (c) 2026 Volare Charters. All rights reserved.

package tour

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/slug"
	"github.com/volarecharters/volare/pkg/uuid"
)

// Service orchestrates business rules for tour packages.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new tour [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListPublic retrieves active tours for the public catalog. The active
// restriction is enforced here, not trusted from the caller.
func (service *Service) ListPublic(context context.Context, destinationID string, featuredOnly bool, limit, offset int) ([]*Tour, int, error) {
	return service.repo.List(context, Filter{
		DestinationID: destinationID,
		ActiveOnly:    true,
		FeaturedOnly:  featuredOnly,
	}, limit, offset)
}

// GetPublicBySlug retrieves one active tour for its detail page. Inactive
// records are indistinguishable from missing ones.
func (service *Service) GetPublicBySlug(context context.Context, slugValue string) (*Tour, error) {
	record, err := service.repo.FindBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}
	if !record.IsActive {
		return nil, apperr.NotFound("Tour")
	}
	return record, nil
}

// List retrieves tours for the back office, including inactive rows.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Tour, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// Get retrieves a tour by UUID regardless of publication state.
func (service *Service) Get(context context.Context, id string) (*Tour, error) {
	return service.repo.FindByID(context, id)
}

/*
Create validates and persists a new tour package. The slug is derived from
the Spanish title with accents stripped.

Parameters:
  - context: context.Context
  - tour: *Tour (TitleES required, DurationDays >= 1)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, tour *Tour) error {
	if err := validateTour(tour); err != nil {
		return err
	}

	tour.ID = uuid.New()
	tour.Slug = slug.From(tour.TitleES)

	if err := service.repo.Create(context, tour); err != nil {
		return err
	}

	service.logger.Info("tour_created",
		slog.String("tour_id", tour.ID),
		slog.String("slug", tour.Slug),
	)

	return nil
}

// Update rewrites an existing tour. The slug follows the Spanish title.
func (service *Service) Update(context context.Context, tour *Tour) error {
	validator := &validate.Validator{}
	validator.UUID("id", tour.ID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := validateTour(tour); err != nil {
		return err
	}

	tour.Slug = slug.From(tour.TitleES)

	if err := service.repo.Update(context, tour); err != nil {
		return err
	}

	service.logger.Info("tour_updated", slog.String("tour_id", tour.ID))

	return nil
}

// Delete removes a tour permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("tour_deleted", slog.String("tour_id", id))

	return nil
}

// Count returns the number of active tours, used by the dashboard.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

func validateTour(tour *Tour) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitleES, tour.TitleES).MaxLen(FieldTitleES, tour.TitleES, 200)
	validator.Range(FieldDurationDays, tour.DurationDays, 1, 60)

	if tour.DestinationID != nil && *tour.DestinationID != "" {
		validator.UUID(FieldDestinationID, *tour.DestinationID)
	}
	if tour.PriceUSD != nil {
		validator.Custom(FieldPriceUSD, *tour.PriceUSD < 0, "must not be negative")
	}

	return validator.Err()
}
