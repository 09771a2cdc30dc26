// Copyright (c) 2026 Volare Charters. All rights reserved.

package image

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/uuid"
)

// Service orchestrates photo asset reads and back-office writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new image [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListByCategory returns a category's photos in presentation order. Public
// callers degrade an error to an empty set themselves; the back office
// surfaces it.
func (service *Service) ListByCategory(context context.Context, category string) ([]*Image, error) {
	return service.repo.ListByCategory(context, category)
}

// Primary returns the lead photo for a category, or nil when the category
// is empty or the store fails. Failures are logged, not surfaced: a page
// without a hero photo is still a page.
func (service *Service) Primary(context context.Context, category string) *Image {
	records, err := service.repo.ListByCategory(context, category)
	if err != nil {
		service.logger.WarnContext(context, "image_lookup_degraded",
			slog.String("category", category),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return SelectPrimary(records)
}

// Create validates and persists a new photo record.
func (service *Service) Create(context context.Context, image *Image) error {
	validator := &validate.Validator{}
	validator.Required("category", image.Category).MaxLen("category", image.Category, 100)
	validator.Required("url", image.URL).MaxLen("url", image.URL, 500)

	if err := validator.Err(); err != nil {
		return err
	}

	image.ID = uuid.New()

	if err := service.repo.Create(context, image); err != nil {
		return err
	}

	service.logger.Info("image_created",
		slog.String("image_id", image.ID),
		slog.String("category", image.Category),
	)

	return nil
}

// Delete removes a photo record permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("image_deleted", slog.String("image_id", id))

	return nil
}
