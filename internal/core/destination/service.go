// Copyright (c) 2026 Volare Charters. All rights reserved.

package destination

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/slug"
	"github.com/volarecharters/volare/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for charter destinations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new destination [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Public Reads

/*
ListPublic retrieves active destinations for the public catalog pages.
The active restriction is enforced here, not trusted from the caller.

Parameters:
  - context: context.Context
  - featuredOnly: bool (home-page card strip)
  - limit, offset: int

Returns:
  - []*Destination: List of active destinations
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListPublic(context context.Context, featuredOnly bool, limit, offset int) ([]*Destination, int, error) {
	return service.repo.List(context, Filter{ActiveOnly: true, FeaturedOnly: featuredOnly}, limit, offset)
}

/*
GetPublicBySlug retrieves one active destination for its detail page.
Inactive records are indistinguishable from missing ones.

Parameters:
  - context: context.Context
  - slugValue: string

Returns:
  - *Destination: Hydrated entity
  - error: ErrNotFound if missing or inactive
*/
func (service *Service) GetPublicBySlug(context context.Context, slugValue string) (*Destination, error) {
	record, err := service.repo.FindBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}
	if !record.IsActive {
		return nil, apperr.NotFound("Destination")
	}
	return record, nil
}

// # Admin Management

/*
List retrieves destinations for the back office, including inactive rows.
*/
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Destination, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// Get retrieves a destination by UUID regardless of publication state.
func (service *Service) Get(context context.Context, id string) (*Destination, error) {
	return service.repo.FindByID(context, id)
}

/*
Create validates and persists a new destination. The slug is derived from
the Spanish name; accents are stripped so "Canaima y Angel" and
"Archipiélago Los Roques" both produce stable ASCII paths.

Parameters:
  - context: context.Context
  - destination: *Destination (NameES required)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, destination *Destination) error {
	validator := &validate.Validator{}
	validator.Required(FieldNameES, destination.NameES).MaxLen(FieldNameES, destination.NameES, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	destination.ID = uuid.New()
	destination.Slug = slug.From(destination.NameES)

	if err := service.repo.Create(context, destination); err != nil {
		return err
	}

	service.logger.Info("destination_created",
		slog.String("destination_id", destination.ID),
		slog.String("slug", destination.Slug),
	)

	return nil
}

/*
Update rewrites an existing destination. The slug follows the Spanish name
so renamed destinations keep a consistent public path.

Parameters:
  - context: context.Context
  - destination: *Destination (ID and NameES required)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Update(context context.Context, destination *Destination) error {
	validator := &validate.Validator{}
	validator.UUID("id", destination.ID)
	validator.Required(FieldNameES, destination.NameES).MaxLen(FieldNameES, destination.NameES, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	destination.Slug = slug.From(destination.NameES)

	if err := service.repo.Update(context, destination); err != nil {
		return err
	}

	service.logger.Info("destination_updated", slog.String("destination_id", destination.ID))

	return nil
}

// Delete removes a destination permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("destination_deleted", slog.String("destination_id", id))

	return nil
}

// Count returns the number of active destinations, used by the dashboard.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}
