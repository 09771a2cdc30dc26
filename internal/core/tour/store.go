// Copyright (c) 2026 Volare Charters. All rights reserved.

package tour

import "context"

// Repository defines the data access contract for tour packages.
type Repository interface {

	// List returns a filtered, paginated slice of tours and the total count,
	// ordered by sortorder then Spanish title.
	List(context context.Context, filter Filter, limit, offset int) ([]*Tour, int, error)

	// FindByID retrieves a tour by its UUID, active or not.
	FindByID(context context.Context, id string) (*Tour, error)

	// FindBySlug retrieves a tour by its human-readable identifier.
	FindBySlug(context context.Context, slug string) (*Tour, error)

	// Create persists a new tour record.
	Create(context context.Context, tour *Tour) error

	// Update rewrites the mutable columns of an existing record.
	Update(context context.Context, tour *Tour) error

	// Delete removes a tour permanently.
	Delete(context context.Context, id string) error

	// Count returns the number of active tours.
	Count(context context.Context) (int, error)
}
