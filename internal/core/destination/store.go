// Copyright (c) 2026 Volare Charters. All rights reserved.

package destination

import "context"

// # Destination Data Access

// Repository defines the data access contract for charter destinations.
type Repository interface {

	/*
		List returns a filtered, paginated slice of destinations and the total count.
		Ordering is sortorder ascending, then Spanish name.

		Parameters:
		  - context: context.Context
		  - filter: Filter (featured/active restrictions)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Destination: Slice of matching records
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Destination, int, error)

	/*
		FindByID retrieves a destination by its UUID, active or not.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Destination: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Destination, error)

	/*
		FindBySlug retrieves a destination by its human-readable identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Destination: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Destination, error)

	// Create persists a new destination record.
	Create(context context.Context, destination *Destination) error

	// Update rewrites the mutable columns of an existing record.
	Update(context context.Context, destination *Destination) error

	// Delete removes a destination permanently.
	Delete(context context.Context, id string) error

	// Count returns the number of active destinations.
	Count(context context.Context) (int, error)
}
