// Copyright (c) 2026 Volare Charters. All rights reserved.

package image

import "context"

// Repository defines the data access contract for photo assets.
type Repository interface {

	// ListByCategory returns a category's photos ordered by sortorder
	// ascending, then creation time.
	ListByCategory(context context.Context, category string) ([]*Image, error)

	// Create persists a new photo record.
	Create(context context.Context, image *Image) error

	// Delete removes a photo record permanently.
	Delete(context context.Context, id string) error
}
