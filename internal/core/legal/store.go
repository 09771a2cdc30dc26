// Copyright (c) 2026 Volare Charters. All rights reserved.

package legal

import "context"

// Repository defines the data access contract for legal pages.
type Repository interface {

	// FindBySlug retrieves one legal page record.
	FindBySlug(context context.Context, slug string) (*Page, error)

	// List returns every stored legal page ordered by slug.
	List(context context.Context) ([]*Page, error)

	// Upsert inserts or rewrites the page for page.Slug.
	Upsert(context context.Context, page *Page) error
}
