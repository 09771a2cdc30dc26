// Copyright (c) 2026 Volare Charters. All rights reserved.

package sitecontent

import "context"

// Repository defines the data access contract for copy blocks.
type Repository interface {

	// FindByKey retrieves one block by its stable key.
	FindByKey(context context.Context, key string) (*Content, error)

	// List returns every stored block ordered by key, for the back office.
	List(context context.Context) ([]*Content, error)

	// Upsert inserts or rewrites the block for content.Key.
	Upsert(context context.Context, content *Content) error
}
