// Copyright (c) 2026 Volare Charters. All rights reserved.

package contact

import "context"

// Repository defines the data access contract for the contact record.
type Repository interface {

	// Get retrieves the single contact row.
	Get(context context.Context) (*Contact, error)

	// Upsert writes the single contact row, creating it on first save.
	Upsert(context context.Context, contact *Contact) error
}
