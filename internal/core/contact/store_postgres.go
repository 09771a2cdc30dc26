// Copyright (c) 2026 Volare Charters. All rights reserved.

package contact

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/volarecharters/volare/internal/platform/database/schema"
	"github.com/volarecharters/volare/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context) (*Contact, error) {
	t := schema.CoreContactInfo
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s LIMIT 1`,
		t.ID, t.Email, t.Phone, t.WhatsApp, t.AddressES, t.AddressEN,
		t.InstagramURL, t.FacebookURL, t.UpdatedAt, t.Table)

	contact := &Contact{}
	err := repository.db.QueryRow(context, query).Scan(
		&contact.ID, &contact.Email, &contact.Phone, &contact.WhatsApp,
		&contact.AddressES, &contact.AddressEN, &contact.InstagramURL,
		&contact.FacebookURL, &contact.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_contactinfo")
	}
	return contact, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, contact *Contact) error {
	t := schema.CoreContactInfo
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s) DO UPDATE
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		RETURNING %s
	`,
		t.Table, t.ID, t.Email, t.Phone, t.WhatsApp, t.AddressES, t.AddressEN,
		t.InstagramURL, t.FacebookURL,
		t.ID,
		t.Email, t.Phone, t.WhatsApp, t.AddressES, t.AddressEN,
		t.InstagramURL, t.FacebookURL, t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		contact.ID, contact.Email, contact.Phone, contact.WhatsApp,
		contact.AddressES, contact.AddressEN, contact.InstagramURL, contact.FacebookURL,
	).Scan(&contact.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "upsert_contactinfo")
	}
	return nil
}
