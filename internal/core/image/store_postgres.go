// Copyright (c) 2026 Volare Charters. All rights reserved.

package image

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/database/schema"
	"github.com/volarecharters/volare/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByCategory(context context.Context, category string) ([]*Image, error) {
	t := schema.CoreSiteImage
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`,
		t.ID, t.Category, t.URL, t.AltES, t.AltEN, t.IsPrimary, t.SortOrder, t.CreatedAt,
		t.Table, t.Category, t.SortOrder, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, category)
	if err != nil {
		return nil, dberr.Wrap(err, "list_images_by_category")
	}
	defer rows.Close()

	images := make([]*Image, 0)
	for rows.Next() {
		record := &Image{}
		if err := rows.Scan(
			&record.ID, &record.Category, &record.URL, &record.AltES, &record.AltEN,
			&record.IsPrimary, &record.SortOrder, &record.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_image")
		}
		images = append(images, record)
	}

	return images, nil
}

func (repository *PostgresRepository) Create(context context.Context, image *Image) error {
	t := schema.CoreSiteImage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		t.Table, t.ID, t.Category, t.URL, t.AltES, t.AltEN, t.IsPrimary, t.SortOrder,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		image.ID, image.Category, image.URL, image.AltES, image.AltEN,
		image.IsPrimary, image.SortOrder,
	).Scan(&image.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_image")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.CoreSiteImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_image")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Image")
	}
	return nil
}
