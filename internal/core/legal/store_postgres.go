// Copyright (c) 2026 Volare Charters. All rights reserved.

package legal

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

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Page, error) {
	t := schema.CoreLegalPage
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Slug, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt, t.Table, t.Slug)

	page := &Page{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&page.ID, &page.Slug, &page.TitleES, &page.TitleEN,
		&page.BodyES, &page.BodyEN, &page.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_legalpage_by_slug")
	}
	return page, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Page, error) {
	t := schema.CoreLegalPage
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Slug, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt, t.Table, t.Slug)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_legalpages")
	}
	defer rows.Close()

	pages := make([]*Page, 0)
	for rows.Next() {
		page := &Page{}
		if err := rows.Scan(
			&page.ID, &page.Slug, &page.TitleES, &page.TitleEN,
			&page.BodyES, &page.BodyEN, &page.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_legalpage")
		}
		pages = append(pages, page)
	}

	return pages, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, page *Page) error {
	t := schema.CoreLegalPage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN,
		t.Slug,
		t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		page.ID, page.Slug, page.TitleES, page.TitleEN, page.BodyES, page.BodyEN,
	).Scan(&page.ID, &page.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "upsert_legalpage")
	}
	return nil
}
