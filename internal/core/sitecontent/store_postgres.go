// Copyright (c) 2026 Volare Charters. All rights reserved.

package sitecontent

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

func (repository *PostgresRepository) FindByKey(context context.Context, key string) (*Content, error) {
	t := schema.CoreSiteContent
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Key, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt, t.Table, t.Key)

	content := &Content{}
	err := repository.db.QueryRow(context, query, key).Scan(
		&content.ID, &content.Key, &content.TitleES, &content.TitleEN,
		&content.BodyES, &content.BodyEN, &content.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_sitecontent_by_key")
	}
	return content, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Content, error) {
	t := schema.CoreSiteContent
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Key, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt, t.Table, t.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sitecontent")
	}
	defer rows.Close()

	blocks := make([]*Content, 0)
	for rows.Next() {
		content := &Content{}
		if err := rows.Scan(
			&content.ID, &content.Key, &content.TitleES, &content.TitleEN,
			&content.BodyES, &content.BodyEN, &content.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_sitecontent")
		}
		blocks = append(blocks, content)
	}

	return blocks, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, content *Content) error {
	t := schema.CoreSiteContent
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Key, t.TitleES, t.TitleEN, t.BodyES, t.BodyEN,
		t.Key,
		t.TitleES, t.TitleEN, t.BodyES, t.BodyEN, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		content.ID, content.Key, content.TitleES, content.TitleEN, content.BodyES, content.BodyEN,
	).Scan(&content.ID, &content.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "upsert_sitecontent")
	}
	return nil
}
