// Copyright (c) 2026 Volare Charters. All rights reserved.

package destination

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

// columnList is the scan order shared by every SELECT in this file.
func columnList() string {
	t := schema.CoreDestination
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.NameES, t.NameEN, t.DescriptionES, t.DescriptionEN,
		t.Region, t.IsFeatured, t.IsActive, t.SortOrder, t.CreatedAt, t.UpdatedAt)
}

func scanDestination(row interface{ Scan(...any) error }) (*Destination, error) {
	d := &Destination{}
	err := row.Scan(
		&d.ID, &d.Slug, &d.NameES, &d.NameEN, &d.DescriptionES, &d.DescriptionEN,
		&d.Region, &d.IsFeatured, &d.IsActive, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Destination, int, error) {
	t := schema.CoreDestination

	where := "TRUE"
	if filter.ActiveOnly {
		where += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	}
	if filter.FeaturedOnly {
		where += fmt.Sprintf(" AND %s = TRUE", t.IsFeatured)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_destinations")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC LIMIT $1 OFFSET $2`,
		columnList(), t.Table, where, t.SortOrder, t.NameES)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_destinations")
	}
	defer rows.Close()

	destinations := make([]*Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_destination")
		}
		destinations = append(destinations, d)
	}

	return destinations, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Destination, error) {
	t := schema.CoreDestination
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(), t.Table, t.ID)

	d, err := scanDestination(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_destination_by_id")
	}
	return d, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Destination, error) {
	t := schema.CoreDestination
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(), t.Table, t.Slug)

	d, err := scanDestination(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_destination_by_slug")
	}
	return d, nil
}

func (repository *PostgresRepository) Create(context context.Context, destination *Destination) error {
	t := schema.CoreDestination
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.NameES, t.NameEN, t.DescriptionES, t.DescriptionEN,
		t.Region, t.IsFeatured, t.IsActive, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		destination.ID, destination.Slug, destination.NameES, destination.NameEN,
		destination.DescriptionES, destination.DescriptionEN, destination.Region,
		destination.IsFeatured, destination.IsActive, destination.SortOrder,
	).Scan(&destination.CreatedAt, &destination.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_destination")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, destination *Destination) error {
	t := schema.CoreDestination
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Slug, t.NameES, t.NameEN, t.DescriptionES, t.DescriptionEN,
		t.Region, t.IsFeatured, t.IsActive, t.SortOrder, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		destination.ID, destination.Slug, destination.NameES, destination.NameEN,
		destination.DescriptionES, destination.DescriptionEN, destination.Region,
		destination.IsFeatured, destination.IsActive, destination.SortOrder,
	).Scan(&destination.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_destination")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.CoreDestination
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_destination")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Destination")
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	t := schema.CoreDestination
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = TRUE`, t.Table, t.IsActive)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_destinations")
	}
	return total, nil
}
