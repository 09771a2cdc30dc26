// Copyright (c) 2026 Volare Charters. All rights reserved.

package tour

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

func columnList() string {
	t := schema.CoreTour
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.DestinationID, t.TitleES, t.TitleEN, t.SummaryES, t.SummaryEN,
		t.BodyES, t.BodyEN, t.DurationDays, t.PriceUSD, t.IsFeatured, t.IsActive,
		t.SortOrder, t.CreatedAt, t.UpdatedAt)
}

func scanTour(row interface{ Scan(...any) error }) (*Tour, error) {
	record := &Tour{}
	err := row.Scan(
		&record.ID, &record.Slug, &record.DestinationID, &record.TitleES, &record.TitleEN,
		&record.SummaryES, &record.SummaryEN, &record.BodyES, &record.BodyEN,
		&record.DurationDays, &record.PriceUSD, &record.IsFeatured, &record.IsActive,
		&record.SortOrder, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Tour, int, error) {
	t := schema.CoreTour

	where := "TRUE"
	filterArgs := []any{}
	if filter.ActiveOnly {
		where += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	}
	if filter.FeaturedOnly {
		where += fmt.Sprintf(" AND %s = TRUE", t.IsFeatured)
	}
	if filter.DestinationID != "" {
		filterArgs = append(filterArgs, filter.DestinationID)
		where += fmt.Sprintf(" AND %s = $%d", t.DestinationID, len(filterArgs))
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, filterArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tours")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d`,
		columnList(), t.Table, where, t.SortOrder, t.TitleES, len(filterArgs)+1, len(filterArgs)+2)

	rows, err := repository.db.Query(context, query, append(filterArgs, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tours")
	}
	defer rows.Close()

	tours := make([]*Tour, 0)
	for rows.Next() {
		record, err := scanTour(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tour")
		}
		tours = append(tours, record)
	}

	return tours, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Tour, error) {
	t := schema.CoreTour
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(), t.Table, t.ID)

	record, err := scanTour(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tour_by_id")
	}
	return record, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Tour, error) {
	t := schema.CoreTour
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(), t.Table, t.Slug)

	record, err := scanTour(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tour_by_slug")
	}
	return record, nil
}

func (repository *PostgresRepository) Create(context context.Context, tour *Tour) error {
	t := schema.CoreTour
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.DestinationID, t.TitleES, t.TitleEN, t.SummaryES,
		t.SummaryEN, t.BodyES, t.BodyEN, t.DurationDays, t.PriceUSD, t.IsFeatured,
		t.IsActive, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		tour.ID, tour.Slug, tour.DestinationID, tour.TitleES, tour.TitleEN,
		tour.SummaryES, tour.SummaryEN, tour.BodyES, tour.BodyEN,
		tour.DurationDays, tour.PriceUSD, tour.IsFeatured, tour.IsActive, tour.SortOrder,
	).Scan(&tour.CreatedAt, &tour.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_tour")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, tour *Tour) error {
	t := schema.CoreTour
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Slug, t.DestinationID, t.TitleES, t.TitleEN, t.SummaryES,
		t.SummaryEN, t.BodyES, t.BodyEN, t.DurationDays, t.PriceUSD, t.IsFeatured,
		t.IsActive, t.SortOrder, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		tour.ID, tour.Slug, tour.DestinationID, tour.TitleES, tour.TitleEN,
		tour.SummaryES, tour.SummaryEN, tour.BodyES, tour.BodyEN,
		tour.DurationDays, tour.PriceUSD, tour.IsFeatured, tour.IsActive, tour.SortOrder,
	).Scan(&tour.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_tour")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.CoreTour
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tour")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Tour")
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	t := schema.CoreTour
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = TRUE`, t.Table, t.IsActive)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_tours")
	}
	return total, nil
}
