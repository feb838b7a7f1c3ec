package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"housing-reviews/housing-svc/internal/domain"
)

const housingColumns = `id, name, address, latitude, longitude, image_url, price, distance,
	avg_rating, review_count, aggregate_review`

func scanHousing(row rowScanner) (*domain.Housing, error) {
	var (
		h       domain.Housing
		summary sql.NullString
	)
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.Latitude, &h.Longitude, &h.ImageURL, &h.Price,
		&h.Distance, &h.AvgRating, &h.ReviewCount, &summary); err != nil {
		return nil, err
	}
	if summary.Valid {
		h.AggregateReview = &summary.String
	}
	return &h, nil
}

func (r *PostgresRepository) CreateHousing(ctx context.Context, h *domain.Housing) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO housings (id, name, address, latitude, longitude, image_url, price, distance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		h.ID, h.Name, h.Address, h.Latitude, h.Longitude, h.ImageURL, h.Price, h.Distance)
	return err
}

func (r *PostgresRepository) GetHousing(ctx context.Context, id string) (*domain.Housing, error) {
	h, err := scanHousing(r.DB.QueryRowContext(ctx, "SELECT "+housingColumns+" FROM housings WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, domain.ErrHousingNotFound)
	}
	return h, nil
}

func (r *PostgresRepository) ListHousings(ctx context.Context, q domain.HousingQuery) ([]domain.Housing, int, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if q.MaxDistance != nil {
		args = append(args, *q.MaxDistance)
		conditions = append(conditions, fmt.Sprintf("distance <= $%d", len(args)))
	}
	if q.Price != "" {
		args = append(args, q.Price)
		conditions = append(conditions, fmt.Sprintf("price = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM housings"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM housings%s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		housingColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var housings []domain.Housing
	for rows.Next() {
		h, err := scanHousing(rows)
		if err != nil {
			return nil, 0, err
		}
		housings = append(housings, *h)
	}
	return housings, total, rows.Err()
}

func (r *PostgresRepository) UpdateHousing(ctx context.Context, h *domain.Housing) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE housings
		SET name = $1, address = $2, latitude = $3, longitude = $4, image_url = $5, price = $6, distance = $7
		WHERE id = $8`,
		h.Name, h.Address, h.Latitude, h.Longitude, h.ImageURL, h.Price, h.Distance, h.ID)
	if err != nil {
		return notFound(err, domain.ErrHousingNotFound)
	}
	return expectAffected(result, domain.ErrHousingNotFound)
}

func (r *PostgresRepository) DeleteHousing(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM housings WHERE id = $1", id)
	if err != nil {
		return notFound(err, domain.ErrHousingNotFound)
	}
	return expectAffected(result, domain.ErrHousingNotFound)
}

func expectAffected(result sql.Result, missing error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}
