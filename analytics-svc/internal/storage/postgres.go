package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"housing-reviews/analytics-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresReader struct {
	DB *sql.DB
}

func NewPostgresReader(db *sql.DB) *PostgresReader {
	return &PostgresReader{DB: db}
}

func (p *PostgresReader) HousingsByIDs(ctx context.Context, ids []string) (map[string]domain.HousingAnalytics, error) {
	rows, err := p.DB.QueryContext(ctx, `
		SELECT id, name, address, avg_rating, review_count
		FROM housings
		WHERE id::text = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	housings := make(map[string]domain.HousingAnalytics, len(ids))
	for rows.Next() {
		var h domain.HousingAnalytics
		if err := rows.Scan(&h.HousingID, &h.Name, &h.Address, &h.AvgRating, &h.ReviewCount); err != nil {
			return nil, err
		}
		housings[h.HousingID] = h
	}
	return housings, rows.Err()
}

func (p *PostgresReader) TopRated(ctx context.Context, limit int) ([]domain.HousingAnalytics, error) {
	return p.board(ctx, `
		SELECT id, name, address, avg_rating, review_count, avg_rating AS score
		FROM housings
		WHERE review_count > 0
		ORDER BY avg_rating DESC, review_count DESC
		LIMIT $1`, limit)
}

func (p *PostgresReader) Trending(ctx context.Context, since time.Time, limit int) ([]domain.HousingAnalytics, error) {
	return p.board(ctx, `
		SELECT h.id, h.name, h.address, h.avg_rating, h.review_count, COUNT(r.id) AS score
		FROM housings h
		JOIN reviews r ON r.housing_id = h.id
		WHERE r.timestamp >= $2
		GROUP BY h.id, h.name, h.address, h.avg_rating, h.review_count
		ORDER BY score DESC
		LIMIT $1`, limit, since)
}

func (p *PostgresReader) board(ctx context.Context, query string, args ...interface{}) ([]domain.HousingAnalytics, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HousingAnalytics
	for rows.Next() {
		var h domain.HousingAnalytics
		if err := rows.Scan(&h.HousingID, &h.Name, &h.Address, &h.AvgRating, &h.ReviewCount, &h.Score); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (p *PostgresReader) Stats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
	stats := domain.HousingStats{HousingID: housingID}
	err := p.DB.QueryRowContext(ctx,
		"SELECT avg_rating, review_count FROM housings WHERE id::text = $1", housingID).
		Scan(&stats.AvgRating, &stats.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrHousingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
