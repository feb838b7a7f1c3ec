package service

import (
	"context"
	"time"

	"housing-reviews/analytics-svc/internal/domain"
)

// Leaderboard reads what agg-svc maintains in redis.
type Leaderboard interface {
	TopRated(ctx context.Context, limit int) ([]domain.Score, error)
	Trending(ctx context.Context, day time.Time, limit int) ([]domain.Score, error)
	Stats(ctx context.Context, housingID string) (*domain.HousingStats, error)
}

// HousingReader is the postgres source of truth.
type HousingReader interface {
	HousingsByIDs(ctx context.Context, ids []string) (map[string]domain.HousingAnalytics, error)
	TopRated(ctx context.Context, limit int) ([]domain.HousingAnalytics, error)
	Trending(ctx context.Context, since time.Time, limit int) ([]domain.HousingAnalytics, error)
	Stats(ctx context.Context, housingID string) (*domain.HousingStats, error)
}

type AnalyticsInterface interface {
	TopRated(ctx context.Context) ([]domain.HousingAnalytics, error)
	Trending(ctx context.Context) ([]domain.HousingAnalytics, error)
	HousingStats(ctx context.Context, housingID string) (*domain.HousingStats, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
