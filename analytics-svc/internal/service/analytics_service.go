package service

import (
	"context"
	"fmt"
	"time"

	"housing-reviews/analytics-svc/internal/domain"
	"housing-reviews/logger"
)

const boardLimit = 10

type AnalyticsService struct {
	boards Leaderboard
	db     HousingReader
	now    func() time.Time
}

func NewAnalyticsService(boards Leaderboard, db HousingReader) *AnalyticsService {
	return &AnalyticsService{
		boards: boards,
		db:     db,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to pick today's trending key.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) TopRated(ctx context.Context) ([]domain.HousingAnalytics, error) {
	scores, err := s.boards.TopRated(ctx, boardLimit)
	if err != nil {
		logger.Warn(logger.EventCacheError, "top rated board unavailable, reading postgres", logger.Fields("error", err.Error()))
	}
	if err != nil || len(scores) == 0 {
		return s.fromDB(s.db.TopRated(ctx, boardLimit))
	}
	return s.resolve(ctx, scores, true)
}

func (s *AnalyticsService) Trending(ctx context.Context) ([]domain.HousingAnalytics, error) {
	today := s.now().UTC()
	scores, err := s.boards.Trending(ctx, today, boardLimit)
	if err != nil {
		logger.Warn(logger.EventCacheError, "trending board unavailable, reading postgres", logger.Fields("error", err.Error()))
	}
	if err != nil || len(scores) == 0 {
		midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		return s.fromDB(s.db.Trending(ctx, midnight, boardLimit))
	}
	return s.resolve(ctx, scores, false)
}

func (s *AnalyticsService) HousingStats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
	stats, err := s.boards.Stats(ctx, housingID)
	if err != nil {
		logger.Warn(logger.EventCacheError, "stats mirror unavailable, reading postgres", logger.Fields(
			"housing_id", housingID, "error", err.Error()))
	}
	if err == nil && stats != nil {
		return stats, nil
	}
	return s.db.Stats(ctx, housingID)
}

// resolve joins board members with their listing rows. Members whose
// listing was deleted are dropped.
func (s *AnalyticsService) resolve(ctx context.Context, scores []domain.Score, scoreIsRating bool) ([]domain.HousingAnalytics, error) {
	ids := make([]string, 0, len(scores))
	for _, sc := range scores {
		ids = append(ids, sc.HousingID)
	}

	housings, err := s.db.HousingsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load housings: %w", err)
	}

	result := make([]domain.HousingAnalytics, 0, len(scores))
	for _, sc := range scores {
		h, ok := housings[sc.HousingID]
		if !ok {
			continue
		}
		h.Score = sc.Value
		if scoreIsRating {
			h.AvgRating = sc.Value
		}
		result = append(result, h)
	}
	return result, nil
}

func (s *AnalyticsService) fromDB(rows []domain.HousingAnalytics, err error) ([]domain.HousingAnalytics, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.HousingAnalytics{}
	}
	return rows, nil
}
