package mocks

import (
	"context"
	"time"

	"housing-reviews/analytics-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type Leaderboard struct {
	mock.Mock
}

func (_m *Leaderboard) TopRated(ctx context.Context, limit int) ([]domain.Score, error) {
	ret := _m.Called(ctx, limit)

	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.Score, error)); ok {
		return rf(ctx, limit)
	}
	var r0 []domain.Score
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Score)
	}

	return r0, ret.Error(1)
}

func (_m *Leaderboard) Trending(ctx context.Context, day time.Time, limit int) ([]domain.Score, error) {
	ret := _m.Called(ctx, day, limit)

	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) ([]domain.Score, error)); ok {
		return rf(ctx, day, limit)
	}
	var r0 []domain.Score
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Score)
	}

	return r0, ret.Error(1)
}

func (_m *Leaderboard) Stats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
	ret := _m.Called(ctx, housingID)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.HousingStats, error)); ok {
		return rf(ctx, housingID)
	}
	var r0 *domain.HousingStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.HousingStats)
	}

	return r0, ret.Error(1)
}

// NewLeaderboard registers cleanup that asserts every expectation was met.
func NewLeaderboard(t interface {
	mock.TestingT
	Cleanup(func())
}) *Leaderboard {
	m := &Leaderboard{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
