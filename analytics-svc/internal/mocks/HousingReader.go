package mocks

import (
	"context"
	"time"

	"housing-reviews/analytics-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type HousingReader struct {
	mock.Mock
}

func (_m *HousingReader) HousingsByIDs(ctx context.Context, ids []string) (map[string]domain.HousingAnalytics, error) {
	ret := _m.Called(ctx, ids)

	if rf, ok := ret.Get(0).(func(context.Context, []string) (map[string]domain.HousingAnalytics, error)); ok {
		return rf(ctx, ids)
	}
	var r0 map[string]domain.HousingAnalytics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]domain.HousingAnalytics)
	}

	return r0, ret.Error(1)
}

func (_m *HousingReader) TopRated(ctx context.Context, limit int) ([]domain.HousingAnalytics, error) {
	ret := _m.Called(ctx, limit)

	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.HousingAnalytics, error)); ok {
		return rf(ctx, limit)
	}
	var r0 []domain.HousingAnalytics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.HousingAnalytics)
	}

	return r0, ret.Error(1)
}

func (_m *HousingReader) Trending(ctx context.Context, since time.Time, limit int) ([]domain.HousingAnalytics, error) {
	ret := _m.Called(ctx, since, limit)

	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) ([]domain.HousingAnalytics, error)); ok {
		return rf(ctx, since, limit)
	}
	var r0 []domain.HousingAnalytics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.HousingAnalytics)
	}

	return r0, ret.Error(1)
}

func (_m *HousingReader) Stats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
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

// NewHousingReader registers cleanup that asserts every expectation was met.
func NewHousingReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *HousingReader {
	m := &HousingReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
