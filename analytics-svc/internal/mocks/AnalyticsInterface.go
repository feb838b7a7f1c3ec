package mocks

import (
	"context"

	"housing-reviews/analytics-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) TopRated(ctx context.Context) ([]domain.HousingAnalytics, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.HousingAnalytics, error)); ok {
		return rf(ctx)
	}
	var r0 []domain.HousingAnalytics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.HousingAnalytics)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) Trending(ctx context.Context) ([]domain.HousingAnalytics, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.HousingAnalytics, error)); ok {
		return rf(ctx)
	}
	var r0 []domain.HousingAnalytics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.HousingAnalytics)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) HousingStats(ctx context.Context, housingID string) (*domain.HousingStats, error) {
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

// NewAnalyticsInterface registers cleanup that asserts every expectation was met.
func NewAnalyticsInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
