package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type HousingCache struct {
	mock.Mock
}

func (_m *HousingCache) GetHousing(ctx context.Context, id string) (*domain.Housing, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Housing, error)); ok {
		return rf(ctx, id)
	}
	var r0 *domain.Housing
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Housing)
	}

	return r0, ret.Error(1)
}

func (_m *HousingCache) SetHousing(ctx context.Context, housing *domain.Housing) error {
	ret := _m.Called(ctx, housing)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Housing) error); ok {
		return rf(ctx, housing)
	}

	return ret.Error(0)
}

func (_m *HousingCache) InvalidateHousing(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

// NewHousingCache registers cleanup that asserts every expectation was met.
func NewHousingCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *HousingCache {
	m := &HousingCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
