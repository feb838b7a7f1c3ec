package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type HousingRepository struct {
	mock.Mock
}

func (_m *HousingRepository) CreateHousing(ctx context.Context, housing *domain.Housing) error {
	ret := _m.Called(ctx, housing)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Housing) error); ok {
		return rf(ctx, housing)
	}

	return ret.Error(0)
}

func (_m *HousingRepository) GetHousing(ctx context.Context, id string) (*domain.Housing, error) {
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

func (_m *HousingRepository) ListHousings(ctx context.Context, query domain.HousingQuery) ([]domain.Housing, int, error) {
	ret := _m.Called(ctx, query)

	if rf, ok := ret.Get(0).(func(context.Context, domain.HousingQuery) ([]domain.Housing, int, error)); ok {
		return rf(ctx, query)
	}
	var r0 []domain.Housing
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Housing)
	}
	r1 := ret.Int(1)

	return r0, r1, ret.Error(2)
}

func (_m *HousingRepository) UpdateHousing(ctx context.Context, housing *domain.Housing) error {
	ret := _m.Called(ctx, housing)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Housing) error); ok {
		return rf(ctx, housing)
	}

	return ret.Error(0)
}

func (_m *HousingRepository) DeleteHousing(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

// NewHousingRepository registers cleanup that asserts every expectation was met.
func NewHousingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *HousingRepository {
	m := &HousingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
