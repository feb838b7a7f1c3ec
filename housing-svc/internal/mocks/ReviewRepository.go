package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) WithHousingLock(ctx context.Context, housingID string, fn func(service.ReviewTx, domain.Housing) error) error {
	ret := _m.Called(ctx, housingID, fn)

	if rf, ok := ret.Get(0).(func(context.Context, string, func(service.ReviewTx, domain.Housing) error) error); ok {
		return rf(ctx, housingID, fn)
	}

	return ret.Error(0)
}

func (_m *ReviewRepository) GetReview(ctx context.Context, housingID string, reviewID string) (*domain.Review, error) {
	ret := _m.Called(ctx, housingID, reviewID)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*domain.Review, error)); ok {
		return rf(ctx, housingID, reviewID)
	}
	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewRepository) ListReviews(ctx context.Context, housingID string, query domain.ReviewQuery) ([]domain.Review, int, error) {
	ret := _m.Called(ctx, housingID, query)

	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ReviewQuery) ([]domain.Review, int, error)); ok {
		return rf(ctx, housingID, query)
	}
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	r1 := ret.Int(1)

	return r0, r1, ret.Error(2)
}

func (_m *ReviewRepository) UpdateLedger(ctx context.Context, housingID string, reviewID string, fn func(*domain.Review) error) (*domain.Review, error) {
	ret := _m.Called(ctx, housingID, reviewID, fn)

	if rf, ok := ret.Get(0).(func(context.Context, string, string, func(*domain.Review) error) (*domain.Review, error)); ok {
		return rf(ctx, housingID, reviewID, fn)
	}
	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}

	return r0, ret.Error(1)
}

// NewReviewRepository registers cleanup that asserts every expectation was met.
func NewReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
