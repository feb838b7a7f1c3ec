package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type ReviewTx struct {
	mock.Mock
}

func (_m *ReviewTx) ListReviews(ctx context.Context) ([]domain.Review, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Review, error)); ok {
		return rf(ctx)
	}
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewTx) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	ret := _m.Called(ctx, reviewID)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Review, error)); ok {
		return rf(ctx, reviewID)
	}
	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewTx) InsertReview(ctx context.Context, review *domain.Review) error {
	ret := _m.Called(ctx, review)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Review) error); ok {
		return rf(ctx, review)
	}

	return ret.Error(0)
}

func (_m *ReviewTx) DeleteReview(ctx context.Context, reviewID string) error {
	ret := _m.Called(ctx, reviewID)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, reviewID)
	}

	return ret.Error(0)
}

func (_m *ReviewTx) SaveAggregates(ctx context.Context, result domain.ReviewMutationResult) error {
	ret := _m.Called(ctx, result)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ReviewMutationResult) error); ok {
		return rf(ctx, result)
	}

	return ret.Error(0)
}

// NewReviewTx registers cleanup that asserts every expectation was met.
func NewReviewTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewTx {
	m := &ReviewTx{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
