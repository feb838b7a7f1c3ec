package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type ReviewPublisher struct {
	mock.Mock
}

func (_m *ReviewPublisher) PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error {
	ret := _m.Called(ctx, event)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ReviewEvent) error); ok {
		return rf(ctx, event)
	}

	return ret.Error(0)
}

// NewReviewPublisher registers cleanup that asserts every expectation was met.
func NewReviewPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewPublisher {
	m := &ReviewPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
