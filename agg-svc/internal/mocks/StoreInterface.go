package mocks

import (
	"context"

	"housing-reviews/agg-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) MirrorStats(ctx context.Context, event domain.ReviewEvent) error {
	ret := _m.Called(ctx, event)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ReviewEvent) error); ok {
		return rf(ctx, event)
	}

	return ret.Error(0)
}

func (_m *StoreInterface) UpdateAnalytics(ctx context.Context, event domain.ReviewEvent) error {
	ret := _m.Called(ctx, event)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ReviewEvent) error); ok {
		return rf(ctx, event)
	}

	return ret.Error(0)
}

// NewStoreInterface registers cleanup that asserts every expectation was met.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
