package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type ImageRepository struct {
	mock.Mock
}

func (_m *ImageRepository) ListImages(ctx context.Context, postID string) ([]domain.PostImage, error) {
	ret := _m.Called(ctx, postID)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.PostImage, error)); ok {
		return rf(ctx, postID)
	}
	var r0 []domain.PostImage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PostImage)
	}

	return r0, ret.Error(1)
}

func (_m *ImageRepository) AddImages(ctx context.Context, images []domain.PostImage) error {
	ret := _m.Called(ctx, images)

	if rf, ok := ret.Get(0).(func(context.Context, []domain.PostImage) error); ok {
		return rf(ctx, images)
	}

	return ret.Error(0)
}

func (_m *ImageRepository) SoftDeleteImages(ctx context.Context, postID string, ids []string) (int64, error) {
	ret := _m.Called(ctx, postID, ids)

	if rf, ok := ret.Get(0).(func(context.Context, string, []string) (int64, error)); ok {
		return rf(ctx, postID, ids)
	}
	r0 := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

func (_m *ImageRepository) ListPurgeable(ctx context.Context) ([]domain.PostImage, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.PostImage, error)); ok {
		return rf(ctx)
	}
	var r0 []domain.PostImage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PostImage)
	}

	return r0, ret.Error(1)
}

func (_m *ImageRepository) HardDeleteImages(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)

	if rf, ok := ret.Get(0).(func(context.Context, []string) error); ok {
		return rf(ctx, ids)
	}

	return ret.Error(0)
}

// NewImageRepository registers cleanup that asserts every expectation was met.
func NewImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageRepository {
	m := &ImageRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
