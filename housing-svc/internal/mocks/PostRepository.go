package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type PostRepository struct {
	mock.Mock
}

func (_m *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	ret := _m.Called(ctx, post)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Post) error); ok {
		return rf(ctx, post)
	}

	return ret.Error(0)
}

func (_m *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Post, error)); ok {
		return rf(ctx, id)
	}
	var r0 *domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Post)
	}

	return r0, ret.Error(1)
}

func (_m *PostRepository) ListPosts(ctx context.Context, query domain.PostQuery) ([]domain.Post, int, error) {
	ret := _m.Called(ctx, query)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PostQuery) ([]domain.Post, int, error)); ok {
		return rf(ctx, query)
	}
	var r0 []domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}
	r1 := ret.Int(1)

	return r0, r1, ret.Error(2)
}

func (_m *PostRepository) UpdatePost(ctx context.Context, post *domain.Post) error {
	ret := _m.Called(ctx, post)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Post) error); ok {
		return rf(ctx, post)
	}

	return ret.Error(0)
}

func (_m *PostRepository) DeletePost(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

// NewPostRepository registers cleanup that asserts every expectation was met.
func NewPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostRepository {
	m := &PostRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
