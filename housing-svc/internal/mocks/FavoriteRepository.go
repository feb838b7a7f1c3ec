package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type FavoriteRepository struct {
	mock.Mock
}

func (_m *FavoriteRepository) AddFavoriteHousing(ctx context.Context, fav *domain.FavoriteHousing) error {
	ret := _m.Called(ctx, fav)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.FavoriteHousing) error); ok {
		return rf(ctx, fav)
	}

	return ret.Error(0)
}

func (_m *FavoriteRepository) GetFavoriteHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error) {
	ret := _m.Called(ctx, userID, housingID)

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.FavoriteHousing, error)); ok {
		return rf(ctx, userID, housingID)
	}
	var r0 *domain.FavoriteHousing
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.FavoriteHousing)
	}

	return r0, ret.Error(1)
}

func (_m *FavoriteRepository) RemoveFavoriteHousing(ctx context.Context, userID int64, housingID string) error {
	ret := _m.Called(ctx, userID, housingID)

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		return rf(ctx, userID, housingID)
	}

	return ret.Error(0)
}

func (_m *FavoriteRepository) ListFavoriteHousings(ctx context.Context, userID int64) ([]domain.Housing, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Housing, error)); ok {
		return rf(ctx, userID)
	}
	var r0 []domain.Housing
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Housing)
	}

	return r0, ret.Error(1)
}

func (_m *FavoriteRepository) AddFavoritePost(ctx context.Context, fav *domain.FavoritePost) error {
	ret := _m.Called(ctx, fav)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.FavoritePost) error); ok {
		return rf(ctx, fav)
	}

	return ret.Error(0)
}

func (_m *FavoriteRepository) GetFavoritePost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error) {
	ret := _m.Called(ctx, userID, postID)

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.FavoritePost, error)); ok {
		return rf(ctx, userID, postID)
	}
	var r0 *domain.FavoritePost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.FavoritePost)
	}

	return r0, ret.Error(1)
}

func (_m *FavoriteRepository) RemoveFavoritePost(ctx context.Context, userID int64, postID string) error {
	ret := _m.Called(ctx, userID, postID)

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		return rf(ctx, userID, postID)
	}

	return ret.Error(0)
}

func (_m *FavoriteRepository) ListFavoritePosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Post, error)); ok {
		return rf(ctx, userID)
	}
	var r0 []domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}

	return r0, ret.Error(1)
}

// NewFavoriteRepository registers cleanup that asserts every expectation was met.
func NewFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteRepository {
	m := &FavoriteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
