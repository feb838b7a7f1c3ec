package mocks

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.User) error); ok {
		return rf(ctx, user)
	}

	return ret.Error(0)
}

func (_m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := _m.Called(ctx, email)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.User, error)); ok {
		return rf(ctx, email)
	}
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.User, error)); ok {
		return rf(ctx, id)
	}
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.User, error)); ok {
		return rf(ctx)
	}
	var r0 []domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) UpdateProfile(ctx context.Context, id int64, profile domain.Profile) (*domain.User, error) {
	ret := _m.Called(ctx, id, profile)

	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.Profile) (*domain.User, error)); ok {
		return rf(ctx, id, profile)
	}
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) MarkEmailVerified(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

func (_m *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

func (_m *UserRepository) AddNotifications(ctx context.Context, email string, delta int) (*domain.User, error) {
	ret := _m.Called(ctx, email, delta)

	if rf, ok := ret.Get(0).(func(context.Context, string, int) (*domain.User, error)); ok {
		return rf(ctx, email, delta)
	}
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

// NewUserRepository registers cleanup that asserts every expectation was met.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
