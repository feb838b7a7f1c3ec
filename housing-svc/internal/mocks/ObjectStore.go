package mocks

import (
	"context"
	"io"

	mock "github.com/stretchr/testify/mock"
)

type ObjectStore struct {
	mock.Mock
}

func (_m *ObjectStore) PutObject(ctx context.Context, path string, body io.Reader, size int64, contentType string) (string, error) {
	ret := _m.Called(ctx, path, body, size, contentType)

	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, int64, string) (string, error)); ok {
		return rf(ctx, path, body, size, contentType)
	}
	r0 := ret.String(0)

	return r0, ret.Error(1)
}

func (_m *ObjectStore) RemoveObjects(ctx context.Context, paths []string) error {
	ret := _m.Called(ctx, paths)

	if rf, ok := ret.Get(0).(func(context.Context, []string) error); ok {
		return rf(ctx, paths)
	}

	return ret.Error(0)
}

// NewObjectStore registers cleanup that asserts every expectation was met.
func NewObjectStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ObjectStore {
	m := &ObjectStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
