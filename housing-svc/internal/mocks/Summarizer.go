package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

type Summarizer struct {
	mock.Mock
}

func (_m *Summarizer) Summarize(ctx context.Context, reviews []string) (string, error) {
	ret := _m.Called(ctx, reviews)

	if rf, ok := ret.Get(0).(func(context.Context, []string) (string, error)); ok {
		return rf(ctx, reviews)
	}
	r0 := ret.String(0)

	return r0, ret.Error(1)
}

// NewSummarizer registers cleanup that asserts every expectation was met.
func NewSummarizer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Summarizer {
	m := &Summarizer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
