package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

type Mailer struct {
	mock.Mock
}

func (_m *Mailer) SendVerificationCode(to string, firstName string, code string) error {
	ret := _m.Called(to, firstName, code)

	if rf, ok := ret.Get(0).(func(string, string, string) error); ok {
		return rf(to, firstName, code)
	}

	return ret.Error(0)
}

// NewMailer registers cleanup that asserts every expectation was met.
func NewMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
