package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(housingID string) ([]byte, error) {
	ret := _m.Called(housingID)

	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(housingID)
	}
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewQRGenerator registers cleanup that asserts every expectation was met.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
