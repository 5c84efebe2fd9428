package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
)

// HealthCheckRepo is a mock type for the HealthCheckRepo type
type HealthCheckRepo struct {
	mock.Mock
}

// PingCache provides a mock function with given fields: context
func (_m *HealthCheckRepo) PingCache(context ctx.Ctx) error {
	ret := _m.Called(context)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx) error); ok {
		r0 = rf(context)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PingDB provides a mock function with given fields: context
func (_m *HealthCheckRepo) PingDB(context ctx.Ctx) error {
	ret := _m.Called(context)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx) error); ok {
		r0 = rf(context)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
