package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
)

// Transactor is a mock type for the Transactor type
type Transactor struct {
	mock.Mock
}

// RunWithTransaction provides a mock function with given fields: c, fn
func (_m *Transactor) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	ret := _m.Called(c, fn)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, func(ctx.Ctx) error) error); ok {
		r0 = rf(c, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PassThrough makes RunWithTransaction call fn directly and return its error
func (_m *Transactor) PassThrough() *mock.Call {
	return _m.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, fn func(ctx.Ctx) error) error {
		return fn(c)
	})
}
