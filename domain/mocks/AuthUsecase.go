package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
)

// AuthUsecase is a mock type for the AuthUsecase type
type AuthUsecase struct {
	mock.Mock
}

// GetNonce provides a mock function with given fields: c, address
func (_m *AuthUsecase) GetNonce(c ctx.Ctx, address domain.Address) (string, error) {
	ret := _m.Called(c, address)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address) string); ok {
		r0 = rf(c, address)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address) error); ok {
		r1 = rf(c, address)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ParseToken provides a mock function with given fields: c, token
func (_m *AuthUsecase) ParseToken(c ctx.Ctx, token string) (string, error) {
	ret := _m.Called(c, token)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) string); ok {
		r0 = rf(c, token)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(c, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignToken provides a mock function with given fields: c, address, signature
func (_m *AuthUsecase) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	ret := _m.Called(c, address, signature)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, string) string); ok {
		r0 = rf(c, address, signature)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, string) error); ok {
		r1 = rf(c, address, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
