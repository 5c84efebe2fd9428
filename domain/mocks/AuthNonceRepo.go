package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
)

// AuthNonceRepo is a mock type for the AuthNonceRepo type
type AuthNonceRepo struct {
	mock.Mock
}

// FindOne provides a mock function with given fields: c, address
func (_m *AuthNonceRepo) FindOne(c ctx.Ctx, address domain.Address) (*domain.AuthNonce, error) {
	ret := _m.Called(c, address)

	var r0 *domain.AuthNonce
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address) *domain.AuthNonce); ok {
		r0 = rf(c, address)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.AuthNonce)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address) error); ok {
		r1 = rf(c, address)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Upsert provides a mock function with given fields: c, nonce
func (_m *AuthNonceRepo) Upsert(c ctx.Ctx, nonce *domain.AuthNonce) error {
	ret := _m.Called(c, nonce)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *domain.AuthNonce) error); ok {
		r0 = rf(c, nonce)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
