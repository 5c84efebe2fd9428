package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
	auction "github.com/x-xyz/goauction/domain/auction"
	custody "github.com/x-xyz/goauction/domain/custody"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

// Deposit provides a mock function with given fields: c, slotId, from
func (_m *UseCase) Deposit(c ctx.Ctx, slotId string, from domain.Address) error {
	ret := _m.Called(c, slotId, from)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string, domain.Address) error); ok {
		r0 = rf(c, slotId, from)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: c, slotId
func (_m *UseCase) Get(c ctx.Ctx, slotId string) (*custody.Slot, error) {
	ret := _m.Called(c, slotId)

	var r0 *custody.Slot
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) *custody.Slot); ok {
		r0 = rf(c, slotId)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*custody.Slot)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(c, slotId)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Provision provides a mock function with given fields: c, assetId
func (_m *UseCase) Provision(c ctx.Ctx, assetId domain.AssetId) (*custody.Slot, error) {
	ret := _m.Called(c, assetId)

	var r0 *custody.Slot
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.AssetId) *custody.Slot); ok {
		r0 = rf(c, assetId)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*custody.Slot)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.AssetId) error); ok {
		r1 = rf(c, assetId)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Release provides a mock function with given fields: c, grant
func (_m *UseCase) Release(c ctx.Ctx, grant auction.ReleaseGrant) error {
	ret := _m.Called(c, grant)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, auction.ReleaseGrant) error); ok {
		r0 = rf(c, grant)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
