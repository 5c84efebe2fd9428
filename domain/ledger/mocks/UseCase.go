package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
	ledger "github.com/x-xyz/goauction/domain/ledger"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

// Balances provides a mock function with given fields: c, holder
func (_m *UseCase) Balances(c ctx.Ctx, holder domain.Holder) ([]*ledger.Balance, error) {
	ret := _m.Called(c, holder)

	var r0 []*ledger.Balance
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Holder) []*ledger.Balance); ok {
		r0 = rf(c, holder)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*ledger.Balance)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Holder) error); ok {
		r1 = rf(c, holder)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Credit provides a mock function with given fields: c, holder, amount
func (_m *UseCase) Credit(c ctx.Ctx, holder domain.Holder, amount int64) error {
	ret := _m.Called(c, holder, amount)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Holder, int64) error); ok {
		r0 = rf(c, holder, amount)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Mint provides a mock function with given fields: c, holder, assetId
func (_m *UseCase) Mint(c ctx.Ctx, holder domain.Holder, assetId domain.AssetId) error {
	ret := _m.Called(c, holder, assetId)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Holder, domain.AssetId) error); ok {
		r0 = rf(c, holder, assetId)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// TransferAsset provides a mock function with given fields: c, from, to, assetId, units, memo
func (_m *UseCase) TransferAsset(c ctx.Ctx, from domain.Holder, to domain.Holder, assetId domain.AssetId, units int64, memo string) error {
	ret := _m.Called(c, from, to, assetId, units, memo)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Holder, domain.Holder, domain.AssetId, int64, string) error); ok {
		r0 = rf(c, from, to, assetId, units, memo)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// TransferCurrency provides a mock function with given fields: c, from, to, amount, memo
func (_m *UseCase) TransferCurrency(c ctx.Ctx, from domain.Holder, to domain.Holder, amount int64, memo string) error {
	ret := _m.Called(c, from, to, amount, memo)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Holder, domain.Holder, int64, string) error); ok {
		r0 = rf(c, from, to, amount, memo)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
