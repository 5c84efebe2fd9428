package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
	ledger "github.com/x-xyz/goauction/domain/ledger"
)

// Repo is a mock type for the Repo type
type Repo struct {
	mock.Mock
}

// Credit provides a mock function with given fields: c, id, amount
func (_m *Repo) Credit(c ctx.Ctx, id ledger.BalanceId, amount int64) error {
	ret := _m.Called(c, id, amount)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ledger.BalanceId, int64) error); ok {
		r0 = rf(c, id, amount)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Debit provides a mock function with given fields: c, id, amount
func (_m *Repo) Debit(c ctx.Ctx, id ledger.BalanceId, amount int64) error {
	ret := _m.Called(c, id, amount)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ledger.BalanceId, int64) error); ok {
		r0 = rf(c, id, amount)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindAll provides a mock function with given fields: c, holder
func (_m *Repo) FindAll(c ctx.Ctx, holder domain.Holder) ([]*ledger.Balance, error) {
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

// InsertEntry provides a mock function with given fields: c, entry
func (_m *Repo) InsertEntry(c ctx.Ctx, entry *ledger.Entry) error {
	ret := _m.Called(c, entry)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *ledger.Entry) error); ok {
		r0 = rf(c, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
