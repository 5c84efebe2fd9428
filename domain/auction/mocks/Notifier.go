package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	auction "github.com/x-xyz/goauction/domain/auction"
)

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

// AuctionReclaimed provides a mock function with given fields: c, a
func (_m *Notifier) AuctionReclaimed(c ctx.Ctx, a *auction.Auction) error {
	ret := _m.Called(c, a)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Auction) error); ok {
		r0 = rf(c, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AuctionSettled provides a mock function with given fields: c, a, split
func (_m *Notifier) AuctionSettled(c ctx.Ctx, a *auction.Auction, split auction.Split) error {
	ret := _m.Called(c, a, split)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Auction, auction.Split) error); ok {
		r0 = rf(c, a, split)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FloorReached provides a mock function with given fields: c, a
func (_m *Notifier) FloorReached(c ctx.Ctx, a *auction.Auction) error {
	ret := _m.Called(c, a)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Auction) error); ok {
		r0 = rf(c, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
