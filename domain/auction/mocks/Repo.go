package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
	auction "github.com/x-xyz/goauction/domain/auction"
)

// Repo is a mock type for the Repo type
type Repo struct {
	mock.Mock
}

// Commit provides a mock function with given fields: c, t
func (_m *Repo) Commit(c ctx.Ctx, t *auction.Transition) error {
	ret := _m.Called(c, t)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Transition) error); ok {
		r0 = rf(c, t)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Count provides a mock function with given fields: c, opts
func (_m *Repo) Count(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, c)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 int
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ...auction.FindAllOptionsFunc) int); ok {
		r0 = rf(c, opts...)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ...auction.FindAllOptionsFunc) error); ok {
		r1 = rf(c, opts...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: c, a
func (_m *Repo) Create(c ctx.Ctx, a *auction.Auction) error {
	ret := _m.Called(c, a)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Auction) error); ok {
		r0 = rf(c, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindAll provides a mock function with given fields: c, opts
func (_m *Repo) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, c)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 []*auction.Auction
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ...auction.FindAllOptionsFunc) []*auction.Auction); ok {
		r0 = rf(c, opts...)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*auction.Auction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ...auction.FindAllOptionsFunc) error); ok {
		r1 = rf(c, opts...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindOne provides a mock function with given fields: c, assetId
func (_m *Repo) FindOne(c ctx.Ctx, assetId domain.AssetId) (*auction.Auction, error) {
	ret := _m.Called(c, assetId)

	var r0 *auction.Auction
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.AssetId) *auction.Auction); ok {
		r0 = rf(c, assetId)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*auction.Auction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.AssetId) error); ok {
		r1 = rf(c, assetId)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
