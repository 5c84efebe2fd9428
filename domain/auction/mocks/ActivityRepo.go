package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	domain "github.com/x-xyz/goauction/domain"
	auction "github.com/x-xyz/goauction/domain/auction"
)

// ActivityRepo is a mock type for the ActivityRepo type
type ActivityRepo struct {
	mock.Mock
}

// FindAll provides a mock function with given fields: c, assetId, offset, limit
func (_m *ActivityRepo) FindAll(c ctx.Ctx, assetId domain.AssetId, offset int, limit int) ([]*auction.Activity, error) {
	ret := _m.Called(c, assetId, offset, limit)

	var r0 []*auction.Activity
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.AssetId, int, int) []*auction.Activity); ok {
		r0 = rf(c, assetId, offset, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*auction.Activity)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.AssetId, int, int) error); ok {
		r1 = rf(c, assetId, offset, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Insert provides a mock function with given fields: c, activity
func (_m *ActivityRepo) Insert(c ctx.Ctx, activity *auction.Activity) error {
	ret := _m.Called(c, activity)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *auction.Activity) error); ok {
		r0 = rf(c, activity)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
