package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/goauction/base/ctx"
	custody "github.com/x-xyz/goauction/domain/custody"
)

// SlotRepo is a mock type for the SlotRepo type
type SlotRepo struct {
	mock.Mock
}

// Create provides a mock function with given fields: c, slot
func (_m *SlotRepo) Create(c ctx.Ctx, slot *custody.Slot) error {
	ret := _m.Called(c, slot)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, *custody.Slot) error); ok {
		r0 = rf(c, slot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindOne provides a mock function with given fields: c, id
func (_m *SlotRepo) FindOne(c ctx.Ctx, id string) (*custody.Slot, error) {
	ret := _m.Called(c, id)

	var r0 *custody.Slot
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) *custody.Slot); ok {
		r0 = rf(c, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*custody.Slot)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(c, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: c, id, patchable
func (_m *SlotRepo) Update(c ctx.Ctx, id string, patchable *custody.SlotPatchable) error {
	ret := _m.Called(c, id, patchable)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string, *custody.SlotPatchable) error); ok {
		r0 = rf(c, id, patchable)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
