package custody

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

var (
	ErrSlotClosed   = errors.New("custody slot is closed")
	ErrSlotOccupied = errors.New("custody slot already holds the asset")
	ErrInvalidGrant = errors.New("release grant does not match custody slot")
)

// Slot holds at most one unit of its bound asset for the duration of an auction.
type Slot struct {
	Id      string         `json:"id" bson:"_id"`
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
	// Owner paid the deposit and gets it back when the slot closes
	Owner     domain.Address `json:"owner" bson:"owner"`
	Deposit   int64          `json:"deposit" bson:"deposit"`
	Units     int64          `json:"units" bson:"units"`
	Closed    bool           `json:"closed" bson:"closed"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func SlotIdFor(assetId domain.AssetId) string {
	return "escrow:" + assetId.String()
}

func (s *Slot) Holder() domain.Holder {
	return domain.Holder(s.Id)
}

type SlotPatchable struct {
	Owner     *domain.Address `bson:"owner,omitempty"`
	Deposit   *int64          `bson:"deposit,omitempty"`
	Units     *int64          `bson:"units,omitempty"`
	Closed    *bool           `bson:"closed,omitempty"`
	UpdatedAt *time.Time      `bson:"updatedAt,omitempty"`
}

type SlotRepo interface {
	FindOne(ctx ctx.Ctx, id string) (*Slot, error)
	Create(ctx ctx.Ctx, slot *Slot) error
	Update(ctx ctx.Ctx, id string, patchable *SlotPatchable) error
}

type UseCase interface {
	// Provision creates the empty open slot bound to assetId
	Provision(ctx ctx.Ctx, assetId domain.AssetId) (*Slot, error)
	// Deposit moves one unit of the bound asset from `from` into the slot and charges the slot deposit
	Deposit(ctx ctx.Ctx, slotId string, from domain.Address) error
	// Release hands the unit to the grant's recipient and closes the emptied slot
	Release(ctx ctx.Ctx, grant auction.ReleaseGrant) error
	Get(ctx ctx.Ctx, slotId string) (*Slot, error)
}
