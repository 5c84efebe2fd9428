package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/domain/ledger"
)

var (
	timeNow = time.Now
	met     = metrics.New("custody")
)

type impl struct {
	slotRepo custody.SlotRepo
	ledger   ledger.UseCase
	deposit  int64
}

// New returns the custody usecase. deposit is charged in currency minor units
// from whoever funds a slot and refunded to them when it closes.
func New(slotRepo custody.SlotRepo, ledger ledger.UseCase, deposit int64) custody.UseCase {
	return &impl{
		slotRepo: slotRepo,
		ledger:   ledger,
		deposit:  deposit,
	}
}

func (im *impl) Provision(c ctx.Ctx, assetId domain.AssetId) (*custody.Slot, error) {
	now := timeNow()
	slot := &custody.Slot{
		Id:        custody.SlotIdFor(assetId),
		AssetId:   assetId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.slotRepo.Create(c, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (im *impl) Get(c ctx.Ctx, slotId string) (*custody.Slot, error) {
	return im.slotRepo.FindOne(c, slotId)
}

func (im *impl) Deposit(c ctx.Ctx, slotId string, from domain.Address) error {
	defer met.BumpTime("deposit.time").End()

	slot, err := im.slotRepo.FindOne(c, slotId)
	if err != nil {
		return err
	}
	if slot.Units > 0 {
		return custody.ErrSlotOccupied
	}

	holder := domain.AddressHolder(from)
	if err := im.ledger.TransferCurrency(c, holder, slot.Holder(), im.deposit, "custody deposit"); err != nil {
		return xerrors.Errorf("charge deposit: %w", err)
	}
	if err := im.ledger.TransferAsset(c, holder, slot.Holder(), slot.AssetId, 1, "custody deposit"); err != nil {
		return xerrors.Errorf("move asset into custody: %w", err)
	}

	owner := from.ToLower()
	if err := im.slotRepo.Update(c, slotId, &custody.SlotPatchable{
		Owner:     &owner,
		Deposit:   ptr.Int64(im.deposit),
		Units:     ptr.Int64(1),
		Closed:    ptr.Bool(false),
		UpdatedAt: ptr.Time(timeNow()),
	}); err != nil {
		c.WithFields(log.Fields{"slotId": slotId, "err": err}).Error("slotRepo.Update failed")
		return err
	}
	return nil
}

func (im *impl) Release(c ctx.Ctx, grant auction.ReleaseGrant) error {
	defer met.BumpTime("release.time", "kind", string(grant.Kind())).End()

	if !grant.Valid() {
		return custody.ErrInvalidGrant
	}

	slot, err := im.slotRepo.FindOne(c, grant.CustodyRef())
	if err != nil {
		return err
	}
	if slot.Closed || slot.Units == 0 {
		return custody.ErrSlotClosed
	}
	if slot.AssetId != grant.AssetId() || !slot.Owner.Equals(grant.Owner()) {
		c.WithFields(log.Fields{
			"slot":      slot,
			"grantKind": grant.Kind(),
			"assetId":   grant.AssetId(),
		}).Warn("grant does not match slot")
		return custody.ErrInvalidGrant
	}

	memo := "custody " + string(grant.Kind())
	if err := im.ledger.TransferAsset(c, slot.Holder(), domain.AddressHolder(grant.Recipient()), slot.AssetId, slot.Units, memo); err != nil {
		return xerrors.Errorf("release asset: %w", err)
	}

	// the emptied slot closes and hands its deposit back
	if err := im.ledger.TransferCurrency(c, slot.Holder(), domain.AddressHolder(slot.Owner), slot.Deposit, "custody refund"); err != nil {
		return xerrors.Errorf("refund deposit: %w", err)
	}

	if err := im.slotRepo.Update(c, slot.Id, &custody.SlotPatchable{
		Deposit:   ptr.Int64(0),
		Units:     ptr.Int64(0),
		Closed:    ptr.Bool(true),
		UpdatedAt: ptr.Time(timeNow()),
	}); err != nil {
		c.WithFields(log.Fields{"slotId": slot.Id, "err": err}).Error("slotRepo.Update failed")
		return err
	}
	return nil
}
