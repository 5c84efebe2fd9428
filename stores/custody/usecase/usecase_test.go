package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/custody"
	custodyMocks "github.com/x-xyz/goauction/domain/custody/mocks"
	"github.com/x-xyz/goauction/domain/ledger"
	ledgerMocks "github.com/x-xyz/goauction/domain/ledger/mocks"
)

const (
	assetId = domain.AssetId("nft:1")
	owner   = domain.Address("0x00000000000000000000000000000000000000aa")
	buyer   = domain.Address("0x00000000000000000000000000000000000000bb")
	dev     = domain.Address("0x00000000000000000000000000000000000000dd")
	deposit = int64(2_039_280)
)

var (
	mockCtx = ctx.Background()
	slotId  = custody.SlotIdFor(assetId)
)

type custodySuite struct {
	suite.Suite

	slots  *custodyMocks.SlotRepo
	ledger *ledgerMocks.UseCase
	im     *impl
}

func TestCustodySuite(t *testing.T) {
	suite.Run(t, new(custodySuite))
}

func (s *custodySuite) SetupTest() {
	s.slots = &custodyMocks.SlotRepo{}
	s.ledger = &ledgerMocks.UseCase{}
	s.im = New(s.slots, s.ledger, deposit).(*impl)
}

func (s *custodySuite) TearDownTest() {
	s.slots.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func liveAuction() *auction.Auction {
	return &auction.Auction{
		AssetId:    assetId,
		Owner:      owner,
		CustodyRef: slotId,
		State:      auction.StateCreated,
		Terms: auction.Terms{
			StartTime:            0,
			StartPrice:           decimal.NewFromInt(10),
			FloorPrice:           decimal.NewFromInt(5),
			DecayStep:            decimal.NewFromInt(1),
			DecayIntervalMinutes: 10,
		},
	}
}

func (s *custodySuite) settleGrant() auction.ReleaseGrant {
	t, err := liveAuction().BeginSettle(buyer, dev, time.Unix(0, 0), auction.DefaultMinorUnitsPerUnit)
	s.Require().NoError(err)
	g, err := t.Grant()
	s.Require().NoError(err)
	return g
}

func (s *custodySuite) fundedSlot() *custody.Slot {
	return &custody.Slot{Id: slotId, AssetId: assetId, Owner: owner, Deposit: deposit, Units: 1}
}

func (s *custodySuite) TestProvision() {
	s.slots.On("Create", mockCtx, mock.MatchedBy(func(slot *custody.Slot) bool {
		return slot.Id == slotId && slot.AssetId == assetId && slot.Units == 0 && !slot.Closed
	})).Return(nil).Once()

	slot, err := s.im.Provision(mockCtx, assetId)
	s.Require().NoError(err)
	s.Equal(slotId, slot.Id)
}

func (s *custodySuite) TestDeposit() {
	s.slots.On("FindOne", mockCtx, slotId).Return(&custody.Slot{Id: slotId, AssetId: assetId, Closed: true}, nil).Once()
	s.ledger.On("TransferCurrency", mockCtx, domain.AddressHolder(owner), domain.Holder(slotId), deposit, mock.Anything).Return(nil).Once()
	s.ledger.On("TransferAsset", mockCtx, domain.AddressHolder(owner), domain.Holder(slotId), assetId, int64(1), mock.Anything).Return(nil).Once()
	s.slots.On("Update", mockCtx, slotId, mock.MatchedBy(func(p *custody.SlotPatchable) bool {
		return *p.Owner == owner && *p.Deposit == deposit && *p.Units == 1 && !*p.Closed
	})).Return(nil).Once()

	s.NoError(s.im.Deposit(mockCtx, slotId, owner))
}

func (s *custodySuite) TestDepositOccupied() {
	s.slots.On("FindOne", mockCtx, slotId).Return(s.fundedSlot(), nil).Once()
	s.Equal(custody.ErrSlotOccupied, s.im.Deposit(mockCtx, slotId, owner))
}

func (s *custodySuite) TestDepositWithoutAsset() {
	s.slots.On("FindOne", mockCtx, slotId).Return(&custody.Slot{Id: slotId, AssetId: assetId}, nil).Once()
	s.ledger.On("TransferCurrency", mockCtx, mock.Anything, mock.Anything, deposit, mock.Anything).Return(nil).Once()
	s.ledger.On("TransferAsset", mockCtx, mock.Anything, mock.Anything, assetId, int64(1), mock.Anything).Return(ledger.ErrInsufficientAsset).Once()

	s.ErrorIs(s.im.Deposit(mockCtx, slotId, owner), ledger.ErrInsufficientAsset)
}

func (s *custodySuite) TestRelease() {
	s.slots.On("FindOne", mockCtx, slotId).Return(s.fundedSlot(), nil).Once()
	s.ledger.On("TransferAsset", mockCtx, domain.Holder(slotId), domain.AddressHolder(buyer), assetId, int64(1), "custody settle").Return(nil).Once()
	s.ledger.On("TransferCurrency", mockCtx, domain.Holder(slotId), domain.AddressHolder(owner), deposit, mock.Anything).Return(nil).Once()
	s.slots.On("Update", mockCtx, slotId, mock.MatchedBy(func(p *custody.SlotPatchable) bool {
		return *p.Units == 0 && *p.Deposit == 0 && *p.Closed && p.Owner == nil
	})).Return(nil).Once()

	s.NoError(s.im.Release(mockCtx, s.settleGrant()))
}

func (s *custodySuite) TestReleaseRejects() {
	s.Equal(custody.ErrInvalidGrant, s.im.Release(mockCtx, auction.ReleaseGrant{}))

	s.slots.On("FindOne", mockCtx, slotId).Return(&custody.Slot{Id: slotId, AssetId: assetId, Owner: owner, Closed: true}, nil).Once()
	s.Equal(custody.ErrSlotClosed, s.im.Release(mockCtx, s.settleGrant()))

	s.slots.On("FindOne", mockCtx, slotId).Return(&custody.Slot{Id: slotId, AssetId: assetId, Owner: owner}, nil).Once()
	s.Equal(custody.ErrSlotClosed, s.im.Release(mockCtx, s.settleGrant()))

	other := s.fundedSlot()
	other.Owner = dev
	s.slots.On("FindOne", mockCtx, slotId).Return(other, nil).Once()
	s.Equal(custody.ErrInvalidGrant, s.im.Release(mockCtx, s.settleGrant()))

	other = s.fundedSlot()
	other.AssetId = "nft:2"
	s.slots.On("FindOne", mockCtx, slotId).Return(other, nil).Once()
	s.Equal(custody.ErrInvalidGrant, s.im.Release(mockCtx, s.settleGrant()))
}
