package auction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrInvalidAuctionState        = errors.New("invalid auction state")
	ErrAuctionDidNotStart         = errors.New("auction did not start")
	ErrAuctionDidNotReachMinPrice = errors.New("auction did not reach min price")
	ErrNotAuctionOwner            = errors.New("caller is not the auction owner")
	ErrInvalidDecayInterval       = errors.New("decay interval must be positive")
)

// Auction is the persistent record of one asset under auction.
type Auction struct {
	AssetId    domain.AssetId `json:"assetId"`
	Owner      domain.Address `json:"owner"`
	CustodyRef string         `json:"custodyRef"`
	Terms
	State State `json:"state"`
	// only set once State is StateClosed
	SettledPrice *decimal.Decimal `json:"settledPrice,omitempty"`
	Buyer        domain.Address   `json:"buyer,omitempty"`
	FeeRecipient domain.Address   `json:"feeRecipient,omitempty"`

	Name     string `json:"name"`
	ImageUrl string `json:"imageUrl"`

	OpenedAt  *time.Time `json:"openedAt,omitempty"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type OpenRequest struct {
	Terms
	Name     string
	ImageUrl string
}

type TransitionKind string

const (
	KindOpen    TransitionKind = "open"
	KindSettle  TransitionKind = "settle"
	KindReclaim TransitionKind = "reclaim"
)

// Transition is a fully validated state change of one record, kept in memory
// until the repository commits it. Nothing is written when a Begin* call fails.
type Transition struct {
	kind    TransitionKind
	from    State
	next    Auction
	account domain.Address
	split   Split
	at      time.Time
}

func (t *Transition) Kind() TransitionKind { return t.kind }

// From is the state the record must still be in for the commit to apply
func (t *Transition) From() State { return t.from }

func (t *Transition) Next() Auction { return t.next }

// Account is the caller that triggered the transition: owner for open and reclaim, buyer for settle.
func (t *Transition) Account() domain.Address { return t.account }

// Split is empty unless Kind is KindSettle
func (t *Transition) Split() Split { return t.split }

func (t *Transition) At() time.Time { return t.at }

// BeginOpen populates the terms of a record that is not live.
func (a *Auction) BeginOpen(caller domain.Address, req OpenRequest, now time.Time, minorUnitsPerUnit int64) (*Transition, error) {
	if a.State == StateCreated {
		return nil, ErrInvalidAuctionState
	}
	if req.DecayIntervalMinutes <= 0 {
		return nil, ErrInvalidDecayInterval
	}
	if err := req.CheckPayable(minorUnitsPerUnit); err != nil {
		return nil, err
	}

	next := *a
	next.Owner = caller.ToLower()
	next.Terms = req.Terms
	next.Name = req.Name
	next.ImageUrl = req.ImageUrl
	next.State = StateCreated
	next.SettledPrice = nil
	next.Buyer = ""
	next.FeeRecipient = ""
	next.OpenedAt = &now
	next.ClosedAt = nil
	next.UpdatedAt = now

	return &Transition{
		kind:    KindOpen,
		from:    a.State,
		next:    next,
		account: next.Owner,
		at:      now,
	}, nil
}

// BeginSettle sells the asset to buyer at the current price.
func (a *Auction) BeginSettle(buyer, feeRecipient domain.Address, now time.Time, minorUnitsPerUnit int64) (*Transition, error) {
	unix := now.Unix()
	if !a.Started(unix) {
		return nil, ErrAuctionDidNotStart
	}
	if a.State != StateCreated {
		return nil, ErrInvalidAuctionState
	}

	price := a.PriceAt(unix)
	split, err := SplitPrice(price, minorUnitsPerUnit)
	if err != nil {
		return nil, err
	}
	next := *a
	next.SettledPrice = &price
	next.Buyer = buyer.ToLower()
	next.FeeRecipient = feeRecipient.ToLower()
	next.State = StateClosed
	next.ClosedAt = &now
	next.UpdatedAt = now

	return &Transition{
		kind:    KindSettle,
		from:    StateCreated,
		next:    next,
		account: next.Buyer,
		split:   split,
		at:      now,
	}, nil
}

// BeginReclaim returns the unsold asset to its owner once the price sits at the floor.
func (a *Auction) BeginReclaim(caller domain.Address, now time.Time) (*Transition, error) {
	if !caller.Equals(a.Owner) {
		return nil, ErrNotAuctionOwner
	}
	unix := now.Unix()
	if !a.Started(unix) {
		return nil, ErrAuctionDidNotStart
	}
	if a.State != StateCreated {
		return nil, ErrInvalidAuctionState
	}
	if !a.AtFloor(unix) {
		return nil, ErrAuctionDidNotReachMinPrice
	}

	next := *a
	next.State = StateCancelled
	next.ClosedAt = &now
	next.UpdatedAt = now

	return &Transition{
		kind:    KindReclaim,
		from:    StateCreated,
		next:    next,
		account: a.Owner,
		at:      now,
	}, nil
}

// Grant derives the custody release capability of a terminal transition.
func (t *Transition) Grant() (ReleaseGrant, error) {
	var recipient domain.Address
	switch t.kind {
	case KindSettle:
		recipient = t.next.Buyer
	case KindReclaim:
		recipient = t.next.Owner
	default:
		return ReleaseGrant{}, ErrInvalidAuctionState
	}
	return ReleaseGrant{
		kind:       t.kind,
		assetId:    t.next.AssetId,
		custodyRef: t.next.CustodyRef,
		recipient:  recipient,
		owner:      t.next.Owner,
	}, nil
}

// ReleaseGrant authorizes moving the asset out of exactly one custody slot.
// It can only be obtained from a validated Transition.
type ReleaseGrant struct {
	kind       TransitionKind
	assetId    domain.AssetId
	custodyRef string
	recipient  domain.Address
	owner      domain.Address
}

func (g ReleaseGrant) Kind() TransitionKind      { return g.kind }
func (g ReleaseGrant) AssetId() domain.AssetId   { return g.assetId }
func (g ReleaseGrant) CustodyRef() string        { return g.custodyRef }
func (g ReleaseGrant) Recipient() domain.Address { return g.recipient }
func (g ReleaseGrant) Owner() domain.Address     { return g.owner }

func (g ReleaseGrant) Valid() bool {
	if g.kind != KindSettle && g.kind != KindReclaim {
		return false
	}
	return !g.assetId.IsEmpty() && g.custodyRef != "" && !g.recipient.IsEmpty() && !g.owner.IsEmpty()
}

// View is a record with the quote computed at read time
type View struct {
	Auction
	Quote *Quote `json:"quote,omitempty"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, assetId domain.AssetId) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	// Create inserts a provisioned record, domain.ErrConflict if it exists
	Create(ctx ctx.Ctx, a *Auction) error
	// Commit applies t only if the record is still in t.From(), else ErrInvalidAuctionState
	Commit(ctx ctx.Ctx, t *Transition) error
}

type UseCase interface {
	Provision(ctx ctx.Ctx, assetId domain.AssetId) (*Auction, error)
	Open(ctx ctx.Ctx, assetId domain.AssetId, caller domain.Address, req OpenRequest) (*Auction, error)
	Settle(ctx ctx.Ctx, assetId domain.AssetId, buyer, feeRecipient domain.Address) (*Auction, error)
	Reclaim(ctx ctx.Ctx, assetId domain.AssetId, caller domain.Address) (*Auction, error)

	Get(ctx ctx.Ctx, assetId domain.AssetId) (*View, error)
	Quote(ctx ctx.Ctx, assetId domain.AssetId, at time.Time) (*Quote, error)
	List(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*View, int, error)
	Activities(ctx ctx.Ctx, assetId domain.AssetId, offset, limit int) ([]*Activity, error)
}

// Notifier announces auction events to the outside world. Failures are logged, never returned to callers of UseCase.
type Notifier interface {
	AuctionSettled(ctx ctx.Ctx, a *Auction, split Split) error
	AuctionReclaimed(ctx ctx.Ctx, a *Auction) error
	FloorReached(ctx ctx.Ctx, a *Auction) error
}
