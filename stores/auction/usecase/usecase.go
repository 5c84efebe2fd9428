package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/service/cache"
)

const (
	maxActivityLimit = 100
	notifyTimeout    = 3 * time.Second
	redelDelay       = time.Second
)

var met = metrics.New("auction")

type Cfg struct {
	Repo         auction.Repo
	ActivityRepo auction.ActivityRepo
	Custody      custody.UseCase
	Ledger       ledger.UseCase
	Transactor   domain.Transactor
	// ViewCache holds stored records, never quotes
	ViewCache         cache.Service
	Notifier          auction.Notifier
	MinorUnitsPerUnit int64
}

type impl struct {
	repo         auction.Repo
	activityRepo auction.ActivityRepo
	custody      custody.UseCase
	ledger       ledger.UseCase
	tx           domain.Transactor
	viewCache    cache.Service
	notifier     auction.Notifier
	minor        int64

	now        func() time.Time
	redelDelay time.Duration
	workerPool *goroutines.Pool
}

func New(cfg *Cfg) auction.UseCase {
	minor := cfg.MinorUnitsPerUnit
	if minor <= 0 {
		minor = auction.DefaultMinorUnitsPerUnit
	}
	return &impl{
		repo:         cfg.Repo,
		activityRepo: cfg.ActivityRepo,
		custody:      cfg.Custody,
		ledger:       cfg.Ledger,
		tx:           cfg.Transactor,
		viewCache:    cfg.ViewCache,
		notifier:     cfg.Notifier,
		minor:        minor,

		now:        time.Now,
		redelDelay: redelDelay,
		workerPool: goroutines.NewPool(8, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(2)),
	}
}

func viewKey(assetId domain.AssetId) string {
	return keys.RedisKey(assetId.String())
}

// observe records the outcome of op; the caller defers it with a pointer to its named error
func observe(op string, errp *error) func() {
	timer := met.BumpTime(op + ".time")
	return func() {
		timer.End()
		if *errp == nil {
			return
		}
		met.BumpSum(op+".err", 1, "reason", reason(*errp))
	}
}

func reason(err error) string {
	for _, e := range []error{
		auction.ErrInvalidAuctionState,
		auction.ErrAuctionDidNotStart,
		auction.ErrAuctionDidNotReachMinPrice,
		auction.ErrNotAuctionOwner,
		auction.ErrInvalidDecayInterval,
		auction.ErrPriceOutOfRange,
		ledger.ErrInsufficientBalance,
		ledger.ErrInsufficientAsset,
		domain.ErrNotFound,
		domain.ErrConflict,
	} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return "internal"
}

func (im *impl) Provision(c ctx.Ctx, assetId domain.AssetId) (_ *auction.Auction, err error) {
	defer observe("provision", &err)()

	if assetId.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	var res *auction.Auction
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		slot, err := im.custody.Provision(c, assetId)
		if err != nil {
			return err
		}
		now := im.now()
		a := &auction.Auction{
			AssetId:    assetId,
			CustodyRef: slot.Id,
			State:      auction.StateNone,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := im.repo.Create(c, a); err != nil {
			return err
		}
		res = a
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{"assetId": assetId, "err": err}).Error("provision failed")
		return nil, xerrors.Errorf("provision %s: %w", assetId, err)
	}
	return res, nil
}

func (im *impl) Open(c ctx.Ctx, assetId domain.AssetId, caller domain.Address, req auction.OpenRequest) (_ *auction.Auction, err error) {
	defer observe("open", &err)()

	var t *auction.Transition
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.repo.FindOne(c, assetId)
		if err != nil {
			return err
		}
		if t, err = a.BeginOpen(caller, req, im.now(), im.minor); err != nil {
			return err
		}
		if err := im.custody.Deposit(c, a.CustodyRef, t.Account()); err != nil {
			return err
		}
		return im.commit(c, t)
	})
	if err != nil {
		c.WithFields(log.Fields{"assetId": assetId, "caller": caller, "err": err}).Warn("open failed")
		return nil, xerrors.Errorf("open %s: %w", assetId, err)
	}

	im.afterCommit(c, t)
	next := t.Next()
	return &next, nil
}

func (im *impl) Settle(c ctx.Ctx, assetId domain.AssetId, buyer, feeRecipient domain.Address) (_ *auction.Auction, err error) {
	defer observe("settle", &err)()

	var t *auction.Transition
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.repo.FindOne(c, assetId)
		if err != nil {
			return err
		}
		if t, err = a.BeginSettle(buyer, feeRecipient, im.now(), im.minor); err != nil {
			return err
		}
		grant, err := t.Grant()
		if err != nil {
			return err
		}
		if err := im.custody.Release(c, grant); err != nil {
			return err
		}

		next, split := t.Next(), t.Split()
		from := domain.AddressHolder(next.Buyer)
		if err := im.ledger.TransferCurrency(c, from, domain.AddressHolder(next.Owner), split.OwnerAmount, "settle owner share"); err != nil {
			return err
		}
		if err := im.ledger.TransferCurrency(c, from, domain.AddressHolder(next.FeeRecipient), split.FeeAmount, "settle fee"); err != nil {
			return err
		}
		return im.commit(c, t)
	})
	if err != nil {
		c.WithFields(log.Fields{"assetId": assetId, "buyer": buyer, "err": err}).Warn("settle failed")
		return nil, xerrors.Errorf("settle %s: %w", assetId, err)
	}

	im.afterCommit(c, t)
	next := t.Next()
	return &next, nil
}

func (im *impl) Reclaim(c ctx.Ctx, assetId domain.AssetId, caller domain.Address) (_ *auction.Auction, err error) {
	defer observe("reclaim", &err)()

	var t *auction.Transition
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.repo.FindOne(c, assetId)
		if err != nil {
			return err
		}
		if t, err = a.BeginReclaim(caller, im.now()); err != nil {
			return err
		}
		grant, err := t.Grant()
		if err != nil {
			return err
		}
		if err := im.custody.Release(c, grant); err != nil {
			return err
		}
		return im.commit(c, t)
	})
	if err != nil {
		c.WithFields(log.Fields{"assetId": assetId, "caller": caller, "err": err}).Warn("reclaim failed")
		return nil, xerrors.Errorf("reclaim %s: %w", assetId, err)
	}

	im.afterCommit(c, t)
	next := t.Next()
	return &next, nil
}

// commit writes the record and its activity entry inside the caller's transaction
func (im *impl) commit(c ctx.Ctx, t *auction.Transition) error {
	if err := im.repo.Commit(c, t); err != nil {
		return err
	}
	return im.activityRepo.Insert(c, t.Activity(uuid.NewString()))
}

func (im *impl) afterCommit(c ctx.Ctx, t *auction.Transition) {
	next := t.Next()
	key := viewKey(next.AssetId)
	if err := im.viewCache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"assetId": next.AssetId, "err": err}).Error("viewCache.Del failed")
	}

	// a read that loaded the record before the commit can refill the entry after the first Del
	detached := ctx.Detach(c)
	time.AfterFunc(im.redelDelay, func() {
		if err := im.viewCache.Del(detached, key); err != nil {
			detached.WithFields(log.Fields{"assetId": next.AssetId, "err": err}).Error("delayed viewCache.Del failed")
		}
	})

	if t.Kind() == auction.KindOpen {
		return
	}

	err := im.workerPool.ScheduleWithTimeout(notifyTimeout, func() {
		var err error
		switch t.Kind() {
		case auction.KindSettle:
			err = im.notifier.AuctionSettled(detached, &next, t.Split())
		case auction.KindReclaim:
			err = im.notifier.AuctionReclaimed(detached, &next)
		}
		if err != nil {
			detached.WithFields(log.Fields{"assetId": next.AssetId, "kind": t.Kind(), "err": err}).Error("notify failed")
		}
	})
	if err != nil {
		c.WithFields(log.Fields{"assetId": next.AssetId, "err": err}).Error("failed to ScheduleWithTimeout")
	}
}

func (im *impl) load(c ctx.Ctx, assetId domain.AssetId) (*auction.Auction, error) {
	res := &auction.Auction{}
	err := im.viewCache.GetByFunc(c, viewKey(assetId), res, func() (interface{}, error) {
		return im.repo.FindOne(c, assetId)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) toView(a *auction.Auction, now time.Time) *auction.View {
	v := &auction.View{Auction: *a}
	if a.State == auction.StateCreated {
		q := a.QuoteAt(now)
		v.Quote = &q
	}
	return v
}

func (im *impl) Get(c ctx.Ctx, assetId domain.AssetId) (*auction.View, error) {
	a, err := im.load(c, assetId)
	if err != nil {
		return nil, err
	}
	return im.toView(a, im.now()), nil
}

func (im *impl) Quote(c ctx.Ctx, assetId domain.AssetId, at time.Time) (*auction.Quote, error) {
	a, err := im.load(c, assetId)
	if err != nil {
		return nil, err
	}
	if a.State != auction.StateCreated {
		return nil, auction.ErrInvalidAuctionState
	}
	if at.IsZero() {
		at = im.now()
	}
	q := a.QuoteAt(at)
	return &q, nil
}

func (im *impl) List(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.View, int, error) {
	as, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, 0, err
	}
	count, err := im.repo.Count(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.Count failed")
		return nil, 0, err
	}

	now := im.now()
	res := make([]*auction.View, 0, len(as))
	for _, a := range as {
		res = append(res, im.toView(a, now))
	}
	return res, count, nil
}

func (im *impl) Activities(c ctx.Ctx, assetId domain.AssetId, offset, limit int) ([]*auction.Activity, error) {
	if offset < 0 || limit < 0 {
		return nil, domain.ErrBadParamInput
	}
	if limit == 0 || limit > maxActivityLimit {
		limit = auction.DefaultPageSize
	}
	res, err := im.activityRepo.FindAll(c, assetId, offset, limit)
	if err != nil {
		c.WithFields(log.Fields{"assetId": assetId, "err": err}).Error("activityRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}
