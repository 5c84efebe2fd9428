package keeper

import (
	"fmt"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/backoff"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/redis"
)

const (
	floorNoticeTtl = 30 * 24 * time.Hour
	backoffStart   = time.Second
	backoffLimit   = time.Minute
)

var metOnce sync.Once
var met metrics.Service

type Cfg struct {
	Auction     auction.UseCase
	Redis       redis.Service
	Notifier    auction.Notifier
	Interval    time.Duration
	PageSize    int
	Concurrency int
}

// Keeper periodically walks live auctions, keeping their views warm and
// announcing the ones that reached their floor price.
type Keeper struct {
	auction     auction.UseCase
	redis       redis.Service
	notifier    auction.Notifier
	interval    time.Duration
	pageSize    int
	concurrency int
	stoppedCh   chan interface{}
}

type sweepResult struct {
	live        int
	reclaimable int
	announced   int
}

func New(cfg *Cfg) *Keeper {
	metOnce.Do(func() {
		met = metrics.New("keeper")
	})
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = auction.DefaultPageSize
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Keeper{
		auction:     cfg.Auction,
		redis:       cfg.Redis,
		notifier:    cfg.Notifier,
		interval:    cfg.Interval,
		pageSize:    pageSize,
		concurrency: concurrency,
		stoppedCh:   make(chan interface{}),
	}
}

// Start runs the loop until ctx is done, restarting it after a panic
func (k *Keeper) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(k.stoppedCh)
		b := backoff.NewExponential(backoffStart, backoffLimit)
		for {
			p := <-goroutine.RecoverableGo(func() { k.loop(ctx, b) })
			if p == nil {
				return
			}
			met.BumpSum("panic", 1)
			if err := b.Backoff(ctx); err != nil {
				return
			}
		}
	}()
}

func (k *Keeper) Wait() {
	<-k.stoppedCh
}

func (k *Keeper) loop(ctx bCtx.Ctx, b *backoff.Backoff) {
	nextTick := time.Second * 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			res, err := k.sweep(ctx)
			if err != nil {
				ctx.WithFields(log.Fields{"err": err, "retryIn": b.NextDuration}).Error("sweep failed")
				if err := b.Backoff(ctx); err != nil {
					return
				}
				nextTick = 0
				continue
			}
			b.Reset()
			met.BumpAvg("live", float64(res.live))
			met.BumpAvg("reclaimable", float64(res.reclaimable))
			ctx.WithFields(log.Fields{
				"live":        res.live,
				"reclaimable": res.reclaimable,
				"announced":   res.announced,
			}).Info("sweep done")
			nextTick = k.interval
		}
	}
}

func (k *Keeper) sweep(ctx bCtx.Ctx) (sweepResult, error) {
	defer met.BumpTime("sweep.time").End()

	res := sweepResult{}
	for offset := 0; ; offset += k.pageSize {
		items, _, err := k.auction.List(ctx, auction.WithState(auction.StateCreated), auction.WithPagination(offset, k.pageSize))
		if err != nil {
			ctx.WithFields(log.Fields{"offset": offset, "err": err}).Error("auction.List failed")
			return res, err
		}

		for _, v := range k.refresh(ctx, items) {
			if v.Quote == nil {
				continue
			}
			res.live++
			if !v.Quote.Started || !v.Quote.AtFloor {
				continue
			}
			res.reclaimable++
			if k.announce(ctx, v) {
				res.announced++
			}
		}

		if len(items) < k.pageSize {
			return res, nil
		}
	}
}

// refresh reloads each view through the auction cache so it is warm for readers
func (k *Keeper) refresh(ctx bCtx.Ctx, items []*auction.View) []*auction.View {
	if len(items) == 0 {
		return nil
	}

	b := goroutines.NewBatch(k.concurrency, goroutines.WithBatchSize(len(items)))
	defer b.Close()
	for i := 0; i < len(items); i++ {
		assetId := items[i].AssetId
		b.Queue(func() (interface{}, error) {
			return k.auction.Get(ctx, assetId)
		})
	}
	b.QueueComplete()

	res := make([]*auction.View, 0, len(items))
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithField("err", ret.Error()).Warn("auction.Get failed")
			continue
		}
		res = append(res, ret.Value().(*auction.View))
	}
	return res
}

// announce posts the floor notice once per opening of an auction
func (k *Keeper) announce(ctx bCtx.Ctx, v *auction.View) bool {
	key := keys.RedisKey(keys.PfxFloorNotice, v.AssetId.String(), fmt.Sprint(v.StartTime))
	ok, err := k.redis.SetNX(ctx, key, []byte("1"), floorNoticeTtl)
	if err != nil {
		ctx.WithFields(log.Fields{"key": key, "err": err}).Error("redis.SetNX failed")
		return false
	} else if !ok {
		return false
	}

	if err := k.notifier.FloorReached(ctx, &v.Auction); err != nil {
		ctx.WithFields(log.Fields{"assetId": v.AssetId, "err": err}).Error("notifier.FloorReached failed")
		if _, err := k.redis.Del(ctx, key); err != nil {
			ctx.WithFields(log.Fields{"key": key, "err": err}).Error("redis.Del failed")
		}
		return false
	}
	return true
}
