package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache"
	compoundcache "github.com/x-xyz/goauction/service/cache/compoundCache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/goauction/service/cache/provider/redis"
	"github.com/x-xyz/goauction/service/redis"
)

type reverseLookup func(address common.Address) (string, error)

type impl struct {
	lookup reverseLookup
	cache  cache.Service
}

func New(rpc string, concurrency int, redis redis.Service) ENS {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	backend := ethereum.NewTrottledClient(client, concurrency)
	lookup := func(address common.Address) (string, error) {
		return goens.ReverseResolve(backend, address)
	}
	return newWithLookup(lookup, compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Second,
			Pfx:   keys.PfxEns,
			Cache: primitive.NewPrimitive("ens", 32),
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   7 * 24 * time.Hour, // cache for 1 week
			Pfx:   keys.PfxEns,
			Cache: redisCache.NewRedis(redis),
		}),
	}))
}

func newWithLookup(lookup reverseLookup, cache cache.Service) *impl {
	return &impl{lookup: lookup, cache: cache}
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !ethereum.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.lookup(common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

func (im *impl) DisplayName(ctx ctx.Ctx, address domain.Address) string {
	if name, err := im.ReverseResolve(ctx, address); err == nil && name != "" {
		return name
	}
	return string(address)
}
