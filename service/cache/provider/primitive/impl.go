package primitive

import (
	"errors"
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/service/cache/provider"
)

var met = metrics.New("localcache")

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process cache of size megabytes
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		met.BumpSum("miss", 1, "name", im.name)
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	met.BumpSum("hit", 1, "name", im.name)

	// freecache reports the absolute expiry in unix seconds, 0 means no expiry
	if ttl == 0 {
		return val, time.Duration(0), nil
	}
	remain := time.Until(time.Unix(int64(ttl), 0)).Round(time.Second)
	if remain < 0 {
		remain = 0
	}
	return val, remain, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	// freecache expires at second granularity, keep sub second ttls alive for one second
	seconds := int(ttl.Seconds())
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}
	if err := im.cache.Set([]byte(key), value, seconds); err != nil {
		met.BumpSum("set.err", 1, "name", im.name)
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
