package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

// Forever keeps a key without expiry
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned by TTL when the key exists without expiry
	ErrNoTTL = errors.New("redis key has no ttl")
	// ErrGapTime is returned when no pool serves the command
	ErrGapTime = errors.New("redis pool unavailable")
)

// Service is the subset of redis commands used by caches and the keeper
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX reports false when the key already exists
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL is in seconds
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error

	Name() string
}
