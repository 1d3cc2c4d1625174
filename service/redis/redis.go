package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

// Forever means the key is kept without expiry
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrNoTTL is returned when the key exists but has no expiry
	ErrNoTTL = errors.New("redis key has no ttl")

	// ErrGapTime is returned when no pool can serve the command
	ErrGapTime = errors.New("redis pool unavailable")
)

// Service wraps the redis commands used by the auction engine: plain
// key/value caching plus pub/sub fan-out of auction events.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Publish(context ctx.Ctx, channel string, msg []byte) error
}
