package repository

import (
	"encoding/json"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/redis"
)

const eventChannel = "auction_events"

type redisEmitter struct {
	red redis.Service
}

// NewRedisEmitter fans auction events out over redis pub/sub. Delivery is
// at-most-once, subscribers missing a message resync from the registry
// snapshots.
func NewRedisEmitter(red redis.Service) auction.Emitter {
	return &redisEmitter{red: red}
}

func (e *redisEmitter) Emit(ctx bCtx.Ctx, event *auction.Event) error {
	msg, err := json.Marshal(event)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": event.Type,
		}).Error("json.Marshal failed")
		return err
	}
	if err := e.red.Publish(ctx, eventChannel, msg); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": event.Type,
		}).Error("red.Publish failed")
		return err
	}
	return nil
}
