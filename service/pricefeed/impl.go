package pricefeed

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/goauction/base/abi"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider"
	"github.com/x-xyz/goauction/service/cache/provider/compound"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/goauction/service/cache/provider/redis"
	"github.com/x-xyz/goauction/service/chain"
	"github.com/x-xyz/goauction/service/redis"
)

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

func New(chainClient chain.Client, red redis.Service) Source {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("pricefeed_cache", 32),
	}

	if red != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(red))
	}

	return &impl{
		chainClient: chainClient,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "pricefeed_cache",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) LatestAnswer(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error) {
	var res big.Int

	key := keys.RedisKey(strconv.Itoa(int(chainId)), string(feedAddress), "latest")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		if res, err := im.latestAnswer(c, chainId, feedAddress); err != nil {
			c.WithFields(log.Fields{
				"err":         err,
				"chainId":     chainId,
				"feedAddress": feedAddress,
			}).Error("latestAnswer failed")
			return nil, err
		} else {
			return res, nil
		}
	}); err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"feedAddress": feedAddress,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}

	return &res, nil
}

func (im *impl) latestAnswer(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error) {
	feedAddr := common.HexToAddress(string(feedAddress))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.ChainlinkFeedABI, "latestAnswer")
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"feedAddress": feedAddress,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	return res[0].(*big.Int), nil
}
