package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/pricefeed"
)

const (
	// feedDecimals is the answer precision shared by the supported feeds
	feedDecimals = 8
	// defaultTokenDecimals applies when a paytoken does not declare its own
	defaultTokenDecimals = 18
)

type OracleUseCaseCfg struct {
	ChainId    domain.ChainId
	NativeFeed domain.Address
	Paytoken   domain.PayTokenRepo
	Feed       pricefeed.Source
}

type impl struct {
	chainId    domain.ChainId
	nativeFeed domain.Address
	paytoken   domain.PayTokenRepo
	feed       pricefeed.Source
}

func New(cfg *OracleUseCaseCfg) domain.PriceOracleUseCase {
	return &impl{
		chainId:    cfg.ChainId,
		nativeFeed: cfg.NativeFeed,
		paytoken:   cfg.Paytoken,
		feed:       cfg.Feed,
	}
}

// GetPriceInUSD converts `amount` of `token` into usd with the feed's
// 8-decimal precision. Zero amounts short-circuit without touching the feed.
func (im *impl) GetPriceInUSD(c bCtx.Ctx, token domain.Address, amount *big.Int) (decimal.Decimal, error) {
	if amount == nil || amount.Sign() == 0 {
		return decimal.Zero, nil
	}

	feedAddress, tokenDecimals, err := im.resolveFeed(c, token)
	if err != nil {
		return decimal.Zero, err
	}

	answer, err := im.feed.LatestAnswer(c, im.chainId, feedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"feedAddress": feedAddress,
		}).Error("feed.LatestAnswer failed")
		return decimal.Zero, err
	}
	// a stale or invalid feed is a hard failure, never silently substituted
	if answer.Sign() <= 0 {
		c.WithFields(log.Fields{
			"feedAddress": feedAddress,
			"answer":      answer,
		}).Error("feed reported non-positive price")
		return decimal.Zero, domain.ErrInvalidFeedPrice
	}

	price := decimal.NewFromBigInt(answer, -feedDecimals)
	return decimal.NewFromBigInt(amount, -tokenDecimals).Mul(price), nil
}

func (im *impl) resolveFeed(c bCtx.Ctx, token domain.Address) (domain.Address, int32, error) {
	if token.IsNative() {
		return im.nativeFeed, defaultTokenDecimals, nil
	}

	payToken, err := im.paytoken.FindOne(c, im.chainId, token.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Error("paytoken.FindOne failed")
		return "", 0, err
	}
	if payToken == nil || payToken.FeedAddress.IsEmpty() {
		return "", 0, domain.ErrNoPriceFeed
	}

	tokenDecimals := payToken.TokenDecimals
	if tokenDecimals == 0 {
		tokenDecimals = defaultTokenDecimals
	}
	return payToken.FeedAddress, tokenDecimals, nil
}
