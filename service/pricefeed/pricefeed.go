package pricefeed

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// Source reads the latest reported price from an external feed. Answers carry
// the feed's own decimal precision, 8 for chainlink style aggregators.
type Source interface {
	LatestAnswer(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error)
}
