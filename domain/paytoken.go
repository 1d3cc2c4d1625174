package domain

import (
	"github.com/x-xyz/goauction/base/ctx"
)

type PayTokenId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken describes a payment asset accepted by auctions, along with the
// price feed registered for it.
type PayToken struct {
	Name    string  `bson:"name"`
	Symbol  string  `bson:"symbol"`
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
	// Decimals is the feed's answer precision, 8 for chainlink style feeds
	Decimals int32 `bson:"decimals"`
	// TokenDecimals is the asset's own precision, 18 unless registered otherwise
	TokenDecimals int32   `bson:"tokenDecimals"`
	FeedAddress   Address `bson:"feedAddress"`
}

func (t *PayToken) ToId() *PayTokenId {
	return &PayTokenId{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}
