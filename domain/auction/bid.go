package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// BidRecord is the audit trail of accepted bids. Displaced records go stale
// once refunded but are kept, not cleared.
type BidRecord struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Instance   domain.Address `json:"instance" bson:"instance"`
	Bidder     domain.Address `json:"bidder" bson:"bidder"`
	Amount     string         `json:"amount" bson:"amount"`
	PriceInUsd float64        `json:"priceInUsd" bson:"priceInUsd"`
	PlacedAt   time.Time      `json:"placedAt" bson:"placedAt"`
}

type BidFindAllOptions struct {
	ChainId  *domain.ChainId
	Instance *domain.Address
	Bidder   *domain.Address
	Offset   *int32
	Limit    *int32
}

type BidFindAllOptionsFunc func(*BidFindAllOptions) error

func GetBidFindAllOptions(opts ...BidFindAllOptionsFunc) (BidFindAllOptions, error) {
	res := BidFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func BidWithChainId(chainId domain.ChainId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func BidWithInstance(instance domain.Address) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Instance = instance.ToLowerPtr()
		return nil
	}
}

func BidWithBidder(bidder domain.Address) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Bidder = bidder.ToLowerPtr()
		return nil
	}
}

func BidWithPagination(offset, limit int32) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type BidRecordRepo interface {
	Insert(c ctx.Ctx, record *BidRecord) error
	FindAll(c ctx.Ctx, opts ...BidFindAllOptionsFunc) ([]*BidRecord, error)
	Count(c ctx.Ctx, opts ...BidFindAllOptionsFunc) (int, error)
}
