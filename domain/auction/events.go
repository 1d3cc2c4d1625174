package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type EventType string

const (
	EventAuctionCreated   EventType = "AuctionCreated"
	EventBidPlaced        EventType = "BidPlaced"
	EventAuctionEnded     EventType = "AuctionEnded"
	EventAuctionCancelled EventType = "AuctionCancelled"
)

// Event is emitted exactly once per state transition, after the mutation is
// durable.
type Event struct {
	Type       EventType      `json:"type"`
	ChainId    domain.ChainId `json:"chainId"`
	Instance   domain.Address `json:"instance"`
	Seller     domain.Address `json:"seller,omitempty"`
	Bidder     domain.Address `json:"bidder,omitempty"`
	Winner     domain.Address `json:"winner,omitempty"`
	Amount     string         `json:"amount,omitempty"`
	PriceInUsd float64        `json:"priceInUsd,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

type Emitter interface {
	Emit(c ctx.Ctx, event *Event) error
}
