package auction

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Listing is the authoritative per-instance auction state. It is created by
// Initialize, mutated only by bids and finalization, and retained as an
// immutable record afterwards.
type Listing struct {
	Seller        domain.Address `json:"seller"`
	AssetRegistry domain.Address `json:"assetRegistry"`
	AssetId       domain.TokenId `json:"assetId"`
	PayToken      domain.Address `json:"payToken"`
	StartPrice    *big.Int       `json:"startPrice"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
	HighestBidder domain.Address `json:"highestBidder"`
	HighestBid    *big.Int       `json:"highestBid"`
	Status        Status         `json:"status"`
}

func (l *Listing) Initialized() bool {
	return !l.Seller.IsEmpty()
}

// Copy returns a detached copy so read paths cannot alias mutable state.
func (l *Listing) Copy() *Listing {
	res := *l
	if l.StartPrice != nil {
		res.StartPrice = new(big.Int).Set(l.StartPrice)
	}
	if l.HighestBid != nil {
		res.HighestBid = new(big.Int).Set(l.HighestBid)
	}
	return &res
}

type InitializeParams struct {
	Seller        domain.Address
	AssetRegistry domain.Address
	AssetId       domain.TokenId
	PayToken      domain.Address
	StartPrice    *big.Int
	StartTime     time.Time
	Duration      time.Duration
}

// Instance owns one listing's full lifecycle. Every mutating operation is
// non-reentrant and all-or-nothing.
type Instance interface {
	// Address is the instance's identity, also its escrow account
	Address() domain.Address
	Initialize(c ctx.Ctx, params *InitializeParams) error
	// Bid is the native-currency path
	Bid(c ctx.Ctx, bidder domain.Address, amount *big.Int) error
	// BidWithToken is the token path
	BidWithToken(c ctx.Ctx, bidder domain.Address, amount *big.Int) error
	EndAuction(c ctx.Ctx, caller domain.Address) error
	GetAuctionInfo(c ctx.Ctx) *Listing
	// GetBid returns the bidder's most recent bid amount, nil if none. The
	// record is kept after displacement for audit purposes.
	GetBid(c ctx.Ctx, bidder domain.Address) *big.Int
}

// InfoUpdate is the state an instance pushes to its registry snapshot.
type InfoUpdate struct {
	HighestBidder domain.Address
	HighestBid    *big.Int
	Status        Status
}

type CreateAuctionParams struct {
	AssetRegistry domain.Address `json:"assetRegistry" validate:"required"`
	AssetId       domain.TokenId `json:"assetId" validate:"required"`
	PayToken      domain.Address `json:"payToken"`
	StartPrice    *big.Int       `json:"startPrice" validate:"required"`
	StartTime     time.Time      `json:"startTime"`
	Duration      time.Duration  `json:"duration"`
}

// Registry creates isolated instances from a shared template and keeps a
// denormalized snapshot of each one for cheap enumeration.
type Registry interface {
	CreateAuction(c ctx.Ctx, seller domain.Address, params *CreateAuctionParams) (domain.Address, error)
	// UpdateAuctionInfo accepts pushes from instances only: caller must equal
	// the instance argument
	UpdateAuctionInfo(c ctx.Ctx, caller, instance domain.Address, update *InfoUpdate) error
	AllAuctionsLength(c ctx.Ctx) int
	UserAuctionsLength(c ctx.Ctx, user domain.Address) int
	// GetAuctions fails unless start <= end < length, no clamping
	GetAuctions(c ctx.Ctx, start, end int) ([]domain.Address, error)
	GetUserAuctions(c ctx.Ctx, user domain.Address) []domain.Address
	GetInstance(c ctx.Ctx, instance domain.Address) (Instance, error)
	GetSnapshot(c ctx.Ctx, instance domain.Address) (*Snapshot, error)
}

const (
	feeTierHighBps = 200
	feeTierMidBps  = 300
	feeTierLowBps  = 500

	feeTierHighUnits = 100
	feeTierMidUnits  = 10
)

// CalculateFee computes the tiered protocol fee on a winning bid. Thresholds
// are expressed in the payment asset's own unit: 2% from 100 units up, 3%
// from 10 units, 5% below that.
func CalculateFee(amount *big.Int, tokenDecimals int32) *big.Int {
	unit := new(big.Int).Exp(domain.Big10, big.NewInt(int64(tokenDecimals)), nil)
	bps := int64(feeTierLowBps)
	if amount.Cmp(new(big.Int).Mul(unit, big.NewInt(feeTierHighUnits))) >= 0 {
		bps = feeTierHighBps
	} else if amount.Cmp(new(big.Int).Mul(unit, big.NewInt(feeTierMidUnits))) >= 0 {
		bps = feeTierMidBps
	}
	fee := new(big.Int).Mul(amount, big.NewInt(bps))
	return fee.Div(fee, big.NewInt(10000))
}
