package usecase

import (
	"math/big"
	"sync"
	"time"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"golang.org/x/xerrors"
)

const defaultTokenDecimals = 18

type InstanceCfg struct {
	ChainId      domain.ChainId
	Address      domain.Address
	FeeRecipient domain.Address
	Nft          domain.NftCustody
	Fund         domain.FundTransferor
	Oracle       domain.PriceOracleUseCase
	Paytoken     domain.PayTokenRepo
	Registry     auction.Registry
	BidRecords   auction.BidRecordRepo
	Emitter      auction.Emitter
	Now          func() time.Time
}

// instance owns one listing. Its address doubles as the escrow account
// holding the listed asset and every escrowed bid.
type instance struct {
	chainId      domain.ChainId
	address      domain.Address
	feeRecipient domain.Address
	nft          domain.NftCustody
	fund         domain.FundTransferor
	oracle       domain.PriceOracleUseCase
	paytoken     domain.PayTokenRepo
	registry     auction.Registry
	bidRecords   auction.BidRecordRepo
	emitter      auction.Emitter
	now          func() time.Time

	// guard serializes mutating operations. TryLock at entry rejects any
	// nested or concurrent mutation instead of queueing it.
	guard sync.Mutex

	// stateMu protects listing and bids for readers
	stateMu       sync.RWMutex
	listing       auction.Listing
	tokenDecimals int32
	bids          map[domain.Address]*big.Int
}

func NewInstance(cfg *InstanceCfg) auction.Instance {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &instance{
		chainId:      cfg.ChainId,
		address:      cfg.Address.ToLower(),
		feeRecipient: cfg.FeeRecipient.ToLower(),
		nft:          cfg.Nft,
		fund:         cfg.Fund,
		oracle:       cfg.Oracle,
		paytoken:     cfg.Paytoken,
		registry:     cfg.Registry,
		bidRecords:   cfg.BidRecords,
		emitter:      cfg.Emitter,
		now:          now,
		bids:         make(map[domain.Address]*big.Int),
	}
}

func (in *instance) Address() domain.Address {
	return in.address
}

func (in *instance) Initialize(c bCtx.Ctx, params *auction.InitializeParams) error {
	if !in.guard.TryLock() {
		return domain.ErrReentrantCall
	}
	defer in.guard.Unlock()

	if in.listing.Initialized() {
		return domain.ErrAlreadyInitialized
	}
	if params.Seller.IsEmpty() {
		return domain.ErrEmptySeller
	}
	if params.AssetRegistry.IsEmpty() {
		return domain.ErrEmptyAssetRegistry
	}
	if params.Duration <= 0 {
		return domain.ErrZeroDuration
	}

	startPrice := params.StartPrice
	if startPrice == nil {
		startPrice = new(big.Int)
	}

	// take custody of the listed asset, the whole call fails if this fails
	if err := in.nft.TransferFrom(c, params.AssetRegistry, params.AssetId, params.Seller, in.address); err != nil {
		c.WithFields(log.Fields{
			"err":           err,
			"assetRegistry": params.AssetRegistry,
			"assetId":       params.AssetId,
			"seller":        params.Seller,
		}).Error("failed to take asset custody")
		return xerrors.Errorf("take asset custody: %w", err)
	}

	in.stateMu.Lock()
	in.listing = auction.Listing{
		Seller:        params.Seller.ToLower(),
		AssetRegistry: params.AssetRegistry.ToLower(),
		AssetId:       params.AssetId,
		PayToken:      params.PayToken.ToLower(),
		StartPrice:    new(big.Int).Set(startPrice),
		StartTime:     params.StartTime,
		EndTime:       params.StartTime.Add(params.Duration),
		HighestBid:    new(big.Int),
		Status:        auction.StatusActive,
	}
	in.tokenDecimals = in.resolveTokenDecimals(c, params.PayToken)
	in.stateMu.Unlock()

	return nil
}

func (in *instance) resolveTokenDecimals(c bCtx.Ctx, payToken domain.Address) int32 {
	if payToken.IsNative() || in.paytoken == nil {
		return defaultTokenDecimals
	}
	pt, err := in.paytoken.FindOne(c, in.chainId, payToken.ToLower())
	if err != nil || pt == nil || pt.TokenDecimals == 0 {
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"payToken": payToken,
			}).Warn("paytoken.FindOne failed, assuming default decimals")
		}
		return defaultTokenDecimals
	}
	return pt.TokenDecimals
}

// Bid escrows a native-currency bid.
func (in *instance) Bid(c bCtx.Ctx, bidder domain.Address, amount *big.Int) error {
	return in.placeBid(c, bidder, amount, true)
}

// BidWithToken escrows a token bid.
func (in *instance) BidWithToken(c bCtx.Ctx, bidder domain.Address, amount *big.Int) error {
	return in.placeBid(c, bidder, amount, false)
}

func (in *instance) placeBid(c bCtx.Ctx, bidder domain.Address, amount *big.Int, native bool) error {
	if !in.guard.TryLock() {
		return domain.ErrReentrantCall
	}
	defer in.guard.Unlock()

	if in.listing.Status != auction.StatusActive {
		return domain.ErrAuctionNotActive
	}
	now := in.now()
	if now.Before(in.listing.StartTime) || now.After(in.listing.EndTime) {
		return domain.ErrOutsideBidWindow
	}
	if native != in.listing.PayToken.IsNative() {
		return domain.ErrWrongPaymentMethod
	}
	if amount == nil || amount.Cmp(in.listing.HighestBid) <= 0 || amount.Cmp(in.listing.StartPrice) < 0 {
		return domain.ErrBidTooLow
	}

	token := in.listing.PayToken
	prevBidder := in.listing.HighestBidder
	prevBid := in.listing.HighestBid

	// the displaced bidder is refunded before the new bid is recorded, and a
	// refund failure aborts the whole bid
	if !prevBidder.IsEmpty() {
		if err := in.fund.Transfer(c, token, in.address, prevBidder, prevBid); err != nil {
			c.WithFields(log.Fields{
				"err":        err,
				"prevBidder": prevBidder,
				"prevBid":    prevBid,
			}).Error("failed to refund displaced bidder")
			return xerrors.Errorf("refund displaced bidder: %w", err)
		}
	}

	if err := in.fund.Transfer(c, token, bidder, in.address, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"bidder": bidder,
			"amount": amount,
		}).Error("failed to take bid custody")
		// pull the refund back so the displaced bid stays escrowed
		if !prevBidder.IsEmpty() {
			if rbErr := in.fund.Transfer(c, token, prevBidder, in.address, prevBid); rbErr != nil {
				c.WithFields(log.Fields{
					"err":        rbErr,
					"prevBidder": prevBidder,
					"prevBid":    prevBid,
				}).Error("refund rollback failed, escrow out of balance")
			}
		}
		return xerrors.Errorf("take bid custody: %w", err)
	}

	in.stateMu.Lock()
	in.listing.HighestBidder = bidder.ToLower()
	in.listing.HighestBid = new(big.Int).Set(amount)
	in.bids[bidder.ToLower()] = new(big.Int).Set(amount)
	in.stateMu.Unlock()

	in.pushInfo(c)

	// advisory valuation, never gates acceptance
	priceInUsd := float64(0)
	if usd, err := in.oracle.GetPriceInUSD(c, token, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"amount": amount,
		}).Warn("oracle.GetPriceInUSD failed")
	} else {
		priceInUsd = usd.InexactFloat64()
	}

	if in.bidRecords != nil {
		record := &auction.BidRecord{
			ChainId:    in.chainId,
			Instance:   in.address,
			Bidder:     bidder.ToLower(),
			Amount:     amount.String(),
			PriceInUsd: priceInUsd,
			PlacedAt:   now,
		}
		if err := in.bidRecords.Insert(c, record); err != nil {
			c.WithField("err", err).Warn("bidRecords.Insert failed")
		}
	}

	in.emit(c, &auction.Event{
		Type:       auction.EventBidPlaced,
		ChainId:    in.chainId,
		Instance:   in.address,
		Bidder:     bidder.ToLower(),
		Amount:     amount.String(),
		PriceInUsd: priceInUsd,
		Timestamp:  now,
	})
	return nil
}

func (in *instance) EndAuction(c bCtx.Ctx, caller domain.Address) error {
	if !in.guard.TryLock() {
		return domain.ErrReentrantCall
	}
	defer in.guard.Unlock()

	if in.listing.Status != auction.StatusActive {
		return domain.ErrAuctionNotActive
	}
	now := in.now()
	if !caller.Equals(in.listing.Seller) && !now.After(in.listing.EndTime) {
		return domain.ErrNotAuthorized
	}

	seller := in.listing.Seller
	winner := in.listing.HighestBidder
	highestBid := in.listing.HighestBid
	token := in.listing.PayToken
	hasBid := !winner.IsEmpty()

	// the terminal transition happens before any transfer, so a reentrant
	// call observes a terminated auction
	terminal := auction.StatusCancelled
	if hasBid {
		terminal = auction.StatusEnded
	}
	in.setStatus(terminal)

	if !hasBid {
		if err := in.nft.TransferFrom(c, in.listing.AssetRegistry, in.listing.AssetId, in.address, seller); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"seller": seller,
			}).Error("failed to return asset to seller")
			in.setStatus(auction.StatusActive)
			return xerrors.Errorf("return asset to seller: %w", err)
		}

		in.pushInfo(c)
		in.emit(c, &auction.Event{
			Type:      auction.EventAuctionCancelled,
			ChainId:   in.chainId,
			Instance:  in.address,
			Seller:    seller,
			Timestamp: now,
		})
		return nil
	}

	if err := in.nft.TransferFrom(c, in.listing.AssetRegistry, in.listing.AssetId, in.address, winner); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"winner": winner,
		}).Error("failed to transfer asset to winner")
		in.setStatus(auction.StatusActive)
		return xerrors.Errorf("transfer asset to winner: %w", err)
	}

	fee := auction.CalculateFee(highestBid, in.tokenDecimals)
	proceeds := new(big.Int).Sub(highestBid, fee)

	if err := in.fund.Transfer(c, token, in.address, seller, proceeds); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"seller":   seller,
			"proceeds": proceeds,
		}).Error("failed to pay out seller")
		in.compensateAsset(c, winner)
		in.setStatus(auction.StatusActive)
		return xerrors.Errorf("pay out seller: %w", err)
	}

	if fee.Sign() > 0 && !in.feeRecipient.IsEmpty() {
		if err := in.fund.Transfer(c, token, in.address, in.feeRecipient, fee); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"fee": fee,
			}).Error("failed to transfer protocol fee")
			if rbErr := in.fund.Transfer(c, token, seller, in.address, proceeds); rbErr != nil {
				c.WithField("err", rbErr).Error("seller payout rollback failed, escrow out of balance")
			}
			in.compensateAsset(c, winner)
			in.setStatus(auction.StatusActive)
			return xerrors.Errorf("transfer protocol fee: %w", err)
		}
	}

	in.pushInfo(c)
	in.emit(c, &auction.Event{
		Type:      auction.EventAuctionEnded,
		ChainId:   in.chainId,
		Instance:  in.address,
		Seller:    seller,
		Winner:    winner,
		Amount:    highestBid.String(),
		Timestamp: now,
	})
	return nil
}

func (in *instance) compensateAsset(c bCtx.Ctx, holder domain.Address) {
	if err := in.nft.TransferFrom(c, in.listing.AssetRegistry, in.listing.AssetId, holder, in.address); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("asset rollback failed, custody out of balance")
	}
}

func (in *instance) setStatus(status auction.Status) {
	in.stateMu.Lock()
	in.listing.Status = status
	in.stateMu.Unlock()
}

func (in *instance) GetAuctionInfo(c bCtx.Ctx) *auction.Listing {
	in.stateMu.RLock()
	defer in.stateMu.RUnlock()
	return in.listing.Copy()
}

func (in *instance) GetBid(c bCtx.Ctx, bidder domain.Address) *big.Int {
	in.stateMu.RLock()
	defer in.stateMu.RUnlock()
	amount, ok := in.bids[bidder.ToLower()]
	if !ok {
		return nil
	}
	return new(big.Int).Set(amount)
}

// pushInfo mirrors the authoritative state into the registry snapshot. The
// snapshot is eventually consistent, a failed push never reverts the state
// change it mirrors.
func (in *instance) pushInfo(c bCtx.Ctx) {
	if in.registry == nil {
		return
	}
	in.stateMu.RLock()
	update := &auction.InfoUpdate{
		HighestBidder: in.listing.HighestBidder,
		HighestBid:    new(big.Int).Set(in.listing.HighestBid),
		Status:        in.listing.Status,
	}
	in.stateMu.RUnlock()
	if err := in.registry.UpdateAuctionInfo(c, in.address, in.address, update); err != nil {
		c.WithField("err", err).Warn("registry.UpdateAuctionInfo failed")
	}
}

func (in *instance) emit(c bCtx.Ctx, event *auction.Event) {
	if in.emitter == nil {
		return
	}
	if err := in.emitter.Emit(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": event.Type,
		}).Warn("emitter.Emit failed")
	}
}
