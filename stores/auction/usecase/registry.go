package usecase

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type RegistryCfg struct {
	ChainId      domain.ChainId
	FeeRecipient domain.Address
	Nft          domain.NftCustody
	Fund         domain.FundTransferor
	Oracle       domain.PriceOracleUseCase
	Paytoken     domain.PayTokenRepo
	Snapshots    auction.SnapshotRepo
	BidRecords   auction.BidRecordRepo
	Emitter      auction.Emitter
	Now          func() time.Time
}

// registryImpl is the factory and index of auction instances. Each
// CreateAuction clones the shared collaborator template into a fresh,
// isolated instance and appends it to the ordered lists.
type registryImpl struct {
	chainId      domain.ChainId
	feeRecipient domain.Address
	nft          domain.NftCustody
	fund         domain.FundTransferor
	oracle       domain.PriceOracleUseCase
	paytoken     domain.PayTokenRepo
	snapshots    auction.SnapshotRepo
	bidRecords   auction.BidRecordRepo
	emitter      auction.Emitter
	now          func() time.Time

	mu        sync.RWMutex
	all       []domain.Address
	bySeller  map[domain.Address][]domain.Address
	instances map[domain.Address]auction.Instance
}

func NewRegistry(cfg *RegistryCfg) auction.Registry {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &registryImpl{
		chainId:      cfg.ChainId,
		feeRecipient: cfg.FeeRecipient.ToLower(),
		nft:          cfg.Nft,
		fund:         cfg.Fund,
		oracle:       cfg.Oracle,
		paytoken:     cfg.Paytoken,
		snapshots:    cfg.Snapshots,
		bidRecords:   cfg.BidRecords,
		emitter:      cfg.Emitter,
		now:          now,
		bySeller:     make(map[domain.Address][]domain.Address),
		instances:    make(map[domain.Address]auction.Instance),
	}
}

// newInstanceAddress derives a fresh 20-byte escrow address
func newInstanceAddress() domain.Address {
	head := uuid.New()
	tail := uuid.New()
	buf := make([]byte, 0, 20)
	buf = append(buf, head[:]...)
	buf = append(buf, tail[:4]...)
	return domain.Address("0x" + hex.EncodeToString(buf))
}

func (r *registryImpl) CreateAuction(c bCtx.Ctx, seller domain.Address, params *auction.CreateAuctionParams) (domain.Address, error) {
	address := newInstanceAddress()
	instance := NewInstance(&InstanceCfg{
		ChainId:      r.chainId,
		Address:      address,
		FeeRecipient: r.feeRecipient,
		Nft:          r.nft,
		Fund:         r.fund,
		Oracle:       r.oracle,
		Paytoken:     r.paytoken,
		Registry:     r,
		BidRecords:   r.bidRecords,
		Emitter:      r.emitter,
		Now:          r.now,
	})

	startTime := params.StartTime
	if startTime.IsZero() {
		startTime = r.now()
	}

	// a failed initialization leaves the registry untouched, no partial entry
	if err := instance.Initialize(c, &auction.InitializeParams{
		Seller:        seller,
		AssetRegistry: params.AssetRegistry,
		AssetId:       params.AssetId,
		PayToken:      params.PayToken,
		StartPrice:    params.StartPrice,
		StartTime:     startTime,
		Duration:      params.Duration,
	}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("instance.Initialize failed")
		return "", err
	}

	r.mu.Lock()
	sellerKey := seller.ToLower()
	r.all = append(r.all, address)
	r.bySeller[sellerKey] = append(r.bySeller[sellerKey], address)
	r.instances[address] = instance
	r.mu.Unlock()

	if err := r.writeSnapshot(c, address, instance.GetAuctionInfo(c)); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"instance": address,
		}).Warn("failed to write initial snapshot")
	}

	if r.emitter != nil {
		if err := r.emitter.Emit(c, &auction.Event{
			Type:      auction.EventAuctionCreated,
			ChainId:   r.chainId,
			Instance:  address,
			Seller:    seller.ToLower(),
			Timestamp: r.now(),
		}); err != nil {
			c.WithField("err", err).Warn("emitter.Emit failed")
		}
	}

	return address, nil
}

func (r *registryImpl) UpdateAuctionInfo(c bCtx.Ctx, caller, instance domain.Address, update *auction.InfoUpdate) error {
	// only an instance may push its own snapshot
	if !caller.Equals(instance) {
		return domain.ErrNotAuthorized
	}

	r.mu.RLock()
	inst, ok := r.instances[instance.ToLower()]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	if r.snapshots == nil {
		return nil
	}

	id := auction.SnapshotId{ChainId: r.chainId, Instance: instance.ToLower()}
	now := r.now()
	payload := &auction.UpdatePayload{
		HighestBidder: update.HighestBidder.ToLowerPtr(),
		Status:        &update.Status,
		UpdatedAt:     &now,
	}
	if update.HighestBid != nil {
		payload.HighestBid = ptr.String(update.HighestBid.String())
	}

	err := r.snapshots.Update(c, id, payload)
	if err == domain.ErrNotFound {
		// snapshot row never made it in, rebuild it from the listing
		return r.writeSnapshot(c, instance.ToLower(), inst.GetAuctionInfo(c))
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"instance": instance,
		}).Error("snapshots.Update failed")
		return err
	}
	return nil
}

func (r *registryImpl) writeSnapshot(c bCtx.Ctx, instance domain.Address, listing *auction.Listing) error {
	if r.snapshots == nil {
		return nil
	}
	snapshot := &auction.Snapshot{
		ChainId:       r.chainId,
		Instance:      instance,
		Seller:        listing.Seller,
		AssetRegistry: listing.AssetRegistry,
		AssetId:       listing.AssetId,
		PayToken:      listing.PayToken,
		StartPrice:    listing.StartPrice.String(),
		StartTime:     listing.StartTime,
		EndTime:       listing.EndTime,
		HighestBidder: listing.HighestBidder,
		HighestBid:    listing.HighestBid.String(),
		Status:        listing.Status,
		UpdatedAt:     r.now(),
	}
	if err := r.snapshots.Upsert(c, snapshot); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"instance": instance,
		}).Error("snapshots.Upsert failed")
		return err
	}
	return nil
}

func (r *registryImpl) AllAuctionsLength(c bCtx.Ctx) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.all)
}

func (r *registryImpl) UserAuctionsLength(c bCtx.Ctx, user domain.Address) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySeller[user.ToLower()])
}

// GetAuctions returns the inclusive range [start, end]. Both bounds must be
// in range, out-of-range requests fail instead of clamping.
func (r *registryImpl) GetAuctions(c bCtx.Ctx, start, end int) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if start < 0 || start > end || end >= len(r.all) {
		return nil, domain.ErrInvalidRange
	}
	res := make([]domain.Address, end-start+1)
	copy(res, r.all[start:end+1])
	return res, nil
}

func (r *registryImpl) GetUserAuctions(c bCtx.Ctx, user domain.Address) []domain.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.bySeller[user.ToLower()]
	res := make([]domain.Address, len(src))
	copy(res, src)
	return res
}

func (r *registryImpl) GetInstance(c bCtx.Ctx, instance domain.Address) (auction.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[instance.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inst, nil
}

func (r *registryImpl) GetSnapshot(c bCtx.Ctx, instance domain.Address) (*auction.Snapshot, error) {
	if r.snapshots == nil {
		return nil, domain.ErrNotFound
	}
	return r.snapshots.FindOne(c, auction.SnapshotId{
		ChainId:  r.chainId,
		Instance: instance.ToLower(),
	})
}
