package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	mockAuction "github.com/x-xyz/goauction/domain/auction/mocks"
	mockDomain "github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/service/ledger"
)

type registryTestsuite struct {
	suite.Suite

	ledger    ledger.Ledger
	oracle    *mockDomain.PriceOracleUseCase
	snapshots *mockAuction.SnapshotRepo
	emitter   *mockAuction.Emitter
	now       time.Time
	subject   auction.Registry

	seller       domain.Address
	bidder       domain.Address
	registryAddr domain.Address
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(registryTestsuite))
}

func (t *registryTestsuite) SetupTest() {
	t.ledger = ledger.New()
	t.oracle = &mockDomain.PriceOracleUseCase{}
	t.snapshots = &mockAuction.SnapshotRepo{}
	t.emitter = &mockAuction.Emitter{}
	t.now = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)

	t.seller = domain.Address("0xseller")
	t.bidder = domain.Address("0xbidder")
	t.registryAddr = domain.Address("0xassetregistry")

	t.oracle.On("GetPriceInUSD", mock.Anything, mock.Anything, mock.Anything).Return(decimal.New(1, 0), nil)
	t.snapshots.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	t.snapshots.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	t.emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)

	t.subject = NewRegistry(&RegistryCfg{
		ChainId:      domain.ChainId(1),
		FeeRecipient: domain.Address("0xtreasury"),
		Nft:          t.ledger,
		Fund:         t.ledger,
		Oracle:       t.oracle,
		Snapshots:    t.snapshots,
		Emitter:      t.emitter,
		Now:          func() time.Time { return t.now },
	})

	t.NoError(t.ledger.Deposit(mockCtx, domain.EmptyAddress, t.bidder, eth(100)))
}

func (t *registryTestsuite) createAuction(assetId domain.TokenId) domain.Address {
	t.NoError(t.ledger.Mint(mockCtx, t.registryAddr, assetId, t.seller))
	address, err := t.subject.CreateAuction(mockCtx, t.seller, &auction.CreateAuctionParams{
		AssetRegistry: t.registryAddr,
		AssetId:       assetId,
		PayToken:      domain.EmptyAddress,
		StartPrice:    eth(1),
		StartTime:     t.now,
		Duration:      time.Hour,
	})
	t.NoError(err)
	return address
}

func (t *registryTestsuite) TestCreateAuction() {
	address := t.createAuction("1")
	t.NotEmpty(address)

	t.Equal(1, t.subject.AllAuctionsLength(mockCtx))
	t.Equal(1, t.subject.UserAuctionsLength(mockCtx, t.seller))
	t.Equal([]domain.Address{address}, t.subject.GetUserAuctions(mockCtx, t.seller))

	instance, err := t.subject.GetInstance(mockCtx, address)
	t.NoError(err)
	t.Equal(address, instance.Address())

	// asset custody moved to the new instance
	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, "1")
	t.NoError(err)
	t.Equal(address, owner)

	t.snapshots.AssertCalled(t.T(), "Upsert", mockCtx, mock.MatchedBy(func(s *auction.Snapshot) bool {
		return s.Instance == address && s.Status == auction.StatusActive
	}))
	t.emitter.AssertCalled(t.T(), "Emit", mockCtx, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventAuctionCreated && e.Instance == address
	}))
}

func (t *registryTestsuite) TestCreateAuctionZeroDurationLeavesNoEntry() {
	t.NoError(t.ledger.Mint(mockCtx, t.registryAddr, "1", t.seller))

	_, err := t.subject.CreateAuction(mockCtx, t.seller, &auction.CreateAuctionParams{
		AssetRegistry: t.registryAddr,
		AssetId:       "1",
		PayToken:      domain.EmptyAddress,
		StartPrice:    eth(1),
		StartTime:     t.now,
		Duration:      0,
	})
	t.ErrorIs(err, domain.ErrZeroDuration)

	t.Equal(0, t.subject.AllAuctionsLength(mockCtx))
	t.Empty(t.subject.GetUserAuctions(mockCtx, t.seller))
	t.snapshots.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *registryTestsuite) TestGetAuctionsRangeValidation() {
	first := t.createAuction("1")
	second := t.createAuction("2")
	third := t.createAuction("3")

	// start > end
	_, err := t.subject.GetAuctions(mockCtx, 2, 1)
	t.ErrorIs(err, domain.ErrInvalidRange)

	// end out of range, no clamping
	_, err = t.subject.GetAuctions(mockCtx, 0, 3)
	t.ErrorIs(err, domain.ErrInvalidRange)

	res, err := t.subject.GetAuctions(mockCtx, 0, 2)
	t.NoError(err)
	t.Equal([]domain.Address{first, second, third}, res)

	res, err = t.subject.GetAuctions(mockCtx, 1, 1)
	t.NoError(err)
	t.Equal([]domain.Address{second}, res)
}

func (t *registryTestsuite) TestUpdateAuctionInfoAuth() {
	address := t.createAuction("1")

	update := &auction.InfoUpdate{Status: auction.StatusActive, HighestBid: new(big.Int)}

	t.ErrorIs(t.subject.UpdateAuctionInfo(mockCtx, t.bidder, address, update), domain.ErrNotAuthorized)
	t.ErrorIs(t.subject.UpdateAuctionInfo(mockCtx, "0xunknown", "0xunknown", update), domain.ErrNotFound)
	t.NoError(t.subject.UpdateAuctionInfo(mockCtx, address, address, update))
}

func (t *registryTestsuite) TestSnapshotTracksInstanceState() {
	address := t.createAuction("1")

	instance, err := t.subject.GetInstance(mockCtx, address)
	t.NoError(err)
	t.NoError(instance.Bid(mockCtx, t.bidder, eth(2)))

	id := auction.SnapshotId{ChainId: 1, Instance: address}
	t.snapshots.AssertCalled(t.T(), "Update", mockCtx, id, mock.MatchedBy(func(p *auction.UpdatePayload) bool {
		return p.HighestBidder != nil && *p.HighestBidder == t.bidder &&
			p.HighestBid != nil && *p.HighestBid == eth(2).String()
	}))

	t.now = t.now.Add(2 * time.Hour)
	t.NoError(instance.EndAuction(mockCtx, t.bidder))

	t.snapshots.AssertCalled(t.T(), "Update", mockCtx, id, mock.MatchedBy(func(p *auction.UpdatePayload) bool {
		return p.Status != nil && *p.Status == auction.StatusEnded
	}))
}

func (t *registryTestsuite) TestUpdateAuctionInfoWritesPushedFields() {
	address := t.createAuction("1")

	// the pushed fields land in the snapshot verbatim, the registry does not
	// substitute the live listing for them
	update := &auction.InfoUpdate{
		HighestBidder: "0xPUSHED",
		HighestBid:    big.NewInt(777),
		Status:        auction.StatusEnded,
	}
	t.NoError(t.subject.UpdateAuctionInfo(mockCtx, address, address, update))

	t.snapshots.AssertCalled(t.T(), "Update", mockCtx, auction.SnapshotId{ChainId: 1, Instance: address},
		mock.MatchedBy(func(p *auction.UpdatePayload) bool {
			return p.HighestBidder != nil && *p.HighestBidder == domain.Address("0xpushed") &&
				p.HighestBid != nil && *p.HighestBid == "777" &&
				p.Status != nil && *p.Status == auction.StatusEnded &&
				p.UpdatedAt != nil && p.UpdatedAt.Equal(t.now)
		}))
}

func (t *registryTestsuite) TestUpdateAuctionInfoRebuildsMissingSnapshot() {
	address := t.createAuction("1")

	t.snapshots.ExpectedCalls = nil
	t.snapshots.Calls = nil
	t.snapshots.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrNotFound)
	t.snapshots.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	update := &auction.InfoUpdate{HighestBid: new(big.Int), Status: auction.StatusActive}
	t.NoError(t.subject.UpdateAuctionInfo(mockCtx, address, address, update))

	t.snapshots.AssertCalled(t.T(), "Upsert", mockCtx, mock.MatchedBy(func(s *auction.Snapshot) bool {
		return s.Instance == address && s.Status == auction.StatusActive
	}))
}

func (t *registryTestsuite) TestUserAuctionsAreScopedToSeller() {
	address := t.createAuction("1")

	other := domain.Address("0xother")
	t.NoError(t.ledger.Mint(mockCtx, t.registryAddr, "2", other))
	otherAddress, err := t.subject.CreateAuction(mockCtx, other, &auction.CreateAuctionParams{
		AssetRegistry: t.registryAddr,
		AssetId:       "2",
		PayToken:      domain.EmptyAddress,
		StartPrice:    eth(1),
		StartTime:     t.now,
		Duration:      time.Hour,
	})
	t.NoError(err)

	t.Equal(2, t.subject.AllAuctionsLength(mockCtx))
	t.Equal([]domain.Address{address}, t.subject.GetUserAuctions(mockCtx, t.seller))
	t.Equal([]domain.Address{otherAddress}, t.subject.GetUserAuctions(mockCtx, other))
}
