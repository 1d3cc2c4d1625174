package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	mockAuction "github.com/x-xyz/goauction/domain/auction/mocks"
	mockDomain "github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/service/ledger"
)

var (
	mockCtx = ctx.Background()
)

type instanceTestsuite struct {
	suite.Suite

	ledger     ledger.Ledger
	oracle     *mockDomain.PriceOracleUseCase
	emitter    *mockAuction.Emitter
	bidRecords *mockAuction.BidRecordRepo
	now        time.Time
	subject    auction.Instance

	chainId      domain.ChainId
	seller       domain.Address
	bidder1      domain.Address
	bidder2      domain.Address
	feeRecipient domain.Address
	registryAddr domain.Address
	assetId      domain.TokenId
	payToken     domain.Address
}

func TestInstance(t *testing.T) {
	suite.Run(t, new(instanceTestsuite))
}

func (t *instanceTestsuite) SetupTest() {
	t.ledger = ledger.New()
	t.oracle = &mockDomain.PriceOracleUseCase{}
	t.emitter = &mockAuction.Emitter{}
	t.bidRecords = &mockAuction.BidRecordRepo{}
	t.now = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)

	t.chainId = domain.ChainId(1)
	t.seller = domain.Address("0xseller")
	t.bidder1 = domain.Address("0xbidder1")
	t.bidder2 = domain.Address("0xbidder2")
	t.feeRecipient = domain.Address("0xtreasury")
	t.registryAddr = domain.Address("0xassetregistry")
	t.assetId = domain.TokenId("42")
	t.payToken = domain.EmptyAddress

	t.oracle.On("GetPriceInUSD", mock.Anything, mock.Anything, mock.Anything).Return(decimal.New(1, 0), nil)
	t.emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)
	t.bidRecords.On("Insert", mock.Anything, mock.Anything).Return(nil)

	t.subject = NewInstance(&InstanceCfg{
		ChainId:      t.chainId,
		Address:      domain.Address("0xinstance"),
		FeeRecipient: t.feeRecipient,
		Nft:          t.ledger,
		Fund:         t.ledger,
		Oracle:       t.oracle,
		BidRecords:   t.bidRecords,
		Emitter:      t.emitter,
		Now:          func() time.Time { return t.now },
	})

	t.NoError(t.ledger.Mint(mockCtx, t.registryAddr, t.assetId, t.seller))
	t.NoError(t.ledger.Deposit(mockCtx, t.payToken, t.bidder1, eth(10)))
	t.NoError(t.ledger.Deposit(mockCtx, t.payToken, t.bidder2, eth(10)))
}

// eth converts whole units into 18 decimal raw units
func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// tenth converts tenths of a unit into 18 decimal raw units
func tenth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil))
}

func (t *instanceTestsuite) initialize(startPrice *big.Int, duration time.Duration) {
	t.NoError(t.subject.Initialize(mockCtx, &auction.InitializeParams{
		Seller:        t.seller,
		AssetRegistry: t.registryAddr,
		AssetId:       t.assetId,
		PayToken:      t.payToken,
		StartPrice:    startPrice,
		StartTime:     t.now,
		Duration:      duration,
	}))
}

func (t *instanceTestsuite) emittedTypes() []auction.EventType {
	res := []auction.EventType{}
	for _, call := range t.emitter.Calls {
		if call.Method == "Emit" {
			res = append(res, call.Arguments.Get(1).(*auction.Event).Type)
		}
	}
	return res
}

func (t *instanceTestsuite) TestInitializeValidation() {
	params := &auction.InitializeParams{
		Seller:        t.seller,
		AssetRegistry: t.registryAddr,
		AssetId:       t.assetId,
		PayToken:      t.payToken,
		StartPrice:    eth(1),
		StartTime:     t.now,
		Duration:      time.Hour,
	}

	bad := *params
	bad.Seller = ""
	t.ErrorIs(t.subject.Initialize(mockCtx, &bad), domain.ErrEmptySeller)

	bad = *params
	bad.AssetRegistry = ""
	t.ErrorIs(t.subject.Initialize(mockCtx, &bad), domain.ErrEmptyAssetRegistry)

	bad = *params
	bad.Duration = 0
	t.ErrorIs(t.subject.Initialize(mockCtx, &bad), domain.ErrZeroDuration)

	t.NoError(t.subject.Initialize(mockCtx, params))
	t.ErrorIs(t.subject.Initialize(mockCtx, params), domain.ErrAlreadyInitialized)
}

func (t *instanceTestsuite) TestInitializeTakesCustody() {
	t.initialize(eth(1), time.Hour)

	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, t.assetId)
	t.NoError(err)
	t.Equal(t.subject.Address(), owner)

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(auction.StatusActive, info.Status)
	t.Equal(t.now.Add(time.Hour), info.EndTime)
}

func (t *instanceTestsuite) TestInitializeFailsWithoutAssetOwnership() {
	err := t.subject.Initialize(mockCtx, &auction.InitializeParams{
		Seller:        t.bidder1, // not the asset owner
		AssetRegistry: t.registryAddr,
		AssetId:       t.assetId,
		PayToken:      t.payToken,
		StartPrice:    eth(1),
		StartTime:     t.now,
		Duration:      time.Hour,
	})
	t.Error(err)

	// no partial state, a later bid still sees an uninitialized instance
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder1, eth(2)), domain.ErrAuctionNotActive)
}

func (t *instanceTestsuite) TestBidDisplacementRefundsPriorBidder() {
	t.initialize(eth(1), time.Hour)

	t.NoError(t.subject.Bid(mockCtx, t.bidder1, tenth(15)))

	// amount <= highestBid never mutates state
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder2, tenth(12)), domain.ErrBidTooLow)
	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(t.bidder1, info.HighestBidder)

	t.NoError(t.subject.Bid(mockCtx, t.bidder2, eth(2)))

	// bidder1 refunded in full, bidder2's bid escrowed
	balance1, err := t.ledger.BalanceOf(mockCtx, t.payToken, t.bidder1)
	t.NoError(err)
	t.Equal(eth(10), balance1)

	escrow, err := t.ledger.BalanceOf(mockCtx, t.payToken, t.subject.Address())
	t.NoError(err)
	t.Equal(eth(2), escrow)

	info = t.subject.GetAuctionInfo(mockCtx)
	t.Equal(t.bidder2, info.HighestBidder)
	t.Equal(eth(2), info.HighestBid)

	// displaced record is retained for audit
	t.Equal(tenth(15), t.subject.GetBid(mockCtx, t.bidder1))
	t.Equal(eth(2), t.subject.GetBid(mockCtx, t.bidder2))
}

func (t *instanceTestsuite) TestBidBelowStartPriceRejected() {
	t.initialize(eth(2), time.Hour)
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder1, eth(1)), domain.ErrBidTooLow)
	t.Empty(t.emittedTypes())
}

func (t *instanceTestsuite) TestBidRefundFailureAbortsBid() {
	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, tenth(15)))

	t.ledger.FailTransfersTo(t.bidder1)

	err := t.subject.Bid(mockCtx, t.bidder2, eth(2))
	t.Error(err)

	// nothing changed: the prior bid stands and bidder2's funds never moved
	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(t.bidder1, info.HighestBidder)
	t.Equal(tenth(15), info.HighestBid)

	balance2, balErr := t.ledger.BalanceOf(mockCtx, t.payToken, t.bidder2)
	t.NoError(balErr)
	t.Equal(eth(10), balance2)
}

func (t *instanceTestsuite) TestBidPaymentMethodGating() {
	t.initialize(eth(1), time.Hour)
	t.ErrorIs(t.subject.BidWithToken(mockCtx, t.bidder1, eth(2)), domain.ErrWrongPaymentMethod)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(2)))
}

func (t *instanceTestsuite) TestBidOutsideWindow() {
	t.initialize(eth(1), time.Hour)

	t.now = t.now.Add(-time.Minute)
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder1, eth(2)), domain.ErrOutsideBidWindow)

	t.now = t.now.Add(2 * time.Hour)
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder1, eth(2)), domain.ErrOutsideBidWindow)
}

func (t *instanceTestsuite) TestBidSurvivesOracleOutage() {
	t.oracle.ExpectedCalls = nil
	t.oracle.On("GetPriceInUSD", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, domain.ErrNoPriceFeed)

	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(2)))
	t.Equal([]auction.EventType{auction.EventBidPlaced}, t.emittedTypes())
}

func (t *instanceTestsuite) TestEndAuctionNoBidReturnsAsset() {
	t.initialize(eth(1), time.Hour)

	t.now = t.now.Add(2 * time.Hour)
	t.NoError(t.subject.EndAuction(mockCtx, t.bidder2))

	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, t.assetId)
	t.NoError(err)
	t.Equal(t.seller, owner)

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(auction.StatusCancelled, info.Status)
	t.Equal([]auction.EventType{auction.EventAuctionCancelled}, t.emittedTypes())

	// terminal states are final
	t.ErrorIs(t.subject.EndAuction(mockCtx, t.seller), domain.ErrAuctionNotActive)
}

func (t *instanceTestsuite) TestEndAuctionAuth() {
	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(2)))

	// only the seller may close an auction before its end time
	t.ErrorIs(t.subject.EndAuction(mockCtx, t.bidder1), domain.ErrNotAuthorized)

	t.now = t.now.Add(2 * time.Hour)
	t.NoError(t.subject.EndAuction(mockCtx, t.bidder1))
}

func (t *instanceTestsuite) TestEndAuctionSettlesHighTierFee() {
	t.NoError(t.ledger.Deposit(mockCtx, t.payToken, t.bidder1, eth(200)))

	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(200)))
	t.NoError(t.subject.EndAuction(mockCtx, t.seller))

	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, t.assetId)
	t.NoError(err)
	t.Equal(t.bidder1, owner)

	// 2% over 100 units
	t.assertBalance(t.feeRecipient, eth(4))
	t.assertBalance(t.seller, eth(196))
	t.assertBalance(t.subject.Address(), eth(0))

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(auction.StatusEnded, info.Status)
	t.Equal([]auction.EventType{auction.EventBidPlaced, auction.EventAuctionEnded}, t.emittedTypes())
}

func (t *instanceTestsuite) TestEndAuctionSettlesMidTierFee() {
	t.NoError(t.ledger.Deposit(mockCtx, t.payToken, t.bidder1, eth(50)))

	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(50)))
	t.NoError(t.subject.EndAuction(mockCtx, t.seller))

	// 3% between 10 and 100 units
	t.assertBalance(t.feeRecipient, tenth(15))
	t.assertBalance(t.seller, new(big.Int).Sub(eth(50), tenth(15)))
}

func (t *instanceTestsuite) TestEndAuctionSettlesLowTierFee() {
	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(5)))
	t.NoError(t.subject.EndAuction(mockCtx, t.seller))

	// 5% below 10 units
	t.assertBalance(t.feeRecipient, new(big.Int).Div(eth(25), big.NewInt(100)))
	t.assertBalance(t.seller, new(big.Int).Sub(eth(5), new(big.Int).Div(eth(25), big.NewInt(100))))
}

func (t *instanceTestsuite) TestEndAuctionPayoutFailureRollsBack() {
	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(5)))

	t.ledger.FailTransfersTo(t.seller)

	t.Error(t.subject.EndAuction(mockCtx, t.seller))

	// everything rolled back: asset and escrow still held, auction still live
	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, t.assetId)
	t.NoError(err)
	t.Equal(t.subject.Address(), owner)
	t.assertBalance(t.subject.Address(), eth(5))

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(auction.StatusActive, info.Status)
}

// reentrantFund drives a nested mutation from inside a refund transfer, the
// way a malicious recipient would
type reentrantFund struct {
	ledger.Ledger
	refundTo domain.Address
	reenter  func() error
	nested   error
	fired    bool
}

func (f *reentrantFund) Transfer(c ctx.Ctx, token, from, to domain.Address, amount *big.Int) error {
	if !f.fired && to.Equals(f.refundTo) {
		f.fired = true
		f.nested = f.reenter()
	}
	return f.Ledger.Transfer(c, token, from, to, amount)
}

func (t *instanceTestsuite) TestNestedBidDuringRefundRejected() {
	fund := &reentrantFund{Ledger: t.ledger, refundTo: t.bidder1}
	t.subject = NewInstance(&InstanceCfg{
		ChainId:      t.chainId,
		Address:      domain.Address("0xinstance"),
		FeeRecipient: t.feeRecipient,
		Nft:          t.ledger,
		Fund:         fund,
		Oracle:       t.oracle,
		BidRecords:   t.bidRecords,
		Emitter:      t.emitter,
		Now:          func() time.Time { return t.now },
	})
	fund.reenter = func() error { return t.subject.Bid(mockCtx, t.bidder2, eth(3)) }

	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(1)))

	// refunding bidder1 re-enters Bid, the nested call bounces while the
	// outer bid completes
	t.NoError(t.subject.Bid(mockCtx, t.bidder2, eth(2)))
	t.ErrorIs(fund.nested, domain.ErrReentrantCall)

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(t.bidder2, info.HighestBidder)
	t.Equal(eth(2), info.HighestBid)
	t.assertBalance(t.bidder1, eth(10))
	t.assertBalance(t.subject.Address(), eth(2))
}

func (t *instanceTestsuite) TestTokenAuctionBidAndSettlement() {
	token := domain.Address("0xusdc")
	units := func(n int64) *big.Int { return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000)) }

	paytokens := &mockDomain.PayTokenRepo{}
	paytokens.On("FindOne", mock.Anything, t.chainId, token).Return(&domain.PayToken{
		Symbol:        "USDC",
		ChainId:       t.chainId,
		Address:       token,
		TokenDecimals: 6,
	}, nil)

	t.payToken = token
	t.subject = NewInstance(&InstanceCfg{
		ChainId:      t.chainId,
		Address:      domain.Address("0xinstance"),
		FeeRecipient: t.feeRecipient,
		Nft:          t.ledger,
		Fund:         t.ledger,
		Oracle:       t.oracle,
		Paytoken:     paytokens,
		BidRecords:   t.bidRecords,
		Emitter:      t.emitter,
		Now:          func() time.Time { return t.now },
	})
	t.NoError(t.ledger.Deposit(mockCtx, token, t.bidder1, units(100)))

	t.initialize(units(1), time.Hour)

	// a token auction only accepts the token path
	t.ErrorIs(t.subject.Bid(mockCtx, t.bidder1, units(50)), domain.ErrWrongPaymentMethod)
	t.NoError(t.subject.BidWithToken(mockCtx, t.bidder1, units(50)))

	t.NoError(t.subject.EndAuction(mockCtx, t.seller))

	owner, err := t.ledger.OwnerOf(mockCtx, t.registryAddr, t.assetId)
	t.NoError(err)
	t.Equal(t.bidder1, owner)

	// fee tiers follow the registered 6 decimals, 50 units lands in the 3%
	// tier
	t.assertBalance(t.feeRecipient, big.NewInt(1_500_000))
	t.assertBalance(t.seller, big.NewInt(48_500_000))
	t.assertBalance(t.subject.Address(), big.NewInt(0))

	info := t.subject.GetAuctionInfo(mockCtx)
	t.Equal(auction.StatusEnded, info.Status)
	t.Equal([]auction.EventType{auction.EventBidPlaced, auction.EventAuctionEnded}, t.emittedTypes())
}

func (t *instanceTestsuite) TestBidRecordsAuditTrail() {
	t.initialize(eth(1), time.Hour)
	t.NoError(t.subject.Bid(mockCtx, t.bidder1, eth(2)))
	t.NoError(t.subject.Bid(mockCtx, t.bidder2, eth(3)))

	t.bidRecords.AssertNumberOfCalls(t.T(), "Insert", 2)
}

func (t *instanceTestsuite) assertBalance(account domain.Address, expected *big.Int) {
	actual, err := t.ledger.BalanceOf(mockCtx, t.payToken, account)
	t.NoError(err)
	t.Zero(expected.Cmp(actual), "balance of %s: expected %s, got %s", account, expected, actual)
}
