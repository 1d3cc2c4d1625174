package usecase

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	mockDomain "github.com/x-xyz/goauction/domain/mocks"
	mockPricefeed "github.com/x-xyz/goauction/service/pricefeed/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	feed     *mockPricefeed.Source
	paytoken *mockDomain.PayTokenRepo
	subject  *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.feed = &mockPricefeed.Source{}
	t.paytoken = &mockDomain.PayTokenRepo{}
	t.subject = &impl{
		chainId:    domain.ChainId(1),
		nativeFeed: domain.Address("0xnativefeed"),
		paytoken:   t.paytoken,
		feed:       t.feed,
	}
}

func (t *testsuite) TestZeroAmountSkipsFeed() {
	val, err := t.subject.GetPriceInUSD(mockCtx, domain.EmptyAddress, big.NewInt(0))
	t.NoError(err)
	t.True(val.IsZero())
	t.feed.AssertNotCalled(t.T(), "LatestAnswer")
}

func (t *testsuite) TestNativeUsesFixedFeed() {
	// 1500 usd at 8 feed decimals
	t.feed.
		On("LatestAnswer", mockCtx, domain.ChainId(1), domain.Address("0xnativefeed")).
		Return(big.NewInt(150000000000), nil)

	// 2 native units at 18 decimals
	amount, _ := new(big.Int).SetString("2000000000000000000", 10)
	val, err := t.subject.GetPriceInUSD(mockCtx, domain.EmptyAddress, amount)
	t.NoError(err)
	t.True(decimal.NewFromInt(3000).Equal(val), val.String())
}

func (t *testsuite) TestTokenUsesRegisteredFeed() {
	var (
		tokenAddr = domain.Address("0xtoken")
		feedAddr  = domain.Address("0xfeed")
	)

	t.paytoken.
		On("FindOne", mockCtx, domain.ChainId(1), tokenAddr).
		Return(&domain.PayToken{
			FeedAddress:   feedAddr,
			TokenDecimals: 6,
		}, nil)
	// 0.5 usd
	t.feed.
		On("LatestAnswer", mockCtx, domain.ChainId(1), feedAddr).
		Return(big.NewInt(50000000), nil)

	// 4 token units at 6 decimals
	val, err := t.subject.GetPriceInUSD(mockCtx, tokenAddr, big.NewInt(4000000))
	t.NoError(err)
	t.True(decimal.NewFromInt(2).Equal(val), val.String())
}

func (t *testsuite) TestUnregisteredTokenFails() {
	t.paytoken.
		On("FindOne", mockCtx, domain.ChainId(1), domain.Address("0xtoken")).
		Return(nil, nil)

	_, err := t.subject.GetPriceInUSD(mockCtx, domain.Address("0xtoken"), big.NewInt(1))
	t.ErrorIs(err, domain.ErrNoPriceFeed)
}

func (t *testsuite) TestNonPositiveAnswerFails() {
	t.feed.
		On("LatestAnswer", mockCtx, domain.ChainId(1), domain.Address("0xnativefeed")).
		Return(big.NewInt(0), nil)

	_, err := t.subject.GetPriceInUSD(mockCtx, domain.EmptyAddress, big.NewInt(1))
	t.ErrorIs(err, domain.ErrInvalidFeedPrice)
}
