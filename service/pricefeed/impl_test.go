package pricefeed

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	mockChain "github.com/x-xyz/goauction/service/chain/mocks"
)

func TestLatestAnswerCachesFeedReads(t *testing.T) {
	req := require.New(t)
	mockCtx := ctx.Background()

	chainClient := &mockChain.Client{}
	chainClient.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "latestAnswer").
		Return([]interface{}{big.NewInt(150000000000)}, nil)

	im := New(chainClient, nil)
	feed := domain.Address("0x5f4ec3df9cbd43714fe2740f5e3616155c5b8419")

	res, err := im.LatestAnswer(mockCtx, 1, feed)
	req.NoError(err)
	req.Zero(big.NewInt(150000000000).Cmp(res))

	// second read is served from the cache
	res, err = im.LatestAnswer(mockCtx, 1, feed)
	req.NoError(err)
	req.Zero(big.NewInt(150000000000).Cmp(res))
	chainClient.AssertNumberOfCalls(t, "Call", 1)
}

func TestLatestAnswerPropagatesCallFailure(t *testing.T) {
	req := require.New(t)
	mockCtx := ctx.Background()

	chainClient := &mockChain.Client{}
	chainClient.On("Call", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, "latestAnswer").
		Return(nil, errors.New("rpc unreachable"))

	im := New(chainClient, nil)

	_, err := im.LatestAnswer(mockCtx, 1, "0xfeed")
	req.Error(err)
}
