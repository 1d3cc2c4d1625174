package ledger

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// Ledger is an in-memory implementation of the custody collaborators, used in
// local mode and in tests. All balances and asset ownerships live in
// mutex-guarded maps, transfers are atomic.
type Ledger interface {
	domain.NftCustody
	domain.FundTransferor

	// Mint assigns an asset to an owner
	Mint(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, owner domain.Address) error
	// Deposit credits an account with fungible value
	Deposit(c ctx.Ctx, token, account domain.Address, amount *big.Int) error
	// FailTransfersTo makes every fund transfer towards `account` fail,
	// simulating an unreachable refund recipient
	FailTransfersTo(account domain.Address)
}
