package domain

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
)

// NftCustody is the asset custody registry collaborator. A transfer fails if
// `from` does not own the asset or the move is unauthorized.
type NftCustody interface {
	TransferFrom(c ctx.Ctx, registry Address, tokenId TokenId, from, to Address) error
	OwnerOf(c ctx.Ctx, registry Address, tokenId TokenId) (Address, error)
}

// FundTransferor moves fungible value between accounts, for the native
// currency (token == EmptyAddress) and token assets alike. Pull based: the
// payer must hold the amount or the call fails, with nothing moved.
type FundTransferor interface {
	Transfer(c ctx.Ctx, token Address, from, to Address, amount *big.Int) error
	BalanceOf(c ctx.Ctx, token Address, account Address) (*big.Int, error)
}
