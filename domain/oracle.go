package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/goauction/base/ctx"
)

// PriceOracleUseCase normalizes a payment-asset amount into usd, carrying the
// feed's 8 decimal places. Advisory only: callers must not let a failure here
// gate custody-affecting operations.
type PriceOracleUseCase interface {
	GetPriceInUSD(c ctx.Ctx, token Address, amount *big.Int) (decimal.Decimal, error)
}
