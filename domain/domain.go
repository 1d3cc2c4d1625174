package domain

import (
	"math/big"
	"strings"
)

var (
	Big10 = big.NewInt(10)
)

type ChainId int32

// Address identifies an account, a contract-style instance or an asset
// registry. Stored lower-cased.
type Address string

// EmptyAddress doubles as the payment-asset sentinel for the native currency.
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsNative reports whether the address is the native-currency sentinel.
func (a Address) IsNative() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

