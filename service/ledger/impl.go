package ledger

import (
	"math/big"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"golang.org/x/xerrors"
)

var (
	ErrInsufficientFunds = xerrors.New("insufficient funds")
	ErrNotOwner          = xerrors.New("not asset owner")
	ErrUnknownAsset      = xerrors.New("unknown asset")
	ErrTransferRejected  = xerrors.New("transfer rejected")
)

type assetKey struct {
	registry domain.Address
	tokenId  domain.TokenId
}

type balanceKey struct {
	token   domain.Address
	account domain.Address
}

type impl struct {
	// mutex protected members
	mutex    sync.Mutex
	owners   map[assetKey]domain.Address
	balances map[balanceKey]*big.Int
	blocked  map[domain.Address]bool
}

func New() Ledger {
	return &impl{
		owners:   make(map[assetKey]domain.Address),
		balances: make(map[balanceKey]*big.Int),
		blocked:  make(map[domain.Address]bool),
	}
}

func (im *impl) Mint(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, owner domain.Address) error {
	im.mutex.Lock()
	defer im.mutex.Unlock()
	im.owners[assetKey{registry.ToLower(), tokenId}] = owner.ToLower()
	return nil
}

func (im *impl) Deposit(c ctx.Ctx, token, account domain.Address, amount *big.Int) error {
	im.mutex.Lock()
	defer im.mutex.Unlock()
	key := balanceKey{token.ToLower(), account.ToLower()}
	cur, ok := im.balances[key]
	if !ok {
		cur = new(big.Int)
		im.balances[key] = cur
	}
	cur.Add(cur, amount)
	return nil
}

func (im *impl) FailTransfersTo(account domain.Address) {
	im.mutex.Lock()
	defer im.mutex.Unlock()
	im.blocked[account.ToLower()] = true
}

func (im *impl) TransferFrom(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	im.mutex.Lock()
	defer im.mutex.Unlock()

	key := assetKey{registry.ToLower(), tokenId}
	owner, ok := im.owners[key]
	if !ok {
		return ErrUnknownAsset
	}
	if !owner.Equals(from) {
		c.WithFields(log.Fields{
			"registry": registry,
			"tokenId":  tokenId,
			"owner":    owner,
			"from":     from,
		}).Warn("asset transfer from non-owner rejected")
		return ErrNotOwner
	}
	im.owners[key] = to.ToLower()
	return nil
}

func (im *impl) OwnerOf(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	im.mutex.Lock()
	defer im.mutex.Unlock()

	owner, ok := im.owners[assetKey{registry.ToLower(), tokenId}]
	if !ok {
		return "", ErrUnknownAsset
	}
	return owner, nil
}

func (im *impl) Transfer(c ctx.Ctx, token domain.Address, from, to domain.Address, amount *big.Int) error {
	im.mutex.Lock()
	defer im.mutex.Unlock()

	if im.blocked[to.ToLower()] {
		return ErrTransferRejected
	}

	fromKey := balanceKey{token.ToLower(), from.ToLower()}
	cur, ok := im.balances[fromKey]
	if !ok || cur.Cmp(amount) < 0 {
		c.WithFields(log.Fields{
			"token":  token,
			"from":   from,
			"amount": amount,
		}).Warn("fund transfer with insufficient balance rejected")
		return ErrInsufficientFunds
	}
	cur.Sub(cur, amount)

	toKey := balanceKey{token.ToLower(), to.ToLower()}
	dst, ok := im.balances[toKey]
	if !ok {
		dst = new(big.Int)
		im.balances[toKey] = dst
	}
	dst.Add(dst, amount)
	return nil
}

func (im *impl) BalanceOf(c ctx.Ctx, token domain.Address, account domain.Address) (*big.Int, error) {
	im.mutex.Lock()
	defer im.mutex.Unlock()

	cur, ok := im.balances[balanceKey{token.ToLower(), account.ToLower()}]
	if !ok {
		return new(big.Int), nil
	}
	return new(big.Int).Set(cur), nil
}
