package token

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/x/royalty"
)

// Collection is a registered token contract. Tokens can be minted only into
// collections present in the registry, and only the collection owner can
// authorize a mint.
type Collection struct {
	// Address identifies the collection. It doubles as the verifying
	// contract of mint authorization signatures.
	Address common.Address
	// Owner is the account whose signature authorizes mints.
	Owner common.Address
	Name  string
	// Symbol is a short display ticker. It is metadata only.
	Symbol string
}

func (c *Collection) Validate() error {
	var errs error
	if c.Address == (common.Address{}) {
		errs = errors.AppendField(errs, "Address", errors.ErrEmpty)
	}
	if c.Owner == (common.Address{}) {
		errs = errors.AppendField(errs, "Owner", errors.ErrEmpty)
	}
	if c.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	return errs
}

// Holding is one holder's share of a semi fungible token. A unique token has
// exactly one holding with quantity one.
type Holding struct {
	Holder   common.Address
	Quantity uint64
}

// Token is a minted asset. The royalty configuration is frozen at mint time
// and never modified afterwards.
type Token struct {
	// ID is the token ID as 32 big endian bytes.
	ID  []byte
	URI string
	// Supply is the total quantity minted. One for unique tokens.
	Supply   uint64
	Royalty  royalty.Config
	Holdings []Holding
}

func (t *Token) Validate() error {
	var errs error
	if len(t.ID) != idLength {
		errs = errors.AppendField(errs, "ID", errors.ErrInput)
	}
	if t.Supply == 0 {
		errs = errors.AppendField(errs, "Supply", errors.ErrAmount)
	}
	if err := t.Royalty.Validate(); err != nil {
		errs = errors.AppendField(errs, "Royalty", err)
	}
	var held uint64
	for i, h := range t.Holdings {
		if h.Holder == (common.Address{}) || h.Quantity == 0 {
			errs = errors.Append(errs, errors.Field("Holdings", errors.ErrModel, "holding %d", i))
		}
		held += h.Quantity
	}
	if held != t.Supply {
		errs = errors.AppendField(errs, "Holdings", errors.ErrModel)
	}
	return errs
}

// BalanceOf returns the quantity of this token held by the account.
func (t *Token) BalanceOf(holder common.Address) uint64 {
	for _, h := range t.Holdings {
		if h.Holder == holder {
			return h.Quantity
		}
	}
	return 0
}
