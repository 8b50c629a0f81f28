package cash

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/errors"
)

// ErrInsufficientFunds is returned when an account balance does not cover a
// requested transfer.
var ErrInsufficientFunds = errors.Register(120, "insufficient funds")

// keyPrefix separates balance entries from other data in a shared store.
const keyPrefix = "cash:"

func balanceKey(a common.Address) []byte {
	return append([]byte(keyPrefix), a.Bytes()...)
}

// Balance returns the funds held by the given account. An account without a
// store entry holds zero.
func Balance(db artefakt.ReadOnlyKVStore, a common.Address) (*big.Int, error) {
	raw, err := db.Get(balanceKey(a))
	if err != nil {
		return nil, errors.Wrap(err, "cannot get balance")
	}
	if len(raw) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(raw), nil
}

// Deposit credits the account with the given amount. It is used to fund
// accounts from outside the settlement flow, for example when bridging in
// external payments.
func Deposit(db artefakt.KVStore, a common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative deposit")
	}
	balance, err := Balance(db, a)
	if err != nil {
		return err
	}
	return setBalance(db, a, balance.Add(balance, amount))
}

// Move transfers amount from src to dest. It fails with ErrInsufficientFunds
// if the source balance does not cover the amount. A zero amount move is a
// no-op.
func Move(db artefakt.KVStore, src, dest common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative transfer")
	}
	if amount.Sign() == 0 {
		return nil
	}
	if src == dest {
		return errors.Wrap(errors.ErrInput, "transfer to self")
	}

	from, err := Balance(db, src)
	if err != nil {
		return err
	}
	if from.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s, needed %s", from, amount)
	}
	to, err := Balance(db, dest)
	if err != nil {
		return err
	}

	if err := setBalance(db, src, from.Sub(from, amount)); err != nil {
		return err
	}
	return setBalance(db, dest, to.Add(to, amount))
}

// setBalance stores the amount as raw big endian bytes. Zero balances are
// deleted so that an emptied account leaves no trace in the store.
func setBalance(db artefakt.KVStore, a common.Address, amount *big.Int) error {
	key := balanceKey(a)
	if amount.Sign() == 0 {
		if err := db.Delete(key); err != nil {
			return errors.Wrap(err, "cannot delete balance")
		}
		return nil
	}
	if err := db.Set(key, amount.Bytes()); err != nil {
		return errors.Wrap(err, "cannot set balance")
	}
	return nil
}
