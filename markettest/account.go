package markettest

import (
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/x/cash"
)

// Account is a throwaway secp256k1 identity able to sign settlement digests.
type Account struct {
	key *ecdsa.PrivateKey
}

// NewAccount generates a fresh account. Each call returns a different
// identity.
func NewAccount(t testing.TB) *Account {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return &Account{key: key}
}

// Address returns the account identity.
func (a *Account) Address() common.Address {
	return crypto.PubkeyToAddress(a.key.PublicKey)
}

// Sign produces a 65 byte [R || S || V] signature over the digest, the same
// shape wallets produce over EIP-712 digests.
func (a *Account) Sign(t testing.TB, digest common.Hash) []byte {
	t.Helper()
	sig, err := crypto.Sign(digest[:], a.key)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	return sig
}

// Fund credits the account in the given store.
func Fund(t testing.TB, db artefakt.KVStore, a common.Address, amount *big.Int) {
	t.Helper()
	if err := cash.Deposit(db, a, amount); err != nil {
		t.Fatalf("cannot fund %s: %+v", a, err)
	}
}
