package token

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/store"
	"github.com/artefakt-io/artefakt/x/royalty"
)

var (
	collectionAddr = common.HexToAddress("0x3000000000000000000000000000000000000001")
	owner          = common.HexToAddress("0x3000000000000000000000000000000000000002")
	holder         = common.HexToAddress("0x3000000000000000000000000000000000000003")
	receiver       = common.HexToAddress("0x3000000000000000000000000000000000000004")
)

func registry(t testing.TB) store.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	err := RegisterCollection(db, Collection{
		Address: collectionAddr,
		Owner:   owner,
		Name:    "Test Collection",
		Symbol:  "TST",
	})
	if err != nil {
		t.Fatalf("register collection: %+v", err)
	}
	return db
}

func royaltyFixture() royalty.Config {
	return royalty.Config{
		Splits:     []royalty.Split{{Account: owner, Shares: 10000}},
		RoyaltyBps: 500,
	}
}

func TestRegisterCollection(t *testing.T) {
	db := registry(t)

	c, err := LoadCollection(db, collectionAddr)
	if err != nil {
		t.Fatalf("load: %+v", err)
	}
	if c.Owner != owner || c.Name != "Test Collection" {
		t.Fatalf("unexpected collection: %+v", c)
	}

	o, err := CollectionOwner(db, collectionAddr)
	if err != nil {
		t.Fatalf("collection owner: %+v", err)
	}
	if o != owner {
		t.Fatalf("owner is %s", o)
	}

	// The same address cannot be registered twice.
	err = RegisterCollection(db, Collection{Address: collectionAddr, Owner: owner, Name: "again"})
	if !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %+v", err)
	}

	_, err = LoadCollection(db, receiver)
	if !ErrUnknownCollection.Is(err) {
		t.Fatalf("want unknown collection, got %+v", err)
	}
}

func TestMint(t *testing.T) {
	db := registry(t)
	id := big.NewInt(42)

	if err := Mint(db, collectionAddr, id, "ipfs://meta", 1, royaltyFixture(), holder); err != nil {
		t.Fatalf("mint: %+v", err)
	}

	ok, err := Exists(db, collectionAddr, id)
	if err != nil || !ok {
		t.Fatalf("minted token missing: %v %+v", ok, err)
	}

	tok, err := Load(db, collectionAddr, id)
	if err != nil {
		t.Fatalf("load: %+v", err)
	}
	if tok.URI != "ipfs://meta" || tok.Supply != 1 {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if tok.BalanceOf(holder) != 1 {
		t.Fatal("holder does not own the token")
	}
	if tok.Royalty.RoyaltyBps != 500 {
		t.Fatal("royalty configuration not frozen")
	}

	cfg, err := RoyaltyOf(db, collectionAddr, id)
	if err != nil {
		t.Fatalf("royalty of: %+v", err)
	}
	if cfg.RoyaltyBps != 500 || len(cfg.Splits) != 1 {
		t.Fatalf("unexpected royalty: %+v", cfg)
	}
	h, err := HolderOf(db, collectionAddr, id)
	if err != nil {
		t.Fatalf("holder of: %+v", err)
	}
	if h != holder {
		t.Fatalf("holder is %s", h)
	}

	// Minting the same ID again must fail.
	err = Mint(db, collectionAddr, id, "ipfs://other", 1, royaltyFixture(), receiver)
	if !ErrDuplicateToken.Is(err) {
		t.Fatalf("want duplicate token, got %+v", err)
	}

	// Minting into an unregistered collection must fail.
	err = Mint(db, receiver, id, "ipfs://meta", 1, royaltyFixture(), holder)
	if !ErrUnknownCollection.Is(err) {
		t.Fatalf("want unknown collection, got %+v", err)
	}
}

func TestMintRejectsBrokenRoyalty(t *testing.T) {
	db := registry(t)
	cfg := royalty.Config{
		Splits:     []royalty.Split{{Account: owner, Shares: 9000}},
		RoyaltyBps: 500,
	}
	err := Mint(db, collectionAddr, big.NewInt(1), "ipfs://meta", 1, cfg, holder)
	if !royalty.ErrInvalidConfig.Is(err) {
		t.Fatalf("want invalid config, got %+v", err)
	}
}

func TestTransfer(t *testing.T) {
	cases := map[string]struct {
		supply   uint64
		quantity uint64
		wantErr  *errors.Error
		wantFrom uint64
		wantTo   uint64
	}{
		"unique token": {
			supply: 1, quantity: 1, wantFrom: 0, wantTo: 1,
		},
		"partial holding": {
			supply: 10, quantity: 4, wantFrom: 6, wantTo: 4,
		},
		"whole holding": {
			supply: 10, quantity: 10, wantFrom: 0, wantTo: 10,
		},
		"more than held": {
			supply: 10, quantity: 11, wantErr: ErrHolderMismatch,
			wantFrom: 10, wantTo: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := registry(t)
			id := big.NewInt(7)
			if err := Mint(db, collectionAddr, id, "ipfs://meta", tc.supply, royaltyFixture(), holder); err != nil {
				t.Fatalf("mint: %+v", err)
			}

			err := Transfer(db, collectionAddr, id, holder, receiver, tc.quantity)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v, got %+v", tc.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("transfer: %+v", err)
			}

			tok, err := Load(db, collectionAddr, id)
			if err != nil {
				t.Fatalf("load: %+v", err)
			}
			if got := tok.BalanceOf(holder); got != tc.wantFrom {
				t.Fatalf("sender holds %d, want %d", got, tc.wantFrom)
			}
			if got := tok.BalanceOf(receiver); got != tc.wantTo {
				t.Fatalf("receiver holds %d, want %d", got, tc.wantTo)
			}
		})
	}
}

func TestTransferStrangerFails(t *testing.T) {
	db := registry(t)
	id := big.NewInt(7)
	if err := Mint(db, collectionAddr, id, "ipfs://meta", 1, royaltyFixture(), holder); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	err := Transfer(db, collectionAddr, id, receiver, owner, 1)
	if !ErrHolderMismatch.Is(err) {
		t.Fatalf("want holder mismatch, got %+v", err)
	}
}

func TestTransferMissingTokenFails(t *testing.T) {
	db := registry(t)
	err := Transfer(db, collectionAddr, big.NewInt(404), holder, receiver, 1)
	if !ErrTokenNotFound.Is(err) {
		t.Fatalf("want token not found, got %+v", err)
	}
}
