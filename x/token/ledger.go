package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	amino "github.com/tendermint/go-amino"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/x/royalty"
)

// idLength is the serialized token ID width. IDs are uint256 values, padded
// to the full width so that store keys are fixed size.
const idLength = 32

var cdc = amino.NewCodec()

func collectionKey(collection common.Address) []byte {
	return append([]byte("col:"), collection.Bytes()...)
}

func tokenKey(collection common.Address, id *big.Int) []byte {
	key := append([]byte("tok:"), collection.Bytes()...)
	return append(key, common.BigToHash(id).Bytes()...)
}

// RegisterCollection adds a collection to the registry. Registering the same
// collection address twice fails.
func RegisterCollection(db artefakt.KVStore, c Collection) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid collection")
	}
	key := collectionKey(c.Address)
	ok, err := db.Has(key)
	if err != nil {
		return errors.Wrap(err, "cannot check collection")
	}
	if ok {
		return errors.Wrapf(errors.ErrDuplicate, "collection %s", c.Address)
	}
	raw, err := cdc.MarshalBinaryBare(c)
	if err != nil {
		return errors.Wrap(err, "cannot serialize collection")
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrap(err, "cannot store collection")
	}
	return nil
}

// LoadCollection returns the registered collection with the given address.
func LoadCollection(db artefakt.ReadOnlyKVStore, collection common.Address) (*Collection, error) {
	raw, err := db.Get(collectionKey(collection))
	if err != nil {
		return nil, errors.Wrap(err, "cannot get collection")
	}
	if raw == nil {
		return nil, errors.Wrapf(ErrUnknownCollection, "collection %s", collection)
	}
	var c Collection
	if err := cdc.UnmarshalBinaryBare(raw, &c); err != nil {
		return nil, errors.Wrap(err, "cannot deserialize collection")
	}
	return &c, nil
}

// CollectionOwner returns the minting authority of a registered collection.
func CollectionOwner(db artefakt.ReadOnlyKVStore, collection common.Address) (common.Address, error) {
	c, err := LoadCollection(db, collection)
	if err != nil {
		return common.Address{}, err
	}
	return c.Owner, nil
}

// Exists returns true if the token was minted already.
func Exists(db artefakt.ReadOnlyKVStore, collection common.Address, id *big.Int) (bool, error) {
	ok, err := db.Has(tokenKey(collection, id))
	if err != nil {
		return false, errors.Wrap(err, "cannot check token")
	}
	return ok, nil
}

// Load returns the token with the given ID.
func Load(db artefakt.ReadOnlyKVStore, collection common.Address, id *big.Int) (*Token, error) {
	raw, err := db.Get(tokenKey(collection, id))
	if err != nil {
		return nil, errors.Wrap(err, "cannot get token")
	}
	if raw == nil {
		return nil, errors.Wrapf(ErrTokenNotFound, "token %s", id)
	}
	var t Token
	if err := cdc.UnmarshalBinaryBare(raw, &t); err != nil {
		return nil, errors.Wrap(err, "cannot deserialize token")
	}
	return &t, nil
}

// RoyaltyOf returns the royalty configuration frozen into the token at mint
// time.
func RoyaltyOf(db artefakt.ReadOnlyKVStore, collection common.Address, id *big.Int) (royalty.Config, error) {
	t, err := Load(db, collection, id)
	if err != nil {
		return royalty.Config{}, err
	}
	return t.Royalty.Copy(), nil
}

// HolderOf returns the single holder of a unique token. It fails for semi
// fungible tokens held by more than one account, where per holder balances
// must be inspected instead.
func HolderOf(db artefakt.ReadOnlyKVStore, collection common.Address, id *big.Int) (common.Address, error) {
	t, err := Load(db, collection, id)
	if err != nil {
		return common.Address{}, err
	}
	if len(t.Holdings) != 1 {
		return common.Address{}, errors.Wrapf(errors.ErrState, "token has %d holders", len(t.Holdings))
	}
	return t.Holdings[0].Holder, nil
}

// Mint creates a token within a registered collection and assigns the whole
// supply to the holder. The royalty configuration is validated here, once,
// and is immutable afterwards.
func Mint(db artefakt.KVStore, collection common.Address, id *big.Int, uri string, quantity uint64, cfg royalty.Config, holder common.Address) error {
	if _, err := LoadCollection(db, collection); err != nil {
		return err
	}
	ok, err := Exists(db, collection, id)
	if err != nil {
		return err
	}
	if ok {
		return errors.Wrapf(ErrDuplicateToken, "token %s", id)
	}

	t := Token{
		ID:       common.BigToHash(id).Bytes(),
		URI:      uri,
		Supply:   quantity,
		Royalty:  cfg.Copy(),
		Holdings: []Holding{{Holder: holder, Quantity: quantity}},
	}
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "invalid token")
	}
	return save(db, collection, &t)
}

// Transfer moves quantity units of the token from one holder to another. It
// fails with ErrHolderMismatch if the sender does not hold enough.
func Transfer(db artefakt.KVStore, collection common.Address, id *big.Int, from, to common.Address, quantity uint64) error {
	if quantity == 0 {
		return errors.Wrap(errors.ErrAmount, "zero quantity")
	}
	if to == (common.Address{}) {
		return errors.Wrap(errors.ErrEmpty, "receiver")
	}
	t, err := Load(db, collection, id)
	if err != nil {
		return err
	}
	if t.BalanceOf(from) < quantity {
		return errors.Wrapf(ErrHolderMismatch, "%s holds %d of %d", from, t.BalanceOf(from), quantity)
	}
	if from == to {
		return nil
	}

	holdings := make([]Holding, 0, len(t.Holdings)+1)
	credited := false
	for _, h := range t.Holdings {
		switch h.Holder {
		case from:
			h.Quantity -= quantity
		case to:
			h.Quantity += quantity
			credited = true
		}
		if h.Quantity > 0 {
			holdings = append(holdings, h)
		}
	}
	if !credited {
		holdings = append(holdings, Holding{Holder: to, Quantity: quantity})
	}
	t.Holdings = holdings
	return save(db, collection, t)
}

func save(db artefakt.KVStore, collection common.Address, t *Token) error {
	raw, err := cdc.MarshalBinaryBare(*t)
	if err != nil {
		return errors.Wrap(err, "cannot serialize token")
	}
	if err := db.Set(tokenKey(collection, new(big.Int).SetBytes(t.ID)), raw); err != nil {
		return errors.Wrap(err, "cannot store token")
	}
	return nil
}
