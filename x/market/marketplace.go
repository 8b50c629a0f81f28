package market

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/x/cash"
	"github.com/artefakt-io/artefakt/x/eip712"
	"github.com/artefakt-io/artefakt/x/royalty"
	"github.com/artefakt-io/artefakt/x/token"
)

// EIP-712 domain names. Mint authorizations verify against the collection
// address, listings against the marketplace itself.
const (
	mintDomainName    = "Artefakt721"
	listingDomainName = "Artefakt Marketplace"
	domainVersion     = "1"
)

// Marketplace is the settlement orchestrator. It holds no state of its own
// beyond its identity; all ledger state lives in the store passed to each
// settlement call.
type Marketplace struct {
	address common.Address
	chainID *big.Int
	now     func() artefakt.UnixTime
	logger  log.Logger
}

// NewMarketplace returns an orchestrator settling under the given marketplace
// address and chain ID. It uses the wall clock and logs nowhere until
// configured otherwise.
func NewMarketplace(address common.Address, chainID *big.Int) *Marketplace {
	return &Marketplace{
		address: address,
		chainID: chainID,
		now: func() artefakt.UnixTime {
			return artefakt.AsUnixTime(time.Now())
		},
		logger: log.NewNopLogger(),
	}
}

// WithLogger returns the marketplace logging through the given logger.
func (m *Marketplace) WithLogger(l log.Logger) *Marketplace {
	m.logger = l
	return m
}

// WithClock returns the marketplace reading the current time from the given
// function. Embedders running over a block based ledger plug in the block
// time here so that expiration checks are deterministic.
func (m *Marketplace) WithClock(now func() artefakt.UnixTime) *Marketplace {
	m.now = now
	return m
}

func (m *Marketplace) mintDomain(collection common.Address) eip712.Domain {
	return eip712.Domain{
		Name:              mintDomainName,
		Version:           domainVersion,
		ChainID:           m.chainID,
		VerifyingContract: collection,
	}
}

func (m *Marketplace) listingDomain() eip712.Domain {
	return eip712.Domain{
		Name:              listingDomainName,
		Version:           domainVersion,
		ChainID:           m.chainID,
		VerifyingContract: m.address,
	}
}

// MintDigest returns the digest a collection owner signs to authorize the
// mint.
func (m *Marketplace) MintDigest(auth *MintAuthorization) common.Hash {
	return eip712.Digest(m.mintDomain(auth.Collection).Separator(), auth.StructHash())
}

// ListingDigest returns the digest signed by both the listing party and the
// operator.
func (m *Marketplace) ListingDigest(l *ListingOrder) common.Hash {
	return eip712.Digest(m.listingDomain().Separator(), l.StructHash())
}

// BuyAndMint settles a first sale. The token described by the mint
// authorization must not exist yet; it is minted directly to the buyer and
// the payment is apportioned between the protocol treasury and the royalty
// splits.
//
// The payment amount must cover the listed price but only the price is ever
// taken from the buyer's balance, so any excess stays with the buyer. All
// state changes happen in a cache wrap that is written only when every step
// succeeded.
func (m *Marketplace) BuyAndMint(db artefakt.CacheableKVStore, buyer common.Address, auth *MintAuthorization, listing, operator *ListingOrder, payment *big.Int) error {
	if err := auth.Validate(); err != nil {
		return errors.Wrap(err, "mint authorization")
	}
	if err := validateListingPair(listing, operator); err != nil {
		return err
	}

	cache := db.CacheWrap()
	if err := m.settleMint(cache, buyer, auth, listing, operator, payment); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write settlement")
	}
	m.logger.Info("settled first sale",
		"collection", auth.Collection,
		"token", auth.TokenID,
		"buyer", buyer,
		"price", listing.Price)
	return nil
}

func (m *Marketplace) settleMint(db artefakt.KVStore, buyer common.Address, auth *MintAuthorization, listing, operator *ListingOrder, payment *big.Int) error {
	var conf Configuration
	if err := LoadConfiguration(db, &conf); err != nil {
		return err
	}

	now := m.now()
	for _, e := range []artefakt.UnixTime{auth.ExpiresAt, listing.ExpiresAt, operator.ExpiresAt} {
		if e < now {
			return errors.Wrapf(ErrOrderExpired, "expired at %s", e)
		}
	}

	if auth.Collection != listing.Collection ||
		auth.TokenID.Cmp(listing.TokenID) != 0 ||
		auth.Quantity != listing.Quantity {
		return errors.Wrap(ErrOrderMismatch, "mint authorization does not match listing")
	}

	col, err := token.LoadCollection(db, auth.Collection)
	if err != nil {
		return err
	}

	mintSigner, err := eip712.RecoverSigner(m.MintDigest(auth), auth.Signature)
	if err != nil {
		return err
	}
	if mintSigner != col.Owner {
		return errors.Wrapf(ErrInvalidListingSignature, "mint authorized by %s, not the collection owner", mintSigner)
	}
	// On a first sale the listing is signed by the minting authority as
	// well, as there is no holder yet.
	listingSigner, err := eip712.RecoverSigner(m.ListingDigest(listing), listing.Signature)
	if err != nil {
		return err
	}
	if listingSigner != col.Owner {
		return errors.Wrapf(ErrInvalidListingSignature, "listed by %s, not the collection owner", listingSigner)
	}
	if err := m.requireTrustedOperator(&conf, operator); err != nil {
		return err
	}

	if payment == nil || payment.Cmp(listing.Price) < 0 {
		return errors.Wrapf(ErrInsufficientPayment, "price %s", listing.Price)
	}

	if err := token.Mint(db, auth.Collection, auth.TokenID, auth.URI, auth.Quantity, auth.Royalty, buyer); err != nil {
		return err
	}

	payout, err := royalty.Apportion(listing.Price, conf.ProtocolFeeBps, auth.Royalty, true)
	if err != nil {
		return err
	}
	// Without splits the remainder belongs to the minting authority.
	return m.payOut(db, &conf, buyer, col.Owner, payout)
}

// BuyAndTransfer settles a resale. The token must exist and be held by the
// seller in at least the listed quantity. The royalty configuration is read
// from the token record, frozen since mint time. Atomicity is the same as in
// BuyAndMint.
func (m *Marketplace) BuyAndTransfer(db artefakt.CacheableKVStore, buyer, seller common.Address, listing, operator *ListingOrder, payment *big.Int) error {
	if err := validateListingPair(listing, operator); err != nil {
		return err
	}

	cache := db.CacheWrap()
	if err := m.settleTransfer(cache, buyer, seller, listing, operator, payment); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write settlement")
	}
	m.logger.Info("settled resale",
		"collection", listing.Collection,
		"token", listing.TokenID,
		"seller", seller,
		"buyer", buyer,
		"price", listing.Price)
	return nil
}

func (m *Marketplace) settleTransfer(db artefakt.KVStore, buyer, seller common.Address, listing, operator *ListingOrder, payment *big.Int) error {
	var conf Configuration
	if err := LoadConfiguration(db, &conf); err != nil {
		return err
	}

	now := m.now()
	if listing.ExpiresAt < now || operator.ExpiresAt < now {
		return errors.Wrap(ErrOrderExpired, "expired order")
	}

	listingSigner, err := eip712.RecoverSigner(m.ListingDigest(listing), listing.Signature)
	if err != nil {
		return err
	}
	if listingSigner != seller {
		return errors.Wrapf(ErrInvalidListingSignature, "listed by %s, not the seller", listingSigner)
	}
	if err := m.requireTrustedOperator(&conf, operator); err != nil {
		return err
	}

	if payment == nil || payment.Cmp(listing.Price) < 0 {
		return errors.Wrapf(ErrInsufficientPayment, "price %s", listing.Price)
	}

	tok, err := token.Load(db, listing.Collection, listing.TokenID)
	if err != nil {
		return err
	}
	if err := token.Transfer(db, listing.Collection, listing.TokenID, seller, buyer, listing.Quantity); err != nil {
		return err
	}

	payout, err := royalty.Apportion(listing.Price, conf.ProtocolFeeBps, tok.Royalty, false)
	if err != nil {
		return err
	}
	return m.payOut(db, &conf, buyer, seller, payout)
}

// requireTrustedOperator verifies the operator co-signature against the sale
// it admits: the co-signed fields must match the listing and the signer must
// belong to the trusted operator set.
func (m *Marketplace) requireTrustedOperator(conf *Configuration, operator *ListingOrder) error {
	opSigner, err := eip712.RecoverSigner(m.ListingDigest(operator), operator.Signature)
	if err != nil {
		return err
	}
	if !conf.IsTrustedOperator(opSigner) {
		return errors.Wrapf(ErrUntrustedOperator, "co-signed by %s", opSigner)
	}
	return nil
}

// payOut moves every payout amount from the buyer to its payee. Zero amounts
// move nothing, so a payee with an empty cut does not gain a store entry. A
// payee that is the buyer keeps the cut where it already is. A failing move
// fails the settlement.
func (m *Marketplace) payOut(db artefakt.KVStore, conf *Configuration, buyer, seller common.Address, payout *royalty.Payout) error {
	if err := m.pay(db, buyer, conf.Treasury, payout.Protocol); err != nil {
		return errors.Wrap(err, "protocol fee")
	}
	for _, share := range payout.Royalties {
		if err := m.pay(db, buyer, share.Account, share.Amount); err != nil {
			return errors.Wrapf(err, "royalty to %s", share.Account)
		}
	}
	if err := m.pay(db, buyer, seller, payout.Seller); err != nil {
		return errors.Wrap(err, "seller proceeds")
	}
	return nil
}

func (m *Marketplace) pay(db artefakt.KVStore, buyer, payee common.Address, amount *big.Int) error {
	if buyer == payee {
		return nil
	}
	return cash.Move(db, buyer, payee, amount)
}

func validateListingPair(listing, operator *ListingOrder) error {
	if err := listing.Validate(); err != nil {
		return errors.Wrap(err, "listing")
	}
	if err := operator.Validate(); err != nil {
		return errors.Wrap(err, "operator co-signature")
	}
	if !listing.Matches(operator) {
		return errors.Wrap(ErrOrderMismatch, "listing and co-signature disagree")
	}
	return nil
}
