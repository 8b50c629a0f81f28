package market

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/x/eip712"
	"github.com/artefakt-io/artefakt/x/royalty"
)

// EIP-712 type descriptors of the two supported message schemas. Signatures
// cannot be replayed across schemas because each carries its own type hash.
var (
	splitTypeHash = eip712.TypeHash("Split(address account,uint256 shares)")

	mintTypeHash = eip712.TypeHash("MintAuthorization(address collection,uint256 tokenId,uint256 quantity,string tokenURI,Split[] splits,uint256 royaltyBps,uint256 expiresAt)Split(address account,uint256 shares)")

	listingTypeHash = eip712.TypeHash("Listing(address collection,uint256 tokenId,uint256 quantity,uint256 price,uint256 expiresAt)")
)

// MintAuthorization is the collection owner's signed permission to bring a
// token into existence. It fixes the token's metadata and royalty
// configuration, so the marketplace cannot mint anything the owner did not
// describe.
type MintAuthorization struct {
	Collection common.Address
	TokenID    *big.Int
	Quantity   uint64
	URI        string
	Royalty    royalty.Config
	ExpiresAt  artefakt.UnixTime
	Signature  []byte
}

func (m *MintAuthorization) Validate() error {
	var errs error
	if m.Collection == (common.Address{}) {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if m.TokenID == nil || m.TokenID.Sign() < 0 {
		errs = errors.AppendField(errs, "TokenID", errors.ErrInput)
	}
	if m.Quantity == 0 {
		errs = errors.AppendField(errs, "Quantity", errors.ErrAmount)
	}
	if m.ExpiresAt == 0 {
		errs = errors.AppendField(errs, "ExpiresAt", errors.ErrEmpty)
	}
	if len(m.Signature) != eip712.SignatureLength {
		errs = errors.AppendField(errs, "Signature", eip712.ErrMalformedSignature)
	}
	return errs
}

// StructHash returns the EIP-712 struct hash of the authorization under the
// minting schema.
func (m *MintAuthorization) StructHash() common.Hash {
	return eip712.HashStruct(mintTypeHash,
		eip712.EncodeAddress(m.Collection),
		eip712.EncodeBigInt(m.TokenID),
		eip712.EncodeUint64(m.Quantity),
		eip712.EncodeString(m.URI),
		hashSplits(m.Royalty.Splits),
		eip712.EncodeUint64(uint64(m.Royalty.RoyaltyBps)),
		eip712.EncodeUint64(uint64(m.ExpiresAt)),
	)
}

// ListingOrder is a signed statement authorizing the sale of a token at a
// given price until expiration. The holder signs it to list; a trusted
// operator co-signs the same economic fields to admit the sale to the
// marketplace.
type ListingOrder struct {
	Collection common.Address
	TokenID    *big.Int
	Quantity   uint64
	Price      *big.Int
	ExpiresAt  artefakt.UnixTime
	Signature  []byte
}

func (l *ListingOrder) Validate() error {
	var errs error
	if l.Collection == (common.Address{}) {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if l.TokenID == nil || l.TokenID.Sign() < 0 {
		errs = errors.AppendField(errs, "TokenID", errors.ErrInput)
	}
	if l.Quantity == 0 {
		errs = errors.AppendField(errs, "Quantity", errors.ErrAmount)
	}
	if l.Price == nil || l.Price.Sign() < 0 {
		errs = errors.AppendField(errs, "Price", errors.ErrAmount)
	}
	if l.ExpiresAt == 0 {
		errs = errors.AppendField(errs, "ExpiresAt", errors.ErrEmpty)
	}
	if len(l.Signature) != eip712.SignatureLength {
		errs = errors.AppendField(errs, "Signature", eip712.ErrMalformedSignature)
	}
	return errs
}

// StructHash returns the EIP-712 struct hash of the listing under the sale
// schema.
func (l *ListingOrder) StructHash() common.Hash {
	return eip712.HashStruct(listingTypeHash,
		eip712.EncodeAddress(l.Collection),
		eip712.EncodeBigInt(l.TokenID),
		eip712.EncodeUint64(l.Quantity),
		eip712.EncodeBigInt(l.Price),
		eip712.EncodeUint64(uint64(l.ExpiresAt)),
	)
}

// Matches returns true if both orders agree on the economic fields of the
// sale. The signatures and expirations may differ.
func (l *ListingOrder) Matches(o *ListingOrder) bool {
	return l.Collection == o.Collection &&
		l.TokenID.Cmp(o.TokenID) == 0 &&
		l.Quantity == o.Quantity &&
		l.Price.Cmp(o.Price) == 0
}

// hashSplits encodes a splits array the EIP-712 way: the keccak hash of the
// concatenated struct hashes of its members.
func hashSplits(splits []royalty.Split) []byte {
	hs := make([]common.Hash, len(splits))
	for i, s := range splits {
		hs[i] = eip712.HashStruct(splitTypeHash,
			eip712.EncodeAddress(s.Account),
			eip712.EncodeUint64(uint64(s.Shares)),
		)
	}
	return eip712.EncodeHashes(hs)
}
