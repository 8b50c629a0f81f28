package eip712

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	"github.com/artefakt-io/artefakt/errors"
)

// SignatureLength is the byte length of an [R || S || V] signature.
const SignatureLength = 65

// domainTypeHash is the type hash of the EIP712Domain struct as used by this
// engine. The salt and extensions fields are not used.
var domainTypeHash = TypeHash("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)")

// Domain binds signatures to one verifying contract on one chain running one
// protocol version. Signatures over the same payload under a different domain
// recover to a different digest and therefore a different (useless) address.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// Validate returns an error if the domain would not bind signatures to a
// concrete deployment.
func (d Domain) Validate() error {
	var errs error
	if d.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if d.Version == "" {
		errs = errors.AppendField(errs, "Version", errors.ErrEmpty)
	}
	if d.ChainID == nil || d.ChainID.Sign() <= 0 {
		errs = errors.AppendField(errs, "ChainID", errors.ErrEmpty)
	}
	if d.VerifyingContract == (common.Address{}) {
		errs = errors.AppendField(errs, "VerifyingContract", errors.ErrEmpty)
	}
	return errs
}

// Separator returns the domain separator hash that prefixes every digest
// created under this domain.
func (d Domain) Separator() common.Hash {
	return keccak(
		domainTypeHash[:],
		keccak([]byte(d.Name)).Bytes(),
		keccak([]byte(d.Version)).Bytes(),
		EncodeBigInt(d.ChainID),
		EncodeAddress(d.VerifyingContract),
	)
}

// TypeHash hashes an EIP-712 type string, for example
// "Listing(address collection,uint256 tokenId,uint256 price)".
func TypeHash(signature string) common.Hash {
	return keccak([]byte(signature))
}

// HashStruct combines a type hash with the already encoded field values.
// Every field must be encoded to exactly 32 bytes by one of the Encode
// helpers below.
func HashStruct(typeHash common.Hash, fields ...[]byte) common.Hash {
	chunks := make([][]byte, 0, len(fields)+1)
	chunks = append(chunks, typeHash[:])
	chunks = append(chunks, fields...)
	return keccak(chunks...)
}

// Digest assembles the final signing digest:
// keccak256("\x19\x01" || domainSeparator || structHash).
func Digest(separator, structHash common.Hash) common.Hash {
	return keccak([]byte{0x19, 0x01}, separator[:], structHash[:])
}

// RecoverSigner returns the address whose key produced the given signature
// over the given digest.
//
// Both the geth convention (V of 0 or 1) and the on-chain convention (27 or
// 28) are accepted. Anything that does not decode to a curve point fails with
// ErrMalformedSignature.
func RecoverSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, errors.Wrapf(ErrMalformedSignature, "%d bytes", len(sig))
	}

	// Normalize the recovery id without mutating the caller's slice.
	norm := make([]byte, SignatureLength)
	copy(norm, sig)
	if norm[64] >= 27 {
		norm[64] -= 27
	}
	if norm[64] > 1 {
		return common.Address{}, errors.Wrapf(ErrMalformedSignature, "recovery id %d", sig[64])
	}

	pub, err := crypto.SigToPub(digest[:], norm)
	if err != nil {
		return common.Address{}, errors.Wrap(ErrMalformedSignature, err.Error())
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// EncodeAddress encodes an address as a 32 byte EIP-712 field value.
func EncodeAddress(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), 32)
}

// EncodeBigInt encodes an unsigned integer as a 32 byte EIP-712 field value.
// A nil value encodes as zero. Values must fit 256 bits.
func EncodeBigInt(v *big.Int) []byte {
	if v == nil {
		return make([]byte, 32)
	}
	return common.LeftPadBytes(v.Bytes(), 32)
}

// EncodeUint64 encodes an unsigned integer as a 32 byte EIP-712 field value.
func EncodeUint64(v uint64) []byte {
	return EncodeBigInt(new(big.Int).SetUint64(v))
}

// EncodeString encodes a dynamic string field value: the keccak hash of its
// contents.
func EncodeString(s string) []byte {
	h := keccak([]byte(s))
	return h[:]
}

// EncodeHashes encodes an array-of-structs field value: the keccak hash of
// the concatenated struct hashes.
func EncodeHashes(hs []common.Hash) []byte {
	chunks := make([][]byte, len(hs))
	for i, h := range hs {
		h := h
		chunks[i] = h[:]
	}
	out := keccak(chunks...)
	return out[:]
}

func keccak(chunks ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	var out common.Hash
	h.Sum(out[:0])
	return out
}
