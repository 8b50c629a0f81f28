/*
Package eip712 implements hashing and signer recovery for EIP-712 structured
messages.

The package is pure: it holds no state and performs no policy checks. It turns
a domain and an encoded struct into a signing digest and recovers the signer
address from a 65 byte [R || S || V] secp256k1 signature. Whether the
recovered address is the one a flow expects is the caller's decision.

A malformed signature never recovers to a usable address; it fails closed
with ErrMalformedSignature.
*/
package eip712
