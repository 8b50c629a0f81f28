package eip712

import "github.com/artefakt-io/artefakt/errors"

// ErrMalformedSignature is returned when a signature blob cannot be decoded
// at all: wrong length, recovery id out of range or an unrecoverable curve
// point. It is distinct from a signature that decodes fine but recovers an
// unexpected signer; that is a policy failure owned by the caller.
var ErrMalformedSignature = errors.Register(100, "malformed signature encoding")
