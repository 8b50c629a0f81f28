package token

import "github.com/artefakt-io/artefakt/errors"

var (
	// ErrDuplicateToken is returned when minting a token ID that already
	// exists within the collection.
	ErrDuplicateToken = errors.Register(130, "token already minted")

	// ErrTokenNotFound is returned when operating on a token ID that was
	// never minted.
	ErrTokenNotFound = errors.Register(131, "token not found")

	// ErrHolderMismatch is returned when a transfer names a holder that
	// does not own (enough of) the token.
	ErrHolderMismatch = errors.Register(132, "holder mismatch")

	// ErrUnknownCollection is returned when referencing a collection that
	// was never registered.
	ErrUnknownCollection = errors.Register(133, "unknown collection")
)
