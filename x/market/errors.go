package market

import "github.com/artefakt-io/artefakt/errors"

var (
	// ErrOrderExpired is returned when a signed order's expiration is in
	// the past at settlement time.
	ErrOrderExpired = errors.Register(140, "order expired")

	// ErrInvalidListingSignature is returned when a mint authorization or
	// listing signature recovers to an identity without authority over
	// the asset.
	ErrInvalidListingSignature = errors.Register(141, "invalid listing signature")

	// ErrUntrustedOperator is returned when the operator co-signature
	// recovers to an identity outside the trusted operator set.
	ErrUntrustedOperator = errors.Register(142, "untrusted operator")

	// ErrInsufficientPayment is returned when the payment does not cover
	// the listed price.
	ErrInsufficientPayment = errors.Register(143, "insufficient payment")

	// ErrOrderMismatch is returned when the listing and the operator
	// co-signature disagree on the economic fields of the sale.
	ErrOrderMismatch = errors.Register(144, "order mismatch")
)
