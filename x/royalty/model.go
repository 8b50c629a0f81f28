package royalty

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt/errors"
)

// ErrInvalidConfig is returned when a royalty configuration violates the
// shares invariant. The check happens once, before a token is minted, never
// on individual sales.
var ErrInvalidConfig = errors.Register(110, "invalid royalty configuration")

// FeeDenominator is the basis point denominator. All shares and rates in the
// engine are expressed as parts of it.
const FeeDenominator = 10000

// maxSplits bounds the number of split payees within a single configuration.
// This is a high number that should not be an issue in real life scenarios,
// but having a sane limit avoids paying out to unbounded payee lists.
const maxSplits = 200

// Split is one royalty payee together with its proportional share.
type Split struct {
	Account common.Address
	// Shares is the proportion of the royalty pool paid to this account,
	// in basis points. All shares of a configuration sum to 10000.
	Shares uint32
}

// Config is the royalty configuration frozen into a token at mint time.
type Config struct {
	Splits []Split
	// RoyaltyBps is the royalty rate charged on resales, in basis points.
	// First sales distribute the whole remainder and do not use it.
	RoyaltyBps uint32
}

// Validate returns ErrInvalidConfig based errors if the configuration must
// not be attached to a token.
func (c Config) Validate() error {
	var errs error
	if c.RoyaltyBps > FeeDenominator {
		errs = errors.AppendField(errs, "RoyaltyBps", ErrInvalidConfig)
	}

	if len(c.Splits) == 0 {
		// A token without splits earns no royalties, so a non-zero
		// rate would be money sent nowhere.
		if c.RoyaltyBps != 0 {
			errs = errors.AppendField(errs, "Splits", ErrInvalidConfig)
		}
		return errs
	}
	if len(c.Splits) > maxSplits {
		return errors.AppendField(errs, "Splits", ErrInvalidConfig)
	}

	// Split accounts must not repeat. Repeating accounts would not cause
	// an issue, but requiring them to be unique increases configuration
	// clarity.
	accounts := make(map[common.Address]struct{}, len(c.Splits))

	var sum uint64
	for i, s := range c.Splits {
		if s.Account == (common.Address{}) {
			errs = errors.Append(errs, errors.Field("Splits", ErrInvalidConfig, "split %d empty account", i))
			continue
		}
		if s.Shares == 0 || s.Shares > FeeDenominator {
			errs = errors.Append(errs, errors.Field("Splits", ErrInvalidConfig, "split %d invalid shares", i))
			continue
		}
		if _, ok := accounts[s.Account]; ok {
			errs = errors.Append(errs, errors.Field("Splits", ErrInvalidConfig, "account %s is not unique", s.Account))
			continue
		}
		accounts[s.Account] = struct{}{}
		sum += uint64(s.Shares)
	}
	if errs != nil {
		return errs
	}

	if sum != FeeDenominator {
		return errors.Field("Splits", ErrInvalidConfig, "shares sum to %d, not %d", sum, FeeDenominator)
	}
	return nil
}

// Copy returns a deep copy of the configuration, so a frozen config can be
// handed out without sharing the splits slice.
func (c Config) Copy() Config {
	cpy := Config{
		Splits:     make([]Split, len(c.Splits)),
		RoyaltyBps: c.RoyaltyBps,
	}
	copy(cpy.Splits, c.Splits)
	return cpy
}
