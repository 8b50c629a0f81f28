package market

import (
	"github.com/ethereum/go-ethereum/common"
	amino "github.com/tendermint/go-amino"

	"github.com/artefakt-io/artefakt"
	"github.com/artefakt-io/artefakt/errors"
)

var cdc = amino.NewCodec()

// configurationKey addresses the marketplace configuration singleton.
var configurationKey = []byte("_c:market")

// Configuration is the administrative state of the marketplace. It is read
// fresh at every settlement so updates apply to future sales only.
type Configuration struct {
	// ProtocolFeeBps is the marketplace fee taken off the top of every
	// sale, in basis points.
	ProtocolFeeBps uint32
	// Treasury receives the protocol fee.
	Treasury common.Address
	// Operators are the identities trusted to co-sign listings.
	Operators []common.Address
}

func (c *Configuration) Validate() error {
	var errs error
	if c.ProtocolFeeBps > 10000 {
		errs = errors.AppendField(errs, "ProtocolFeeBps", errors.ErrAmount)
	}
	if c.Treasury == (common.Address{}) {
		errs = errors.AppendField(errs, "Treasury", errors.ErrEmpty)
	}
	if len(c.Operators) == 0 {
		errs = errors.AppendField(errs, "Operators", errors.ErrEmpty)
	}
	for i, op := range c.Operators {
		if op == (common.Address{}) {
			errs = errors.Append(errs, errors.Field("Operators", errors.ErrModel, "operator %d empty", i))
		}
	}
	return errs
}

// IsTrustedOperator returns true if the identity belongs to the trusted
// operator set.
func (c *Configuration) IsTrustedOperator(a common.Address) bool {
	for _, op := range c.Operators {
		if op == a {
			return true
		}
	}
	return false
}

// SaveConfiguration validates the configuration and writes it to its
// singleton key.
func SaveConfiguration(db artefakt.KVStore, c *Configuration) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	raw, err := cdc.MarshalBinaryBare(*c)
	if err != nil {
		return errors.Wrap(err, "cannot serialize configuration")
	}
	if err := db.Set(configurationKey, raw); err != nil {
		return errors.Wrap(err, "cannot store configuration")
	}
	return nil
}

// LoadConfiguration returns the marketplace configuration singleton.
func LoadConfiguration(db artefakt.ReadOnlyKVStore, dst *Configuration) error {
	raw, err := db.Get(configurationKey)
	if err != nil {
		return errors.Wrap(err, "cannot get configuration")
	}
	if raw == nil {
		return errors.Wrap(errors.ErrNotFound, "configuration not initialised")
	}
	if err := cdc.UnmarshalBinaryBare(raw, dst); err != nil {
		return errors.Wrap(err, "cannot deserialize configuration")
	}
	return nil
}
