/*
Package errors implements the error taxonomy used across the settlement
engine.

Every failure surfaced to a caller wraps exactly one registered root error.
Root errors carry a unique code, so a client assembling signed orders can tell
which input was defective and correct it; none of the failures are retryable
from the engine's perspective.

Generic root errors are declared in this package. Extension packages register
their own kinds (for example the market extension registers the order
expiration and operator trust failures) using the Register function with a
code unique across the whole program.

Use Wrap and Wrapf to add context while preserving the root kind:

	return errors.Wrapf(errors.ErrNotFound, "token %s", id)

and the root's Is method to test for a kind:

	if token.ErrDuplicateToken.Is(err) { ... }
*/
package errors
