/*
Package token implements the asset ledger.

A collection groups tokens under a single contract address and names the
account authorized to approve mints into it. A token is identified by its
collection together with a 256 bit token ID and carries the metadata URI, the
total supply and the royalty configuration frozen at mint time.

Tokens can be unique or semi fungible. A unique token has supply one and a
single holder. A semi fungible token tracks per holder quantities and a
transfer moves part of a holding.

State is serialized with amino and kept under the "tok:" and "col:" prefixes
of the key value store, so the ledger can share a store with account balances
and marketplace configuration.
*/
package token
