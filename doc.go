/*
Package artefakt provides the kernel types shared by the Artefakt settlement
engine extensions.

Artefakt settles marketplace sales of unique and semi-fungible digital assets.
A sale is authorized off-line by structured signatures (a listing signed by the
asset holder, co-signed by a trusted operator, and for first sales a mint
authorization signed by the collection owner) and executed as a single
all-or-nothing state transition: signature checks, fee and royalty
apportionment, mint or transfer, and every payment either all succeed or leave
no trace.

This package defines only what every extension needs: the key-value store
interfaces that carry the ledger state, and the UnixTime type used for order
expirations. The actual functionality lives in the extension packages:

	store      in-memory stores and the cache-wrap rollback primitive
	store/iavl merkle-tree backed persistent store
	x/eip712   structured message hashing and signer recovery
	x/royalty  exact fee and royalty apportionment
	x/cash     account balances and fund movement
	x/token    collections, token records and holdings
	x/market   the settlement orchestrator
*/
package artefakt
