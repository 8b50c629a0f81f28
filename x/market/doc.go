/*
Package market implements the settlement orchestrator.

A sale is authorized entirely off ledger. The parties sign typed orders under
the marketplace EIP-712 domains: the collection owner signs a mint
authorization, the holder (or the collection owner on a first sale) signs a
listing and a trusted platform operator co-signs the same economic fields. The
marketplace verifies each signature independently, apportions the payment and
applies the mint or transfer together with all fund moves as one atomic unit.
A failed settlement leaves the ledger exactly as it was.

The marketplace configuration is a singleton record in the store holding the
protocol fee, the treasury address and the trusted operator set. It is read at
every settlement, so administrative updates apply to future sales only and can
never alter the frozen royalty configuration of minted tokens.
*/
package market
