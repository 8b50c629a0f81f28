/*
Package royalty implements exact fee and royalty apportionment.

A royalty configuration is attached to a token once, at mint time, and is
immutable afterwards: later marketplace policy changes can never alter the
payout rules of an already minted token. The configuration names the split
payees with their proportional shares (basis points, summing to exactly 10000)
and the royalty rate charged on resales.

Apportion turns a sale price into concrete payout amounts. All arithmetic is
integer floor division; whatever the per-payee floors leave over is assigned
to the last split payee, so the amounts always sum to the price exactly and no
unit is ever lost to rounding.
*/
package royalty
