/*
Package cash keeps track of account balances.

Balances live directly in the key value store, one entry per funded account.
Amounts are arbitrary precision integers in the smallest currency unit, so the
package never rounds and never overflows. An account with a zero balance is
indistinguishable from an account that was never funded; its store entry is
removed.

The package exposes controller style functions operating on a KVStore. Moving
funds is not atomic across calls. Settlement code that performs several moves
must run them inside a cache wrap and write only on success.
*/
package cash
