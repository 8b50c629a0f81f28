/*
Package markettest provides test helpers for settlement tests.

It generates throwaway secp256k1 accounts that can sign settlement digests
the same way wallets sign them in production, and funds accounts in a test
store. The assert subpackage holds minimal assertion helpers aware of the
engine's error kinds.
*/
package markettest
