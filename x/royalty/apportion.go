package royalty

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/artefakt-io/artefakt/errors"
)

// Share is one computed royalty payout.
type Share struct {
	Account common.Address
	Amount  *big.Int
}

// Payout is the exact apportionment of a sale price. It is derived per
// settlement and never stored. Protocol plus all royalty shares plus Seller
// always sum to the price that produced it.
type Payout struct {
	// Protocol is the marketplace fee, paid to the protocol treasury.
	Protocol *big.Int
	// Royalties are the split payees' cuts, in configuration order.
	Royalties []Share
	// Seller is what remains for the party executing the sale: the
	// current holder on a resale, the minter on a first sale without
	// splits.
	Seller *big.Int
}

// Apportion splits a sale price between the protocol treasury, the royalty
// split payees and the seller.
//
// The protocol takes floor(price*protocolFeeBps/10000) off the top. On a
// first sale the whole remainder is the royalty pool; on a resale the pool is
// floor(remainder*royaltyBps/10000) and the rest belongs to the seller. The
// pool is then divided between the splits by their shares, with the rounding
// residual assigned to the last split so the total is exact.
//
// The royalty configuration is expected to be validated already (this happens
// at mint time); Apportion still rejects obviously broken input rather than
// producing a payout that does not sum up.
func Apportion(price *big.Int, protocolFeeBps uint32, c Config, firstSale bool) (*Payout, error) {
	if price == nil || price.Sign() < 0 {
		return nil, errors.Wrap(errors.ErrAmount, "negative price")
	}
	if protocolFeeBps > FeeDenominator {
		return nil, errors.Wrapf(errors.ErrAmount, "protocol fee %d bps", protocolFeeBps)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	denom := big.NewInt(FeeDenominator)

	protocol := new(big.Int).Mul(price, big.NewInt(int64(protocolFeeBps)))
	protocol.Div(protocol, denom)
	remainder := new(big.Int).Sub(price, protocol)

	pool := new(big.Int)
	if firstSale {
		pool.Set(remainder)
	} else {
		pool.Mul(remainder, big.NewInt(int64(c.RoyaltyBps)))
		pool.Div(pool, denom)
	}

	payout := Payout{
		Protocol: protocol,
		Seller:   new(big.Int).Sub(remainder, pool),
	}

	if len(c.Splits) == 0 {
		// Permitted only with a zero royalty rate, so the pool can be
		// non-empty only on a first sale: the whole remainder then
		// belongs to the minter executing the sale.
		payout.Seller.Add(payout.Seller, pool)
		return &payout, nil
	}

	payout.Royalties = make([]Share, len(c.Splits))
	distributed := new(big.Int)
	for i, s := range c.Splits {
		amount := new(big.Int).Mul(pool, big.NewInt(int64(s.Shares)))
		amount.Div(amount, denom)
		distributed.Add(distributed, amount)
		payout.Royalties[i] = Share{Account: s.Account, Amount: amount}
	}

	// Because shares sum to exactly 10000, per-payee floors can leave at
	// most len(splits)-1 smallest units behind. They go to the last payee
	// so that the payout sums to the price exactly.
	if residual := new(big.Int).Sub(pool, distributed); residual.Sign() > 0 {
		last := payout.Royalties[len(payout.Royalties)-1]
		last.Amount.Add(last.Amount, residual)
	}

	return &payout, nil
}

// Total returns the sum of all payout amounts. It always equals the price the
// payout was computed from.
func (p *Payout) Total() *big.Int {
	total := new(big.Int).Add(p.Protocol, p.Seller)
	for _, r := range p.Royalties {
		total.Add(total, r.Amount)
	}
	return total
}
