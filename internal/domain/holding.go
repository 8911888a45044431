package domain

import "github.com/shopspring/decimal"

// Holding is one portfolio position: a ticker, a share count, and an
// optional known price. A zero Price means the price must be resolved from
// market data.
type Holding struct {
	Ticker string
	Shares decimal.Decimal
	Price  decimal.Decimal
}

// HasPrice reports whether the holding carries an explicit price. Any
// non-zero price counts as an override; only zero means "resolve from
// market data".
func (h Holding) HasPrice() bool {
	return !h.Price.IsZero()
}

// PricedHolding is a Holding with its resolved price and computed value.
// It exists only in memory for the duration of one run.
type PricedHolding struct {
	Ticker string
	Shares decimal.Decimal
	Price  decimal.Decimal
	Value  decimal.Decimal
}

// NewPricedHolding builds a PricedHolding with value = shares × price.
func NewPricedHolding(ticker string, shares, price decimal.Decimal) PricedHolding {
	return PricedHolding{
		Ticker: ticker,
		Shares: shares,
		Price:  price,
		Value:  shares.Mul(price),
	}
}
