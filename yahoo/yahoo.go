// Package yahoo looks up live instrument prices on Yahoo Finance.
package yahoo

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
	"github.com/vlanx/etf-knapsack"
)

// Provider implements knapsack.PriceProvider with Yahoo Finance quotes,
// using the current bid price of each symbol.
type Provider struct{}

// getQuote fetches one symbol's quote. Tests substitute it to keep the
// network out of the loop.
var getQuote = quote.Get

// Prices fetches the bid price of every symbol, one synchronous lookup per
// instrument. Any failed lookup, or a quote without a positive bid, aborts
// the whole fetch with an error wrapping knapsack.ErrPriceUnavailable.
func (Provider) Prices(tickers map[string]string, currency string) (*knapsack.PriceTable, error) {
	prices := make(map[string]knapsack.Money, len(tickers))
	for ticker, symbol := range tickers {
		q, err := getQuote(symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %v", knapsack.ErrPriceUnavailable, ticker, symbol, err)
		}
		if q == nil {
			return nil, fmt.Errorf("%w: %s (%s): no quote returned", knapsack.ErrPriceUnavailable, ticker, symbol)
		}
		if q.Bid <= 0 {
			return nil, fmt.Errorf("%w: %s (%s): no bid price in quote", knapsack.ErrPriceUnavailable, ticker, symbol)
		}
		prices[ticker] = knapsack.M(q.Bid, currency)
	}
	return knapsack.NewPriceTable(prices), nil
}
