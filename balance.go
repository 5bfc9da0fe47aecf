package knapsack

import "fmt"

// Balance is the portfolio's allocation at a point: its total value and the
// weight of every instrument plus the cash bucket, keyed by ticker and
// CashTicker. With non-negative holdings and prices, weights sum to 100
// within floating-point tolerance.
type Balance struct {
	Total   Money
	Weights map[string]Percent
}

// CurrentBalance computes the portfolio's allocation from the holdings at
// current prices. Every priced instrument must have a holdings entry,
// otherwise it fails with ErrMissingAllocation.
func (t *PriceTable) CurrentBalance(h *Holdings) (*Balance, error) {
	return t.balance(h, nil)
}

// ProjectedBalance computes the allocation the portfolio would have after
// buying the combination: each instrument's quantity grows by the
// combination's quantity, at current prices.
//
// The cash bucket is deliberately left untouched: the budget is modelled as
// new external money, not as a withdrawal from the held cash. The projected
// total includes the added instrument value, so weights still sum to 100.
func (t *PriceTable) ProjectedBalance(h *Holdings, c Combination) (*Balance, error) {
	return t.balance(h, c)
}

// balance values each position as (held + extra quantity) · price and turns
// the values into percentages of the total.
func (t *PriceTable) balance(h *Holdings, extra Combination) (*Balance, error) {
	values := make(map[string]Money, len(t.tickers)+1)
	total := M(0, h.cash.Currency())
	for _, ticker := range t.tickers {
		held, ok := h.Position(ticker)
		if !ok {
			return nil, fmt.Errorf("%w: no entry for priced instrument %s", ErrMissingAllocation, ticker)
		}
		value := t.prices[ticker].MulInt(held + extra[ticker])
		values[ticker] = value
		total = total.Add(value)
	}
	values[CashTicker] = h.cash
	total = total.Add(h.cash)

	if !total.IsPositive() {
		return nil, fmt.Errorf("portfolio has no value, weights are undefined")
	}

	weights := make(map[string]Percent, len(values))
	for ticker, value := range values {
		weights[ticker] = Percent(100 * value.AsFloat() / total.AsFloat())
	}
	return &Balance{Total: total, Weights: weights}, nil
}
