package knapsack

import "iter"

// Combination is one candidate purchase plan: a non-negative quantity to buy
// for every priced instrument. Iteration over a Combination must go through
// the PriceTable's canonical ordering.
type Combination map[string]int64

// Enumerate yields every Combination in which each instrument's quantity
// ranges independently over [0, floor(budget/price)]. There is no
// cross-instrument budget coupling here: a combination may cost far more
// than the budget, and the caller is expected to narrow the sequence with
// Affordable. A non-positive budget yields the single all-zero combination.
//
// The sequence is the cartesian product of the quantity ranges in canonical
// ticker order, last ticker varying fastest. Its length is ∏(max[i]+1),
// exponential in the number of instruments.
//
// Enumerate fails with ErrInvalidPrice before yielding anything if any
// price is zero or negative.
func (t *PriceTable) Enumerate(budget Money) (iter.Seq[Combination], error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	maxQuantities := make([]int64, len(t.tickers))
	for i, ticker := range t.tickers {
		if budget.IsPositive() {
			maxQuantities[i] = budget.DivFloor(t.prices[ticker])
		}
	}

	return func(yield func(Combination) bool) {
		quantities := make([]int64, len(t.tickers))
		for {
			c := make(Combination, len(t.tickers))
			for i, ticker := range t.tickers {
				c[ticker] = quantities[i]
			}
			if !yield(c) {
				return
			}

			// odometer increment, last ticker varies fastest
			i := len(quantities) - 1
			for ; i >= 0; i-- {
				quantities[i]++
				if quantities[i] <= maxQuantities[i] {
					break
				}
				quantities[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}, nil
}

// Affordable narrows a sequence of combinations to those whose purchase
// price lies within [budget-window, budget+window], preserving the input
// order. The pass is lazy and single: no combination is re-evaluated.
func (t *PriceTable) Affordable(budget, window Money, combinations iter.Seq[Combination]) iter.Seq[Combination] {
	low, high := budget.Sub(window), budget.Add(window)
	return func(yield func(Combination) bool) {
		for c := range combinations {
			price := t.PurchasePrice(c)
			if price.GreaterThanOrEqual(low) && price.LessThanOrEqual(high) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
