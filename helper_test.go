package knapsack

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// priced is a helper for test to build a PriceTable from euro prices.
func priced(prices map[string]float64) *PriceTable {
	m := make(map[string]Money, len(prices))
	for ticker, price := range prices {
		m[ticker] = EUR(price)
	}
	return NewPriceTable(m)
}

// held is a helper for test to build Holdings, failing loudly on bad input.
func held(cash float64, positions map[string]int64) *Holdings {
	h, err := NewHoldings(EUR(cash), positions)
	if err != nil {
		panic(err)
	}
	return h
}
