package knapsack

// PurchasePrice returns the total amount spent if the combination were
// bought at current prices: Σ quantity·price.
func (t *PriceTable) PurchasePrice(c Combination) Money {
	total := M(0, "")
	for _, ticker := range t.tickers {
		total = total.Add(t.prices[ticker].MulInt(c[ticker]))
	}
	return total
}

// Commission returns the transaction fees for a combination: the flat
// per-transaction fee multiplied by the number of instruments actually
// bought. Zero-quantity entries incur no fee, and the fee does not depend
// on quantity magnitude.
func Commission(c Combination, perTransaction Money) Money {
	var transactions int64
	for _, quantity := range c {
		if quantity > 0 {
			transactions++
		}
	}
	return perTransaction.MulInt(transactions)
}
