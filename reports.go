package knapsack

// PlanReport is the full result of one run: the prices used, the current
// allocation, and one option per combination that fits the budget window.
type PlanReport struct {
	Budget Money
	Window Money
	Fee    Money // commission per transaction

	Prices  []InstrumentPrice
	Current []AllocationWeight
	Value   Money // current total portfolio value

	Options []PlanOption
}

// InstrumentPrice is the current unit price of one instrument.
type InstrumentPrice struct {
	Ticker string
	Price  Money
}

// AllocationWeight is the current weight of one instrument (or cash).
type AllocationWeight struct {
	Ticker string
	Weight Percent
}

// PlanOption is one feasible purchase plan: what to buy, what it costs, and
// the allocation the portfolio would end up with.
type PlanOption struct {
	Purchases  []Purchase
	Cost       Money
	Commission Money
	Total      Money // Cost plus Commission
	Allocation []WeightChange
}

// Purchase is the quantity to buy of one instrument.
type Purchase struct {
	Ticker   string
	Quantity int64
}

// WeightChange is an instrument's projected weight together with its signed
// difference from the current weight.
type WeightChange struct {
	Ticker string
	Weight Percent
	Delta  Percent
}

// NewPlanReport runs the whole computation: current balance, enumeration,
// budget filtering, and the pricing and projected balance of every
// surviving combination. Rows follow the price table's canonical ordering,
// with the cash bucket last.
func NewPlanReport(t *PriceTable, h *Holdings, budget, window, fee Money) (*PlanReport, error) {
	current, err := t.CurrentBalance(h)
	if err != nil {
		return nil, err
	}

	report := &PlanReport{
		Budget: budget,
		Window: window,
		Fee:    fee,
		Value:  current.Total,
	}
	for ticker := range t.Tickers() {
		report.Prices = append(report.Prices, InstrumentPrice{Ticker: ticker, Price: t.prices[ticker]})
		report.Current = append(report.Current, AllocationWeight{Ticker: ticker, Weight: current.Weights[ticker]})
	}
	report.Current = append(report.Current, AllocationWeight{Ticker: CashTicker, Weight: current.Weights[CashTicker]})

	combinations, err := t.Enumerate(budget)
	if err != nil {
		return nil, err
	}
	for c := range t.Affordable(budget, window, combinations) {
		projected, err := t.ProjectedBalance(h, c)
		if err != nil {
			return nil, err
		}

		cost := t.PurchasePrice(c)
		commission := Commission(c, fee)
		option := PlanOption{
			Cost:       cost,
			Commission: commission,
			Total:      cost.Add(commission),
		}
		for ticker := range t.Tickers() {
			option.Purchases = append(option.Purchases, Purchase{Ticker: ticker, Quantity: c[ticker]})
			option.Allocation = append(option.Allocation, WeightChange{
				Ticker: ticker,
				Weight: projected.Weights[ticker],
				Delta:  projected.Weights[ticker] - current.Weights[ticker],
			})
		}
		option.Allocation = append(option.Allocation, WeightChange{
			Ticker: CashTicker,
			Weight: projected.Weights[CashTicker],
			Delta:  projected.Weights[CashTicker] - current.Weights[CashTicker],
		})
		report.Options = append(report.Options, option)
	}

	return report, nil
}
