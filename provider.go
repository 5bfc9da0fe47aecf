package knapsack

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

// CashTicker is the pseudo-instrument representing uninvested cash in the
// holdings. It never appears in a PriceTable or a Combination.
const CashTicker = "MONEY"

var (
	// ErrInvalidPrice reports a zero or negative instrument price; the
	// affordable-quantity range is undefined for such a price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrPriceUnavailable reports that a provider could not produce a price
	// for a symbol. Callers may match on it to decide a retry policy.
	ErrPriceUnavailable = errors.New("price unavailable")
	// ErrMissingAllocation reports a priced instrument with no holdings
	// entry. Defaulting silently to zero could mask a configuration mistake.
	ErrMissingAllocation = errors.New("missing allocation")
)

// PriceProvider supplies the current unit price for a set of instruments.
// Tickers maps the instrument identifier to the provider's symbol. The
// lookup is synchronous, and any per-symbol failure aborts the whole fetch
// with an error wrapping ErrPriceUnavailable.
type PriceProvider interface {
	Prices(tickers map[string]string, currency string) (*PriceTable, error)
}

// PriceTable holds the current unit price per instrument, together with the
// canonical instrument ordering used by every calculation in this package.
//
// The enumerator builds quantity ranges in that ordering, the pricing and
// balance calculators consume combinations in that same ordering; keeping
// the ordering in one place makes the agreement explicit instead of relying
// on a map's incidental iteration order.
type PriceTable struct {
	tickers []string // sorted, canonical ordering
	prices  map[string]Money
}

// NewPriceTable builds a table from a price map. The canonical ordering is
// the lexicographic order of the instrument identifiers.
func NewPriceTable(prices map[string]Money) *PriceTable {
	t := &PriceTable{prices: make(map[string]Money, len(prices))}
	for ticker, price := range prices {
		t.tickers = append(t.tickers, ticker)
		t.prices[ticker] = price
	}
	sort.Strings(t.tickers)
	return t
}

// Tickers iterates over the instrument identifiers in canonical order.
func (t *PriceTable) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, ticker := range t.tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// Price returns the unit price for an instrument.
func (t *PriceTable) Price(ticker string) (Money, bool) {
	price, ok := t.prices[ticker]
	return price, ok
}

// Len returns the number of priced instruments.
func (t *PriceTable) Len() int { return len(t.tickers) }

// Validate checks that every price is strictly positive, returning an error
// wrapping ErrInvalidPrice otherwise.
func (t *PriceTable) Validate() error {
	for _, ticker := range t.tickers {
		if !t.prices[ticker].IsPositive() {
			return fmt.Errorf("%w: %s is quoted at %s", ErrInvalidPrice, ticker, t.prices[ticker])
		}
	}
	return nil
}
