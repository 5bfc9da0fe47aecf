package knapsack

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultCurrency   = "EUR"
	defaultCommission = 2.50
)

// Holdings is the pre-existing portfolio baseline: the cash bucket and the
// currently held quantity per instrument. The CashTicker pseudo-instrument
// is split out of the positions once, at construction, so that no later
// calculation needs to special-case it.
type Holdings struct {
	cash      Money
	positions map[string]int64
}

// NewHoldings builds a holdings baseline. Cash and every position must be
// non-negative.
func NewHoldings(cash Money, positions map[string]int64) (*Holdings, error) {
	if cash.IsNegative() {
		return nil, fmt.Errorf("holdings cash cannot be negative: %s", cash)
	}
	h := &Holdings{cash: cash, positions: make(map[string]int64, len(positions))}
	for ticker, quantity := range positions {
		if quantity < 0 {
			return nil, fmt.Errorf("holdings quantity for %s cannot be negative: %d", ticker, quantity)
		}
		h.positions[ticker] = quantity
	}
	return h, nil
}

// Cash returns the uninvested cash amount.
func (h *Holdings) Cash() Money { return h.cash }

// Position returns the held quantity for an instrument, and whether the
// instrument has an entry at all.
func (h *Holdings) Position(ticker string) (int64, bool) {
	quantity, ok := h.positions[ticker]
	return quantity, ok
}

// Config is the per-run input: which instruments to consider, the current
// holdings baseline, and a couple of settings.
type Config struct {
	// Tickers maps each instrument identifier to its market-data symbol.
	Tickers map[string]string
	// Holdings is the current portfolio baseline, including cash.
	Holdings *Holdings
	// Currency is the single currency every amount is denominated in.
	Currency string
	// Commission is the flat fee charged per instrument actually bought.
	Commission Money
}

// fileConfig mirrors the TOML layout of the configuration file.
type fileConfig struct {
	Tickers    map[string]string  `toml:"tickers"`
	Allocation map[string]float64 `toml:"allocation"`
	Settings   struct {
		Currency   string   `toml:"currency"`
		Commission *float64 `toml:"commission"`
	} `toml:"settings"`
}

// LoadConfig reads and validates the TOML configuration file.
//
// The file must define a [tickers] table mapping instrument identifiers to
// market-data symbols, and an [allocation] table mapping identifiers
// (including MONEY for cash) to the quantity currently held. Instrument
// quantities must be whole numbers; the cash amount may be fractional. An
// optional [settings] table overrides the currency (default EUR) and the
// per-transaction commission (default 2.50).
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration file: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("cannot parse configuration file %q: %w", path, err)
	}

	if len(file.Tickers) == 0 {
		return nil, fmt.Errorf("configuration %q defines no [tickers]", path)
	}
	for ticker, symbol := range file.Tickers {
		if ticker == CashTicker {
			return nil, fmt.Errorf("configuration %q lists %s as a ticker, but it is the cash bucket", path, CashTicker)
		}
		if symbol == "" {
			return nil, fmt.Errorf("configuration %q has no symbol for ticker %s", path, ticker)
		}
	}
	if len(file.Allocation) == 0 {
		return nil, fmt.Errorf("configuration %q defines no [allocation]", path)
	}

	currency := file.Settings.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	commission := defaultCommission
	if file.Settings.Commission != nil {
		commission = *file.Settings.Commission
	}
	if commission < 0 {
		return nil, fmt.Errorf("configuration %q has a negative commission: %v", path, commission)
	}

	cash := M(0.0, currency)
	positions := make(map[string]int64, len(file.Allocation))
	for ticker, quantity := range file.Allocation {
		if ticker == CashTicker {
			cash = M(quantity, currency)
			continue
		}
		if _, ok := file.Tickers[ticker]; !ok {
			return nil, fmt.Errorf("configuration %q allocates %s but lists no ticker for it", path, ticker)
		}
		if quantity != math.Trunc(quantity) {
			return nil, fmt.Errorf("configuration %q holds a fractional quantity of %s: %v", path, ticker, quantity)
		}
		positions[ticker] = int64(quantity)
	}

	holdings, err := NewHoldings(cash, positions)
	if err != nil {
		return nil, fmt.Errorf("configuration %q: %w", path, err)
	}

	return &Config{
		Tickers:    file.Tickers,
		Holdings:   holdings,
		Currency:   currency,
		Commission: M(commission, currency),
	}, nil
}
