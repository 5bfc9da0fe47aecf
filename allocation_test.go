package knapsack

import (
	"errors"
	"slices"
	"testing"
)

// collect drains a combination sequence into a slice.
func collect(t *testing.T, table *PriceTable, budget Money) []Combination {
	t.Helper()
	seq, err := table.Enumerate(budget)
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	var all []Combination
	for c := range seq {
		all = append(all, c)
	}
	return all
}

func TestEnumerate_Count(t *testing.T) {
	testCases := []struct {
		name   string
		prices map[string]float64
		budget float64
		want   int // ∏ (floor(budget/price) + 1)
	}{
		{
			name:   "two instruments",
			prices: map[string]float64{"A": 10, "B": 20},
			budget: 25,
			want:   6, // A ∈ {0,1,2}, B ∈ {0,1}
		},
		{
			name:   "single instrument",
			prices: map[string]float64{"A": 7},
			budget: 25,
			want:   4, // A ∈ {0,1,2,3}
		},
		{
			name:   "instrument dearer than budget",
			prices: map[string]float64{"A": 100},
			budget: 25,
			want:   1,
		},
		{
			name:   "three instruments",
			prices: map[string]float64{"A": 10, "B": 20, "C": 5},
			budget: 20,
			want:   3 * 2 * 5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(t, priced(tc.prices), EUR(tc.budget))
			if len(got) != tc.want {
				t.Errorf("Enumerate() yielded %d combinations, want %d", len(got), tc.want)
			}
		})
	}
}

func TestEnumerate_Bounds(t *testing.T) {
	table := priced(map[string]float64{"A": 10, "B": 20, "C": 33})
	budget := EUR(100)
	bounds := map[string]int64{"A": 10, "B": 5, "C": 3}

	for _, c := range collect(t, table, budget) {
		if len(c) != 3 {
			t.Fatalf("combination %v has %d entries, want one per priced instrument", c, len(c))
		}
		for ticker, quantity := range c {
			if quantity < 0 || quantity > bounds[ticker] {
				t.Errorf("combination %v: quantity of %s = %d, want within [0, %d]", c, ticker, quantity, bounds[ticker])
			}
		}
	}
}

func TestEnumerate_Order(t *testing.T) {
	// Canonical ordering is sorted tickers, last ticker varying fastest.
	table := priced(map[string]float64{"B": 20, "A": 10})
	want := []Combination{
		{"A": 0, "B": 0},
		{"A": 0, "B": 1},
		{"A": 1, "B": 0},
		{"A": 1, "B": 1},
		{"A": 2, "B": 0},
		{"A": 2, "B": 1},
	}

	got := collect(t, table, EUR(25))
	if len(got) != len(want) {
		t.Fatalf("Enumerate() yielded %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i]["A"] != want[i]["A"] || got[i]["B"] != want[i]["B"] {
			t.Errorf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEnumerate_InvalidPrice(t *testing.T) {
	testCases := []struct {
		name   string
		prices map[string]float64
	}{
		{name: "zero price", prices: map[string]float64{"A": 10, "B": 0}},
		{name: "negative price", prices: map[string]float64{"A": -3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := priced(tc.prices).Enumerate(EUR(25))
			if !errors.Is(err, ErrInvalidPrice) {
				t.Errorf("Enumerate() error = %v, want ErrInvalidPrice", err)
			}
		})
	}
}

func TestEnumerate_NonPositiveBudget(t *testing.T) {
	table := priced(map[string]float64{"A": 10, "B": 20})
	for _, budget := range []float64{0, -50} {
		got := collect(t, table, EUR(budget))
		if len(got) != 1 {
			t.Fatalf("Enumerate(%v) yielded %d combinations, want the single all-zero one", budget, len(got))
		}
		for ticker, quantity := range got[0] {
			if quantity != 0 {
				t.Errorf("Enumerate(%v): quantity of %s = %d, want 0", budget, ticker, quantity)
			}
		}
	}
}

func TestEnumerate_EmptyTable(t *testing.T) {
	// The cartesian product over no instruments has exactly one member,
	// the empty combination.
	got := collect(t, priced(nil), EUR(25))
	if len(got) != 1 {
		t.Fatalf("Enumerate() yielded %d combinations, want exactly one", len(got))
	}
	if len(got[0]) != 0 {
		t.Errorf("Enumerate() yielded %v, want the empty combination", got[0])
	}
}

func TestAffordable(t *testing.T) {
	table := priced(map[string]float64{"A": 10, "B": 20})
	budget, window := EUR(25), EUR(5)

	seq, err := table.Enumerate(budget)
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}

	// Totals within [20, 30], in enumeration order.
	want := []Combination{
		{"A": 0, "B": 1}, // 20
		{"A": 1, "B": 1}, // 30
		{"A": 2, "B": 0}, // 20
	}
	var got []Combination
	for c := range table.Affordable(budget, window, seq) {
		got = append(got, c)
	}
	if len(got) != len(want) {
		t.Fatalf("Affordable() kept %d combinations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i]["A"] != want[i]["A"] || got[i]["B"] != want[i]["B"] {
			t.Errorf("kept combination %d = %v, want %v", i, got[i], want[i])
		}
	}

	for _, c := range got {
		price := table.PurchasePrice(c)
		if price.LessThan(budget.Sub(window)) || price.GreaterThan(budget.Add(window)) {
			t.Errorf("combination %v costs %s, outside the window", c, price)
		}
	}
}

func TestAffordable_ZeroWindow(t *testing.T) {
	table := priced(map[string]float64{"A": 10})
	seq, err := table.Enumerate(EUR(20))
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	var got []Combination
	for c := range table.Affordable(EUR(20), EUR(0), seq) {
		got = append(got, c)
	}
	if len(got) != 1 || got[0]["A"] != 2 {
		t.Errorf("Affordable() with zero window = %v, want exactly {A:2}", got)
	}
}

func TestPriceTable_CanonicalOrdering(t *testing.T) {
	table := priced(map[string]float64{"VWCE": 130, "QDVE": 30, "VUAA": 110})
	var got []string
	for ticker := range table.Tickers() {
		got = append(got, ticker)
	}
	want := []string{"QDVE", "VUAA", "VWCE"}
	if !slices.Equal(got, want) {
		t.Errorf("Tickers() order = %v, want %v", got, want)
	}
}
