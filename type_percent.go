package knapsack

import "fmt"

// Percent is a portfolio weight, in percentage points of total value.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString always carries an explicit sign, so that weight deltas read
// as "+1.20%" or "-0.35%".
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", p)
}
