// Package renderer formats reports as markdown documents.
package renderer

import (
	"fmt"
	"strings"

	"github.com/vlanx/etf-knapsack"
)

// PlanMarkdown renders the full purchase plan: current prices, current
// allocation, then one section per feasible option.
func PlanMarkdown(r *knapsack.PlanReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchase Plan\n\n")
	fmt.Fprintf(&b, "Budget %s with a %s window, commission %s per transaction.\n\n",
		r.Budget, r.Window, r.Fee)

	fmt.Fprintf(&b, "## Current Prices\n\n")
	fmt.Fprintln(&b, "| Ticker | Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range r.Prices {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Ticker, p.Price)
	}

	fmt.Fprintf(&b, "\n## Current Allocation\n\n")
	fmt.Fprintln(&b, "| Ticker | Weight |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, w := range r.Current {
		fmt.Fprintf(&b, "| %s | %s |\n", w.Ticker, w.Weight)
	}
	fmt.Fprintf(&b, "\nTotal value: %s\n", r.Value)

	if len(r.Options) == 0 {
		fmt.Fprintf(&b, "\nNo combination fits the budget window.\n")
		return b.String()
	}

	for i, option := range r.Options {
		fmt.Fprintf(&b, "\n## Option %d\n\n", i+1)
		fmt.Fprintf(&b, "Buying %s would use %s with %s commission, for %s total.\n\n",
			purchaseList(option.Purchases), option.Cost, option.Commission, option.Total)
		fmt.Fprintln(&b, "| Ticker | Weight | Change |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, w := range option.Allocation {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", w.Ticker, w.Weight, w.Delta.SignedString())
		}
	}
	return b.String()
}

// purchaseList renders the quantities of an option as "2 VUAA, 1 VWCE".
func purchaseList(purchases []knapsack.Purchase) string {
	parts := make([]string, 0, len(purchases))
	for _, p := range purchases {
		parts = append(parts, fmt.Sprintf("%d %s", p.Quantity, p.Ticker))
	}
	return strings.Join(parts, ", ")
}
