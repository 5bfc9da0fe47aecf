// Package cmd implements the CLI application that plans ETF purchases.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/vlanx/etf-knapsack"
	"github.com/vlanx/etf-knapsack/renderer"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	budget     = flag.Int("budget", 0, "Amount of money to be invested.")
	window     = flag.Int("window", 10, "Result window to consider. ex: If window=10, consider results between [budget-10,budget+10].")
	configPath = flag.String("config", "info.toml", "Path to the TOML configuration file (tickers and current allocation).")
)

// Exit statuses returned by Run.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// Run executes the single operation of this tool: load the configuration,
// fetch current prices, compute the plan report and print it. It assumes
// flag.Parse has been called.
func Run(provider knapsack.PriceProvider) int {
	if !flagSet("budget") {
		fmt.Println("No budget amount specified")
		return ExitSuccess
	}
	if *window < 0 {
		fmt.Fprintf(os.Stderr, "Error: window cannot be negative: %d\n", *window)
		return ExitUsageError
	}

	cfg, err := knapsack.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return ExitFailure
	}

	table, err := provider.Prices(cfg.Tickers, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return ExitFailure
	}

	report, err := knapsack.NewPlanReport(
		table,
		cfg.Holdings,
		knapsack.M(*budget, cfg.Currency),
		knapsack.M(*window, cfg.Currency),
		cfg.Commission,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing plan: %v\n", err)
		return ExitFailure
	}

	printMarkdown(renderer.PlanMarkdown(report))
	return ExitSuccess
}

// flagSet reports whether a flag was explicitly set on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
