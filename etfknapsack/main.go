package main

import (
	"flag"
	"os"

	"github.com/vlanx/etf-knapsack/cmd"
	"github.com/vlanx/etf-knapsack/yahoo"
)

func main() {
	flag.Parse()
	os.Exit(cmd.Run(yahoo.Provider{}))
}
