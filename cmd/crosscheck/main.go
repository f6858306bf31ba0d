package main

import (
	"os"

	"github.com/leapstack-labs/crosscheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
