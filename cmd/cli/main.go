// Package main is the entry point of the storefront tracking CLI.
package main

import (
	"os"

	"storefront_tracking/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
