// Package main is the entry point for the bullion-desk server.
package main

import (
	"os"

	"github.com/donaldgifford/bullion-desk/cmd/bullion-desk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
