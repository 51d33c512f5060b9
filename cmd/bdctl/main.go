// Package main is the entry point for the bdctl CLI client.
package main

import (
	"github.com/donaldgifford/bullion-desk/cmd/bdctl/cmd"
)

func main() {
	cmd.Execute()
}
