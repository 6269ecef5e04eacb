// Package main is the entry point for the galeriafora application.
package main

import (
	"github.com/galeriafora-cli/galeriafora/cmd"
	"github.com/galeriafora-cli/galeriafora/config"
	"github.com/galeriafora-cli/galeriafora/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
