package main

import (
	"os"

	"github.com/coffer-cli/coffer/internal/cli"
	"github.com/coffer-cli/coffer/internal/cli/cli_cmds"
)

func main() {
	if err := run(); err != nil {
		// Cobra already printed the error; exit non-zero so scripts can
		// tell a failed operation from a successful one.
		os.Exit(1)
	}
}

func run() error {
	// Setup the Root Command. Config, logger, store and ledger are wired
	// in by the root's persistent pre-run once flags have been parsed.
	rootParams := &cli.CmdParams{
		Palette: nil,
		Use:     "coffer",
		Alias:   "cof",
		Short:   "Coffer ledger CLI",
		Long:    "Coffer - Manage a ledger of named accounts with exact currency arithmetic",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	return rootCmd.Root.Execute()
}
