package cli_cmds

import (
	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

func GeneratePalette(params *cli.CmdParams) []*cobra.Command {

	// Ledger commands
	showCmd := NewShow(params)
	createCmd := NewCreate(params)
	depositCmd := NewDeposit(params)
	withdrawCmd := NewWithdraw(params)
	transferCmd := NewTransfer(params)

	// Global commands
	helpCmd := NewHelp(params)
	versionCmd := NewVersion(params)
	configCmd := NewConfig(params)

	// Return all commands
	return []*cobra.Command{
		showCmd,
		createCmd,
		depositCmd,
		withdrawCmd,
		transferCmd,
		helpCmd,
		versionCmd,
		configCmd,
	}
}
