package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

var helpShowAll bool

// NewHelp creates a detailed help command for the CLI
func NewHelp(params *cli.CmdParams) *cobra.Command {
	helpCmd := &cobra.Command{
		Use:     "detailed_help",
		Aliases: []string{"h"},
		Short:   "Display detailed help for Coffer",
		Long:    `Display detailed help information for Coffer including the command palette and usage examples.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if helpShowAll {
				// Display all available commands and their details
				fmt.Fprintln(out, "Coffer - Complete Command Reference")
				fmt.Fprintln(out, "===================================")
				fmt.Fprintln(out, "\nAvailable Commands:")

				for _, cmd := range params.Palette {
					fmt.Fprintf(out, "- %s: %s\n", cmd.Use, cmd.Short)
				}
			} else {
				// Display basic help
				fmt.Fprintln(out, "Coffer")
				fmt.Fprintln(out, "======")
				fmt.Fprintln(out, "\nMain Commands:")
				fmt.Fprintln(out, "  show        Show all accounts and their balances")
				fmt.Fprintln(out, "  create      Create a new account")
				fmt.Fprintln(out, "  deposit     Deposit an amount into an account")
				fmt.Fprintln(out, "  withdraw    Withdraw an amount from an account")
				fmt.Fprintln(out, "  transfer    Transfer an amount between two accounts")
				fmt.Fprintln(out, "\nUse 'coffer [command] --help' for more information about a command.")
				fmt.Fprintln(out, "Use 'coffer detailed_help --all' to see all available commands.")
			}
		},
	}

	helpCmd.Flags().BoolVarP(&helpShowAll, "all", "a", false, "Show all commands")

	return helpCmd
}
