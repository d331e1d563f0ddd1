package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewShow creates the command that lists every account and its balance
func NewShow(params *cli.CmdParams) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show all accounts and their balances",
		Long:  `Show every account in the ledger with its current balance, in the order the accounts were created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, account := range params.Ledger.Accounts() {
				fmt.Fprintf(cmd.OutOrStdout(), "name: %s\tbalance: %s\n",
					account.Name, params.FormatAmount(account.Balance))
			}
			return nil
		},
	}

	return showCmd
}
