package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewDeposit creates the command that adds money to an account
func NewDeposit(params *cli.CmdParams) *cobra.Command {
	var name, amount string

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit an amount into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := params.Ledger.Deposit(name, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account balance is now %s\n", params.FormatAmount(balance))
			return nil
		},
	}

	depositCmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	depositCmd.Flags().StringVarP(&amount, "amount", "a", "", "amount to deposit")
	depositCmd.MarkFlagRequired("name")
	depositCmd.MarkFlagRequired("amount")

	return depositCmd
}
