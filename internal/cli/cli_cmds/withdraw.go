package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewWithdraw creates the command that removes money from an account
func NewWithdraw(params *cli.CmdParams) *cobra.Command {
	var name, amount string

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw an amount from an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := params.Ledger.Withdraw(name, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account balance is now %s\n", params.FormatAmount(balance))
			return nil
		},
	}

	withdrawCmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	withdrawCmd.Flags().StringVarP(&amount, "amount", "a", "", "amount to withdraw")
	withdrawCmd.MarkFlagRequired("name")
	withdrawCmd.MarkFlagRequired("amount")

	return withdrawCmd
}
