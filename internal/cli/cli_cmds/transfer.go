package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewTransfer creates the command that moves money between two accounts
func NewTransfer(params *cli.CmdParams) *cobra.Command {
	var from, to, amount string

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer an amount between two accounts",
		Long:  `Transfer an amount from one account to another. Both legs take effect or neither does; a failed transfer leaves every balance unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromBalance, toBalance, err := params.Ledger.Transfer(from, to, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s balance is now %s, %s balance is now %s\n",
				from, params.FormatAmount(fromBalance),
				to, params.FormatAmount(toBalance))
			return nil
		},
	}

	transferCmd.Flags().StringVarP(&from, "from", "f", "", "account to withdraw from")
	transferCmd.Flags().StringVarP(&to, "to", "t", "", "account to deposit into")
	transferCmd.Flags().StringVarP(&amount, "amount", "a", "", "amount to transfer")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amount")

	return transferCmd
}
