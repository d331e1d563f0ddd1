package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewCreate creates the command that opens a new account
func NewCreate(params *cli.CmdParams) *cobra.Command {
	var name, amount string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with an opening balance",
		Long:  `Create a new account at the end of the ledger. The name must be unused and the balance a non-negative decimal amount, e.g. 40.20.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := params.Ledger.Create(name, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created with name %s and balance %s\n",
				account.Name, params.FormatAmount(account.Balance))
			return nil
		},
	}

	createCmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	createCmd.Flags().StringVarP(&amount, "amount", "a", "", "opening balance")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("amount")

	return createCmd
}
