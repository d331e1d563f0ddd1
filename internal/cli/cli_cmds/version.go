package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal"
	"github.com/coffer-cli/coffer/internal/cli"
)

// NewVersion creates a version command for the CLI
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of Coffer",
		Long:  `Print the version information for Coffer including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
