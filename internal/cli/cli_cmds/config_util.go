package cli_cmds

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/internal/cli"
)

// NewConfig creates a command that displays the effective configuration
func NewConfig(params *cli.CmdParams) *cobra.Command {
	var format string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long:  `Display the configuration in effect after defaults, the config file and environment overrides have been applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := params.Config

			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(map[string]any{
					"storage.driver":  cfg.Storage.Driver,
					"storage.path":    cfg.Storage.Path,
					"currency.symbol": cfg.Currency.Symbol,
					"log.level":       cfg.Log.Level,
					"log.format":      cfg.Log.Format,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))

			default: // plain text format
				fmt.Fprintln(out, "Current Configuration:")
				fmt.Fprintln(out, "======================")
				fmt.Fprintf(out, "storage.driver = %s\n", cfg.Storage.Driver)
				fmt.Fprintf(out, "storage.path = %s\n", cfg.Storage.Path)
				fmt.Fprintf(out, "currency.symbol = %s\n", cfg.Currency.Symbol)
				fmt.Fprintf(out, "log.level = %s\n", cfg.Log.Level)
				fmt.Fprintf(out, "log.format = %s\n", cfg.Log.Format)
			}
			return nil
		},
	}

	configCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")

	return configCmd
}
