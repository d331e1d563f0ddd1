package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/domain/ledger"
	"github.com/coffer-cli/coffer/domain/models"
	"github.com/coffer-cli/coffer/domain/repositories"
	"github.com/coffer-cli/coffer/internal"
)

// CmdParams holds all dependencies needed by command handlers. Config and
// Logger, then Store and Ledger, are populated by the root command's
// persistent pre-run once flags are parsed; Run functions may rely on all
// four being set.
type CmdParams struct {
	Config  *internal.Config
	Logger  *slog.Logger
	Store   repositories.LedgerStore
	Ledger  *ledger.Ledger
	Palette []*cobra.Command
	Use     string
	Alias   string
	Short   string
	Long    string
}

// FormatAmount renders an amount for command output, prefixed with the
// configured currency symbol.
func (p *CmdParams) FormatAmount(amount models.Cents) string {
	return p.Config.Currency.Symbol + amount.String()
}
