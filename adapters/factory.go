package adapters

import (
	"fmt"

	"github.com/coffer-cli/coffer/adapters/repositories/csvfile"
	"github.com/coffer-cli/coffer/adapters/repositories/sqlite"
	"github.com/coffer-cli/coffer/domain/repositories"
	"github.com/coffer-cli/coffer/internal"
)

// NewLedgerStore creates a ledger store for the configured storage driver
func NewLedgerStore(cfg *internal.Config) (repositories.LedgerStore, error) {
	switch cfg.Storage.Driver {
	case internal.StorageDriverCSV:
		return csvfile.New(cfg.Storage.Path), nil
	case internal.StorageDriverSQLite:
		return sqlite.New(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
