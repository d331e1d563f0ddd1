package repositories

import (
	"context"

	"github.com/coffer-cli/coffer/domain/models"
)

// LedgerStore defines the interface for ledger persistence. The account
// sequence is loaded wholesale at process start and saved wholesale at
// process end; stores must preserve account order in both directions.
type LedgerStore interface {
	// Load reads every persisted account in ledger order. A store that
	// has never been written to loads an empty slice, not an error.
	Load(ctx context.Context) ([]models.Account, error)

	// Save replaces the persisted state with the given accounts.
	Save(ctx context.Context, accounts []models.Account) error

	// Close releases any resources held by the store.
	Close() error
}
