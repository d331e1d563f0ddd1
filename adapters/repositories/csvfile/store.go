// Package csvfile persists the ledger as a CSV file of
// (name, balance) records, balances counted in minor units.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/coffer-cli/coffer/domain/models"
)

// header is the first record of every ledger file.
var header = []string{"name", "balance"}

// Store is a CSV-backed ledger store. Save rewrites the whole file;
// Load reads it back in file order.
type Store struct {
	path string
}

// New creates a CSV-backed ledger store at path. The file is created on
// the first Save; a missing file loads as an empty ledger.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads every account in file order. A file that is missing or holds
// only the header loads as an empty ledger.
func (s *Store) Load(ctx context.Context) ([]models.Account, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger file %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if records[0][0] != header[0] || records[0][1] != header[1] {
		return nil, fmt.Errorf("ledger file %s has unexpected header %v", s.path, records[0])
	}

	accounts := make([]models.Account, 0, len(records)-1)
	for i, record := range records[1:] {
		balance, err := strconv.ParseUint(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ledger file %s row %d has invalid balance %q: %w", s.path, i+2, record[1], err)
		}
		accounts = append(accounts, models.Account{Name: record[0], Balance: models.Cents(balance)})
	}
	return accounts, nil
}

// Save rewrites the ledger file with the given accounts in order.
func (s *Store) Save(ctx context.Context, accounts []models.Account) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file %s: %w", s.path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, account := range accounts {
		record := []string{account.Name, strconv.FormatUint(uint64(account.Balance), 10)}
		if err := writer.Write(record); err != nil {
			file.Close()
			return fmt.Errorf("failed to write account %s: %w", account.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush ledger file %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close ledger file %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the store holds no open resources between calls.
func (s *Store) Close() error {
	return nil
}
