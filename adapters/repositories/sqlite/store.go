// Package sqlite persists the ledger in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/coffer-cli/coffer/domain/models"
)

// Store is a SQLite-backed ledger store. Account order is kept through a
// monotonic position column. Balances are stored as text because SQLite
// integers are signed 64-bit and cannot carry the full Cents range.
type Store struct {
	db *sql.DB
}

// New opens a SQLite-backed ledger store at path, creating the database
// and schema if they do not exist yet.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initializeDatabase(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initializeDatabase(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			position INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			balance TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create accounts table: %w", err)
	}
	return nil
}

// Load reads every account ordered by insertion position.
func (s *Store) Load(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, balance FROM accounts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var name, balanceText string
		if err := rows.Scan(&name, &balanceText); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		balance, err := strconv.ParseUint(balanceText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("account %s has invalid balance %q: %w", name, balanceText, err)
		}
		accounts = append(accounts, models.Account{Name: name, Balance: models.Cents(balance)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// Save replaces the stored accounts in one transaction, reinserting them
// in ledger order.
func (s *Store) Save(ctx context.Context, accounts []models.Account) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM accounts"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear accounts: %w", err)
	}
	for _, account := range accounts {
		balanceText := strconv.FormatUint(uint64(account.Balance), 10)
		_, err := tx.ExecContext(ctx,
			"INSERT INTO accounts (name, balance) VALUES (?, ?)",
			account.Name, balanceText,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert account %s: %w", account.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accounts: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
