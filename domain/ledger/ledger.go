// Package ledger owns the ordered account collection and applies the
// banking operations against it: create, deposit, withdraw and the atomic
// transfer. Amounts enter as decimal text and are parsed exactly once per
// operation; any failure leaves the ledger untouched.
package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/coffer-cli/coffer/domain/models"
)

// Ledger is an ordered sequence of uniquely named accounts. Insertion
// order is preserved across operations and persistence. Operations
// serialize through an internal mutex, so a Ledger shared between
// goroutines still applies one operation at a time.
type Ledger struct {
	mu       sync.Mutex
	accounts []models.Account
	logger   *slog.Logger
}

// New builds a Ledger from previously persisted accounts, keeping their
// order. It fails on the first empty or duplicate account name so that a
// corrupted store is rejected before any operation runs. A nil logger
// falls back to slog.Default().
func New(accounts []models.Account, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		if account.Name == "" {
			return nil, models.ErrEmptyAccountName
		}
		if _, ok := seen[account.Name]; ok {
			return nil, &models.DuplicateAccountNameError{Name: account.Name}
		}
		seen[account.Name] = struct{}{}
	}

	return &Ledger{
		accounts: append([]models.Account(nil), accounts...),
		logger:   logger,
	}, nil
}

// Create appends a new account with the parsed opening balance. The name
// checks run before the amount is parsed, so an empty or duplicate name
// wins over a malformed amount.
func (l *Ledger) Create(name, amountText string) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		return models.Account{}, models.ErrEmptyAccountName
	}
	if l.exists(name) {
		return models.Account{}, &models.DuplicateAccountNameError{Name: name}
	}

	balance, err := models.ParseCents(amountText)
	if err != nil {
		return models.Account{}, err
	}

	account, err := models.NewAccount(name, balance)
	if err != nil {
		return models.Account{}, err
	}

	l.accounts = append(l.accounts, account)
	l.logger.Info("account created", "name", account.Name, "balance", account.Balance)
	return account, nil
}

// Deposit adds the parsed amount to the named account and returns the new
// balance. The account lookup runs before the amount is parsed.
func (l *Ledger) Deposit(name, amountText string) (models.Cents, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := l.account(name)
	if err != nil {
		return 0, err
	}

	amount, err := models.ParseCents(amountText)
	if err != nil {
		return 0, err
	}

	if err := account.Deposit(amount); err != nil {
		return 0, err
	}

	l.logger.Info("deposit applied", "name", name, "amount", amount, "balance", account.Balance)
	return account.Balance, nil
}

// Withdraw removes the parsed amount from the named account and returns
// the new balance. The account lookup runs before the amount is parsed.
func (l *Ledger) Withdraw(name, amountText string) (models.Cents, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := l.account(name)
	if err != nil {
		return 0, err
	}

	amount, err := models.ParseCents(amountText)
	if err != nil {
		return 0, err
	}

	if err := account.Withdraw(amount); err != nil {
		return 0, err
	}

	l.logger.Info("withdrawal applied", "name", name, "amount", amount, "balance", account.Balance)
	return account.Balance, nil
}

// Transfer moves the parsed amount from one account to another. Both legs
// take effect or neither does: the withdrawal is first tried against a
// snapshot of the source account, the deposit is then applied to the
// destination, and only after both succeed is the withdrawal committed
// against the real source. The source account is looked up before the
// destination, and both before the amount is parsed. Returns the
// post-transfer source and destination balances.
func (l *Ledger) Transfer(from, to, amountText string) (models.Cents, models.Cents, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromAccount, err := l.account(from)
	if err != nil {
		return 0, 0, err
	}
	toAccount, err := l.account(to)
	if err != nil {
		return 0, 0, err
	}

	amount, err := models.ParseCents(amountText)
	if err != nil {
		return 0, 0, err
	}

	trial := *fromAccount
	if err := trial.Withdraw(amount); err != nil {
		return 0, 0, err
	}
	if err := toAccount.Deposit(amount); err != nil {
		return 0, 0, err
	}
	if err := fromAccount.Withdraw(amount); err != nil {
		// The trial withdrawal succeeded against the same balance, so a
		// failing commit means the ledger is corrupted.
		panic(fmt.Sprintf("ledger: transfer commit failed after successful trial: %v", err))
	}

	l.logger.Info("transfer applied",
		"from", from,
		"to", to,
		"amount", amount,
		"from_balance", fromAccount.Balance,
		"to_balance", toAccount.Balance,
	)
	return fromAccount.Balance, toAccount.Balance, nil
}

// Accounts returns a copy of the accounts in ledger order.
func (l *Ledger) Accounts() []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Account(nil), l.accounts...)
}

func (l *Ledger) account(name string) (*models.Account, error) {
	for i := range l.accounts {
		if l.accounts[i].Name == name {
			return &l.accounts[i], nil
		}
	}
	return nil, &models.AccountNotFoundError{Name: name}
}

func (l *Ledger) exists(name string) bool {
	for i := range l.accounts {
		if l.accounts[i].Name == name {
			return true
		}
	}
	return false
}
