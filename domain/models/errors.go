package models

import (
	"errors"
	"fmt"
)

// ErrEmptyAccountName is returned when an account name is empty.
var ErrEmptyAccountName = errors.New("account name cannot be empty")

// InvalidAmountError is returned when amount text does not satisfy the
// currency grammar.
type InvalidAmountError struct {
	Text string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q, must be a non-negative number only containing digits up to two decimal places", e.Text)
}

// AmountOverflowError is returned when amount text is well-formed but the
// value does not fit in Cents.
type AmountOverflowError struct {
	Text string
}

func (e *AmountOverflowError) Error() string {
	return fmt.Sprintf("amount %s would overflow", e.Text)
}

// DuplicateAccountNameError is returned when creating an account under a
// name the ledger already holds.
type DuplicateAccountNameError struct {
	Name string
}

func (e *DuplicateAccountNameError) Error() string {
	return fmt.Sprintf("account with name %s already exists", e.Name)
}

// AccountNotFoundError is returned when an operation names an account the
// ledger does not hold.
type AccountNotFoundError struct {
	Name string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account with name %s not found", e.Name)
}

// BalanceOverflowError is returned when a deposit would push a balance
// past MaxCents.
type BalanceOverflowError struct {
	Name          string
	DepositAmount Cents
}

func (e *BalanceOverflowError) Error() string {
	return fmt.Sprintf("account %s would have balance overflow if %s was deposited", e.Name, e.DepositAmount)
}

// OverdraftError is returned when a withdrawal exceeds the available
// balance.
type OverdraftError struct {
	Name           string
	Balance        Cents
	WithdrawAmount Cents
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("account %s would overdraft if %s was withdrawn from balance %s", e.Name, e.WithdrawAmount, e.Balance)
}
