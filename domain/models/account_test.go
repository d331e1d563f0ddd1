package models

import (
	"errors"
	"testing"
)

const defaultName = "user"

func TestNewAccount(t *testing.T) {
	account, err := NewAccount(defaultName, Cents(23))
	if err != nil {
		t.Fatalf("Expected account to be created, but got error: %v", err)
	}
	if account.Name != defaultName {
		t.Errorf("Expected account name to be %q, but got %q", defaultName, account.Name)
	}
	if account.Balance != 23 {
		t.Errorf("Expected account balance to be 23, but got %d", account.Balance)
	}
}

func TestNewAccount_EmptyName(t *testing.T) {
	_, err := NewAccount("", Cents(23))
	if !errors.Is(err, ErrEmptyAccountName) {
		t.Errorf("Expected ErrEmptyAccountName, but got %v", err)
	}
}

func TestAccountDeposit(t *testing.T) {
	account, err := NewAccount(defaultName, Cents(20))
	if err != nil {
		t.Fatalf("Expected account to be created, but got error: %v", err)
	}
	if err := account.Deposit(Cents(100)); err != nil {
		t.Fatalf("Expected deposit to succeed, but got error: %v", err)
	}
	if account.Balance != 120 {
		t.Errorf("Expected balance to be 120, but got %d", account.Balance)
	}
}

func TestAccountDeposit_BalanceOverflow(t *testing.T) {
	account, err := NewAccount(defaultName, MaxCents-1)
	if err != nil {
		t.Fatalf("Expected account to be created, but got error: %v", err)
	}

	err = account.Deposit(Cents(200))
	var overflowErr *BalanceOverflowError
	if !errors.As(err, &overflowErr) {
		t.Fatalf("Expected a balance overflow, but got %v", err)
	}
	if overflowErr.Name != defaultName {
		t.Errorf("Expected error to name %q, but got %q", defaultName, overflowErr.Name)
	}
	if overflowErr.DepositAmount != 200 {
		t.Errorf("Expected error to carry deposit amount 200, but got %d", overflowErr.DepositAmount)
	}
	if account.Balance != MaxCents-1 {
		t.Errorf("Expected balance to be unchanged, but got %d", account.Balance)
	}
}

func TestAccountWithdraw(t *testing.T) {
	account, err := NewAccount(defaultName, Cents(120))
	if err != nil {
		t.Fatalf("Expected account to be created, but got error: %v", err)
	}
	if err := account.Withdraw(Cents(100)); err != nil {
		t.Fatalf("Expected withdrawal to succeed, but got error: %v", err)
	}
	if account.Balance != 20 {
		t.Errorf("Expected balance to be 20, but got %d", account.Balance)
	}
}

func TestAccountWithdraw_Overdraft(t *testing.T) {
	account, err := NewAccount(defaultName, Cents(2))
	if err != nil {
		t.Fatalf("Expected account to be created, but got error: %v", err)
	}

	err = account.Withdraw(Cents(10))
	var overdraftErr *OverdraftError
	if !errors.As(err, &overdraftErr) {
		t.Fatalf("Expected an overdraft, but got %v", err)
	}
	if overdraftErr.Name != defaultName {
		t.Errorf("Expected error to name %q, but got %q", defaultName, overdraftErr.Name)
	}
	if overdraftErr.Balance != 2 {
		t.Errorf("Expected error to carry balance 2, but got %d", overdraftErr.Balance)
	}
	if overdraftErr.WithdrawAmount != 10 {
		t.Errorf("Expected error to carry withdrawal amount 10, but got %d", overdraftErr.WithdrawAmount)
	}
	if account.Balance != 2 {
		t.Errorf("Expected balance to be unchanged, but got %d", account.Balance)
	}
}
