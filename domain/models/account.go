package models

// Account is a named ledger account holding an exact balance.
type Account struct {
	Name    string
	Balance Cents
}

// NewAccount creates an account with an opening balance. The name must be
// non-empty.
func NewAccount(name string, balance Cents) (Account, error) {
	if name == "" {
		return Account{}, ErrEmptyAccountName
	}
	return Account{Name: name, Balance: balance}, nil
}

// Deposit adds amount to the balance. On overflow the account is left
// unchanged.
func (a *Account) Deposit(amount Cents) error {
	balance, ok := a.Balance.Add(amount)
	if !ok {
		return &BalanceOverflowError{Name: a.Name, DepositAmount: amount}
	}
	a.Balance = balance
	return nil
}

// Withdraw removes amount from the balance. When the balance cannot cover
// the amount the account is left unchanged.
func (a *Account) Withdraw(amount Cents) error {
	balance, ok := a.Balance.Sub(amount)
	if !ok {
		return &OverdraftError{Name: a.Name, Balance: a.Balance, WithdrawAmount: amount}
	}
	a.Balance = balance
	return nil
}
