package workbook

import (
	"encoding/json"

	"github.com/google/uuid"
)

// BankAccount holds a non negative balance for an AccountHolder.
//
// BankAccount is an immutable value: Deposit, Withdraw and the With methods
// return an updated copy. The holder is owned by value.
type BankAccount struct {
	id      uuid.UUID
	balance Money
	holder  AccountHolder
}

// NewBankAccount returns a validated BankAccount. A random id is generated
// when id is uuid.Nil.
func NewBankAccount(id uuid.UUID, balance Money, holder AccountHolder) (BankAccount, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if err := validateBalance(balance); err != nil {
		return BankAccount{}, err
	}
	if holder.IsZero() {
		return BankAccount{}, invalidf("account holder should not be empty")
	}
	return BankAccount{id: id, balance: balance, holder: holder}, nil
}

// OpenBankAccount returns a new account with a zero balance in currency.
func OpenBankAccount(holder AccountHolder, currency string) (BankAccount, error) {
	return NewBankAccount(uuid.Nil, M(0, currency), holder)
}

func validateBalance(balance Money) error {
	if err := ValidateCurrency(balance.Currency()); err != nil {
		return err
	}
	if balance.IsNegative() {
		return invalidf("balance %s should not be negative", balance)
	}
	return validatePrecision(balance)
}

func (a BankAccount) ID() uuid.UUID                { return a.id }
func (a BankAccount) Balance() Money               { return a.balance }
func (a BankAccount) Currency() string             { return a.balance.Currency() }
func (a BankAccount) AccountHolder() AccountHolder { return a.holder }

// IsZero reports whether a is the zero value, i.e. was not built by NewBankAccount.
func (a BankAccount) IsZero() bool { return a.id == uuid.Nil }

// Equal reports whether a and b have the same id, balance and holder.
func (a BankAccount) Equal(b BankAccount) bool {
	return a.id == b.id && a.balance.Equal(b.balance) && a.holder == b.holder
}

// WithBalance returns a copy of a with another balance, or the zero
// BankAccount and an error when balance is invalid. a is unchanged.
func (a BankAccount) WithBalance(balance Money) (BankAccount, error) {
	if err := validateBalance(balance); err != nil {
		return BankAccount{}, err
	}
	a.balance = balance
	return a, nil
}

// WithAccountHolder returns a copy of a owned by holder.
func (a BankAccount) WithAccountHolder(holder AccountHolder) (BankAccount, error) {
	if holder.IsZero() {
		return BankAccount{}, invalidf("account holder should not be empty")
	}
	a.holder = holder
	return a, nil
}

// checkAmount validates an amount to deposit or withdraw.
func (a BankAccount) checkAmount(op string, amount Money) error {
	if amount.IsNegative() {
		return invalidf("%s amount %s must be positive", op, amount)
	}
	if !amount.SameCurrency(a.balance) {
		return invalidf("%s currency %q does not match account currency %q", op, amount.Currency(), a.Currency())
	}
	return validatePrecision(amount)
}

// Deposit returns the account credited with amount.
func (a BankAccount) Deposit(amount Money) (BankAccount, error) {
	if err := a.checkAmount("deposit", amount); err != nil {
		return BankAccount{}, err
	}
	return a.WithBalance(a.balance.Add(amount))
}

// Withdraw returns the account debited with amount. The balance cannot go
// below zero.
func (a BankAccount) Withdraw(amount Money) (BankAccount, error) {
	if err := a.checkAmount("withdrawal", amount); err != nil {
		return BankAccount{}, err
	}
	if a.balance.LessThan(amount) {
		return BankAccount{}, invalidf("insufficient balance %s to withdraw %s", a.balance, amount)
	}
	return a.WithBalance(a.balance.Sub(amount))
}

type jsonBankAccount struct {
	ID            uuid.UUID     `json:"id"`
	Balance       Money         `json:"balance"`
	AccountHolder AccountHolder `json:"accountHolder"`
}

func (a BankAccount) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonBankAccount{ID: a.id, Balance: a.balance, AccountHolder: a.holder})
}

// UnmarshalJSON validates the decoded fields like NewBankAccount does.
func (a *BankAccount) UnmarshalJSON(data []byte) error {
	var j jsonBankAccount
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := NewBankAccount(j.ID, j.Balance, j.AccountHolder)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
