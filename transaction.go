package workbook

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Transaction records a transfer of a strictly positive amount from a sender
// account to a receiver account. The accounts are copied by value, as they
// were when the transaction was created.
type Transaction struct {
	id       uuid.UUID
	sender   BankAccount
	receiver BankAccount
	amount   Money
}

// NewTransaction returns a validated Transaction with a random id.
func NewTransaction(sender, receiver BankAccount, amount Money) (Transaction, error) {
	return newTransaction(uuid.New(), sender, receiver, amount)
}

func newTransaction(id uuid.UUID, sender, receiver BankAccount, amount Money) (Transaction, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if sender.IsZero() {
		return Transaction{}, invalidf("sender should not be empty")
	}
	if receiver.IsZero() {
		return Transaction{}, invalidf("receiver should not be empty")
	}
	if amount.IsNegative() {
		return Transaction{}, invalidf("amount %s should not be negative", amount)
	}
	if amount.IsZero() {
		return Transaction{}, invalidf("amount should not be 0")
	}
	if !amount.SameCurrency(sender.Balance()) || !amount.SameCurrency(receiver.Balance()) {
		return Transaction{}, invalidf("amount currency %q does not match the accounts currencies %q and %q",
			amount.Currency(), sender.Currency(), receiver.Currency())
	}
	if err := validatePrecision(amount); err != nil {
		return Transaction{}, err
	}
	return Transaction{id: id, sender: sender, receiver: receiver, amount: amount}, nil
}

func (t Transaction) ID() uuid.UUID         { return t.id }
func (t Transaction) Sender() BankAccount   { return t.sender }
func (t Transaction) Receiver() BankAccount { return t.receiver }
func (t Transaction) Amount() Money         { return t.amount }

// Equal reports whether t and o have equal fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.id == o.id && t.sender.Equal(o.sender) && t.receiver.Equal(o.receiver) && t.amount.Equal(o.amount)
}

// Apply returns the sender and receiver after the transfer: the amount is
// withdrawn from the sender and deposited to the receiver.
func (t Transaction) Apply() (sender, receiver BankAccount, err error) {
	if t.sender.ID() == t.receiver.ID() {
		return BankAccount{}, BankAccount{}, invalidf("cannot transfer from account %s to itself", t.sender.ID())
	}
	if sender, err = t.sender.Withdraw(t.amount); err != nil {
		return BankAccount{}, BankAccount{}, err
	}
	if receiver, err = t.receiver.Deposit(t.amount); err != nil {
		return BankAccount{}, BankAccount{}, err
	}
	return sender, receiver, nil
}

// Transfer creates the Transaction and applies it.
func Transfer(from, to BankAccount, amount Money) (tx Transaction, sender, receiver BankAccount, err error) {
	if tx, err = NewTransaction(from, to, amount); err != nil {
		return Transaction{}, BankAccount{}, BankAccount{}, err
	}
	if sender, receiver, err = tx.Apply(); err != nil {
		return Transaction{}, BankAccount{}, BankAccount{}, err
	}
	return tx, sender, receiver, nil
}

type jsonTransaction struct {
	ID       uuid.UUID   `json:"id"`
	Sender   BankAccount `json:"sender"`
	Receiver BankAccount `json:"receiver"`
	Amount   Money       `json:"amount"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTransaction{ID: t.id, Sender: t.sender, Receiver: t.receiver, Amount: t.amount})
}

// UnmarshalJSON validates the decoded fields like NewTransaction does, but
// keeps the persisted id.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j jsonTransaction
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := newTransaction(j.ID, j.Sender, j.Receiver, j.Amount)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
