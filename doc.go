// Package workbook provides small validated building blocks for personal
// bookkeeping: account holders, bank accounts and transfers between them,
// contacts, users, and a todo list of tasks.
//
// The core concepts are:
//   - Entities: AccountHolder, BankAccount, Transaction, Contact and User are
//     immutable values. Their constructors validate every field and their
//     With methods return an updated copy, validated the same way.
//   - Task: the only entity updated in place, through setters that ignore
//     absent or unchanged values and validate the others.
//   - Todo: an ordered list of tasks, unique by id, that only ever hands out
//     copies of its tasks.
//   - Money: an exact decimal amount in an ISO 4217 currency.
//
// Every error returned by this package wraps ErrInvalidArgument or
// ErrNotFound. Entities encode to JSON with field names matching their
// accessors, and decoding validates the fields again; see package jsonstore
// to persist them in a file.
package workbook
