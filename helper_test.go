package workbook

import (
	"testing"
	"time"

	"github.com/etnz/workbook/date"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// adult is a birthday eighteen years ago.
func adult() date.Date { return date.Today().AddYears(-18) }

// tomorrow is a valid due date.
func tomorrow() time.Time { return time.Now().Add(24 * time.Hour).Truncate(time.Minute) }

func newHolder(t *testing.T, name string) AccountHolder {
	t.Helper()
	h, err := NewAccountHolder(uuid.Nil, name, "Doe", adult())
	require.NoError(t, err)
	return h
}

func newAccount(t *testing.T, name string, balance Money) BankAccount {
	t.Helper()
	a, err := NewBankAccount(uuid.Nil, balance, newHolder(t, name))
	require.NoError(t, err)
	return a
}

func newTask(t *testing.T, title string) Task {
	t.Helper()
	task, err := NewTask(uuid.Nil, title, title+" description", tomorrow())
	require.NoError(t, err)
	return task
}
