package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/date"
	"github.com/etnz/workbook/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// findAccount returns the index of the account with this id.
func findAccount(accounts []workbook.BankAccount, id uuid.UUID) (int, error) {
	i := slices.IndexFunc(accounts, func(a workbook.BankAccount) bool { return a.ID() == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: no bank account with id %s", workbook.ErrNotFound, id)
	}
	return i, nil
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the bank accounts" }
func (*accountsCmd) Usage() string {
	return `wb accounts
`
}
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, accounts, err := readAll[workbook.BankAccount](*accountsFile)
	if err != nil {
		return fail("Error loading bank accounts", err)
	}
	printMarkdown(renderer.AccountsMarkdown(accounts))
	return subcommands.ExitSuccess
}

// --- openAccountCmd ---

type openAccountCmd struct {
	name     string
	surname  string
	birthday string
	currency string
}

func (*openAccountCmd) Name() string     { return "open-account" }
func (*openAccountCmd) Synopsis() string { return "open a bank account with a zero balance" }
func (*openAccountCmd) Usage() string {
	return `wb open-account -n <name> -s <surname> -b <YYYY-MM-DD> [-c <currency>]

  Opens a bank account for a new account holder. The currency defaults to the -currency global flag.
`
}

func (c *openAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "The holder's name.")
	f.StringVar(&c.surname, "s", "", "The holder's surname.")
	f.StringVar(&c.birthday, "b", "", "The holder's birthday.")
	f.StringVar(&c.currency, "c", "", "The account currency.")
}

func (c *openAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	birthday, err := date.Parse(c.birthday)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing birthday: %v\n", err)
		return subcommands.ExitUsageError
	}
	holder, err := workbook.NewAccountHolder(uuid.Nil, c.name, c.surname, birthday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	cur := c.currency
	if cur == "" {
		cur = *currency
	}
	account, err := workbook.OpenBankAccount(holder, cur)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := openStore[workbook.BankAccount](*accountsFile)
	if err != nil {
		return fail("Error opening bank accounts", err)
	}
	err = s.Update(func(accounts []workbook.BankAccount) ([]workbook.BankAccount, error) {
		return append(accounts, account), nil
	})
	if err != nil {
		return fail("Error saving bank accounts", err)
	}
	fmt.Fprintf(stdout, "Opened account %s for %s\n", account.ID(), holder.FullName())
	return subcommands.ExitSuccess
}

// --- depositCmd and withdrawCmd ---

// movementCmd credits or debits a single account.
type movementCmd struct {
	id     string
	amount string
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The bank account id.")
	f.StringVar(&c.amount, "a", "", "The amount, in the account currency.")
}

// apply updates the account in the accounts file with op.
func (c *movementCmd) apply(op func(workbook.BankAccount, workbook.Money) (workbook.BankAccount, error)) (workbook.BankAccount, subcommands.ExitStatus) {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return workbook.BankAccount{}, subcommands.ExitUsageError
	}
	s, err := openStore[workbook.BankAccount](*accountsFile)
	if err != nil {
		return workbook.BankAccount{}, fail("Error opening bank accounts", err)
	}
	var updated workbook.BankAccount
	err = s.Update(func(accounts []workbook.BankAccount) ([]workbook.BankAccount, error) {
		i, err := findAccount(accounts, id)
		if err != nil {
			return nil, err
		}
		amount, err := workbook.ParseMoney(c.amount, accounts[i].Currency())
		if err != nil {
			return nil, err
		}
		if updated, err = op(accounts[i], amount); err != nil {
			return nil, err
		}
		accounts[i] = updated
		return accounts, nil
	})
	if err != nil {
		return workbook.BankAccount{}, fail("Error", err)
	}
	return updated, subcommands.ExitSuccess
}

type depositCmd struct{ movementCmd }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money on a bank account" }
func (*depositCmd) Usage() string {
	return `wb deposit -id <account_id> -a <amount>
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, status := c.apply(workbook.BankAccount.Deposit)
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(stdout, "New balance of %s: %s\n", account.ID(), account.Balance())
	}
	return status
}

type withdrawCmd struct{ movementCmd }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from a bank account" }
func (*withdrawCmd) Usage() string {
	return `wb withdraw -id <account_id> -a <amount>

  The balance cannot go below zero.
`
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, status := c.apply(workbook.BankAccount.Withdraw)
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(stdout, "New balance of %s: %s\n", account.ID(), account.Balance())
	}
	return status
}

// --- transferCmd ---

type transferCmd struct {
	from   string
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two bank accounts" }
func (*transferCmd) Usage() string {
	return `wb transfer -from <account_id> -to <account_id> -a <amount>

  Withdraws the amount from the first account, deposits it on the second one,
  and records the transaction in the transactions file.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "The sender account id.")
	f.StringVar(&c.to, "to", "", "The receiver account id.")
	f.StringVar(&c.amount, "a", "", "The amount, in the accounts currency.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := parseID("from", c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := parseID("to", c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	accountsStore, accounts, err := readAll[workbook.BankAccount](*accountsFile)
	if err != nil {
		return fail("Error loading bank accounts", err)
	}
	txStore, err := openStore[workbook.Transaction](*transactionsFile)
	if err != nil {
		return fail("Error opening transactions", err)
	}

	i, err := findAccount(accounts, from)
	if err != nil {
		return fail("Error", err)
	}
	j, err := findAccount(accounts, to)
	if err != nil {
		return fail("Error", err)
	}
	amount, err := workbook.ParseMoney(c.amount, accounts[i].Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tx, sender, receiver, err := workbook.Transfer(accounts[i], accounts[j], amount)
	if err != nil {
		return fail("Error", err)
	}
	accounts[i], accounts[j] = sender, receiver

	if err := accountsStore.Write(accounts); err != nil {
		return fail("Error saving bank accounts", err)
	}
	err = txStore.Update(func(txs []workbook.Transaction) ([]workbook.Transaction, error) {
		return append(txs, tx), nil
	})
	if err != nil {
		return fail("Error saving transactions", err)
	}
	fmt.Fprintln(stdout, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- historyCmd ---

type historyCmd struct {
	id string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions" }
func (*historyCmd) Usage() string {
	return `wb history [-id <account_id>]

  Lists the transactions in the order they were made, optionally only the
  ones sent or received by an account.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Only the transactions of this bank account.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, txs, err := readAll[workbook.Transaction](*transactionsFile)
	if err != nil {
		return fail("Error loading transactions", err)
	}
	title := "Transactions"
	if c.id != "" {
		id, err := parseID("id", c.id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		txs = slices.DeleteFunc(txs, func(tx workbook.Transaction) bool {
			return tx.Sender().ID() != id && tx.Receiver().ID() != id
		})
		title = fmt.Sprintf("Transactions of %s", id)
	}
	printMarkdown(renderer.TransactionsMarkdown(title, txs))
	return subcommands.ExitSuccess
}
