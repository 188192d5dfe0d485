package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/workbook"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the bank accounts with their balance.
func AccountsMarkdown(accounts []workbook.BankAccount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Bank Accounts")

	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Holder", "Birthday", "Balance"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		h := a.AccountHolder()
		table.Rows = append(table.Rows, []string{
			md.Code(a.ID().String()),
			escape(h.FullName()),
			h.Birthday().String(),
			a.Balance().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Transaction renders a transaction to a string.
func Transaction(tx workbook.Transaction) string {
	return fmt.Sprintf("Transferred %s from %s to %s",
		tx.Amount(), tx.Sender().AccountHolder().FullName(), tx.Receiver().AccountHolder().FullName())
}

// TransactionsMarkdown renders the transactions, in order.
func TransactionsMarkdown(title string, txs []workbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "From", "To", "Amount"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			md.Code(tx.ID().String()),
			escape(tx.Sender().AccountHolder().FullName()),
			escape(tx.Receiver().AccountHolder().FullName()),
			tx.Amount().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
