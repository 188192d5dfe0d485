package renderer

import (
	"bytes"

	"github.com/etnz/workbook"
	md "github.com/nao1215/markdown"
)

// ContactsMarkdown renders the address book.
func ContactsMarkdown(contacts []workbook.Contact) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Contacts")

	if len(contacts) == 0 {
		doc.PlainText("No contacts.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Name", "Phone", "Email"},
		Rows:   [][]string{},
	}
	for _, c := range contacts {
		table.Rows = append(table.Rows, []string{
			md.Code(c.ID().String()),
			escape(c.Name()),
			c.PhoneNumber(),
			c.Email(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// UsersMarkdown renders the users.
func UsersMarkdown(users []workbook.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Users")

	if len(users) == 0 {
		doc.PlainText("No users.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Username", "Name", "Email", "Address"},
		Rows:   [][]string{},
	}
	for _, u := range users {
		table.Rows = append(table.Rows, []string{
			u.Username(),
			escape(u.Name()),
			u.Email(),
			escape(u.Address()),
		})
	}
	doc.Table(table)
	return doc.String()
}
