package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type contactsCmd struct{}

func (*contactsCmd) Name() string     { return "contacts" }
func (*contactsCmd) Synopsis() string { return "list the contacts" }
func (*contactsCmd) Usage() string {
	return `wb contacts
`
}
func (*contactsCmd) SetFlags(f *flag.FlagSet) {}

func (*contactsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, contacts, err := readAll[workbook.Contact](*contactsFile)
	if err != nil {
		return fail("Error loading contacts", err)
	}
	printMarkdown(renderer.ContactsMarkdown(contacts))
	return subcommands.ExitSuccess
}

// --- addContactCmd ---

type addContactCmd struct {
	name  string
	phone string
	email string
}

func (*addContactCmd) Name() string     { return "add-contact" }
func (*addContactCmd) Synopsis() string { return "add a contact" }
func (*addContactCmd) Usage() string {
	return `wb add-contact -n <name> -p <phone> -e <email>

  Adds a contact. The phone number must be a german number, starting with 0 or +49.
`
}

func (c *addContactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "The contact name.")
	f.StringVar(&c.phone, "p", "", "The phone number, like 0173 4542312.")
	f.StringVar(&c.email, "e", "", "The email address.")
}

func (c *addContactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	contact, err := workbook.NewContact(uuid.Nil, c.name, c.phone, c.email)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := openStore[workbook.Contact](*contactsFile)
	if err != nil {
		return fail("Error opening contacts", err)
	}
	err = s.Update(func(contacts []workbook.Contact) ([]workbook.Contact, error) {
		return append(contacts, contact), nil
	})
	if err != nil {
		return fail("Error saving contacts", err)
	}
	fmt.Fprintf(stdout, "Added contact %s\n", contact.ID())
	return subcommands.ExitSuccess
}

// --- editContactCmd ---

type editContactCmd struct {
	id    string
	name  string
	phone string
	email string
}

func (*editContactCmd) Name() string     { return "edit-contact" }
func (*editContactCmd) Synopsis() string { return "edit a contact" }
func (*editContactCmd) Usage() string {
	return `wb edit-contact -id <contact_id> [-n <name>] [-p <phone>] [-e <email>]

  Changes the fields given on the command line, the others are kept.
`
}

func (c *editContactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The contact id.")
	f.StringVar(&c.name, "n", "", "The new name.")
	f.StringVar(&c.phone, "p", "", "The new phone number.")
	f.StringVar(&c.email, "e", "", "The new email address.")
}

// edit returns contact with the non empty values applied.
func (c *editContactCmd) edit(contact workbook.Contact) (workbook.Contact, error) {
	var err error
	if c.name != "" {
		if contact, err = contact.WithName(c.name); err != nil {
			return contact, err
		}
	}
	if c.phone != "" {
		if contact, err = contact.WithPhoneNumber(c.phone); err != nil {
			return contact, err
		}
	}
	if c.email != "" {
		if contact, err = contact.WithEmail(c.email); err != nil {
			return contact, err
		}
	}
	return contact, nil
}

func (c *editContactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := openStore[workbook.Contact](*contactsFile)
	if err != nil {
		return fail("Error opening contacts", err)
	}
	err = s.Update(func(contacts []workbook.Contact) ([]workbook.Contact, error) {
		i := slices.IndexFunc(contacts, func(x workbook.Contact) bool { return x.ID() == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: no contact with id %s", workbook.ErrNotFound, id)
		}
		edited, err := c.edit(contacts[i])
		if err != nil {
			return nil, err
		}
		contacts[i] = edited
		return contacts, nil
	})
	if err != nil {
		return fail("Error editing contact", err)
	}
	fmt.Fprintf(stdout, "Updated contact %s\n", id)
	return subcommands.ExitSuccess
}

// --- deleteContactCmd ---

type deleteContactCmd struct {
	id string
}

func (*deleteContactCmd) Name() string     { return "delete-contact" }
func (*deleteContactCmd) Synopsis() string { return "delete a contact" }
func (*deleteContactCmd) Usage() string {
	return `wb delete-contact -id <contact_id>
`
}

func (c *deleteContactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The contact id.")
}

func (c *deleteContactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := openStore[workbook.Contact](*contactsFile)
	if err != nil {
		return fail("Error opening contacts", err)
	}
	err = s.Update(func(contacts []workbook.Contact) ([]workbook.Contact, error) {
		n := len(contacts)
		contacts = slices.DeleteFunc(contacts, func(x workbook.Contact) bool { return x.ID() == id })
		if len(contacts) == n {
			return nil, fmt.Errorf("%w: no contact with id %s", workbook.ErrNotFound, id)
		}
		return contacts, nil
	})
	if err != nil {
		return fail("Error deleting contact", err)
	}
	fmt.Fprintf(stdout, "Deleted contact %s\n", id)
	return subcommands.ExitSuccess
}
