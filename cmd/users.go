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

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the users" }
func (*usersCmd) Usage() string {
	return `wb users
`
}
func (*usersCmd) SetFlags(f *flag.FlagSet) {}

func (*usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, users, err := readAll[workbook.User](*usersFile)
	if err != nil {
		return fail("Error loading users", err)
	}
	printMarkdown(renderer.UsersMarkdown(users))
	return subcommands.ExitSuccess
}

type addUserCmd struct {
	username string
	email    string
	name     string
	address  string
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "add a user" }
func (*addUserCmd) Usage() string {
	return `wb add-user -u <username> -e <email> -n <name> -a <address>

  Adds a user. Usernames are made of letters and digits only, and are unique.
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "The username, letters and digits only.")
	f.StringVar(&c.email, "e", "", "The email address.")
	f.StringVar(&c.name, "n", "", "The full name.")
	f.StringVar(&c.address, "a", "", "The postal address.")
}

func (c *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := workbook.NewUser(uuid.Nil, c.username, c.email, c.name, c.address)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := openStore[workbook.User](*usersFile)
	if err != nil {
		return fail("Error opening users", err)
	}
	err = s.Update(func(users []workbook.User) ([]workbook.User, error) {
		if slices.ContainsFunc(users, func(u workbook.User) bool { return u.Username() == user.Username() }) {
			return nil, fmt.Errorf("%w: username %q is already taken", workbook.ErrInvalidArgument, user.Username())
		}
		return append(users, user), nil
	})
	if err != nil {
		return fail("Error adding user", err)
	}
	fmt.Fprintf(stdout, "Added user %s\n", user.Username())
	return subcommands.ExitSuccess
}
