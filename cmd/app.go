// Package cmd implements the wb command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/config"
	"github.com/etnz/workbook/jsonstore"
	"github.com/etnz/workbook/renderer"
	"github.com/google/subcommands"
)

// Register registers the global flags on fs, using cfg for their defaults,
// and the subcommands on c.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, fs *flag.FlagSet, cfg config.Config) {
	tasksFile = fs.String("tasks-file", cfg.Path(cfg.TasksFile), "Path to the tasks file (JSON)")
	contactsFile = fs.String("contacts-file", cfg.Path(cfg.ContactsFile), "Path to the contacts file (JSON)")
	usersFile = fs.String("users-file", cfg.Path(cfg.UsersFile), "Path to the users file (JSON)")
	accountsFile = fs.String("accounts-file", cfg.Path(cfg.AccountsFile), "Path to the bank accounts file (JSON)")
	transactionsFile = fs.String("transactions-file", cfg.Path(cfg.TransactionsFile), "Path to the transactions file (JSON)")
	currency = fs.String("currency", cfg.Currency.String(), "Currency of new bank accounts")
	plain = fs.Bool("plain", false, "Print raw markdown instead of styled terminal output")

	c.Register(&tasksCmd{}, "tasks")
	c.Register(&taskCmd{}, "tasks")
	c.Register(&addTaskCmd{}, "tasks")
	c.Register(&editTaskCmd{}, "tasks")
	c.Register(&deleteTaskCmd{}, "tasks")
	c.Register(&menuCmd{}, "tasks")

	c.Register(&contactsCmd{}, "contacts")
	c.Register(&addContactCmd{}, "contacts")
	c.Register(&editContactCmd{}, "contacts")
	c.Register(&deleteContactCmd{}, "contacts")

	c.Register(&usersCmd{}, "users")
	c.Register(&addUserCmd{}, "users")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&openAccountCmd{}, "accounts")
	c.Register(&depositCmd{}, "accounts")
	c.Register(&withdrawCmd{}, "accounts")
	c.Register(&transferCmd{}, "accounts")
	c.Register(&historyCmd{}, "accounts")

	c.Register(&calcCmd{}, "calc")

	c.Register(&topicCmd{}, "help")
	c.Register(&fmtCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	tasksFile        *string
	contactsFile     *string
	usersFile        *string
	accountsFile     *string
	transactionsFile *string
	currency         *string
	plain            *bool
)

// stdout is where commands print their reports.
var stdout io.Writer = os.Stdout

// now is the clock used to flag overdue tasks.
var now = time.Now

// openStore opens the store at path, creating an empty file on first use.
func openStore[T any](path string) (*jsonstore.Store[T], error) {
	return jsonstore.Create[T](path)
}

// readAll opens the store at path and reads all its items.
func readAll[T any](path string) (*jsonstore.Store[T], []T, error) {
	s, err := openStore[T](path)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.Read()
	if err != nil {
		return nil, nil, err
	}
	return s, items, nil
}

// loadTodo reads the tasks file into a Todo.
func loadTodo() (*jsonstore.Store[workbook.Task], *workbook.Todo, error) {
	s, tasks, err := readAll[workbook.Task](*tasksFile)
	if err != nil {
		return nil, nil, err
	}
	todo, err := workbook.NewTodo(tasks...)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load tasks from %q: %w", s.Path(), err)
	}
	return s, todo, nil
}

// printMarkdown prints a markdown report, styled for the terminal unless -plain is set.
func printMarkdown(md string) {
	if err := renderer.Print(stdout, md, *plain); err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprintln(stdout, md)
	}
}

// fail reports err on stderr and returns the matching exit status.
func fail(format string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	return subcommands.ExitFailure
}
