package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/jsonstore"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `wb fmt

  Reads every data file, validating each record, and writes it back as an
  indented JSON array. A file that cannot be read is backed up and emptied.
  Missing files are skipped.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := []struct {
		path   string
		format func(string) (int, error)
	}{
		{*tasksFile, formatTasks},
		{*contactsFile, formatFile[workbook.Contact]},
		{*usersFile, formatFile[workbook.User]},
		{*accountsFile, formatFile[workbook.BankAccount]},
		{*transactionsFile, formatFile[workbook.Transaction]},
	}

	status := subcommands.ExitSuccess
	for _, file := range files {
		if _, err := os.Stat(file.path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatting %q...\n", file.path)
		n, err := file.format(file.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", file.path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(stdout, "%s: %d record(s)\n", file.path, n)
	}
	return status
}

// formatFile reads and writes back the store at path.
func formatFile[T any](path string) (int, error) {
	s, err := jsonstore.Open[T](path)
	if err != nil {
		return 0, err
	}
	items, err := s.Read()
	if err != nil {
		return 0, err
	}
	return len(items), s.Write(items)
}

// formatTasks also drops the tasks sharing an id with an earlier one.
func formatTasks(path string) (int, error) {
	s, err := jsonstore.Open[workbook.Task](path)
	if err != nil {
		return 0, err
	}
	tasks, err := s.Read()
	if err != nil {
		return 0, err
	}
	todo, err := workbook.NewTodo(tasks...)
	if err != nil {
		return 0, err
	}
	return todo.Len(), s.Write(todo.Tasks())
}
