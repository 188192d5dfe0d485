// Command wb is the workbook command line: tasks, contacts, users, bank
// accounts and a calculator, persisted in JSON files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/workbook/cmd"
	"github.com/etnz/workbook/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, flag.CommandLine, cfg)

	// serve shell completion requests, if any.
	cmd.Completion(commander, flag.CommandLine).Complete(name)

	explain := commander.Explain
	flag.CommandLine.Usage = func() {
		explain(os.Stderr)
		config.Usage(os.Stderr)()
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
