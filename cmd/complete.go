package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/workbook/date"
	"github.com/etnz/workbook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// periods accepted by the -p flag.
var periods = predict.Set(date.Nouns())

// completer is implemented by commands with their own subcommands.
type completer interface {
	completion() *complete.Command
}

// Completion returns the shell completion of the commands registered on c,
// with fs holding the global flags.
func Completion(c *subcommands.Commander, fs *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(fs),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if sub, ok := cmd.(completer); ok {
			root.Sub[cmd.Name()] = sub.completion()
			return
		}
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(f)}
	})
	return root
}

// flagPredictors guesses the values of each flag from its name.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case strings.HasSuffix(fl.Name, "-file"):
			flags[fl.Name] = predict.Files("*.json")
		case fl.Name == "p":
			flags[fl.Name] = periods
		case fl.Name == "overdue", fl.Name == "plain":
			flags[fl.Name] = predict.Nothing
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func (*calcCmd) completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range operationNames() {
		sub[name] = &complete.Command{Args: predict.Something}
	}
	return &complete.Command{Sub: sub}
}

func (*topicCmd) completion() *complete.Command {
	names, _ := docs.Names()
	return &complete.Command{Args: predict.Set(append(names, docs.Index, docs.All))}
}
