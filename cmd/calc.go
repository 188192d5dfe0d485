package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/workbook/calc"
	"github.com/google/subcommands"
)

// calcCmd is a container for the calculator operations.
type calcCmd struct{}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "a basic calculator" }
func (*calcCmd) Usage() string {
	return `calc <operation> x [y]

Operations:
  add, sub, mul, div, pow - take two operands.
  sqrt, sqr - take one operand.

Use -- before negative operands: calc sqrt -- -4
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {}
func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "calc")
	for _, name := range operationNames() {
		commander.Register(&calcOpCmd{op: calc.Operations[name]}, "")
	}
	return commander.Execute(ctx, args...)
}

func operationNames() []string {
	names := make([]string, 0, len(calc.Operations))
	for name := range calc.Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// calcOpCmd runs a single operation on its positional arguments.
type calcOpCmd struct {
	op calc.Operation
}

func (c *calcOpCmd) Name() string { return c.op.Name }
func (c *calcOpCmd) Synopsis() string {
	return fmt.Sprintf("%s of %d operand(s)", c.op.Name, c.op.Arity)
}
func (c *calcOpCmd) Usage() string {
	if c.op.Arity == 1 {
		return fmt.Sprintf("calc %s x\n", c.op.Name)
	}
	return fmt.Sprintf("calc %s x y\n", c.op.Name)
}
func (c *calcOpCmd) SetFlags(f *flag.FlagSet) {}

func (c *calcOpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := make([]float64, f.NArg())
	for i, arg := range f.Args() {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a number\n", arg)
			return subcommands.ExitUsageError
		}
		args[i] = v
	}
	result, err := calc.Eval(c.op.Name, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, strconv.FormatFloat(result, 'g', -1, 64))
	return subcommands.ExitSuccess
}
