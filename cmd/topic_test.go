package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/etnz/workbook/config"
	"github.com/etnz/workbook/docs"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// consoleLines returns the lines of the console code blocks of a markdown document.
func consoleLines(t *testing.T, content string) []string {
	t.Helper()
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var lines []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(fcb.Language(source)) != "console" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			lines = append(lines, strings.TrimSpace(string(line.Value(source))))
		}
		return ast.WalkContinue, nil
	})
	return lines
}

func TestTopics_Commands(t *testing.T) {
	// Every command shown in the documentation exists, with its flags.
	setup(t)
	fs := flag.NewFlagSet("wb", flag.ContinueOnError)
	c := subcommands.NewCommander(fs, "wb")
	Register(c, fs, config.Config{DataDir: t.TempDir(), Currency: "EUR"})

	commands := map[string]subcommands.Command{}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		commands[cmd.Name()] = cmd
	})

	all, err := docs.Topics(docs.All)
	if err != nil {
		t.Fatalf("cannot read the topics: %v", err)
	}
	lines := consoleLines(t, all)
	if len(lines) == 0 {
		t.Fatal("no console example found")
	}
	for _, line := range lines {
		fields := strings.Fields(strings.TrimPrefix(line, "$ "))
		if len(fields) < 2 || fields[0] != "wb" {
			t.Errorf("%q is not a wb command line", line)
			continue
		}
		cmd, ok := commands[fields[1]]
		if !ok {
			t.Errorf("%q: unknown command %q", line, fields[1])
			continue
		}
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		for _, field := range fields[2:] {
			if field == "--" {
				break
			}
			if strings.HasPrefix(field, "-") && f.Lookup(strings.TrimPrefix(field, "-")) == nil {
				t.Errorf("%q: unknown flag %q", line, field)
			}
		}
	}
}

func TestTopicCmd(t *testing.T) {
	out := setup(t)
	mustRun(t, &topicCmd{})
	if got := out.String(); !strings.Contains(got, "* tasks:") {
		t.Errorf("topic output = %q, want the list of topics", got)
	}

	out.Reset()
	mustRun(t, &topicCmd{}, "calc")
	if got := out.String(); !strings.HasPrefix(got, "# Calculator") {
		t.Errorf("topic calc output = %q, want the calc topic", got)
	}

	out.Reset()
	mustRun(t, &topicCmd{}, "*")
	for _, want := range []string{"# Calculator", "# Tasks"} {
		if got := out.String(); !strings.Contains(got, want) {
			t.Errorf("topic * output = %q, want %q", got, want)
		}
	}
	if got := out.String(); strings.Contains(got, "* tasks:") {
		t.Errorf("topic * output = %q, want the topics but not the list", got)
	}

	if status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("unknown topic: got status %v, want failure", status)
	}
}
