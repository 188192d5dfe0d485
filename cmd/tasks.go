package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/date"
	"github.com/etnz/workbook/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// parseID reads a required identifier flag.
func parseID(name, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, fmt.Errorf("%w: -%s is required", workbook.ErrInvalidArgument, name)
	}
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: -%s %q is not a valid id", workbook.ErrInvalidArgument, name, value)
	}
	return id, nil
}

// --- tasksCmd ---

type tasksCmd struct {
	period  string
	query   string
	overdue bool
}

func (*tasksCmd) Name() string     { return "tasks" }
func (*tasksCmd) Synopsis() string { return "list the tasks" }
func (*tasksCmd) Usage() string {
	return `wb tasks [-p <period>] [-q <text>] [-overdue]

  Lists the tasks in the order they were added.
  With -p, lists the tasks due in the current day, week, month, quarter or year, earliest first.
  With -overdue, lists the tasks already due, oldest first.
`
}

func (c *tasksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Only the tasks due in the current period (day, week, month, quarter, year).")
	f.StringVar(&c.query, "q", "", "Only the tasks whose title or description contains this text.")
	f.BoolVar(&c.overdue, "overdue", false, "Only the overdue tasks.")
}

func (c *tasksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.overdue && c.period != "" {
		fmt.Fprintln(os.Stderr, "Error: -overdue and -p flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	_, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}

	title := "Tasks"
	switch {
	case c.overdue:
		title = "Overdue Tasks"
		todo, err = workbook.NewTodo(todo.Overdue(now())...)
	case c.period != "":
		period, perr := date.ParsePeriod(c.period)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", perr)
			return subcommands.ExitUsageError
		}
		r := date.NewRange(date.Of(now()), period)
		title = fmt.Sprintf("Tasks due this %s (%s)", period.Noun(), r)
		todo, err = workbook.NewTodo(todo.Due(r)...)
	}
	if err != nil {
		return fail("Error filtering tasks", err)
	}

	tasks := todo.Tasks()
	if c.query != "" {
		title = fmt.Sprintf("%s matching %q", title, c.query)
		tasks = todo.Search(c.query)
	}

	printMarkdown(renderer.TasksMarkdown(title, tasks, now()))
	return subcommands.ExitSuccess
}

// --- taskCmd ---

type taskCmd struct {
	id string
}

func (*taskCmd) Name() string     { return "task" }
func (*taskCmd) Synopsis() string { return "show a task" }
func (*taskCmd) Usage() string {
	return `wb task -id <task_id>

  Shows the title, description and due date of a task.
`
}

func (c *taskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The task id.")
}

func (c *taskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	_, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}
	task, err := todo.Task(id)
	if err != nil {
		return fail("Error", err)
	}
	printMarkdown(renderer.TaskMarkdown(task, now()))
	return subcommands.ExitSuccess
}

// --- addTaskCmd ---

type addTaskCmd struct {
	title       string
	description string
	due         string
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "add a task" }
func (*addTaskCmd) Usage() string {
	return `wb add-task -t <title> -d <description> -due <YYYY-MM-DDTHH:MM>

  Adds a task to the tasks file. The due date cannot be before today.
`
}

func (c *addTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "The task title.")
	f.StringVar(&c.description, "d", "", "The task description.")
	f.StringVar(&c.due, "due", "", "The due date, in local time, like 2025-12-24T18:00.")
}

func (c *addTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := workbook.ParseDueDate(c.due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	task, err := workbook.NewTask(uuid.Nil, c.title, c.description, due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}
	if err := todo.AddTask(task); err != nil {
		return fail("Error adding task", err)
	}
	if err := s.Write(todo.Tasks()); err != nil {
		return fail("Error saving tasks", err)
	}
	fmt.Fprintf(stdout, "Added task %s\n", task.ID())
	return subcommands.ExitSuccess
}

// --- editTaskCmd ---

type editTaskCmd struct {
	id          string
	title       string
	description string
	due         string
}

func (*editTaskCmd) Name() string     { return "edit-task" }
func (*editTaskCmd) Synopsis() string { return "edit a task" }
func (*editTaskCmd) Usage() string {
	return `wb edit-task -id <task_id> [-t <title>] [-d <description>] [-due <YYYY-MM-DDTHH:MM>]

  Changes the fields given on the command line, the others are kept.
`
}

func (c *editTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The task id.")
	f.StringVar(&c.title, "t", "", "The new title.")
	f.StringVar(&c.description, "d", "", "The new description.")
	f.StringVar(&c.due, "due", "", "The new due date, in local time, like 2025-12-24T18:00.")
}

func (c *editTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}
	task, err := todo.Task(id)
	if err != nil {
		return fail("Error", err)
	}
	if err := editTask(&task, c.title, c.description, c.due); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := todo.UpdateTask(task); err != nil {
		return fail("Error updating task", err)
	}
	if err := s.Write(todo.Tasks()); err != nil {
		return fail("Error saving tasks", err)
	}
	fmt.Fprintf(stdout, "Updated task %s\n", task.ID())
	return subcommands.ExitSuccess
}

// editTask applies the non empty values to task.
func editTask(task *workbook.Task, title, description, due string) error {
	if title != "" {
		if err := task.SetTitle(title); err != nil {
			return err
		}
	}
	if description != "" {
		if err := task.SetDescription(description); err != nil {
			return err
		}
	}
	if strings.TrimSpace(due) != "" {
		d, err := workbook.ParseDueDate(due)
		if err != nil {
			return err
		}
		if err := task.SetDueDate(d); err != nil {
			return err
		}
	}
	return nil
}

// --- deleteTaskCmd ---

type deleteTaskCmd struct {
	id string
}

func (*deleteTaskCmd) Name() string     { return "delete-task" }
func (*deleteTaskCmd) Synopsis() string { return "delete a task" }
func (*deleteTaskCmd) Usage() string {
	return `wb delete-task -id <task_id>
`
}

func (c *deleteTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The task id.")
}

func (c *deleteTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}
	if err := todo.DeleteTask(id); err != nil {
		return fail("Error", err)
	}
	if err := s.Write(todo.Tasks()); err != nil {
		return fail("Error saving tasks", err)
	}
	fmt.Fprintf(stdout, "Deleted task %s\n", id)
	return subcommands.ExitSuccess
}
