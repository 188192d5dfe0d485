package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// menuCmd starts the interactive task manager.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the tasks interactively" }
func (*menuCmd) Usage() string {
	return `wb menu

  Starts an interactive session to list, show, add, edit and delete tasks.
  Every change is saved immediately.
`
}
func (*menuCmd) SetFlags(_ *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, todo, err := loadTodo()
	if err != nil {
		return fail("Error loading tasks", err)
	}
	m := NewMenu(stdout, os.Stdin, todo, s.Write)
	m.plain = *plain
	if err := m.Run(ctx); err != nil {
		return fail("Menu failed", err)
	}
	return subcommands.ExitSuccess
}

// Menu is an interactive session on a Todo.
type Menu struct {
	w     io.Writer
	r     *bufio.Reader
	todo  *workbook.Todo
	save  func([]workbook.Task) error
	now   func() time.Time
	plain bool
}

// NewMenu creates a session reading the user choices from r and writing to w.
// save is called with all the tasks after every change.
func NewMenu(w io.Writer, r io.Reader, todo *workbook.Todo, save func([]workbook.Task) error) *Menu {
	return &Menu{
		w:     w,
		r:     bufio.NewReader(r),
		todo:  todo,
		save:  save,
		now:   time.Now,
		plain: true,
	}
}

const menuText = `
1. List tasks
2. Show a task
3. Add a task
4. Edit a task
5. Delete a task
6. Quit`

const menuPrompt = "choice> "

// errQuit ends the session.
var errQuit = errors.New("quit")

// Run loops until the user quits, the input ends or ctx is done.
// Invalid entries are reported and the loop goes on; a failed save ends it.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.w, "Welcome to the task manager.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.w, menuText)
		choice, err := m.readLine(menuPrompt)
		if err == io.EOF {
			return nil // Clean exit on Ctrl+D
		}
		if err != nil {
			return err
		}

		err = m.dispatch(strings.TrimSpace(choice))
		switch {
		case errors.Is(err, errQuit), err == io.EOF:
			return nil
		case errors.Is(err, workbook.ErrInvalidArgument), errors.Is(err, workbook.ErrNotFound):
			fmt.Fprintf(m.w, "Error: %v\n", err)
		case err != nil:
			return err
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.list()
	case "2":
		return m.show()
	case "3":
		return m.add()
	case "4":
		return m.edit()
	case "5":
		return m.delete()
	case "6", "q", "quit":
		fmt.Fprintln(m.w, "Bye.")
		return errQuit
	case "":
		return nil
	default:
		fmt.Fprintf(m.w, "Unknown choice %q.\n", choice)
		return nil
	}
}

// readLine prints prompt and returns the next line, without its line feed.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.w, prompt)
	line, err := m.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (m *Menu) readID() (uuid.UUID, error) {
	s, err := m.readLine("Task id: ")
	if err != nil {
		return uuid.Nil, err
	}
	return parseID("id", s)
}

func (m *Menu) print(md string) error {
	return renderer.Print(m.w, md, m.plain)
}

func (m *Menu) list() error {
	return m.print(renderer.TasksMarkdown("Tasks", m.todo.Tasks(), m.now()))
}

func (m *Menu) show() error {
	id, err := m.readID()
	if err != nil {
		return err
	}
	task, err := m.todo.Task(id)
	if err != nil {
		return err
	}
	return m.print(renderer.TaskMarkdown(task, m.now()))
}

func (m *Menu) add() error {
	title, err := m.readLine("Title: ")
	if err != nil {
		return err
	}
	description, err := m.readLine("Description: ")
	if err != nil {
		return err
	}
	due, err := m.readLine("Due date (YYYY-MM-DDTHH:MM): ")
	if err != nil {
		return err
	}
	dueDate, err := workbook.ParseDueDate(due)
	if err != nil {
		return err
	}
	task, err := workbook.NewTask(uuid.Nil, title, description, dueDate)
	if err != nil {
		return err
	}
	if err := m.todo.AddTask(task); err != nil {
		return err
	}
	if err := m.save(m.todo.Tasks()); err != nil {
		return err
	}
	log.Printf("added task %s", task.ID())
	fmt.Fprintf(m.w, "Added task %s\n", task.ID())
	return nil
}

func (m *Menu) edit() error {
	id, err := m.readID()
	if err != nil {
		return err
	}
	task, err := m.todo.Task(id)
	if err != nil {
		return err
	}
	title, err := m.readLine(fmt.Sprintf("Title [%s]: ", task.Title()))
	if err != nil {
		return err
	}
	description, err := m.readLine(fmt.Sprintf("Description [%s]: ", task.Description()))
	if err != nil {
		return err
	}
	due, err := m.readLine(fmt.Sprintf("Due date [%s]: ", task.DueDate().Format(workbook.DueDateFormat)))
	if err != nil {
		return err
	}
	if err := editTask(&task, title, description, due); err != nil {
		return err
	}
	if err := m.todo.UpdateTask(task); err != nil {
		return err
	}
	if err := m.save(m.todo.Tasks()); err != nil {
		return err
	}
	log.Printf("updated task %s", task.ID())
	fmt.Fprintf(m.w, "Updated task %s\n", task.ID())
	return nil
}

func (m *Menu) delete() error {
	id, err := m.readID()
	if err != nil {
		return err
	}
	if err := m.todo.DeleteTask(id); err != nil {
		return err
	}
	if err := m.save(m.todo.Tasks()); err != nil {
		return err
	}
	log.Printf("deleted task %s", id)
	fmt.Fprintf(m.w, "Deleted task %s\n", id)
	return nil
}
