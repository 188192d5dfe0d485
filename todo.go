package workbook

import (
	"slices"
	"strings"
	"time"

	"github.com/etnz/workbook/date"
	"github.com/google/uuid"
)

// Todo is an ordered list of tasks, unique by id.
//
// Tasks are values: Todo stores copies and every read returns copies, so the
// caller never holds a reference to the internal state.
// A Todo is not safe for concurrent use.
type Todo struct {
	tasks []Task
}

// NewTodo returns a Todo holding tasks, in order. Tasks whose id is already
// present are skipped, like AddTask does.
func NewTodo(tasks ...Task) (*Todo, error) {
	todo := &Todo{tasks: make([]Task, 0, len(tasks))}
	for _, task := range tasks {
		if err := todo.AddTask(task); err != nil {
			return nil, err
		}
	}
	return todo, nil
}

// Len returns the number of tasks.
func (l *Todo) Len() int { return len(l.tasks) }

func (l *Todo) index(id uuid.UUID) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.id == id })
}

// AddTask appends task. It is a no-op if a task with the same id exists.
func (l *Todo) AddTask(task Task) error {
	if task.IsZero() {
		return invalidf("task should not be empty")
	}
	if l.index(task.id) >= 0 {
		return nil
	}
	l.tasks = append(l.tasks, task)
	return nil
}

// Tasks returns a copy of all the tasks, in order.
func (l *Todo) Tasks() []Task { return slices.Clone(l.tasks) }

// Task returns the task with this id.
func (l *Todo) Task(id uuid.UUID) (Task, error) {
	if id == uuid.Nil {
		return Task{}, invalidf("task id should not be empty")
	}
	i := l.index(id)
	if i < 0 {
		return Task{}, notFoundf("no task with id %s", id)
	}
	return l.tasks[i], nil
}

// UpdateTask replaces the stored task with the same id as task, keeping its
// position in the list.
func (l *Todo) UpdateTask(task Task) error {
	if task.IsZero() {
		return invalidf("updated task should not be empty")
	}
	current, err := l.Task(task.id)
	if err != nil {
		return err
	}
	if current.Equal(task) {
		return nil
	}
	l.tasks[l.index(task.id)] = task
	return nil
}

// DeleteTask removes the task with this id.
func (l *Todo) DeleteTask(id uuid.UUID) error {
	if _, err := l.Task(id); err != nil {
		return err
	}
	l.tasks = slices.DeleteFunc(l.tasks, func(t Task) bool { return t.id == id })
	return nil
}

// SetTasks replaces all the tasks.
//
// A nil slice is ignored, and so is a non empty list equal to the current
// one. An empty list, an empty task or two tasks sharing an id are errors.
func (l *Todo) SetTasks(tasks []Task) error {
	if tasks == nil {
		return nil
	}
	if len(tasks) == 0 {
		return invalidf("tasks should not be empty")
	}
	if slices.EqualFunc(l.tasks, tasks, Task.Equal) {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(tasks))
	for _, task := range tasks {
		if task.IsZero() {
			return invalidf("task should not be empty")
		}
		if seen[task.id] {
			return invalidf("duplicate task id %s", task.id)
		}
		seen[task.id] = true
	}
	l.tasks = slices.Clone(tasks)
	return nil
}

// Search returns the tasks whose title or description contains q, ignoring case.
func (l *Todo) Search(q string) []Task {
	q = strings.ToLower(strings.TrimSpace(q))
	var found []Task
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.title), q) || strings.Contains(strings.ToLower(t.description), q) {
			found = append(found, t)
		}
	}
	return found
}

// Overdue returns the tasks due before now, the oldest first.
func (l *Todo) Overdue(now time.Time) []Task {
	var found []Task
	for _, t := range l.tasks {
		if t.Overdue(now) {
			found = append(found, t)
		}
	}
	sortByDueDate(found)
	return found
}

// Due returns the tasks due on a day within r, the earliest first.
func (l *Todo) Due(r date.Range) []Task {
	var found []Task
	for _, t := range l.tasks {
		if r.Contains(date.Of(t.dueDate)) {
			found = append(found, t)
		}
	}
	sortByDueDate(found)
	return found
}

func sortByDueDate(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int { return a.dueDate.Compare(b.dueDate) })
}
