package workbook

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DueDateFormat is the ISO-8601 local date-time layout used to read due dates.
const DueDateFormat = "2006-01-02T15:04"

// Task is a todo item with a title, a description and a due date.
//
// Unlike the other entities Task is updated in place through its setters.
// It holds no reference: assigning a Task copies it.
type Task struct {
	id          uuid.UUID
	title       string
	description string
	dueDate     time.Time
}

// NewTask returns a validated Task. A random id is generated when id is
// uuid.Nil. Title and description must not be empty and the due date must not
// be on a day before today.
func NewTask(id uuid.UUID, title, description string, dueDate time.Time) (Task, error) {
	if err := validateTask(title, description); err != nil {
		return Task{}, err
	}
	if err := validateDueDate(dueDate); err != nil {
		return Task{}, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Task{id: id, title: title, description: description, dueDate: dueDate}, nil
}

// ParseDueDate reads a due date in DueDateFormat, in the local time zone.
func ParseDueDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DueDateFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, invalidf("due date %q want format %q", s, DueDateFormat)
	}
	return t, nil
}

func validateTask(title, description string) error {
	if err := requireNonBlank("title", title); err != nil {
		return err
	}
	return requireNonBlank("description", description)
}

func (t Task) ID() uuid.UUID       { return t.id }
func (t Task) Title() string       { return t.title }
func (t Task) Description() string { return t.description }
func (t Task) DueDate() time.Time  { return t.dueDate }

// IsZero reports whether t is the zero value, i.e. was not built by NewTask.
func (t Task) IsZero() bool { return t.id == uuid.Nil }

// Overdue reports whether the task was due before now.
func (t Task) Overdue(now time.Time) bool { return t.dueDate.Before(now) }

// Equal reports whether t and o have the same id, title, description and due date.
func (t Task) Equal(o Task) bool {
	return t.id == o.id && t.title == o.title && t.description == o.description && t.dueDate.Equal(o.dueDate)
}

// SetID changes the id. uuid.Nil is ignored.
func (t *Task) SetID(id uuid.UUID) {
	if id == uuid.Nil || id == t.id {
		return
	}
	t.id = id
}

// SetTitle changes the title, stripped of surrounding white spaces.
// An unchanged title is ignored, an empty one is an error.
func (t *Task) SetTitle(title string) error {
	if title == t.title {
		return nil
	}
	if err := requireNonBlank("title", title); err != nil {
		return err
	}
	t.title = strings.TrimSpace(title)
	return nil
}

// SetDescription changes the description, stripped of surrounding white spaces.
// An unchanged description is ignored, an empty one is an error.
func (t *Task) SetDescription(description string) error {
	if description == t.description {
		return nil
	}
	if err := requireNonBlank("description", description); err != nil {
		return err
	}
	t.description = strings.TrimSpace(description)
	return nil
}

// SetDueDate changes the due date. The zero time and an unchanged due date are
// ignored; a day before today is an error.
func (t *Task) SetDueDate(dueDate time.Time) error {
	if dueDate.IsZero() || dueDate.Equal(t.dueDate) {
		return nil
	}
	if err := validateDueDate(dueDate); err != nil {
		return err
	}
	t.dueDate = dueDate
	return nil
}

type jsonTask struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTask{ID: t.id, Title: t.title, Description: t.description, DueDate: t.dueDate})
}

// UnmarshalJSON validates the decoded fields, except that a persisted due date
// may now be in the past.
func (t *Task) UnmarshalJSON(data []byte) error {
	var j jsonTask
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.ID == uuid.Nil {
		return invalidf("task id should not be empty")
	}
	if err := validateTask(j.Title, j.Description); err != nil {
		return err
	}
	if j.DueDate.IsZero() {
		return invalidf("due date should not be empty")
	}
	*t = Task{id: j.ID, title: j.Title, description: j.Description, dueDate: j.DueDate}
	return nil
}
