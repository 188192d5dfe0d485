package workbook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	id := uuid.New()
	due := tomorrow()
	task, err := NewTask(id, "Title", "Description", due)
	require.NoError(t, err)

	assert.Equal(t, id, task.ID())
	assert.Equal(t, "Title", task.Title())
	assert.Equal(t, "Description", task.Description())
	assert.Equal(t, due, task.DueDate())
	assert.False(t, task.Overdue(time.Now()))
}

func TestNewTask_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		description string
		due         time.Time
	}{
		{"empty title", "", "Description", tomorrow()},
		{"empty description", "Title", "", tomorrow()},
		{"blank title", "   ", "Description", tomorrow()},
		{"blank description", "Title", "\t\n", tomorrow()},
		{"no due date", "Title", "Description", time.Time{}},
		{"due yesterday", "Title", "Description", time.Now().AddDate(0, 0, -1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(uuid.Nil, tc.title, tc.description, tc.due)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewTask_DueToday(t *testing.T) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	task, err := NewTask(uuid.Nil, "Title", "Description", midnight)
	require.NoError(t, err, "a task due earlier today is valid")
	assert.True(t, task.Overdue(midnight.Add(time.Minute)))
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2030-12-24T18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, time.December, 24, 18, 30, 0, 0, time.Local), got)

	for _, in := range []string{"", "2030-12-24", "24.12.2030 18:30", "2030-12-24T25:00"} {
		_, err := ParseDueDate(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, in)
	}
}

func TestTask_Setters(t *testing.T) {
	task := newTask(t, "Title")

	require.NoError(t, task.SetTitle("  New title  "))
	assert.Equal(t, "New title", task.Title())

	require.NoError(t, task.SetDescription("New description"))
	assert.Equal(t, "New description", task.Description())

	later := tomorrow().AddDate(0, 1, 0)
	require.NoError(t, task.SetDueDate(later))
	assert.Equal(t, later, task.DueDate())

	id := uuid.New()
	task.SetID(id)
	assert.Equal(t, id, task.ID())
}

func TestTask_Setters_Ignored(t *testing.T) {
	task := newTask(t, "Title")
	before := task

	task.SetID(uuid.Nil)
	require.NoError(t, task.SetTitle(task.Title()))
	require.NoError(t, task.SetDescription(task.Description()))
	require.NoError(t, task.SetDueDate(time.Time{}))
	require.NoError(t, task.SetDueDate(task.DueDate()))

	assert.True(t, before.Equal(task))
}

func TestTask_Setters_Invalid(t *testing.T) {
	task := newTask(t, "Title")
	before := task

	assert.ErrorIs(t, task.SetTitle(""), ErrInvalidArgument)
	assert.ErrorIs(t, task.SetTitle("   "), ErrInvalidArgument)
	assert.ErrorIs(t, task.SetDescription(""), ErrInvalidArgument)
	assert.ErrorIs(t, task.SetDueDate(time.Now().AddDate(0, 0, -2)), ErrInvalidArgument)

	assert.True(t, before.Equal(task), "a failed setter must leave the task unchanged")
}

func TestTask_Copy(t *testing.T) {
	original := newTask(t, "Title")
	copied := original
	require.NoError(t, copied.SetTitle("Other"))
	assert.Equal(t, "Title", original.Title())
	assert.Equal(t, original.ID(), copied.ID())
}

func TestTask_JSON(t *testing.T) {
	task := newTask(t, "Title")
	data, err := json.Marshal(task)
	require.NoError(t, err)

	var got Task
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, task.Equal(got))
}

func TestTask_JSON_PastDueDate(t *testing.T) {
	data := []byte(`{"id":"6f1c1d4e-3b0a-4c1e-9d7a-1a2b3c4d5e6f","title":"Old","description":"Done long ago","dueDate":"2001-01-01T10:00:00Z"}`)
	var got Task
	require.NoError(t, json.Unmarshal(data, &got), "a persisted task may be overdue")
	assert.True(t, got.Overdue(time.Now()))

	for _, data := range []string{
		`{"title":"Old","description":"Done","dueDate":"2001-01-01T10:00:00Z"}`,
		`{"id":"6f1c1d4e-3b0a-4c1e-9d7a-1a2b3c4d5e6f","title":"","description":"Done","dueDate":"2001-01-01T10:00:00Z"}`,
		`{"id":"6f1c1d4e-3b0a-4c1e-9d7a-1a2b3c4d5e6f","title":"Old","description":"Done"}`,
	} {
		assert.ErrorIs(t, json.Unmarshal([]byte(data), &got), ErrInvalidArgument, data)
	}
}
