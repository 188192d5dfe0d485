package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/workbook"
	md "github.com/nao1215/markdown"
)

// DueFormat is the layout of due dates in reports.
const DueFormat = "2006-01-02 15:04"

// TasksMarkdown renders tasks as a table, in order. Tasks due before now are
// flagged as overdue.
func TasksMarkdown(title string, tasks []workbook.Task, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	if len(tasks) == 0 {
		doc.PlainText("No tasks.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Title", "Due", "Status"},
		Rows:   [][]string{},
	}
	for _, t := range tasks {
		status := ""
		if t.Overdue(now) {
			status = md.Bold("overdue")
		}
		table.Rows = append(table.Rows, []string{
			md.Code(t.ID().String()),
			escape(t.Title()),
			t.DueDate().Format(DueFormat),
			status,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d task(s)", len(tasks)))
	return doc.String()
}

// TaskMarkdown renders the details of a single task.
func TaskMarkdown(t workbook.Task, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(t.Title())
	doc.PlainText(t.Description())
	due := fmt.Sprintf("Due on %s", t.DueDate().Format(DueFormat))
	if t.Overdue(now) {
		due += " " + md.Bold("(overdue)")
	}
	doc.BulletList(
		due,
		fmt.Sprintf("ID %s", md.Code(t.ID().String())),
	)
	return doc.String()
}
