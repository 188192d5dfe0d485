package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/workbook"
	"github.com/etnz/workbook/date"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is the structure of a rendered markdown report.
type document struct {
	headings   []string
	rows       [][]string // the table header comes first
	paragraphs []string
	items      []string
}

// parse reads a markdown report with the GFM table extension.
func parse(t *testing.T, src string) document {
	t.Helper()
	content := []byte(src)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(content))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			doc.headings = append(doc.headings, inline(n, content))
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph:
			doc.paragraphs = append(doc.paragraphs, inline(n, content))
			return ast.WalkSkipChildren, nil
		case ast.KindListItem:
			doc.items = append(doc.items, inline(n, content))
			return ast.WalkSkipChildren, nil
		case east.KindTableHeader, east.KindTableRow:
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, inline(c, content))
			}
			doc.rows = append(doc.rows, row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("cannot walk markdown: %v", err)
	}
	return doc
}

// inline returns the text of n, without the markup.
func inline(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func mustTask(t *testing.T, title string, due time.Time) workbook.Task {
	t.Helper()
	task, err := workbook.NewTask(uuid.Nil, title, title+" details", due)
	if err != nil {
		t.Fatalf("NewTask(%q) unexpected error: %v", title, err)
	}
	return task
}

func mustAccount(t *testing.T, name string, balance workbook.Money) workbook.BankAccount {
	t.Helper()
	h, err := workbook.NewAccountHolder(uuid.Nil, name, "Doe", date.New(1990, time.May, 17))
	if err != nil {
		t.Fatalf("NewAccountHolder(%q) unexpected error: %v", name, err)
	}
	a, err := workbook.NewBankAccount(uuid.Nil, balance, h)
	if err != nil {
		t.Fatalf("NewBankAccount(%q) unexpected error: %v", name, err)
	}
	return a
}

func TestTasksMarkdown(t *testing.T) {
	due := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	groceries := mustTask(t, "Groceries", due)
	laundry := mustTask(t, "Laundry", due.Add(time.Hour))

	// groceries is overdue, laundry is not.
	now := due.Add(30 * time.Minute)
	doc := parse(t, TasksMarkdown("All tasks", []workbook.Task{groceries, laundry}, now))

	if got := strings.Join(doc.headings, ","); got != "All tasks" {
		t.Errorf("headings = %q, want %q", got, "All tasks")
	}
	want := [][]string{
		{"ID", "Title", "Due", "Status"},
		{groceries.ID().String(), "Groceries", due.Format(DueFormat), "overdue"},
		{laundry.ID().String(), "Laundry", due.Add(time.Hour).Format(DueFormat), ""},
	}
	if len(doc.rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %q", len(doc.rows), len(want), doc.rows)
	}
	for i := range want {
		if got, want := strings.Join(doc.rows[i], "|"), strings.Join(want[i], "|"); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestTasksMarkdown_Empty(t *testing.T) {
	doc := parse(t, TasksMarkdown("Overdue tasks", nil, time.Now()))
	if len(doc.rows) != 0 {
		t.Errorf("got rows %q, want none", doc.rows)
	}
	if len(doc.paragraphs) != 1 || doc.paragraphs[0] != "No tasks." {
		t.Errorf("paragraphs = %q, want [No tasks.]", doc.paragraphs)
	}
}

func TestTaskMarkdown(t *testing.T) {
	due := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	task := mustTask(t, "Groceries", due)

	doc := parse(t, TaskMarkdown(task, time.Now()))
	if len(doc.headings) != 1 || doc.headings[0] != "Groceries" {
		t.Errorf("headings = %q, want [Groceries]", doc.headings)
	}
	if len(doc.paragraphs) == 0 || doc.paragraphs[0] != "Groceries details" {
		t.Errorf("paragraphs = %q, want the description first", doc.paragraphs)
	}
	wantItems := []string{"Due on " + due.Format(DueFormat), "ID " + task.ID().String()}
	if got, want := strings.Join(doc.items, ","), strings.Join(wantItems, ","); got != want {
		t.Errorf("items = %q, want %q", got, want)
	}

	doc = parse(t, TaskMarkdown(task, due.Add(time.Minute)))
	if len(doc.items) == 0 || !strings.HasSuffix(doc.items[0], "(overdue)") {
		t.Errorf("items = %q, want the due date flagged as overdue", doc.items)
	}
}

func TestContactsMarkdown(t *testing.T) {
	peter, err := workbook.NewContact(uuid.Nil, "Peter", "0173 4542312", "klaus.peter@test.de")
	if err != nil {
		t.Fatal(err)
	}
	doc := parse(t, ContactsMarkdown([]workbook.Contact{peter}))

	want := "ID|Name|Phone|Email," + peter.ID().String() + "|Peter|0173 4542312|klaus.peter@test.de"
	if got := joinRows(doc.rows); got != want {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestUsersMarkdown(t *testing.T) {
	u, err := workbook.NewUser(uuid.Nil, "jdoe", "john@doe.com", "John  Doe", "1 Main\nStreet")
	if err != nil {
		t.Fatal(err)
	}
	doc := parse(t, UsersMarkdown([]workbook.User{u}))

	want := "Username|Name|Email|Address,jdoe|John Doe|john@doe.com|1 Main Street"
	if got := joinRows(doc.rows); got != want {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestAccountsAndTransactionsMarkdown(t *testing.T) {
	john := mustAccount(t, "John", workbook.M(100, "EUR"))
	jane := mustAccount(t, "Jane", workbook.M(0, "EUR"))

	doc := parse(t, AccountsMarkdown([]workbook.BankAccount{john, jane}))
	want := "ID|Holder|Birthday|Balance," +
		john.ID().String() + "|John Doe|1990-05-17|€100.00," +
		jane.ID().String() + "|Jane Doe|1990-05-17|€0.00"
	if got := joinRows(doc.rows); got != want {
		t.Errorf("accounts rows = %q, want %q", got, want)
	}

	tx, _, _, err := workbook.Transfer(john, jane, workbook.M(12.5, "EUR"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Transaction(tx), "Transferred €12.50 from John Doe to Jane Doe"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}

	doc = parse(t, TransactionsMarkdown("History", []workbook.Transaction{tx}))
	want = "ID|From|To|Amount," + tx.ID().String() + "|John Doe|Jane Doe|€12.50"
	if got := joinRows(doc.rows); got != want {
		t.Errorf("transactions rows = %q, want %q", got, want)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "# Title", true); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "# Title\n" {
		t.Errorf("Print(plain) = %q, want %q", got, "# Title\n")
	}

	buf.Reset()
	if err := Print(&buf, "# Title", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Title") {
		t.Errorf("Print() = %q, want it to contain the title", buf.String())
	}
}

func joinRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, "|")
	}
	return strings.Join(lines, ",")
}
