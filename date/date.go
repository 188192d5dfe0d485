// Package date implements a calendar date with day granularity.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 layout dates are written with.
const DateFormat = "2006-01-02"

// readFormat also accepts single digit months and days.
const readFormat = "2006-1-2"

// Date is a day in the proleptic gregorian calendar, without time zone.
// The zero value is not a valid day and reports IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the date, normalized like time.Date does: February 30th is
// March 1st or 2nd.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Of returns the day of t, in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current day, in the local time zone.
func Today() Date { return Of(time.Now()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d == Date{} }

// time is midnight UTC of that day. Two equal dates give equal times.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }

// Add returns the date i days later, or earlier if i is negative.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddYears returns the same day i years later, or earlier if i is negative.
// February 29th becomes March 1st on non leap years.
func (d Date) AddYears(i int) Date { return New(d.y+i, d.m, d.d) }

func (d Date) String() string { return d.time().Format(DateFormat) }

// StartOf returns the first day of the period containing d. Weeks start on
// Monday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		sinceMonday := (int(d.time().Weekday()) + 6) % 7
		return d.Add(-sinceMonday)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, d.m-(d.m-1)%3, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	}
	panic(fmt.Sprintf("unknown period %d", period))
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	start := d.StartOf(period)
	var next Date
	switch period {
	case Daily:
		next = start.Add(1)
	case Weekly:
		next = start.Add(7)
	case Monthly:
		next = New(start.y, start.m+1, 1)
	case Quarterly:
		next = New(start.y, start.m+3, 1)
	case Yearly:
		next = New(start.y+1, time.January, 1)
	}
	return next.Add(-1)
}

// Parse reads a date like "2025-07-01" or "2025-7-1".
func Parse(s string) (Date, error) {
	t, err := time.Parse(readFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, DateFormat, err)
	}
	return Of(t), nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
