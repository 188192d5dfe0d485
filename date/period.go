package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a
// quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = [...]struct{ adjective, noun string }{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) String() string { return p.names().adjective }

// Noun returns the name of a single period: "day", "week"...
func (p Period) Noun() string { return p.names().noun }

func (p Period) names() struct{ adjective, noun string } {
	if p < 0 || int(p) >= len(periodNames) {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return periodNames[p]
}

// Nouns returns the noun of every period, shortest first.
func Nouns() []string {
	nouns := make([]string, len(periodNames))
	for i, n := range periodNames {
		nouns[i] = n.noun
	}
	return nouns
}

// ParsePeriod accepts the adjective or the noun, in any case: "Weekly" or "week".
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, n := range periodNames {
		if s == n.adjective || s == n.noun {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}
