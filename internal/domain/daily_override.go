package domain

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// Overrides maps a YYYY-MM-DD date key to the schedule that fully replaces the
// weekly default on that date.
type Overrides map[string]DaySchedule

func (o Overrides) Lookup(date string) (DaySchedule, bool) {
	schedule, ok := o[date]
	return schedule, ok
}

// SortedDates returns the keys in ascending order. ISO dates sort the same
// lexically and chronologically.
func (o Overrides) SortedDates() []string {
	dates := make([]string, 0, len(o))
	for date := range o {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func (o Overrides) Clone() Overrides {
	cloned := make(Overrides, len(o))
	for date, schedule := range o {
		cloned[date] = schedule
	}
	return cloned
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
