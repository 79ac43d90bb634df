package domain

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Interval is an opening interval in fractional hours, 14.5 meaning 14:30.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether hour falls in [Start, End).
func (i Interval) Contains(hour float64) bool {
	return i.Start <= hour && hour < i.End
}

// DaySchedule is either closed or open for a single interval.
type DaySchedule struct {
	interval Interval
	open     bool
}

func ClosedDay() DaySchedule {
	return DaySchedule{}
}

func OpenDay(start, end float64) DaySchedule {
	return DaySchedule{interval: Interval{Start: start, End: end}, open: true}
}

func (d DaySchedule) IsClosed() bool {
	return !d.open
}

func (d DaySchedule) Interval() (Interval, bool) {
	return d.interval, d.open
}

// OpenAt applies the half-open test; a closed day is never open.
func (d DaySchedule) OpenAt(hour float64) bool {
	return d.open && d.interval.Contains(hour)
}

// MarshalJSON writes the stored document shape: [start, end] or [null, null].
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	if !d.open {
		return []byte("[null,null]"), nil
	}
	return json.Marshal([2]float64{d.interval.Start, d.interval.End})
}

// UnmarshalJSON accepts anything and collapses every shape other than a
// two-element numeric array to a closed day.
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	*d = ParseDaySchedule(data)
	return nil
}

func ParseDaySchedule(raw []byte) DaySchedule {
	var pair []*float64
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if err := decoder.Decode(&pair); err != nil {
		return ClosedDay()
	}
	if len(pair) != 2 || pair[0] == nil || pair[1] == nil {
		return ClosedDay()
	}
	return OpenDay(*pair[0], *pair[1])
}
