package service

import (
	"time"

	"office-hours/internal/domain"
)

// Resolve returns the schedule in effect on today's date. An override for the
// exact date replaces the weekly default entirely, in either direction.
func Resolve(weekly domain.WeeklyDefault, overrides domain.Overrides, today time.Time) domain.DaySchedule {
	effective := weekly.For(today.Weekday())
	if override, ok := overrides.Lookup(domain.DateKey(today)); ok {
		effective = override
	}
	return effective
}
