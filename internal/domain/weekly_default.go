package domain

import "time"

// WeeklyDefault maps each weekday to its regular schedule. Weekdays without an
// entry are closed.
type WeeklyDefault struct {
	days map[time.Weekday]DaySchedule
}

func NewWeeklyDefault(days map[time.Weekday]DaySchedule) WeeklyDefault {
	copied := make(map[time.Weekday]DaySchedule, len(days))
	for day, schedule := range days {
		copied[day] = schedule
	}
	return WeeklyDefault{days: copied}
}

// OfficeWeek is the office's regular week: Monday to Friday 10-20, Saturday
// 10-14, Sunday closed.
func OfficeWeek() WeeklyDefault {
	return NewWeeklyDefault(map[time.Weekday]DaySchedule{
		time.Monday:    OpenDay(10, 20),
		time.Tuesday:   OpenDay(10, 20),
		time.Wednesday: OpenDay(10, 20),
		time.Thursday:  OpenDay(10, 20),
		time.Friday:    OpenDay(10, 20),
		time.Saturday:  OpenDay(10, 14),
		time.Sunday:    ClosedDay(),
	})
}

func (w WeeklyDefault) For(day time.Weekday) DaySchedule {
	schedule, ok := w.days[day]
	if !ok {
		return ClosedDay()
	}
	return schedule
}

var dayNames = map[time.Weekday]string{
	time.Monday:    "Ponedjeljak",
	time.Tuesday:   "Utorak",
	time.Wednesday: "Srijeda",
	time.Thursday:  "Četvrtak",
	time.Friday:    "Petak",
	time.Saturday:  "Subota",
	time.Sunday:    "Nedjelja",
}

func DayName(day time.Weekday) string {
	return dayNames[day]
}
