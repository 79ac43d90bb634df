package service

import (
	"fmt"
	"strings"

	"office-hours/internal/domain"
)

const (
	messageNonWorkingDay = "Danas je neradni dan."
	messageOpenNow       = "Ordinacija je trenutno otvorena."
	messageClosedNow     = "Ordinacija je trenutno zatvorena."
	messageHoursFormat   = "Danas je radno vrijeme od %s do %s časova."

	htmlLineBreak = "<br>"
)

// FormatStatus renders the effective schedule at currentHour. Lines are joined
// with <br> for the page and with a space for speech.
func FormatStatus(effective domain.DaySchedule, currentHour float64, dayName string) domain.Status {
	interval, open := effective.Interval()
	if !open {
		return domain.Status{
			HTML:        messageNonWorkingDay,
			PlainText:   messageNonWorkingDay,
			UpperBanner: strings.ToUpper(messageNonWorkingDay),
			Icon:        domain.IconClosed,
			ClosedDay:   true,
			Day:         dayName,
		}
	}

	start := domain.HourLabel(interval.Start)
	end := domain.HourLabel(interval.End)
	openNow := interval.Contains(currentHour)

	lines := []string{messageClosedNow, fmt.Sprintf(messageHoursFormat, start, end)}
	icon := domain.IconClosed
	if openNow {
		lines[0] = messageOpenNow
		icon = domain.IconOpen
	}

	html := strings.Join(lines, htmlLineBreak)
	return domain.Status{
		HTML:        html,
		PlainText:   strings.Join(lines, " "),
		UpperBanner: strings.ToUpper(html),
		Icon:        icon,
		Open:        openNow,
		Day:         dayName,
		Start:       start,
		End:         end,
	}
}
