package domain

import (
	"fmt"
	"math"
)

type Icon string

const (
	IconOpen   Icon = "open"
	IconClosed Icon = "closed"
)

// Status is the rendered outcome of a schedule for one moment.
type Status struct {
	HTML        string
	PlainText   string
	UpperBanner string
	Icon        Icon
	Open        bool
	ClosedDay   bool
	Day         string
	Start       string
	End         string
}

// HourLabel renders whole hours as "10" and fractional hours as "14:30".
func HourLabel(hour float64) string {
	whole := math.Trunc(hour)
	if hour == whole {
		return fmt.Sprintf("%d", int(whole))
	}
	minutes := int((hour - whole) * 60)
	return fmt.Sprintf("%d:%02d", int(whole), minutes)
}
