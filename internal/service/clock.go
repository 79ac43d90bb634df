package service

import (
	"time"

	"go.uber.org/zap"
)

type Clock interface {
	Now() time.Time
}

// ZoneClock reads the wall clock in one civil timezone.
type ZoneClock struct {
	location *time.Location
	now      func() time.Time
}

// NewZoneClock falls back to the host's local time when the zone cannot be
// loaded, so a missing tz database degrades the answer instead of the service.
func NewZoneClock(timezone string, logger *zap.Logger) *ZoneClock {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("timezone unavailable, using host local time",
			zap.String("timezone", timezone),
			zap.Error(err),
		)
		location = time.Local
	}
	return &ZoneClock{location: location, now: time.Now}
}

func (c *ZoneClock) Location() *time.Location {
	return c.location
}

func (c *ZoneClock) Now() time.Time {
	return c.now().In(c.location)
}

// FractionalHour returns the wall-clock hour with minutes as a fraction.
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
