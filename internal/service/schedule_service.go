package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"office-hours/internal/domain"
	"office-hours/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	labelOpenNow        = "Otvoreno sada"
	labelClosedNow      = "Zatvoreno sada"
	labelNonWorkingDay  = "Neradni dan (danas)"
	labelNotToday       = "—"
	labelClosedOverride = "Neradni dan"
)

// OverrideSubmission is the raw admin form. Start and End are nil when the
// fields were not sent at all.
type OverrideSubmission struct {
	Date   string
	Closed bool
	Start  *string
	End    *string
}

// CurrentStatus is the home view model.
type CurrentStatus struct {
	Date   string
	Hour   float64
	Status domain.Status
}

// OverrideRow is one line of the admin listing.
type OverrideRow struct {
	Date       string
	DayName    string
	Closed     bool
	Hours      string
	IsToday    bool
	LiveStatus string
}

type openHours struct {
	Start int `validate:"gte=0,lt=24"`
	End   int `validate:"gt=0,lte=24,gtfield=Start"`
}

type ScheduleService struct {
	store    repository.OverrideStore
	weekly   domain.WeeklyDefault
	clock    Clock
	validate *validator.Validate
	logger   *zap.Logger
}

func NewScheduleService(store repository.OverrideStore, weekly domain.WeeklyDefault, clock Clock, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		store:    store,
		weekly:   weekly,
		clock:    clock,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *ScheduleService) CurrentStatus(ctx context.Context) CurrentStatus {
	now := s.clock.Now()
	hour := FractionalHour(now)
	effective := Resolve(s.weekly, s.loadOverrides(ctx), now)

	return CurrentStatus{
		Date:   domain.DateKey(now),
		Hour:   hour,
		Status: FormatStatus(effective, hour, domain.DayName(now.Weekday())),
	}
}

func (s *ScheduleService) ListOverrides(ctx context.Context) []OverrideRow {
	now := s.clock.Now()
	today := domain.DateKey(now)
	hour := FractionalHour(now)
	overrides := s.loadOverrides(ctx)

	rows := make([]OverrideRow, 0, len(overrides))
	for _, date := range overrides.SortedDates() {
		schedule := overrides[date]
		row := OverrideRow{
			Date:       date,
			DayName:    dayNameOf(date),
			Closed:     schedule.IsClosed(),
			Hours:      labelClosedOverride,
			IsToday:    date == today,
			LiveStatus: labelNotToday,
		}
		if interval, open := schedule.Interval(); open {
			row.Hours = domain.HourLabel(interval.Start) + " – " + domain.HourLabel(interval.End)
		}
		if row.IsToday {
			row.LiveStatus = liveStatus(schedule, hour)
		}
		rows = append(rows, row)
	}
	return rows
}

// Submit normalizes the form into one override and persists the whole
// collection before returning. Missing or non-integer hours close the day.
func (s *ScheduleService) Submit(ctx context.Context, submission OverrideSubmission) (domain.DaySchedule, error) {
	date := strings.TrimSpace(submission.Date)
	if err := s.validate.Var(date, "required,datetime=2006-01-02"); err != nil {
		return domain.DaySchedule{}, fmt.Errorf("%w: date %q: %v", ErrInvalidInput, date, err)
	}

	schedule := domain.ClosedDay()
	if !submission.Closed {
		start, startOK := parseHour(submission.Start)
		end, endOK := parseHour(submission.End)
		if startOK && endOK {
			if err := s.validate.Struct(openHours{Start: start, End: end}); err != nil {
				return domain.DaySchedule{}, fmt.Errorf("%w: hours %d-%d: %v", ErrInvalidInput, start, end, err)
			}
			schedule = domain.OpenDay(float64(start), float64(end))
		}
	}

	overrides, err := s.loadForWrite(ctx)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	overrides[date] = schedule
	if err := s.store.SaveAll(ctx, overrides); err != nil {
		return domain.DaySchedule{}, err
	}

	s.logger.Info("override saved",
		zap.String("date", date),
		zap.Bool("closed", schedule.IsClosed()),
	)
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, date string) error {
	if err := s.store.Delete(ctx, date); err != nil {
		return err
	}
	s.logger.Info("override deleted", zap.String("date", date))
	return nil
}

// loadOverrides serves the read views: an unreadable store reads as no overrides.
func (s *ScheduleService) loadOverrides(ctx context.Context) domain.Overrides {
	overrides, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.Warn("override store unreadable, continuing without overrides", zap.Error(err))
		return domain.Overrides{}
	}
	if overrides == nil {
		return domain.Overrides{}
	}
	return overrides
}

// loadForWrite starts over only from a corrupt document. Any other read
// failure aborts the write so the stored collection is not replaced.
func (s *ScheduleService) loadForWrite(ctx context.Context) (domain.Overrides, error) {
	overrides, err := s.store.LoadAll(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptDocument):
		s.logger.Warn("override document corrupt, replacing it", zap.Error(err))
		return domain.Overrides{}, nil
	case err != nil:
		return nil, fmt.Errorf("load overrides: %w", err)
	case overrides == nil:
		return domain.Overrides{}, nil
	}
	return overrides, nil
}

func parseHour(raw *string) (int, bool) {
	if raw == nil {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return 0, false
	}
	return value, true
}

func liveStatus(schedule domain.DaySchedule, hour float64) string {
	switch {
	case schedule.IsClosed():
		return labelNonWorkingDay
	case schedule.OpenAt(hour):
		return labelOpenNow
	default:
		return labelClosedNow
	}
}

func dayNameOf(date string) string {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return ""
	}
	return domain.DayName(parsed.Weekday())
}
