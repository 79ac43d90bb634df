package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"office-hours/internal/domain"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DateOverrideRepository interface {
	ListAll(ctx context.Context) (domain.Overrides, error)
	Upsert(ctx context.Context, date string, schedule domain.DaySchedule) error
	DeleteExcept(ctx context.Context, dates []string) error
	DeleteByDate(ctx context.Context, date string) error
}

type DateOverridePostgresRepository struct {
	execer Execer
}

func NewDateOverridePostgresRepository(execer Execer) *DateOverridePostgresRepository {
	return &DateOverridePostgresRepository{execer: execer}
}

func (r *DateOverridePostgresRepository) ListAll(ctx context.Context) (domain.Overrides, error) {
	const query = `
SELECT date, start_hour, end_hour
FROM office_hours.date_overrides
ORDER BY date ASC
`

	rows, err := r.execer.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := domain.Overrides{}
	for rows.Next() {
		var date string
		var startHour sql.NullFloat64
		var endHour sql.NullFloat64
		if err := rows.Scan(&date, &startHour, &endHour); err != nil {
			return nil, err
		}
		if startHour.Valid && endHour.Valid {
			overrides[date] = domain.OpenDay(startHour.Float64, endHour.Float64)
		} else {
			overrides[date] = domain.ClosedDay()
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *DateOverridePostgresRepository) Upsert(ctx context.Context, date string, schedule domain.DaySchedule) error {
	const query = `
INSERT INTO office_hours.date_overrides (
	id,
	date,
	start_hour,
	end_hour,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (date)
DO UPDATE SET
	start_hour = EXCLUDED.start_hour,
	end_hour = EXCLUDED.end_hour,
	updated_at = now()
`

	var startHour, endHour sql.NullFloat64
	if interval, open := schedule.Interval(); open {
		startHour = sql.NullFloat64{Float64: interval.Start, Valid: true}
		endHour = sql.NullFloat64{Float64: interval.End, Valid: true}
	}

	_, err := r.execer.ExecContext(ctx, query, uuid.New(), date, startHour, endHour)
	return err
}

func (r *DateOverridePostgresRepository) DeleteExcept(ctx context.Context, dates []string) error {
	const query = `
DELETE FROM office_hours.date_overrides
WHERE NOT (date = ANY($1::text[]))
`

	if dates == nil {
		dates = []string{}
	}
	_, err := r.execer.ExecContext(ctx, query, dates)
	return err
}

func (r *DateOverridePostgresRepository) DeleteByDate(ctx context.Context, date string) error {
	const query = `DELETE FROM office_hours.date_overrides WHERE date = $1`

	_, err := r.execer.ExecContext(ctx, query, date)
	return err
}
