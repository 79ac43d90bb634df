package service

import (
	"context"
	"time"

	"office-hours/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func at(date string, hour, minute int) time.Time {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

type memoryStore struct {
	overrides domain.Overrides
	loadErr   error
	saveErr   error
	saves     int
	deletes   []string
}

func newMemoryStore(overrides domain.Overrides) *memoryStore {
	if overrides == nil {
		overrides = domain.Overrides{}
	}
	return &memoryStore{overrides: overrides}
}

func (m *memoryStore) LoadAll(context.Context) (domain.Overrides, error) {
	if m.loadErr != nil {
		return domain.Overrides{}, m.loadErr
	}
	return m.overrides.Clone(), nil
}

func (m *memoryStore) SaveAll(_ context.Context, overrides domain.Overrides) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.overrides = overrides.Clone()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, date string) error {
	m.deletes = append(m.deletes, date)
	delete(m.overrides, date)
	return nil
}
