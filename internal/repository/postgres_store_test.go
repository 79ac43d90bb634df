package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-hours/internal/domain"
)

type fakeDateOverrideRepository struct {
	rows      domain.Overrides
	upsertErr error
}

func (f *fakeDateOverrideRepository) ListAll(context.Context) (domain.Overrides, error) {
	return f.rows.Clone(), nil
}

func (f *fakeDateOverrideRepository) Upsert(_ context.Context, date string, schedule domain.DaySchedule) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[date] = schedule
	return nil
}

func (f *fakeDateOverrideRepository) DeleteExcept(_ context.Context, dates []string) error {
	keep := make(map[string]bool, len(dates))
	for _, date := range dates {
		keep[date] = true
	}
	for date := range f.rows {
		if !keep[date] {
			delete(f.rows, date)
		}
	}
	return nil
}

func (f *fakeDateOverrideRepository) DeleteByDate(_ context.Context, date string) error {
	delete(f.rows, date)
	return nil
}

// fakeTxManager applies changes to a copy and only publishes it on success.
type fakeTxManager struct {
	committed domain.Overrides
	upsertErr error
}

func (m *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	repo := &fakeDateOverrideRepository{rows: m.committed.Clone(), upsertErr: m.upsertErr}
	if err := fn(ctx, TxRepositories{Overrides: repo}); err != nil {
		return err
	}
	m.committed = repo.rows
	return nil
}

func TestPostgresStoreSaveAllReplacesTable(t *testing.T) {
	ctx := context.Background()
	txManager := &fakeTxManager{committed: domain.Overrides{
		"2024-12-20": domain.OpenDay(8, 12),
		"2024-12-25": domain.OpenDay(9, 11),
	}}
	store := NewPostgresOverrideStore(txManager)

	err := store.SaveAll(ctx, domain.Overrides{
		"2024-12-25": domain.ClosedDay(),
		"2024-12-31": domain.OpenDay(9, 12),
	})
	require.NoError(t, err)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Overrides{
		"2024-12-25": domain.ClosedDay(),
		"2024-12-31": domain.OpenDay(9, 12),
	}, loaded)
}

func TestPostgresStoreSaveAllIsAtomic(t *testing.T) {
	before := domain.Overrides{"2024-12-20": domain.OpenDay(8, 12)}
	txManager := &fakeTxManager{committed: before.Clone(), upsertErr: errors.New("connection reset")}
	store := NewPostgresOverrideStore(txManager)

	err := store.SaveAll(context.Background(), domain.Overrides{"2024-12-25": domain.ClosedDay()})

	require.Error(t, err)
	assert.Equal(t, before, txManager.committed)
}

func TestPostgresStoreDelete(t *testing.T) {
	ctx := context.Background()
	txManager := &fakeTxManager{committed: domain.Overrides{"2024-12-25": domain.ClosedDay()}}
	store := NewPostgresOverrideStore(txManager)

	require.NoError(t, store.Delete(ctx, "2030-01-01"))
	require.NoError(t, store.Delete(ctx, "2024-12-25"))

	assert.Empty(t, txManager.committed)
}
