package repository

import (
	"context"
	"fmt"

	"office-hours/internal/domain"
)

// PostgresOverrideStore keeps one row per date. SaveAll rewrites the table to
// match the given collection inside one transaction.
type PostgresOverrideStore struct {
	txManager TxManager
}

func NewPostgresOverrideStore(txManager TxManager) *PostgresOverrideStore {
	return &PostgresOverrideStore{txManager: txManager}
}

func (s *PostgresOverrideStore) LoadAll(ctx context.Context) (domain.Overrides, error) {
	var overrides domain.Overrides
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		var err error
		overrides, err = repos.Overrides.ListAll(ctx)
		return err
	})
	if err != nil {
		return domain.Overrides{}, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, nil
}

func (s *PostgresOverrideStore) SaveAll(ctx context.Context, overrides domain.Overrides) error {
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		dates := overrides.SortedDates()
		if err := repos.Overrides.DeleteExcept(ctx, dates); err != nil {
			return err
		}
		for _, date := range dates {
			if err := repos.Overrides.Upsert(ctx, date, overrides[date]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	return nil
}

func (s *PostgresOverrideStore) Delete(ctx context.Context, date string) error {
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		return repos.Overrides.DeleteByDate(ctx, date)
	})
	if err != nil {
		return fmt.Errorf("delete override %s: %w", date, err)
	}
	return nil
}
