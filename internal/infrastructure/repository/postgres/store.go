package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

// Store binds the repositories to the pool or to a transaction.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Repositories() usecase.Repositories {
	return bind(s.db)
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, bind(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func bind(db sqlx.ExtContext) usecase.Repositories {
	return usecase.Repositories{
		Players:    NewPlayerRepository(db),
		Positions:  NewPositionRepository(db),
		Statistics: NewPlayerStatsRepository(db),
	}
}
