package playerstats

import "context"

type Repository interface {
	GetByPlayerID(ctx context.Context, playerID int64) (Statistic, bool, error)
	// UpsertByPlayerID replaces every stat field and the position reference of
	// the player's single statistics row, creating it when missing.
	UpsertByPlayerID(ctx context.Context, stat Statistic) (Statistic, error)
	DeleteAll(ctx context.Context) error

	ListSummaries(ctx context.Context, query ListQuery) ([]Summary, error)
	GetSummary(ctx context.Context, playerID int64) (Summary, bool, error)
}
