package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	// UpsertByName creates the player or rewrites the row matched by name.
	UpsertByName(ctx context.Context, name string) (Player, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateDescription(ctx context.Context, id int64, description string) error
	DeleteAll(ctx context.Context) error
}
