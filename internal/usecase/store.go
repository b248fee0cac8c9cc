package usecase

import (
	"context"

	"github.com/riskibarqy/baseball-stats/internal/domain/player"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
)

// Repositories groups the repositories bound to one unit of work.
type Repositories struct {
	Players    player.Repository
	Positions  position.Repository
	Statistics playerstats.Repository
}

// Store hands out repositories and runs all-or-nothing units of work.
type Store interface {
	Repositories() Repositories
	// RunInTx commits when fn returns nil and rolls every write back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
