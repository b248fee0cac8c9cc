package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/baseball-stats/internal/domain/player"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

type dataset struct {
	players        map[int64]player.Player
	positions      map[int64]position.Position
	stats          map[int64]playerstats.Statistic
	nextPlayerID   int64
	nextPositionID int64
	nextStatID     int64
}

func newDataset() *dataset {
	return &dataset{
		players:   make(map[int64]player.Player),
		positions: make(map[int64]position.Position),
		stats:     make(map[int64]playerstats.Statistic),
	}
}

func (d *dataset) clone() *dataset {
	out := &dataset{
		players:        make(map[int64]player.Player, len(d.players)),
		positions:      make(map[int64]position.Position, len(d.positions)),
		stats:          make(map[int64]playerstats.Statistic, len(d.stats)),
		nextPlayerID:   d.nextPlayerID,
		nextPositionID: d.nextPositionID,
		nextStatID:     d.nextStatID,
	}
	for k, v := range d.players {
		out.players[k] = v
	}
	for k, v := range d.positions {
		out.positions[k] = v
	}
	for k, v := range d.stats {
		out.stats[k] = v
	}
	return out
}

// Store keeps players, positions and statistics in memory. Transactions work
// on a private copy that replaces the live data on commit.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) Repositories() usecase.Repositories {
	return bind(binding{store: s})
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, bind(binding{store: s, tx: working})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()
	return nil
}

// binding routes repository calls to the live data or to a transaction copy.
type binding struct {
	store *Store
	tx    *dataset
}

func (b binding) read(fn func(d *dataset)) {
	if b.tx != nil {
		fn(b.tx)
		return
	}
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	fn(b.store.data)
}

func (b binding) write(fn func(d *dataset) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.store.txMu.Lock()
	defer b.store.txMu.Unlock()
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return fn(b.store.data)
}

func bind(b binding) usecase.Repositories {
	return usecase.Repositories{
		Players:    &PlayerRepository{b: b},
		Positions:  &PositionRepository{b: b},
		Statistics: &PlayerStatsRepository{b: b},
	}
}
