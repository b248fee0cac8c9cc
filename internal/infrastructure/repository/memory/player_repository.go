package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/baseball-stats/internal/domain/player"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
)

type PlayerRepository struct {
	b binding
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	var (
		out    player.Player
		exists bool
	)
	r.b.read(func(d *dataset) {
		out, exists = d.players[id]
	})
	return out, exists, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	var (
		out    player.Player
		exists bool
	)
	r.b.read(func(d *dataset) {
		out, exists = d.playerByName(name)
	})
	return out, exists, nil
}

func (r *PlayerRepository) UpsertByName(_ context.Context, name string) (player.Player, error) {
	var out player.Player
	err := r.b.write(func(d *dataset) error {
		if existing, ok := d.playerByName(name); ok {
			existing.Name = name
			d.players[existing.ID] = existing
			out = existing
			return nil
		}
		d.nextPlayerID++
		out = player.Player{ID: d.nextPlayerID, Name: name}
		d.players[out.ID] = out
		return nil
	})
	return out, err
}

func (r *PlayerRepository) UpdateName(_ context.Context, id int64, name string) error {
	return r.b.write(func(d *dataset) error {
		p, ok := d.players[id]
		if !ok {
			return fmt.Errorf("player %d not found", id)
		}
		if other, exists := d.playerByName(name); exists && other.ID != id {
			return fmt.Errorf("player name %q already taken", name)
		}
		p.Name = name
		d.players[id] = p
		return nil
	})
}

func (r *PlayerRepository) UpdateDescription(_ context.Context, id int64, description string) error {
	return r.b.write(func(d *dataset) error {
		p, ok := d.players[id]
		if !ok {
			return fmt.Errorf("player %d not found", id)
		}
		p.Description = &description
		d.players[id] = p
		return nil
	})
}

func (r *PlayerRepository) DeleteAll(_ context.Context) error {
	return r.b.write(func(d *dataset) error {
		d.players = make(map[int64]player.Player)
		d.stats = make(map[int64]playerstats.Statistic)
		return nil
	})
}

func (d *dataset) playerByName(name string) (player.Player, bool) {
	for _, p := range d.players {
		if p.Name == name {
			return p, true
		}
	}
	return player.Player{}, false
}
