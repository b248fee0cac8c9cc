package memory

import (
	"context"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
)

type PositionRepository struct {
	b binding
}

func (r *PositionRepository) GetByAbbreviation(_ context.Context, abbreviation string) (position.Position, bool, error) {
	var (
		out    position.Position
		exists bool
	)
	r.b.read(func(d *dataset) {
		out, exists = d.positionByAbbreviation(abbreviation)
	})
	return out, exists, nil
}

func (r *PositionRepository) FirstOrCreate(_ context.Context, p position.Position) (position.Position, error) {
	var out position.Position
	err := r.b.write(func(d *dataset) error {
		if existing, ok := d.positionByAbbreviation(p.Abbreviation); ok {
			out = existing
			return nil
		}
		d.nextPositionID++
		p.ID = d.nextPositionID
		d.positions[p.ID] = p
		out = p
		return nil
	})
	return out, err
}

func (r *PositionRepository) DeleteAll(_ context.Context) error {
	return r.b.write(func(d *dataset) error {
		d.positions = make(map[int64]position.Position)
		d.stats = make(map[int64]playerstats.Statistic)
		return nil
	})
}

func (d *dataset) positionByAbbreviation(abbreviation string) (position.Position, bool) {
	for _, p := range d.positions {
		if p.Abbreviation == abbreviation {
			return p, true
		}
	}
	return position.Position{}, false
}
