package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	b binding
}

func (r *PlayerStatsRepository) GetByPlayerID(_ context.Context, playerID int64) (playerstats.Statistic, bool, error) {
	var (
		out    playerstats.Statistic
		exists bool
	)
	r.b.read(func(d *dataset) {
		out, exists = d.statByPlayer(playerID)
	})
	return out, exists, nil
}

func (r *PlayerStatsRepository) UpsertByPlayerID(_ context.Context, stat playerstats.Statistic) (playerstats.Statistic, error) {
	if err := stat.Validate(); err != nil {
		return playerstats.Statistic{}, err
	}

	var out playerstats.Statistic
	err := r.b.write(func(d *dataset) error {
		if _, ok := d.players[stat.PlayerID]; !ok {
			return fmt.Errorf("player %d not found", stat.PlayerID)
		}
		if _, ok := d.positions[stat.PositionID]; !ok {
			return fmt.Errorf("position %d not found", stat.PositionID)
		}

		stat.Rates = roundRates(stat.Rates)
		if existing, ok := d.statByPlayer(stat.PlayerID); ok {
			stat.ID = existing.ID
		} else {
			d.nextStatID++
			stat.ID = d.nextStatID
		}
		d.stats[stat.ID] = stat
		out = stat
		return nil
	})
	return out, err
}

func (r *PlayerStatsRepository) DeleteAll(_ context.Context) error {
	return r.b.write(func(d *dataset) error {
		d.stats = make(map[int64]playerstats.Statistic)
		return nil
	})
}

func (r *PlayerStatsRepository) ListSummaries(_ context.Context, query playerstats.ListQuery) ([]playerstats.Summary, error) {
	var out []playerstats.Summary
	r.b.read(func(d *dataset) {
		out = make([]playerstats.Summary, 0, len(d.players))
		for id := range d.players {
			out = append(out, d.summary(id))
		}
	})

	slices.SortFunc(out, func(a, b playerstats.Summary) int {
		if c := compareBySort(a, b, query); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
	return out, nil
}

func (r *PlayerStatsRepository) GetSummary(_ context.Context, playerID int64) (playerstats.Summary, bool, error) {
	var (
		out    playerstats.Summary
		exists bool
	)
	r.b.read(func(d *dataset) {
		if _, exists = d.players[playerID]; exists {
			out = d.summary(playerID)
		}
	})
	return out, exists, nil
}

func (d *dataset) statByPlayer(playerID int64) (playerstats.Statistic, bool) {
	for _, s := range d.stats {
		if s.PlayerID == playerID {
			return s, true
		}
	}
	return playerstats.Statistic{}, false
}

func (d *dataset) summary(playerID int64) playerstats.Summary {
	p := d.players[playerID]
	out := playerstats.Summary{
		PlayerID:    p.ID,
		Name:        p.Name,
		Description: p.Description,
	}

	stat, ok := d.statByPlayer(playerID)
	if !ok {
		return out
	}
	if pos, found := d.positions[stat.PositionID]; found {
		out.Position = &pos.Abbreviation
		out.PositionName = &pos.Name
	}

	c := stat.Counts
	out.Games = &c.Games
	out.AtBat = &c.AtBat
	out.Runs = &c.Runs
	out.Hits = &c.Hits
	out.Doubles = &c.Doubles
	out.Triples = &c.Triples
	out.HomeRuns = &c.HomeRuns
	out.RBI = &c.RBI
	out.Walks = &c.Walks
	out.Strikeouts = &c.Strikeouts
	out.StolenBases = &c.StolenBases
	out.CaughtStealing = &c.CaughtStealing
	out.Rates = stat.Rates
	hpg := c.HitsPerGame()
	out.HitsPerGame = &hpg
	return out
}

// compareBySort orders a before b for the query. Missing values sort last in
// both directions.
func compareBySort(a, b playerstats.Summary, query playerstats.ListQuery) int {
	if query.Sort == playerstats.SortName {
		return directed(cmp.Compare(a.Name, b.Name), query.Direction)
	}

	av, aok := sortValue(a, query.Sort)
	bv, bok := sortValue(b, query.Sort)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return directed(cmp.Compare(av, bv), query.Direction)
}

func directed(c int, dir playerstats.Direction) int {
	if dir == playerstats.DirectionDesc {
		return -c
	}
	return c
}

func sortValue(s playerstats.Summary, field playerstats.SortField) (float64, bool) {
	switch field {
	case playerstats.SortGames:
		return intValue(s.Games)
	case playerstats.SortRuns:
		return intValue(s.Runs)
	case playerstats.SortHits:
		return intValue(s.Hits)
	case playerstats.SortHomeRuns:
		return intValue(s.HomeRuns)
	case playerstats.SortRBI:
		return intValue(s.RBI)
	case playerstats.SortBattingAverage:
		return floatValue(s.BattingAverage)
	case playerstats.SortHitsPerGame:
		return floatValue(s.HitsPerGame)
	default:
		return intValue(s.Hits)
	}
}

func intValue(v *int64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}

func floatValue(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func roundRates(r playerstats.Rates) playerstats.Rates {
	return playerstats.Rates{
		BattingAverage:     playerstats.RoundRate(r.BattingAverage),
		OnBasePercentage:   playerstats.RoundRate(r.OnBasePercentage),
		SluggingPercentage: playerstats.RoundRate(r.SluggingPercentage),
		OnBasePlusSlugging: playerstats.RoundRate(r.OnBasePlusSlugging),
	}
}
