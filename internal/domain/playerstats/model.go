package playerstats

import "fmt"

// Counts holds the counting stats of a player. Values are never negative.
type Counts struct {
	Games          int64
	AtBat          int64
	Runs           int64
	Hits           int64
	Doubles        int64
	Triples        int64
	HomeRuns       int64
	RBI            int64
	Walks          int64
	Strikeouts     int64
	StolenBases    int64
	CaughtStealing int64
}

// Rates holds the rate stats of a player. A nil value means the rate is
// unknown, which is distinct from a recorded zero.
type Rates struct {
	BattingAverage     *float64
	OnBasePercentage   *float64
	SluggingPercentage *float64
	OnBasePlusSlugging *float64
}

// Statistic is the single statistics row attached to a player.
type Statistic struct {
	ID         int64
	PlayerID   int64
	PositionID int64
	Counts
	Rates
}

// Rate bounds accepted on edit.
const (
	MaxBattingAverage     = 1.0
	MaxOnBasePercentage   = 1.0
	MaxSluggingPercentage = 2.0
	MaxOnBasePlusSlugging = 3.0
)

func (c Counts) Validate() error {
	fields := []struct {
		name  string
		value int64
	}{
		{"games", c.Games},
		{"at_bat", c.AtBat},
		{"runs", c.Runs},
		{"hits", c.Hits},
		{"doubles", c.Doubles},
		{"triples", c.Triples},
		{"home_runs", c.HomeRuns},
		{"rbi", c.RBI},
		{"walks", c.Walks},
		{"strikeouts", c.Strikeouts},
		{"stolen_bases", c.StolenBases},
		{"caught_stealing", c.CaughtStealing},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

func (s Statistic) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("statistic player id is required")
	}
	if s.PositionID <= 0 {
		return fmt.Errorf("statistic position id is required")
	}
	return s.Counts.Validate()
}

// HitsPerGame is the derived listing metric. Zero games yields zero.
func (c Counts) HitsPerGame() float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Games)
}

// RoundRate rounds a rate to the three decimal places kept in storage.
func RoundRate(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := roundTo3(*v)
	return &out
}
