package narrative

import (
	"strings"
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *float64 { return &v }

func TestHomeRunTierBoundaries(t *testing.T) {
	tests := []struct {
		homeRuns int64
		want     string
	}{
		{600, "legendary"},
		{599, "Hall of Fame-caliber"},
		{500, "Hall of Fame-caliber"},
		{499, "premier"},
		{400, "premier"},
		{300, "standout"},
		{200, "solid"},
		{199, "capable"},
		{0, "capable"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HomeRunTier(tc.homeRuns), "home runs %d", tc.homeRuns)
	}
}

func TestHitsAndSpeedTiers(t *testing.T) {
	assert.Equal(t, "historic", HitsTier(3000))
	assert.Equal(t, "exceptional", HitsTier(2999))
	assert.Equal(t, "accomplished", HitsTier(2000))
	assert.Equal(t, "productive", HitsTier(1999))

	assert.Equal(t, "one of the greatest base stealers in history", SpeedProfile(400))
	assert.Equal(t, "a significant threat on the basepaths", SpeedProfile(200))
	assert.Equal(t, "capable of stealing a base when needed", SpeedProfile(100))
	assert.Equal(t, "not primarily known for speed", SpeedProfile(99))
}

func TestAverageTier(t *testing.T) {
	assert.Equal(t, "places them among the premier contact hitters in history", AverageTier(0.320))
	assert.Equal(t, "reflects their elite ability to make contact", AverageTier(0.300))
	assert.Equal(t, "demonstrates their solid hitting ability", AverageTier(0.280))
	assert.Equal(t, "shows their contribution to the lineup", AverageTier(0.279))
}

func TestPowerProfileNeedsSluggingForTopTier(t *testing.T) {
	assert.Equal(t, "a transcendent power hitter who changed games with a single swing", PowerProfile(500, 0.550))
	assert.Equal(t, "an elite slugger who consistently delivered extra-base power", PowerProfile(500, 0.549))
	assert.Equal(t, "a dangerous power threat throughout their career", PowerProfile(300, 0.700))
	assert.Equal(t, "a well-rounded offensive player", PowerProfile(299, 0.700))
}

func TestContactProfile(t *testing.T) {
	assert.Equal(t, "an exceptional contact hitter who rarely struck out", ContactProfile(0.310, 80, 600))
	assert.Equal(t, "a pure hitter with an exceptional eye at the plate", ContactProfile(0.310, 90, 600))
	assert.Equal(t, "an exceptional contact hitter who rarely struck out", ContactProfile(0.300, 500, 0))
	assert.Equal(t, "a reliable hitter who consistently put the ball in play", ContactProfile(0.285, 0, 600))
	assert.Equal(t, "a productive offensive contributor", ContactProfile(0.250, 0, 600))
}

func TestDisciplineProfile(t *testing.T) {
	assert.Equal(t, "exceptional plate discipline and on-base ability", DisciplineProfile(1500, 0.400))
	assert.Equal(t, "strong plate discipline and patience", DisciplineProfile(1500, 0.399))
	assert.Equal(t, "good on-base skills", DisciplineProfile(999, 0.350))
	assert.Equal(t, "offensive production", DisciplineProfile(999, 0.349))
}

func TestStrikeoutRateWithoutAtBats(t *testing.T) {
	assert.Zero(t, StrikeoutRate(120, 0))
	assert.InDelta(t, 0.1333, StrikeoutRate(80, 600), 0.0001)
}

func TestArticle(t *testing.T) {
	assert.Equal(t, "an", Article("elite"))
	assert.Equal(t, "an", Article("Everyday"))
	assert.Equal(t, "a", Article("legendary"))
	assert.Equal(t, "a", Article("Hall of Fame-caliber"))
	assert.Equal(t, "a", Article(""))
}

func TestClassifySlugger(t *testing.T) {
	subject := Subject{
		Name: "Big Bat",
		Counts: playerstats.Counts{
			HomeRuns:   610,
			Strikeouts: 80,
			AtBat:      600,
		},
		Rates: playerstats.Rates{
			BattingAverage:     rate(0.310),
			SluggingPercentage: rate(0.620),
		},
	}

	profile := Classify(subject)
	assert.Equal(t, "legendary", profile.HomeRunTier)
	assert.Equal(t, "a transcendent power hitter who changed games with a single swing", profile.PowerProfile)
	assert.Equal(t, "an exceptional contact hitter who rarely struck out", profile.ContactProfile)
	assert.Equal(t, "reflects their elite ability to make contact", profile.AverageTier)
}

func TestGenerateFullText(t *testing.T) {
	subject := Subject{
		Name:         "Test Player",
		PositionName: "Left Field",
		Counts: playerstats.Counts{
			Games:       2000,
			AtBat:       7000,
			Runs:        1000,
			Hits:        2100,
			HomeRuns:    250,
			RBI:         900,
			Walks:       600,
			Strikeouts:  900,
			StolenBases: 50,
		},
		Rates: playerstats.Rates{
			BattingAverage:     rate(0.285),
			OnBasePercentage:   rate(0.360),
			SluggingPercentage: rate(0.480),
			OnBasePlusSlugging: rate(0.850),
		},
	}

	want := "Test Player established themselves as a solid Left Field over a career spanning 2000 games. " +
		"Recording 250 home runs throughout their career, Test Player contributed consistent offensive production. " +
		"They drove in 900 runs while scoring 1000 times, showcasing their ability to produce in crucial situations." +
		"\n\n" +
		"At the plate, Test Player was a reliable hitter who consistently put the ball in play. " +
		"Their career batting average of 0.285 demonstrates their solid hitting ability. " +
		"They posted an OPS of 0.850, reflecting their overall offensive contribution. " +
		"Their 2100 career hits stand as a testament to their consistency and longevity in the game." +
		"\n\n" +
		"Test Player's career statistics paint the picture of a well-rounded offensive player. " +
		"Their combination of good on-base skills made them a valuable contributor throughout their career."

	assert.Equal(t, want, Generate(subject))
}

func TestGenerateMilestones(t *testing.T) {
	subject := Subject{
		Name:         "Hank",
		PositionName: "Right Field",
		Counts: playerstats.Counts{
			Games:       3298,
			Hits:        3771,
			HomeRuns:    755,
			StolenBases: 240,
			Walks:       1402,
		},
		Rates: playerstats.Rates{OnBasePlusSlugging: rate(0.928)},
	}

	text := Generate(subject)
	paragraphs := strings.Split(text, "\n\n")
	require.Len(t, paragraphs, 3)

	assert.Contains(t, paragraphs[0], "as a legendary Right Field")
	assert.Contains(t, paragraphs[0], "With 755 career home runs, Hank ranks among the most prolific power hitters")
	assert.Contains(t, paragraphs[1], "With an OPS of 0.928, they ranked among the elite offensive forces")
	assert.Contains(t, paragraphs[1], "Adding 240 stolen bases to their résumé")
	assert.Contains(t, paragraphs[2], "Joining the exclusive 3,000-hit club")
	assert.Contains(t, paragraphs[2], "600 home run club")
}

func TestGenerateFallsBackWithoutPositionOrRates(t *testing.T) {
	text := Generate(Subject{Name: "Rookie", Counts: playerstats.Counts{Walks: 1000}})

	assert.Contains(t, text, "as a capable position player over a career spanning 0 games.")
	assert.Contains(t, text, "Their career batting average of 0.000 shows their contribution to the lineup.")
	assert.Contains(t, text, "Drawing 1000 career walks demonstrated")
	assert.Contains(t, text, "Their combination of strong plate discipline and patience made them")
}

func TestGenerateIsDeterministic(t *testing.T) {
	subject := Subject{Name: "Same", Counts: playerstats.Counts{HomeRuns: 420, Hits: 2600}}
	assert.Equal(t, Generate(subject), Generate(subject))
	assert.Contains(t, Generate(subject), "With over 2,500 hits")
	assert.Contains(t, Generate(subject), "Accumulating 420 home runs")
}
