package narrative

type intTier struct {
	min   int64
	label string
}

type rateTier struct {
	min   float64
	label string
}

// Thresholds are listed highest first; the first match wins.
var homeRunTiers = []intTier{
	{600, "legendary"},
	{500, "Hall of Fame-caliber"},
	{400, "premier"},
	{300, "standout"},
	{200, "solid"},
}

var hitsTiers = []intTier{
	{3000, "historic"},
	{2500, "exceptional"},
	{2000, "accomplished"},
}

var averageTiers = []rateTier{
	{0.320, "places them among the premier contact hitters in history"},
	{0.300, "reflects their elite ability to make contact"},
	{0.280, "demonstrates their solid hitting ability"},
}

var speedTiers = []intTier{
	{400, "one of the greatest base stealers in history"},
	{200, "a significant threat on the basepaths"},
	{100, "capable of stealing a base when needed"},
}

func classifyInt(v int64, tiers []intTier, fallback string) string {
	for _, t := range tiers {
		if v >= t.min {
			return t.label
		}
	}
	return fallback
}

func classifyRate(v float64, tiers []rateTier, fallback string) string {
	for _, t := range tiers {
		if v >= t.min {
			return t.label
		}
	}
	return fallback
}

// HomeRunTier labels career home run totals.
func HomeRunTier(homeRuns int64) string {
	return classifyInt(homeRuns, homeRunTiers, "capable")
}

// HitsTier labels career hit totals.
func HitsTier(hits int64) string {
	return classifyInt(hits, hitsTiers, "productive")
}

// AverageTier phrases a career batting average.
func AverageTier(avg float64) string {
	return classifyRate(avg, averageTiers, "shows their contribution to the lineup")
}

// SpeedProfile phrases career stolen bases.
func SpeedProfile(stolenBases int64) string {
	return classifyInt(stolenBases, speedTiers, "not primarily known for speed")
}

// PowerProfile combines home runs and slugging percentage.
func PowerProfile(homeRuns int64, slugging float64) string {
	switch {
	case homeRuns >= 500 && slugging >= 0.550:
		return "a transcendent power hitter who changed games with a single swing"
	case homeRuns >= 400:
		return "an elite slugger who consistently delivered extra-base power"
	case homeRuns >= 300:
		return "a dangerous power threat throughout their career"
	default:
		return "a well-rounded offensive player"
	}
}

// ContactProfile combines batting average with the strikeout rate per at-bat.
func ContactProfile(avg float64, strikeouts, atBats int64) string {
	rate := StrikeoutRate(strikeouts, atBats)
	switch {
	case avg >= 0.300 && rate < 0.15:
		return "an exceptional contact hitter who rarely struck out"
	case avg >= 0.300:
		return "a pure hitter with an exceptional eye at the plate"
	case avg >= 0.280:
		return "a reliable hitter who consistently put the ball in play"
	default:
		return "a productive offensive contributor"
	}
}

// DisciplineProfile combines walks and on-base percentage.
func DisciplineProfile(walks int64, obp float64) string {
	switch {
	case walks >= 1500 && obp >= 0.400:
		return "exceptional plate discipline and on-base ability"
	case walks >= 1000:
		return "strong plate discipline and patience"
	case obp >= 0.350:
		return "good on-base skills"
	default:
		return "offensive production"
	}
}

// StrikeoutRate is strikeouts per at-bat, or 0 without at-bats.
func StrikeoutRate(strikeouts, atBats int64) float64 {
	if atBats <= 0 {
		return 0
	}
	return float64(strikeouts) / float64(atBats)
}
