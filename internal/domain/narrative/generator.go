// Package narrative turns a player's career statistics into a fixed
// three-paragraph description. Output depends only on the input numbers.
package narrative

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/valyala/bytebufferpool"
)

const fallbackPositionName = "position player"

// Subject is the stat snapshot a description is generated from.
type Subject struct {
	Name         string
	PositionName string
	playerstats.Counts
	playerstats.Rates
}

// Profile is the set of qualitative labels derived from a subject.
type Profile struct {
	HomeRunTier       string `json:"home_run_tier"`
	HitsTier          string `json:"hits_tier"`
	AverageTier       string `json:"average_tier"`
	PowerProfile      string `json:"power_profile"`
	ContactProfile    string `json:"contact_profile"`
	SpeedProfile      string `json:"speed_profile"`
	DisciplineProfile string `json:"discipline_profile"`
}

// Classify evaluates every tier classifier for the subject. Unknown rates
// classify as zero.
func Classify(s Subject) Profile {
	avg := rateOrZero(s.BattingAverage)
	return Profile{
		HomeRunTier:       HomeRunTier(s.HomeRuns),
		HitsTier:          HitsTier(s.Hits),
		AverageTier:       AverageTier(avg),
		PowerProfile:      PowerProfile(s.HomeRuns, rateOrZero(s.SluggingPercentage)),
		ContactProfile:    ContactProfile(avg, s.Strikeouts, s.AtBat),
		SpeedProfile:      SpeedProfile(s.StolenBases),
		DisciplineProfile: DisciplineProfile(s.Walks, rateOrZero(s.OnBasePercentage)),
	}
}

// Generate renders the description for the subject. Paragraphs are separated
// by a blank line.
func Generate(s Subject) string {
	profile := Classify(s)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeCareerParagraph(buf, s, profile)
	_, _ = buf.WriteString("\n\n")
	writePlateParagraph(buf, s, profile)
	_, _ = buf.WriteString("\n\n")
	writeLegacyParagraph(buf, s, profile)

	return buf.String()
}

func writeCareerParagraph(buf *bytebufferpool.ByteBuffer, s Subject, p Profile) {
	name := s.Name
	positionName := s.PositionName
	if strings.TrimSpace(positionName) == "" {
		positionName = fallbackPositionName
	}
	homeRuns := itoa(s.HomeRuns)

	writeAll(buf, name, " established themselves as ", Article(p.HomeRunTier), " ", p.HomeRunTier, " ",
		positionName, " over a career spanning ", itoa(s.Games), " games. ")

	switch {
	case s.HomeRuns >= 500:
		writeAll(buf, "With ", homeRuns, " career home runs, ", name, " ranks among the most prolific power hitters in baseball history. ")
	case s.HomeRuns >= 300:
		writeAll(buf, "Accumulating ", homeRuns, " home runs over their career, ", name, " demonstrated elite power at the plate. ")
	default:
		writeAll(buf, "Recording ", homeRuns, " home runs throughout their career, ", name, " contributed consistent offensive production. ")
	}

	writeAll(buf, "They drove in ", itoa(s.RBI), " runs while scoring ", itoa(s.Runs),
		" times, showcasing their ability to produce in crucial situations.")
}

func writePlateParagraph(buf *bytebufferpool.ByteBuffer, s Subject, p Profile) {
	name := s.Name
	ops := rateOrZero(s.OnBasePlusSlugging)

	writeAll(buf, "At the plate, ", name, " was ", p.ContactProfile, ". ")
	writeAll(buf, "Their career batting average of ", FormatRate(rateOrZero(s.BattingAverage)), " ", p.AverageTier, ". ")

	if ops >= 0.900 {
		writeAll(buf, "With an OPS of ", FormatRate(ops), ", they ranked among the elite offensive forces of their era. ")
	} else {
		writeAll(buf, "They posted an OPS of ", FormatRate(ops), ", reflecting their overall offensive contribution. ")
	}

	switch {
	case s.StolenBases >= 200:
		writeAll(buf, "Adding ", itoa(s.StolenBases), " stolen bases to their résumé, ", name, " brought a dynamic element to the basepaths.")
	case s.Walks >= 1000:
		writeAll(buf, "Drawing ", itoa(s.Walks), " career walks demonstrated their excellent plate discipline and ability to work counts.")
	default:
		writeAll(buf, "Their ", itoa(s.Hits), " career hits stand as a testament to their consistency and longevity in the game.")
	}
}

func writeLegacyParagraph(buf *bytebufferpool.ByteBuffer, s Subject, p Profile) {
	writeAll(buf, s.Name, "'s career statistics paint the picture of ", p.PowerProfile, ". ")

	switch {
	case s.Hits >= 3000:
		writeAll(buf, "Joining the exclusive 3,000-hit club, they cemented their place among baseball's all-time greats. ")
	case s.Hits >= 2500:
		writeAll(buf, "With over 2,500 hits, they established themselves as one of the more productive hitters of their generation. ")
	}

	switch {
	case s.HomeRuns >= 600:
		writeAll(buf, "Their membership in the 600 home run club ensures their legacy as one of the greatest power hitters to ever play the game.")
	case s.HomeRuns >= 500:
		writeAll(buf, "Reaching the 500 home run milestone places them in rarified air among baseball's power elite.")
	default:
		writeAll(buf, "Their combination of ", p.DisciplineProfile, " made them a valuable contributor throughout their career.")
	}
}

// Article picks "an" when the label starts with a vowel and "a" otherwise.
func Article(label string) string {
	if label == "" {
		return "a"
	}
	switch strings.ToLower(label[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	default:
		return "a"
	}
}

// FormatRate renders a rate with exactly three decimal places.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func writeAll(buf *bytebufferpool.ByteBuffer, parts ...string) {
	for _, part := range parts {
		_, _ = buf.WriteString(part)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func rateOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
