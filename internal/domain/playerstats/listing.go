package playerstats

import "strings"

// SortField names a column the player listing can be ordered by.
type SortField string

const (
	SortName           SortField = "name"
	SortGames          SortField = "games"
	SortRuns           SortField = "runs"
	SortHits           SortField = "hits"
	SortHomeRuns       SortField = "home_runs"
	SortRBI            SortField = "rbi"
	SortBattingAverage SortField = "batting_average"
	SortHitsPerGame    SortField = "hits_per_game"
)

// DefaultSortField is used when a requested field is not allowed.
const DefaultSortField = SortHits

var allowedSortFields = map[SortField]struct{}{
	SortName:           {},
	SortGames:          {},
	SortRuns:           {},
	SortHits:           {},
	SortHomeRuns:       {},
	SortRBI:            {},
	SortBattingAverage: {},
	SortHitsPerGame:    {},
}

// IsAllowedSortField reports whether the listing accepts the field.
func IsAllowedSortField(v string) bool {
	_, ok := allowedSortFields[SortField(v)]
	return ok
}

// Direction is a normalized sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ListQuery is a validated listing request.
type ListQuery struct {
	Sort      SortField
	Direction Direction
}

// NormalizeListQuery validates a raw sort request. Unknown fields fall back to
// fallback (or DefaultSortField when fallback itself is not allowed) and any
// direction other than a case-insensitive "asc" becomes descending.
func NormalizeListQuery(sort, direction string, fallback SortField) ListQuery {
	if !IsAllowedSortField(string(fallback)) {
		fallback = DefaultSortField
	}

	field := SortField(sort)
	if !IsAllowedSortField(sort) {
		field = fallback
	}

	dir := DirectionDesc
	if strings.EqualFold(direction, string(DirectionAsc)) {
		dir = DirectionAsc
	}

	return ListQuery{Sort: field, Direction: dir}
}

// Summary is the flattened listing row: a player with its statistics row and
// position, where every stat is nil when no statistics exist yet.
type Summary struct {
	PlayerID       int64
	Name           string
	Description    *string
	Position       *string
	PositionName   *string
	Games          *int64
	AtBat          *int64
	Runs           *int64
	Hits           *int64
	Doubles        *int64
	Triples        *int64
	HomeRuns       *int64
	RBI            *int64
	Walks          *int64
	Strikeouts     *int64
	StolenBases    *int64
	CaughtStealing *int64
	Rates
	HitsPerGame *float64
}

// HasStatistics reports whether a statistics row backs the summary.
func (s Summary) HasStatistics() bool {
	return s.Games != nil
}
