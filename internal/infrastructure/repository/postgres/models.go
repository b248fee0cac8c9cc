package postgres

import "database/sql"

type playerTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

type positionTableModel struct {
	ID           int64  `db:"id"`
	Abbreviation string `db:"abbreviation"`
	Name         string `db:"name"`
}

type positionInsertModel struct {
	Abbreviation string `db:"abbreviation"`
	Name         string `db:"name"`
}

type playerStatisticTableModel struct {
	ID                 int64           `db:"id"`
	PlayerID           int64           `db:"player_id"`
	PositionID         int64           `db:"position_id"`
	Games              int64           `db:"games"`
	AtBat              int64           `db:"at_bat"`
	Runs               int64           `db:"runs"`
	Hits               int64           `db:"hits"`
	Doubles            int64           `db:"doubles"`
	Triples            int64           `db:"triples"`
	HomeRuns           int64           `db:"home_runs"`
	RBI                int64           `db:"rbi"`
	Walks              int64           `db:"walks"`
	Strikeouts         int64           `db:"strikeouts"`
	StolenBases        int64           `db:"stolen_bases"`
	CaughtStealing     int64           `db:"caught_stealing"`
	BattingAverage     sql.NullFloat64 `db:"batting_average"`
	OnBasePercentage   sql.NullFloat64 `db:"on_base_percentage"`
	SluggingPercentage sql.NullFloat64 `db:"slugging_percentage"`
	OnBasePlusSlugging sql.NullFloat64 `db:"on_base_plus_slugging"`
}

type playerStatisticInsertModel struct {
	PlayerID           int64           `db:"player_id"`
	PositionID         int64           `db:"position_id"`
	Games              int64           `db:"games"`
	AtBat              int64           `db:"at_bat"`
	Runs               int64           `db:"runs"`
	Hits               int64           `db:"hits"`
	Doubles            int64           `db:"doubles"`
	Triples            int64           `db:"triples"`
	HomeRuns           int64           `db:"home_runs"`
	RBI                int64           `db:"rbi"`
	Walks              int64           `db:"walks"`
	Strikeouts         int64           `db:"strikeouts"`
	StolenBases        int64           `db:"stolen_bases"`
	CaughtStealing     int64           `db:"caught_stealing"`
	BattingAverage     sql.NullFloat64 `db:"batting_average"`
	OnBasePercentage   sql.NullFloat64 `db:"on_base_percentage"`
	SluggingPercentage sql.NullFloat64 `db:"slugging_percentage"`
	OnBasePlusSlugging sql.NullFloat64 `db:"on_base_plus_slugging"`
}

// playerSummaryRow is one row of the players LEFT JOIN statistics LEFT JOIN
// positions projection. Stat columns are NULL without a statistics row.
type playerSummaryRow struct {
	PlayerID           int64           `db:"player_id"`
	Name               string          `db:"name"`
	Description        sql.NullString  `db:"description"`
	Position           sql.NullString  `db:"position"`
	PositionName       sql.NullString  `db:"position_name"`
	Games              sql.NullInt64   `db:"games"`
	AtBat              sql.NullInt64   `db:"at_bat"`
	Runs               sql.NullInt64   `db:"runs"`
	Hits               sql.NullInt64   `db:"hits"`
	Doubles            sql.NullInt64   `db:"doubles"`
	Triples            sql.NullInt64   `db:"triples"`
	HomeRuns           sql.NullInt64   `db:"home_runs"`
	RBI                sql.NullInt64   `db:"rbi"`
	Walks              sql.NullInt64   `db:"walks"`
	Strikeouts         sql.NullInt64   `db:"strikeouts"`
	StolenBases        sql.NullInt64   `db:"stolen_bases"`
	CaughtStealing     sql.NullInt64   `db:"caught_stealing"`
	BattingAverage     sql.NullFloat64 `db:"batting_average"`
	OnBasePercentage   sql.NullFloat64 `db:"on_base_percentage"`
	SluggingPercentage sql.NullFloat64 `db:"slugging_percentage"`
	OnBasePlusSlugging sql.NullFloat64 `db:"on_base_plus_slugging"`
	HitsPerGame        sql.NullFloat64 `db:"hits_per_game"`
}
