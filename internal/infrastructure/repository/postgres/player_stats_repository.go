package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	qb "github.com/riskibarqy/baseball-stats/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db sqlx.ExtContext
}

var statisticSelectColumns = qb.ModelColumns(playerStatisticTableModel{}, "")

const summaryFrom = `players p
LEFT JOIN player_statistics s ON s.player_id = p.id
LEFT JOIN positions pos ON pos.id = s.position_id`

var summarySelectColumns = []string{
	"p.id AS player_id",
	"p.name",
	"p.description",
	"pos.abbreviation AS position",
	"pos.name AS position_name",
	"s.games",
	"s.at_bat",
	"s.runs",
	"s.hits",
	"s.doubles",
	"s.triples",
	"s.home_runs",
	"s.rbi",
	"s.walks",
	"s.strikeouts",
	"s.stolen_bases",
	"s.caught_stealing",
	"s.batting_average",
	"s.on_base_percentage",
	"s.slugging_percentage",
	"s.on_base_plus_slugging",
	"CASE WHEN s.id IS NULL THEN NULL WHEN s.games = 0 THEN 0 ELSE s.hits * 1.0 / s.games END AS hits_per_game",
}

// sortColumns maps allowed sort fields to ORDER BY expressions. Only these
// expressions ever reach the query text.
var sortColumns = map[playerstats.SortField]string{
	playerstats.SortName:           "p.name",
	playerstats.SortGames:          "s.games",
	playerstats.SortRuns:           "s.runs",
	playerstats.SortHits:           "s.hits",
	playerstats.SortHomeRuns:       "s.home_runs",
	playerstats.SortRBI:            "s.rbi",
	playerstats.SortBattingAverage: "s.batting_average",
	playerstats.SortHitsPerGame:    "hits_per_game",
}

func NewPlayerStatsRepository(db sqlx.ExtContext) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) GetByPlayerID(ctx context.Context, playerID int64) (playerstats.Statistic, bool, error) {
	query, args, err := qb.Select(statisticSelectColumns...).From("player_statistics").
		Where(qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return playerstats.Statistic{}, false, fmt.Errorf("build select player statistics query: %w", err)
	}

	var row playerStatisticTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.Statistic{}, false, nil
		}
		return playerstats.Statistic{}, false, fmt.Errorf("select player statistics: %w", err)
	}

	return mapStatisticRow(row), true, nil
}

func (r *PlayerStatsRepository) UpsertByPlayerID(ctx context.Context, stat playerstats.Statistic) (playerstats.Statistic, error) {
	if err := stat.Validate(); err != nil {
		return playerstats.Statistic{}, err
	}

	insertModel := playerStatisticInsertModel{
		PlayerID:           stat.PlayerID,
		PositionID:         stat.PositionID,
		Games:              stat.Games,
		AtBat:              stat.AtBat,
		Runs:               stat.Runs,
		Hits:               stat.Hits,
		Doubles:            stat.Doubles,
		Triples:            stat.Triples,
		HomeRuns:           stat.HomeRuns,
		RBI:                stat.RBI,
		Walks:              stat.Walks,
		Strikeouts:         stat.Strikeouts,
		StolenBases:        stat.StolenBases,
		CaughtStealing:     stat.CaughtStealing,
		BattingAverage:     toNullFloat64(playerstats.RoundRate(stat.BattingAverage)),
		OnBasePercentage:   toNullFloat64(playerstats.RoundRate(stat.OnBasePercentage)),
		SluggingPercentage: toNullFloat64(playerstats.RoundRate(stat.SluggingPercentage)),
		OnBasePlusSlugging: toNullFloat64(playerstats.RoundRate(stat.OnBasePlusSlugging)),
	}

	query, args, err := qb.InsertModel("player_statistics", insertModel).
		OnConflictUpdate([]string{"player_id"}, "updated_at").
		Returning("id").
		ToSQL()
	if err != nil {
		return playerstats.Statistic{}, fmt.Errorf("build upsert player statistics query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.db, &id, query, args...); err != nil {
		return playerstats.Statistic{}, fmt.Errorf("upsert player statistics player=%d: %w", stat.PlayerID, err)
	}

	stat.ID = id
	stat.Rates = playerstats.Rates{
		BattingAverage:     nullFloat64(insertModel.BattingAverage),
		OnBasePercentage:   nullFloat64(insertModel.OnBasePercentage),
		SluggingPercentage: nullFloat64(insertModel.SluggingPercentage),
		OnBasePlusSlugging: nullFloat64(insertModel.OnBasePlusSlugging),
	}
	return stat, nil
}

func (r *PlayerStatsRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("player_statistics").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player statistics query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player statistics: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) ListSummaries(ctx context.Context, listQuery playerstats.ListQuery) ([]playerstats.Summary, error) {
	column, ok := sortColumns[listQuery.Sort]
	if !ok {
		column = sortColumns[playerstats.DefaultSortField]
	}
	direction := "DESC"
	if listQuery.Direction == playerstats.DirectionAsc {
		direction = "ASC"
	}

	query, args, err := qb.Select(summarySelectColumns...).From(summaryFrom).
		OrderBy(column+" "+direction+" NULLS LAST", "p.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player summaries query: %w", err)
	}

	var rows []playerSummaryRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player summaries: %w", err)
	}

	out := make([]playerstats.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapSummaryRow(row))
	}
	return out, nil
}

func (r *PlayerStatsRepository) GetSummary(ctx context.Context, playerID int64) (playerstats.Summary, bool, error) {
	query, args, err := qb.Select(summarySelectColumns...).From(summaryFrom).
		Where(qb.Eq("p.id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return playerstats.Summary{}, false, fmt.Errorf("build get player summary query: %w", err)
	}

	var row playerSummaryRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.Summary{}, false, nil
		}
		return playerstats.Summary{}, false, fmt.Errorf("get player summary: %w", err)
	}

	return mapSummaryRow(row), true, nil
}

func mapStatisticRow(row playerStatisticTableModel) playerstats.Statistic {
	return playerstats.Statistic{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		PositionID: row.PositionID,
		Counts: playerstats.Counts{
			Games:          row.Games,
			AtBat:          row.AtBat,
			Runs:           row.Runs,
			Hits:           row.Hits,
			Doubles:        row.Doubles,
			Triples:        row.Triples,
			HomeRuns:       row.HomeRuns,
			RBI:            row.RBI,
			Walks:          row.Walks,
			Strikeouts:     row.Strikeouts,
			StolenBases:    row.StolenBases,
			CaughtStealing: row.CaughtStealing,
		},
		Rates: playerstats.Rates{
			BattingAverage:     nullFloat64(row.BattingAverage),
			OnBasePercentage:   nullFloat64(row.OnBasePercentage),
			SluggingPercentage: nullFloat64(row.SluggingPercentage),
			OnBasePlusSlugging: nullFloat64(row.OnBasePlusSlugging),
		},
	}
}

func mapSummaryRow(row playerSummaryRow) playerstats.Summary {
	return playerstats.Summary{
		PlayerID:       row.PlayerID,
		Name:           row.Name,
		Description:    nullString(row.Description),
		Position:       nullString(row.Position),
		PositionName:   nullString(row.PositionName),
		Games:          nullInt64(row.Games),
		AtBat:          nullInt64(row.AtBat),
		Runs:           nullInt64(row.Runs),
		Hits:           nullInt64(row.Hits),
		Doubles:        nullInt64(row.Doubles),
		Triples:        nullInt64(row.Triples),
		HomeRuns:       nullInt64(row.HomeRuns),
		RBI:            nullInt64(row.RBI),
		Walks:          nullInt64(row.Walks),
		Strikeouts:     nullInt64(row.Strikeouts),
		StolenBases:    nullInt64(row.StolenBases),
		CaughtStealing: nullInt64(row.CaughtStealing),
		Rates: playerstats.Rates{
			BattingAverage:     nullFloat64(row.BattingAverage),
			OnBasePercentage:   nullFloat64(row.OnBasePercentage),
			SluggingPercentage: nullFloat64(row.SluggingPercentage),
			OnBasePlusSlugging: nullFloat64(row.OnBasePlusSlugging),
		},
		HitsPerGame: nullFloat64(row.HitsPerGame),
	}
}
