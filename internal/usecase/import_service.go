package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// Source field names as published upstream. Several labels do not match the
// stat they carry and are mapped as-is.
const (
	FieldPlayerName         = "Player name"
	FieldPosition           = "position"
	FieldGames              = "Games"
	FieldAtBat              = "At-bat"
	FieldRuns               = "Runs"
	FieldHits               = "Hits"
	FieldDoubles            = "Double (2B)"
	FieldTriples            = "third baseman"
	FieldHomeRuns           = "home run"
	FieldRBI                = "run batted in"
	FieldWalks              = "a walk"
	FieldStrikeouts         = "Strikeouts"
	FieldStolenBases        = "stolen base"
	FieldCaughtStealing     = "Caught stealing"
	FieldBattingAverage     = "AVG"
	FieldOnBasePercentage   = "On-base Percentage"
	FieldSluggingPercentage = "Slugging Percentage"
	FieldOnBasePlusSlugging = "On-base Plus Slugging"
)

// RawRecord is one flat upstream player record keyed by source field name.
type RawRecord map[string]any

// RecordSource fetches the full upstream batch.
type RecordSource interface {
	FetchPlayers(ctx context.Context) ([]RawRecord, error)
}

type ImportOptions struct {
	// Fresh clears statistics, players and positions before importing.
	Fresh bool
	// OnProgress is called after each record with the processed and total counts.
	OnProgress func(processed, total int)
}

type ImportResult struct {
	ImportedCount int
}

type ImportService struct {
	store  Store
	source RecordSource
	logger *logging.Logger
}

func NewImportService(store Store, source RecordSource, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		store:  store,
		source: source,
		logger: logger,
	}
}

// Import fetches the upstream batch and stores it in a single transaction.
// Nothing is written when the fetch fails or returns no records.
func (s *ImportService) Import(ctx context.Context, opts ImportOptions) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import", attribute.Bool("import.fresh", opts.Fresh))
	defer span.End()

	records, err := s.source.FetchPlayers(ctx)
	if err != nil {
		return ImportResult{}, crerr.WithHint(
			crerr.Mark(crerr.Wrap(err, "fetch players"), ErrUpstreamFetch),
			"check SOURCE_URL and that the upstream API is reachable",
		)
	}
	if len(records) == 0 {
		return ImportResult{}, crerr.WithHint(ErrEmptyPayload, "the upstream API returned an empty list; nothing was changed")
	}

	return s.ImportRecords(ctx, records, opts)
}

// ImportRecords stores an already fetched batch in a single transaction.
func (s *ImportService) ImportRecords(ctx context.Context, records []RawRecord, opts ImportOptions) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportRecords",
		attribute.Bool("import.fresh", opts.Fresh),
		attribute.Int("import.records", len(records)),
	)
	defer span.End()

	if len(records) == 0 {
		return ImportResult{}, ErrEmptyPayload
	}

	total := len(records)
	imported := 0
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos Repositories) error {
		if opts.Fresh {
			if err := clearAll(ctx, repos); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "cleared existing player data before import")
		}

		for idx, record := range records {
			if err := importRecord(ctx, repos, record); err != nil {
				return crerr.Wrapf(err, "record %d", idx)
			}
			imported++
			if opts.OnProgress != nil {
				opts.OnProgress(imported, total)
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, crerr.WithHint(
			crerr.Mark(err, ErrImportTransaction),
			"all changes from this run were rolled back",
		)
	}

	s.logger.InfoContext(ctx, "player import completed", "imported", imported, "fresh", opts.Fresh)
	return ImportResult{ImportedCount: imported}, nil
}

// clearAll deletes children before parents.
func clearAll(ctx context.Context, repos Repositories) error {
	if err := repos.Statistics.DeleteAll(ctx); err != nil {
		return crerr.Wrap(err, "delete player statistics")
	}
	if err := repos.Players.DeleteAll(ctx); err != nil {
		return crerr.Wrap(err, "delete players")
	}
	if err := repos.Positions.DeleteAll(ctx); err != nil {
		return crerr.Wrap(err, "delete positions")
	}
	return nil
}

func importRecord(ctx context.Context, repos Repositories, record RawRecord) error {
	pos, err := repos.Positions.FirstOrCreate(ctx, position.New(record.str(FieldPosition)))
	if err != nil {
		return crerr.Wrap(err, "upsert position")
	}

	name := record.str(FieldPlayerName)
	if name == "" {
		return crerr.Newf("%q is required", FieldPlayerName)
	}
	p, err := repos.Players.UpsertByName(ctx, name)
	if err != nil {
		return crerr.Wrapf(err, "upsert player %q", name)
	}

	stat := MapStatistic(record)
	stat.PlayerID = p.ID
	stat.PositionID = pos.ID
	if _, err := repos.Statistics.UpsertByPlayerID(ctx, stat); err != nil {
		return crerr.Wrapf(err, "upsert statistics for %q", name)
	}
	return nil
}

// MapStatistic converts the stat fields of a record. Counts default to 0 and
// rates to nil when missing or not numeric.
func MapStatistic(record RawRecord) playerstats.Statistic {
	return playerstats.Statistic{
		Counts: playerstats.Counts{
			Games:          playerstats.CoerceCount(record[FieldGames]),
			AtBat:          playerstats.CoerceCount(record[FieldAtBat]),
			Runs:           playerstats.CoerceCount(record[FieldRuns]),
			Hits:           playerstats.CoerceCount(record[FieldHits]),
			Doubles:        playerstats.CoerceCount(record[FieldDoubles]),
			Triples:        playerstats.CoerceCount(record[FieldTriples]),
			HomeRuns:       playerstats.CoerceCount(record[FieldHomeRuns]),
			RBI:            playerstats.CoerceCount(record[FieldRBI]),
			Walks:          playerstats.CoerceCount(record[FieldWalks]),
			Strikeouts:     playerstats.CoerceCount(record[FieldStrikeouts]),
			StolenBases:    playerstats.CoerceCount(record[FieldStolenBases]),
			CaughtStealing: playerstats.CoerceCount(record[FieldCaughtStealing]),
		},
		Rates: playerstats.Rates{
			BattingAverage:     playerstats.CoerceRate(record[FieldBattingAverage]),
			OnBasePercentage:   playerstats.CoerceRate(record[FieldOnBasePercentage]),
			SluggingPercentage: playerstats.CoerceRate(record[FieldSluggingPercentage]),
			OnBasePlusSlugging: playerstats.CoerceRate(record[FieldOnBasePlusSlugging]),
		},
	}
}

func (r RawRecord) str(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
