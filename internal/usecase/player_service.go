package usecase

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/baseball-stats/internal/domain/narrative"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

// UpdatePlayerInput is the editable state of a player. Every stat field is
// required; rates are bounded by their natural range.
type UpdatePlayerInput struct {
	Name               string   `json:"name" validate:"required,max=255"`
	Games              *int64   `json:"games" validate:"required,gte=0"`
	AtBat              *int64   `json:"at_bat" validate:"required,gte=0"`
	Runs               *int64   `json:"runs" validate:"required,gte=0"`
	Hits               *int64   `json:"hits" validate:"required,gte=0"`
	Doubles            *int64   `json:"doubles" validate:"required,gte=0"`
	Triples            *int64   `json:"triples" validate:"required,gte=0"`
	HomeRuns           *int64   `json:"home_runs" validate:"required,gte=0"`
	RBI                *int64   `json:"rbi" validate:"required,gte=0"`
	Walks              *int64   `json:"walks" validate:"required,gte=0"`
	Strikeouts         *int64   `json:"strikeouts" validate:"required,gte=0"`
	StolenBases        *int64   `json:"stolen_bases" validate:"required,gte=0"`
	CaughtStealing     *int64   `json:"caught_stealing" validate:"required,gte=0"`
	BattingAverage     *float64 `json:"batting_average" validate:"omitempty,gte=0,lte=1"`
	OnBasePercentage   *float64 `json:"on_base_percentage" validate:"omitempty,gte=0,lte=1"`
	SluggingPercentage *float64 `json:"slugging_percentage" validate:"omitempty,gte=0,lte=2"`
	OnBasePlusSlugging *float64 `json:"on_base_plus_slugging" validate:"omitempty,gte=0,lte=3"`
}

// DescriptionResult is a freshly generated description with its profile.
type DescriptionResult struct {
	PlayerID    int64
	Description string
	Profile     narrative.Profile
}

type PlayerService struct {
	store       Store
	validate    *validator.Validate
	defaultSort playerstats.SortField
	logger      *logging.Logger
	listFlight  resilience.SingleFlight[[]playerstats.Summary]
}

func NewPlayerService(store Store, defaultSort playerstats.SortField, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		store:       store,
		validate:    newValidator(),
		defaultSort: defaultSort,
		logger:      logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// List returns every player ordered by the requested field. Unknown fields
// fall back to the configured default. Concurrent identical listings share
// one query; callers must not modify the returned slice.
func (s *PlayerService) List(ctx context.Context, sort, direction string) ([]playerstats.Summary, playerstats.ListQuery, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List",
		attribute.String("listing.sort", sort),
		attribute.String("listing.direction", direction),
	)
	defer span.End()

	query := playerstats.NormalizeListQuery(sort, direction, s.defaultSort)
	key := string(query.Sort) + "|" + string(query.Direction)
	items, err, shared := s.listFlight.Do(key, func() ([]playerstats.Summary, error) {
		return s.store.Repositories().Statistics.ListSummaries(context.WithoutCancel(ctx), query)
	})
	if err != nil {
		return nil, query, fmt.Errorf("list player summaries: %w", err)
	}
	if shared {
		s.logger.DebugContext(ctx, "player listing shared with in-flight query", "sort", query.Sort, "direction", query.Direction)
	}
	return items, query, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (playerstats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get", playerIDAttr(playerID))
	defer span.End()

	if playerID <= 0 {
		return playerstats.Summary{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	summary, exists, err := s.store.Repositories().Statistics.GetSummary(ctx, playerID)
	if err != nil {
		return playerstats.Summary{}, fmt.Errorf("get player summary: %w", err)
	}
	if !exists {
		return playerstats.Summary{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return summary, nil
}

// GetEditForm returns the current editable state of a player. Stat fields are
// nil when the player has no statistics row.
func (s *PlayerService) GetEditForm(ctx context.Context, playerID int64) (UpdatePlayerInput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetEditForm", playerIDAttr(playerID))
	defer span.End()

	summary, err := s.Get(ctx, playerID)
	if err != nil {
		return UpdatePlayerInput{}, err
	}
	return UpdatePlayerInput{
		Name:               summary.Name,
		Games:              summary.Games,
		AtBat:              summary.AtBat,
		Runs:               summary.Runs,
		Hits:               summary.Hits,
		Doubles:            summary.Doubles,
		Triples:            summary.Triples,
		HomeRuns:           summary.HomeRuns,
		RBI:                summary.RBI,
		Walks:              summary.Walks,
		Strikeouts:         summary.Strikeouts,
		StolenBases:        summary.StolenBases,
		CaughtStealing:     summary.CaughtStealing,
		BattingAverage:     summary.BattingAverage,
		OnBasePercentage:   summary.OnBasePercentage,
		SluggingPercentage: summary.SluggingPercentage,
		OnBasePlusSlugging: summary.OnBasePlusSlugging,
	}, nil
}

// Update replaces the player name and, when a statistics row exists, every
// stat field. Nothing is written when validation fails.
func (s *PlayerService) Update(ctx context.Context, playerID int64, input UpdatePlayerInput) (playerstats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update", playerIDAttr(playerID))
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validateInput(ctx, input); err != nil {
		return playerstats.Summary{}, err
	}

	err := s.store.RunInTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, exists, err := repos.Players.GetByID(ctx, playerID); err != nil {
			return fmt.Errorf("get player: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
		}

		if other, taken, err := repos.Players.GetByName(ctx, input.Name); err != nil {
			return fmt.Errorf("get player by name: %w", err)
		} else if taken && other.ID != playerID {
			verr := &ValidationError{}
			verr.add("name", "unique", "is already taken")
			return verr
		}

		if err := repos.Players.UpdateName(ctx, playerID, input.Name); err != nil {
			return fmt.Errorf("update player name: %w", err)
		}

		current, exists, err := repos.Statistics.GetByPlayerID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player statistics: %w", err)
		}
		if !exists {
			return nil
		}

		next := input.statistic()
		next.ID = current.ID
		next.PlayerID = playerID
		next.PositionID = current.PositionID
		if _, err := repos.Statistics.UpsertByPlayerID(ctx, next); err != nil {
			return fmt.Errorf("update player statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return playerstats.Summary{}, err
	}

	return s.Get(ctx, playerID)
}

// GenerateDescription builds the narrative from stored statistics and saves it
// over any previous description.
func (s *PlayerService) GenerateDescription(ctx context.Context, playerID int64) (DescriptionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GenerateDescription", playerIDAttr(playerID))
	defer span.End()

	summary, err := s.Get(ctx, playerID)
	if err != nil {
		return DescriptionResult{}, err
	}
	if !summary.HasStatistics() {
		return DescriptionResult{}, fmt.Errorf("%w: statistics for player=%d", ErrNotFound, playerID)
	}

	subject := SubjectFromSummary(summary)
	text := narrative.Generate(subject)
	if err := s.store.Repositories().Players.UpdateDescription(ctx, playerID, text); err != nil {
		return DescriptionResult{}, fmt.Errorf("save player description: %w", err)
	}

	s.logger.InfoContext(ctx, "player description generated", "player_id", playerID)
	return DescriptionResult{
		PlayerID:    playerID,
		Description: text,
		Profile:     narrative.Classify(subject),
	}, nil
}

func (s *PlayerService) validateInput(ctx context.Context, input UpdatePlayerInput) error {
	err := s.validate.StructCtx(ctx, input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.add(fe.Field(), fe.Tag(), violationMessage(fe))
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func (in UpdatePlayerInput) statistic() playerstats.Statistic {
	return playerstats.Statistic{
		Counts: playerstats.Counts{
			Games:          deref(in.Games),
			AtBat:          deref(in.AtBat),
			Runs:           deref(in.Runs),
			Hits:           deref(in.Hits),
			Doubles:        deref(in.Doubles),
			Triples:        deref(in.Triples),
			HomeRuns:       deref(in.HomeRuns),
			RBI:            deref(in.RBI),
			Walks:          deref(in.Walks),
			Strikeouts:     deref(in.Strikeouts),
			StolenBases:    deref(in.StolenBases),
			CaughtStealing: deref(in.CaughtStealing),
		},
		Rates: playerstats.Rates{
			BattingAverage:     in.BattingAverage,
			OnBasePercentage:   in.OnBasePercentage,
			SluggingPercentage: in.SluggingPercentage,
			OnBasePlusSlugging: in.OnBasePlusSlugging,
		},
	}
}

// SubjectFromSummary reads a listing row as a narrative subject. Missing
// stats count as zero.
func SubjectFromSummary(summary playerstats.Summary) narrative.Subject {
	return narrative.Subject{
		Name:         summary.Name,
		PositionName: deref(summary.PositionName),
		Counts: playerstats.Counts{
			Games:          deref(summary.Games),
			AtBat:          deref(summary.AtBat),
			Runs:           deref(summary.Runs),
			Hits:           deref(summary.Hits),
			Doubles:        deref(summary.Doubles),
			Triples:        deref(summary.Triples),
			HomeRuns:       deref(summary.HomeRuns),
			RBI:            deref(summary.RBI),
			Walks:          deref(summary.Walks),
			Strikeouts:     deref(summary.Strikeouts),
			StolenBases:    deref(summary.StolenBases),
			CaughtStealing: deref(summary.CaughtStealing),
		},
		Rates: summary.Rates,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
