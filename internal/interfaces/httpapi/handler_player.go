package httpapi

import (
	"net/http"

	"github.com/riskibarqy/baseball-stats/internal/domain/narrative"
	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

type playerSummaryDTO struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Position           *string  `json:"position"`
	PositionName       *string  `json:"position_name"`
	Games              *int64   `json:"games"`
	AtBat              *int64   `json:"at_bat"`
	Runs               *int64   `json:"runs"`
	Hits               *int64   `json:"hits"`
	Doubles            *int64   `json:"doubles"`
	Triples            *int64   `json:"triples"`
	HomeRuns           *int64   `json:"home_runs"`
	RBI                *int64   `json:"rbi"`
	Walks              *int64   `json:"walks"`
	Strikeouts         *int64   `json:"strikeouts"`
	StolenBases        *int64   `json:"stolen_bases"`
	CaughtStealing     *int64   `json:"caught_stealing"`
	BattingAverage     *float64 `json:"batting_average"`
	OnBasePercentage   *float64 `json:"on_base_percentage"`
	SluggingPercentage *float64 `json:"slugging_percentage"`
	OnBasePlusSlugging *float64 `json:"on_base_plus_slugging"`
	HitsPerGame        *float64 `json:"hits_per_game"`
}

type playerDetailDTO struct {
	playerSummaryDTO
	Description *string `json:"description"`
}

type playerListDTO struct {
	Items     []playerSummaryDTO `json:"items"`
	Sort      string             `json:"sort"`
	Direction string             `json:"direction"`
}

type playerEditFormDTO struct {
	ID int64 `json:"id"`
	usecase.UpdatePlayerInput
}

type playerDescriptionDTO struct {
	PlayerID    int64             `json:"player_id"`
	Description string            `json:"description"`
	Profile     narrative.Profile `json:"profile"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	items, applied, err := h.playerService.List(ctx, query.Get("sort"), query.Get("direction"))
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := playerListDTO{
		Items:     make([]playerSummaryDTO, 0, len(items)),
		Sort:      string(applied.Sort),
		Direction: string(applied.Direction),
	}
	for _, item := range items {
		out.Items = append(out.Items, summaryToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathPlayerID(r, span)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		playerSummaryDTO: summaryToDTO(item),
		Description:      item.Description,
	})
}

func (h *Handler) GetPlayerEditForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerEditForm")
	defer span.End()

	playerID, err := pathPlayerID(r, span)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	form, err := h.playerService.GetEditForm(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player edit form failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerEditFormDTO{ID: playerID, UpdatePlayerInput: form})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathPlayerID(r, span)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req usecase.UpdatePlayerInput
	if err := decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, playerID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		playerSummaryDTO: summaryToDTO(item),
		Description:      item.Description,
	})
}

func (h *Handler) GeneratePlayerDescription(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GeneratePlayerDescription")
	defer span.End()

	playerID, err := pathPlayerID(r, span)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.GenerateDescription(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate player description failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDescriptionDTO{
		PlayerID:    result.PlayerID,
		Description: result.Description,
		Profile:     result.Profile,
	})
}

func summaryToDTO(v playerstats.Summary) playerSummaryDTO {
	return playerSummaryDTO{
		ID:                 v.PlayerID,
		Name:               v.Name,
		Position:           v.Position,
		PositionName:       v.PositionName,
		Games:              v.Games,
		AtBat:              v.AtBat,
		Runs:               v.Runs,
		Hits:               v.Hits,
		Doubles:            v.Doubles,
		Triples:            v.Triples,
		HomeRuns:           v.HomeRuns,
		RBI:                v.RBI,
		Walks:              v.Walks,
		Strikeouts:         v.Strikeouts,
		StolenBases:        v.StolenBases,
		CaughtStealing:     v.CaughtStealing,
		BattingAverage:     v.BattingAverage,
		OnBasePercentage:   v.OnBasePercentage,
		SluggingPercentage: v.SluggingPercentage,
		OnBasePlusSlugging: v.OnBasePlusSlugging,
		HitsPerGame:        v.HitsPerGame,
	}
}
