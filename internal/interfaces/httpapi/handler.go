package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxRequestBodyBytes bounds JSON request bodies.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	playerService *usecase.PlayerService
	logger        *logging.Logger
}

func NewHandler(playerService *usecase.PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		logger:        logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathPlayerID reads {playerID}. Anything that is not a positive integer is
// reported as not found.
func pathPlayerID(r *http.Request, span trace.Span) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("playerID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: player=%q", usecase.ErrNotFound, raw)
	}
	span.SetAttributes(attribute.Int64("player.id", id))
	return id, nil
}

func decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.decodeJSON")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
