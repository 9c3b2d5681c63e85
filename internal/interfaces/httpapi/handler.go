package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/matchops/club-manager/internal/platform/logging"
	"github.com/matchops/club-manager/internal/usecase"
)

// ServiceInfo is exposed on the status endpoint.
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
	StoreDriver string
}

type Handler struct {
	clubService     *usecase.ClubService
	playerService   *usecase.PlayerService
	matchService    *usecase.MatchService
	transferService *usecase.TransferService
	statsService    *usecase.StatsService
	resetService    *usecase.ResetService
	info            ServiceInfo
	startedAt       time.Time
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	transferService *usecase.TransferService,
	statsService *usecase.StatsService,
	resetService *usecase.ResetService,
	info ServiceInfo,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService:     clubService,
		playerService:   playerService,
		matchService:    matchService,
		transferService: transferService,
		statsService:    statsService,
		resetService:    resetService,
		info:            info,
		startedAt:       time.Now(),
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Status")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, statusDTO{
		Service:       h.info.Name,
		Version:       h.info.Version,
		Environment:   h.info.Environment,
		StoreDriver:   h.info.StoreDriver,
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Features:      serviceFeatures,
	})
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type statusDTO struct {
	Service       string   `json:"service"`
	Version       string   `json:"version"`
	Environment   string   `json:"environment"`
	StoreDriver   string   `json:"storeDriver"`
	Status        string   `json:"status"`
	UptimeSeconds int64    `json:"uptimeSeconds"`
	Features      []string `json:"features"`
}

var serviceFeatures = []string{
	"Club Management",
	"Player Management",
	"Match Scheduling",
	"Transfer System",
	"Statistics",
	"Match Reminders",
}
