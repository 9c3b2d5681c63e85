package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/usecase"
)

type createClubRequest struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Budget float64 `json:"budget" validate:"gte=0"`
}

type updateBudgetRequest struct {
	Budget float64 `json:"budget" validate:"gte=0"`
}

type clubDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	CreatedAt string  `json:"createdAtUtc"`
}

type richClubDTO struct {
	clubDTO
	PlayerCount int `json:"playerCount"`
}

func clubToDTO(v club.Club) clubDTO {
	return clubDTO{
		ID:        v.ID,
		Name:      v.Name,
		Budget:    v.Budget,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	communityID := r.PathValue("communityID")
	var req createClubRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.CreateClub(ctx, usecase.CreateClubInput{
		Community: communityID,
		Name:      req.Name,
		Budget:    req.Budget,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(created))
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClub")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubName := r.PathValue("clubName")
	if err := h.clubService.DeleteClub(ctx, communityID, clubName); err != nil {
		h.logger.WarnContext(ctx, "delete club failed", "community", communityID, "club", clubName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": clubName})
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubs, err := h.clubService.ListClubs(ctx, communityID)
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateClubBudget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubBudget")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubName := r.PathValue("clubName")
	var req updateBudgetRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubService.UpdateBudget(ctx, communityID, clubName, req.Budget); err != nil {
		h.logger.WarnContext(ctx, "update club budget failed", "community", communityID, "club", clubName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"club": clubName, "budget": req.Budget})
}

func (h *Handler) ListRichestClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRichestClubs")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubs, err := h.statsService.RichestClubs(ctx, communityID, queryLimit(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list richest clubs failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]richClubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, richClubDTO{
			clubDTO:     clubToDTO(c.Club),
			PlayerCount: c.PlayerCount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// queryLimit reads the optional ?limit= parameter; 0 lets the service apply
// its own default.
func queryLimit(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
