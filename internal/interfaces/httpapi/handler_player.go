package httpapi

import (
	"net/http"
	"time"

	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/usecase"
)

type addPlayerRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Club     string  `json:"club" validate:"required,max=100"`
	Value    float64 `json:"value" validate:"gte=0"`
	Position string  `json:"position" validate:"max=50"`
	Age      int     `json:"age" validate:"gte=0,lte=60"`
}

type updateValueRequest struct {
	Value float64 `json:"value" validate:"gte=0"`
}

type playerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Club        string  `json:"club,omitempty"`
	Value       float64 `json:"value"`
	Position    string  `json:"position"`
	Age         int     `json:"age"`
	FreeAgent   bool    `json:"freeAgent"`
	ContractEnd string  `json:"contractEndUtc"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Club:        v.ClubName,
		Value:       v.Value,
		Position:    v.Position,
		Age:         v.Age,
		FreeAgent:   v.FreeAgent(),
		ContractEnd: v.ContractEnd.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	communityID := r.PathValue("communityID")
	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.playerService.AddPlayer(ctx, usecase.AddPlayerInput{
		Community: communityID,
		Name:      req.Name,
		ClubName:  req.Club,
		Value:     req.Value,
		Position:  req.Position,
		Age:       req.Age,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "community", communityID, "player", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(added))
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	communityID := r.PathValue("communityID")
	playerName := r.PathValue("playerName")
	if err := h.playerService.RemovePlayer(ctx, communityID, playerName); err != nil {
		h.logger.WarnContext(ctx, "remove player failed", "community", communityID, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"removed": playerName})
}

func (h *Handler) UpdatePlayerValue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerValue")
	defer span.End()

	communityID := r.PathValue("communityID")
	playerName := r.PathValue("playerName")
	var req updateValueRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.UpdateValue(ctx, communityID, playerName, req.Value); err != nil {
		h.logger.WarnContext(ctx, "update player value failed", "community", communityID, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"player": playerName, "value": req.Value})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubFilter := r.URL.Query().Get("club")
	players, err := h.playerService.ListPlayers(ctx, communityID, clubFilter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPlayers")
	defer span.End()

	communityID := r.PathValue("communityID")
	players, err := h.statsService.TopPlayers(ctx, communityID, queryLimit(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list top players failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
