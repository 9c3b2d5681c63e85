package httpapi

import (
	"net/http"
	"time"

	"github.com/matchops/club-manager/internal/domain/transfer"
	"github.com/matchops/club-manager/internal/usecase"
)

type transferRequest struct {
	Player   string  `json:"player" validate:"required,max=100"`
	FromClub string  `json:"fromClub" validate:"required,max=100"`
	ToClub   string  `json:"toClub" validate:"required,max=100"`
	Fee      float64 `json:"fee" validate:"gte=0"`
	AdminID  string  `json:"adminId" validate:"max=100"`
}

type transferDTO struct {
	ID       int64   `json:"id"`
	Player   string  `json:"player"`
	FromClub string  `json:"fromClub"`
	ToClub   string  `json:"toClub"`
	Fee      float64 `json:"fee"`
	AdminID  string  `json:"adminId,omitempty"`
	Date     string  `json:"dateUtc"`
}

func transferToDTO(v transfer.Record) transferDTO {
	return transferDTO{
		ID:       v.ID,
		Player:   v.PlayerName,
		FromClub: v.FromClub,
		ToClub:   v.ToClub,
		Fee:      v.Fee,
		AdminID:  v.AdminID,
		Date:     v.Date.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) TransferPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TransferPlayer")
	defer span.End()

	communityID := r.PathValue("communityID")
	var req transferRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rec, err := h.transferService.TransferPlayer(ctx, usecase.TransferInput{
		Community:  communityID,
		PlayerName: req.Player,
		FromClub:   req.FromClub,
		ToClub:     req.ToClub,
		Fee:        req.Fee,
		AdminID:    req.AdminID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "transfer failed", "community", communityID, "player", req.Player, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(rec))
}

func (h *Handler) ListTransferHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransferHistory")
	defer span.End()

	communityID := r.PathValue("communityID")
	records, err := h.statsService.TransferHistory(ctx, communityID, queryLimit(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list transfer history failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, transferToDTO(rec))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
