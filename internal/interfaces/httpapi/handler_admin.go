package httpapi

import (
	"net/http"
	"time"
)

type confirmResetRequest struct {
	Token string `json:"token" validate:"required"`
}

type resetRequestDTO struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAtUtc"`
}

func (h *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequestReset")
	defer span.End()

	communityID := r.PathValue("communityID")
	token, expiresAt, err := h.resetService.RequestReset(ctx, communityID)
	if err != nil {
		h.logger.WarnContext(ctx, "request reset failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resetRequestDTO{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmReset")
	defer span.End()

	communityID := r.PathValue("communityID")
	var req confirmResetRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.resetService.ConfirmReset(ctx, communityID, req.Token); err != nil {
		h.logger.WarnContext(ctx, "confirm reset failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"reset": communityID})
}

func (h *Handler) CancelReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelReset")
	defer span.End()

	communityID := r.PathValue("communityID")
	if err := h.resetService.CancelReset(ctx, communityID); err != nil {
		h.logger.WarnContext(ctx, "cancel reset failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"canceled": communityID})
}
