package httpapi

import (
	"net/http"
	"time"

	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/usecase"
)

type createMatchRequest struct {
	Team1       string `json:"team1" validate:"required,max=100"`
	Team2       string `json:"team2" validate:"required,max=100"`
	Kickoff     string `json:"kickoff" validate:"required"`
	Description string `json:"description" validate:"max=200"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Kickoff      string `json:"kickoffUtc"`
	Description  string `json:"description"`
	ReminderSent bool   `json:"reminderSent"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:           v.ID,
		Team1:        v.Team1,
		Team2:        v.Team2,
		Kickoff:      v.Kickoff.UTC().Format(time.RFC3339),
		Description:  v.Description,
		ReminderSent: v.ReminderSent,
	}
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	communityID := r.PathValue("communityID")
	var req createMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		Community:   communityID,
		Team1:       req.Team1,
		Team2:       req.Team2,
		Kickoff:     req.Kickoff,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	communityID := r.PathValue("communityID")
	matches, err := h.matchService.ListUpcoming(ctx, communityID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
