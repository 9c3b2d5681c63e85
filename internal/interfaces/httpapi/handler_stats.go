package httpapi

import (
	"net/http"
	"time"

	"github.com/matchops/club-manager/internal/domain/stats"
)

type clubStatsDTO struct {
	Name         string  `json:"name"`
	Budget       float64 `json:"budget"`
	CreatedAt    string  `json:"createdAtUtc"`
	PlayerCount  int     `json:"playerCount"`
	TotalValue   float64 `json:"totalValue"`
	AvgValue     float64 `json:"avgValue"`
	HighestValue float64 `json:"highestValue"`
	MostValuable string  `json:"mostValuable,omitempty"`
	TransfersIn  int     `json:"transfersIn"`
	TransfersOut int     `json:"transfersOut"`
}

type serverStatsDTO struct {
	TotalClubs      int     `json:"totalClubs"`
	TotalPlayers    int     `json:"totalPlayers"`
	UpcomingMatches int     `json:"upcomingMatches"`
	TotalTransfers  int     `json:"totalTransfers"`
	TotalValue      float64 `json:"totalValue"`
}

func clubStatsToDTO(v stats.ClubStats) clubStatsDTO {
	return clubStatsDTO{
		Name:         v.Name,
		Budget:       v.Budget,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		PlayerCount:  v.PlayerCount,
		TotalValue:   v.TotalValue,
		AvgValue:     v.AvgValue,
		HighestValue: v.HighestValue,
		MostValuable: v.MostValuable,
		TransfersIn:  v.TransfersIn,
		TransfersOut: v.TransfersOut,
	}
}

func (h *Handler) GetClubStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubStats")
	defer span.End()

	communityID := r.PathValue("communityID")
	clubName := r.PathValue("clubName")
	cs, err := h.statsService.ClubStats(ctx, communityID, clubName)
	if err != nil {
		h.logger.WarnContext(ctx, "get club stats failed", "community", communityID, "club", clubName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubStatsToDTO(cs))
}

func (h *Handler) GetServerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetServerStats")
	defer span.End()

	communityID := r.PathValue("communityID")
	ss, err := h.statsService.ServerStats(ctx, communityID)
	if err != nil {
		h.logger.WarnContext(ctx, "get server stats failed", "community", communityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, serverStatsDTO{
		TotalClubs:      ss.TotalClubs,
		TotalPlayers:    ss.TotalPlayers,
		UpcomingMatches: ss.UpcomingMatches,
		TotalTransfers:  ss.TotalTransfers,
		TotalValue:      ss.TotalValue,
	})
}
