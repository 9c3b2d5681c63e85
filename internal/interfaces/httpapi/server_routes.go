package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /health", handler.Healthz)
	mux.HandleFunc("GET /api/status", handler.Status)
}

func registerCommunityReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/communities/{communityID}/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/communities/{communityID}/clubs/richest", handler.ListRichestClubs)
	mux.HandleFunc("GET /v1/communities/{communityID}/clubs/{clubName}/stats", handler.GetClubStats)
	mux.HandleFunc("GET /v1/communities/{communityID}/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/communities/{communityID}/players/top", handler.ListTopPlayers)
	mux.HandleFunc("GET /v1/communities/{communityID}/matches", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/communities/{communityID}/transfers", handler.ListTransferHistory)
	mux.HandleFunc("GET /v1/communities/{communityID}/stats", handler.GetServerStats)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/communities/{communityID}/clubs", admin(handler.CreateClub))
	mux.Handle("DELETE /v1/communities/{communityID}/clubs/{clubName}", admin(handler.DeleteClub))
	mux.Handle("PUT /v1/communities/{communityID}/clubs/{clubName}/budget", admin(handler.UpdateClubBudget))

	mux.Handle("POST /v1/communities/{communityID}/players", admin(handler.AddPlayer))
	mux.Handle("DELETE /v1/communities/{communityID}/players/{playerName}", admin(handler.RemovePlayer))
	mux.Handle("PUT /v1/communities/{communityID}/players/{playerName}/value", admin(handler.UpdatePlayerValue))

	mux.Handle("POST /v1/communities/{communityID}/matches", admin(handler.CreateMatch))
	mux.Handle("POST /v1/communities/{communityID}/transfers", admin(handler.TransferPlayer))

	mux.Handle("POST /v1/communities/{communityID}/reset", admin(handler.RequestReset))
	mux.Handle("POST /v1/communities/{communityID}/reset/confirm", admin(handler.ConfirmReset))
	mux.Handle("DELETE /v1/communities/{communityID}/reset", admin(handler.CancelReset))
}
