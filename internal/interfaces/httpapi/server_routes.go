package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/replacement-levels", handler.ListReplacementLevels)
	mux.HandleFunc("PUT /v1/replacement-levels", handler.UpdateReplacementLevels)
	mux.HandleFunc("POST /v1/replacement-levels/recalculate", handler.RecalculateReplacementLevels)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/drafts", handler.CreateDraft)
	mux.HandleFunc("GET /v1/drafts", handler.ListDrafts)
	mux.HandleFunc("GET /v1/drafts/{sessionID}", handler.GetDraft)
	mux.HandleFunc("DELETE /v1/drafts/{sessionID}", handler.DeleteDraft)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/order", handler.GetDraftOrder)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/current", handler.GetCurrentPick)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/picks", handler.ListDraftPicks)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/picks", handler.RecordDraftPick)
	mux.HandleFunc("DELETE /v1/drafts/{sessionID}/picks/last", handler.UndoLastPick)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/available", handler.ListAvailablePlayers)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/recommendations", handler.GetRecommendations)
	mux.HandleFunc("PUT /v1/drafts/{sessionID}/teams", handler.UpdateDraftTeams)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/settings", handler.GetDraftSettings)
	mux.HandleFunc("PUT /v1/drafts/{sessionID}/settings", handler.UpdateDraftSettings)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-projections", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncProjectionsJob)))
}
