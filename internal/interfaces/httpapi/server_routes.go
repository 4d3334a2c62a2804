package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/stats/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/stats/cards", handler.ListCardRankings)
	mux.HandleFunc("GET /v1/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /v1/matchdays/featured", handler.GetFeaturedMatchdays)
	mux.HandleFunc("GET /v1/matchdays/{jornada}", handler.GetMatchday)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/search", handler.SearchTeams)
	mux.HandleFunc("GET /v1/match-reports", handler.GetMatchReport)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("PUT /v1/admin/matchdays/{jornada}/matches/{index}/result", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpdateMatchResult)))
	mux.Handle("PUT /v1/admin/matchdays/{jornada}/matches/{index}/schedule", RequireAdminToken(adminToken, http.HandlerFunc(handler.RescheduleMatch)))
	mux.Handle("PUT /v1/admin/match-reports", RequireAdminToken(adminToken, http.HandlerFunc(handler.SaveMatchReport)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/live-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLiveSweepJob)))
}
