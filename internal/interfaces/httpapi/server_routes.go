package httpapi

import "net/http"

const apiPrefix = "/api/v1"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.APIHealth)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/teams", handler.ListTeams)
	mux.HandleFunc("GET "+apiPrefix+"/stats/{teamCode}", handler.GetTeamStats)
	mux.HandleFunc("GET "+apiPrefix+"/teams/{teamCode}/trends", handler.GetTeamTrends)
	mux.HandleFunc("GET "+apiPrefix+"/teams/{teamCode}/rivals", handler.GetTeamRivals)
	mux.HandleFunc("GET "+apiPrefix+"/predict/history/{teamA}/{teamB}", handler.GetHeadToHeadHistory)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/analisis", handler.ListAllMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches", handler.ListMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/{id}", handler.GetMatch)
	mux.HandleFunc("GET "+apiPrefix+"/matches/{year}/{matchID}", handler.GetMatchByYearAndNumber)
}

func registerGoalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/goals/summary", handler.GetGoalSummary)
	mux.HandleFunc("GET "+apiPrefix+"/goals/team-rankings", handler.ListTeamGoalRankings)
	mux.HandleFunc("GET "+apiPrefix+"/goals/h2h-summary", handler.GetHeadToHeadGoalSummary)
	mux.HandleFunc("GET "+apiPrefix+"/goals/stage-summary", handler.ListStageGoalSummary)
	mux.HandleFunc("GET "+apiPrefix+"/goals/minute-distribution", handler.ListMinuteDistribution)
	mux.HandleFunc("GET "+apiPrefix+"/goals/time-split", handler.GetTimeSplit)
	mux.HandleFunc("GET "+apiPrefix+"/goals/matches/{matchID}/timeline", handler.ListMatchGoalTimeline)
	mux.HandleFunc("GET "+apiPrefix+"/goals/records", handler.GetGoalRecords)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/players", handler.ListPlayers)
	mux.HandleFunc("GET "+apiPrefix+"/players/{teamCode}/{name}", handler.GetPlayer)
}
