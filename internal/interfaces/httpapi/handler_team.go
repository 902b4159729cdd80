package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	values := r.URL.Query()
	query := listTeamsQuery{
		WorldcupID: queryString(values, "worldcupId"),
		Sort:       queryString(values, "sort"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListTeams(ctx, query.WorldcupID, query.Sort)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "worldcup_id", query.WorldcupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamCode := strings.TrimSpace(r.PathValue("teamCode"))
	stats, err := h.teamService.Stats(ctx, teamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get team stats failed", "team_code", teamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetTeamTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTrends")
	defer span.End()

	teamCode := strings.TrimSpace(r.PathValue("teamCode"))
	trends, err := h.teamService.Trends(ctx, teamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get team trends failed", "team_code", teamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trends)
}

func (h *Handler) GetTeamRivals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRivals")
	defer span.End()

	teamCode := strings.TrimSpace(r.PathValue("teamCode"))
	rivals, err := h.teamService.Rivals(ctx, teamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get team rivals failed", "team_code", teamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rivals)
}

func (h *Handler) GetHeadToHeadHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHeadHistory")
	defer span.End()

	teamA := strings.TrimSpace(r.PathValue("teamA"))
	teamB := strings.TrimSpace(r.PathValue("teamB"))
	history, err := h.teamService.HeadToHead(ctx, teamA, teamB)
	if err != nil {
		h.logger.WarnContext(ctx, "get head to head history failed", "team_a", teamA, "team_b", teamB, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, history)
}
