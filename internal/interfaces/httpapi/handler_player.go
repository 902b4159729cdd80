package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	values := r.URL.Query()
	page, err := parsePageQuery(values)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	minGoals, err := queryInt(values, "minGoals", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := listPlayersQuery{
		Page:     page,
		TeamCode: queryString(values, "teamCode"),
		MinGoals: minGoals,
		Search:   queryString(values, "search"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.List(ctx, query.toCriteria(), query.Page.Page, query.Page.PageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	teamCode := strings.TrimSpace(r.PathValue("teamCode"))
	name := strings.TrimSpace(r.PathValue("name"))
	item, err := h.playerService.Get(ctx, teamCode, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "team_code", teamCode, "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}
