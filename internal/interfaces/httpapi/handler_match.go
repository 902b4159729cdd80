package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	values := r.URL.Query()
	page, err := parsePageQuery(values)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := listMatchesQuery{
		Filter: parseMatchFilterQuery(values),
		Page:   page,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.Search(ctx, query.Filter.toFilter(), query.Page.Page, query.Page.PageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "search matches failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// ListAllMatches serves the unfiltered corpus in load order.
func (h *Handler) ListAllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllMatches")
	defer span.End()

	matches, err := h.matchService.ListAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list all matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	globalID := strings.TrimSpace(r.PathValue("id"))
	item, err := h.matchService.GetByGlobalID(ctx, globalID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", globalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetMatchByYearAndNumber(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchByYearAndNumber")
	defer span.End()

	year := strings.TrimSpace(r.PathValue("year"))
	rawNumber := strings.TrimSpace(r.PathValue("matchID"))
	number, err := strconv.Atoi(rawNumber)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: match id must be an integer", usecase.ErrInvalidInput))
		return
	}

	item, err := h.matchService.GetByYearAndNumber(ctx, year, number)
	if err != nil {
		h.logger.WarnContext(ctx, "get match by year failed", "year", year, "match_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}
