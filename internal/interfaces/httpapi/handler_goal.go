package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/usecase"
)

func (h *Handler) GetGoalSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalSummary")
	defer span.End()

	query := parseMatchFilterQuery(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.goalService.Summary(ctx, query.toFilter())
	if err != nil {
		h.logger.WarnContext(ctx, "get goal summary failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListTeamGoalRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamGoalRankings")
	defer span.End()

	values := r.URL.Query()
	limit, err := queryInt(values, "limit", usecase.DefaultRankingLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := teamRankingsQuery{
		Filter: parseMatchFilterQuery(values),
		Sort:   queryString(values, "sort"),
		Limit:  limit,
	}
	if query.Sort == "" {
		query.Sort = defaultRankingSort
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rankings, err := h.goalService.Rankings(ctx, query.Filter.toFilter(), query.Sort, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list team goal rankings failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankings)
}

// GetHeadToHeadGoalSummary reads teamA and teamB as the two team codes, so
// they do not narrow the match subset as side filters here.
func (h *Handler) GetHeadToHeadGoalSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHeadGoalSummary")
	defer span.End()

	values := r.URL.Query()
	filter := parseMatchFilterQuery(values)
	query := h2hSummaryQuery{
		Filter:    filter,
		TeamACode: filter.TeamA,
		TeamBCode: filter.TeamB,
	}
	query.Filter.TeamA = ""
	query.Filter.TeamB = ""
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.goalService.HeadToHeadSummary(ctx, query.Filter.toFilter(), query.TeamACode, query.TeamBCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get head to head goal summary failed", "team_a", query.TeamACode, "team_b", query.TeamBCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListStageGoalSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStageGoalSummary")
	defer span.End()

	query := parseMatchFilterQuery(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	buckets, err := h.goalService.StageSummary(ctx, query.toFilter())
	if err != nil {
		h.logger.WarnContext(ctx, "list stage goal summary failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, buckets)
}

func (h *Handler) ListMinuteDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMinuteDistribution")
	defer span.End()

	values := r.URL.Query()
	bins, err := queryInt(values, "bins", defaultBinSize)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := minuteDistributionQuery{
		Filter: parseMatchFilterQuery(values),
		Bins:   bins,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	distribution, err := h.goalService.MinuteDistribution(ctx, query.Filter.toFilter(), query.Bins)
	if err != nil {
		h.logger.WarnContext(ctx, "list minute distribution failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, distribution)
}

func (h *Handler) GetTimeSplit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTimeSplit")
	defer span.End()

	values := r.URL.Query()
	query := timeSplitQuery{
		Filter: parseMatchFilterQuery(values),
		Mode:   queryString(values, "mode"),
	}
	if query.Mode == "" {
		query.Mode = defaultSplitMode
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	split, err := h.goalService.TimeSplit(ctx, query.Filter.toFilter(), query.Mode)
	if err != nil {
		h.logger.WarnContext(ctx, "get time split failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, split)
}

func (h *Handler) ListMatchGoalTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchGoalTimeline")
	defer span.End()

	globalID := strings.TrimSpace(r.PathValue("matchID"))
	timeline, err := h.goalService.Timeline(ctx, globalID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match goal timeline failed", "match_id", globalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timeline)
}

func (h *Handler) GetGoalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalRecords")
	defer span.End()

	query := parseMatchFilterQuery(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.goalService.Records(ctx, query.toFilter())
	if err != nil {
		h.logger.WarnContext(ctx, "get goal records failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}
	if records == nil {
		writeSuccess(ctx, w, http.StatusOK, struct{}{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}
