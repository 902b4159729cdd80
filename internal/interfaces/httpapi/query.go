package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/player"
	"github.com/riskibarqy/worldcup-analytics/internal/usecase"
)

const (
	defaultRankingSort = "gf"
	defaultBinSize     = 15
	defaultSplitMode   = "halves"
)

type matchFilterQuery struct {
	WorldcupID string `validate:"max=16"`
	Stage      string `validate:"max=64"`
	TeamA      string `validate:"max=64"`
	TeamB      string `validate:"max=64"`
	TeamID     string `validate:"max=16"`
	DateFrom   string `validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `validate:"omitempty,datetime=2006-01-02"`
}

func (q matchFilterQuery) toFilter() usecase.MatchFilter {
	return usecase.MatchFilter{
		Year:     q.WorldcupID,
		Stage:    q.Stage,
		TeamA:    q.TeamA,
		TeamB:    q.TeamB,
		TeamCode: q.TeamID,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	}
}

type pageQuery struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

type listMatchesQuery struct {
	Filter matchFilterQuery
	Page   pageQuery
}

type listTeamsQuery struct {
	WorldcupID string `validate:"max=16"`
	Sort       string `validate:"omitempty,oneof=name code"`
}

type teamRankingsQuery struct {
	Filter matchFilterQuery
	Sort   string `validate:"oneof=gf ga gd avgGf"`
	Limit  int    `validate:"min=1,max=50"`
}

type h2hSummaryQuery struct {
	Filter    matchFilterQuery
	TeamACode string `validate:"required,max=16"`
	TeamBCode string `validate:"required,max=16"`
}

type minuteDistributionQuery struct {
	Filter matchFilterQuery
	Bins   int `validate:"min=1,max=45"`
}

type timeSplitQuery struct {
	Filter matchFilterQuery
	Mode   string `validate:"oneof=halves"`
}

type listPlayersQuery struct {
	Page     pageQuery
	TeamCode string `validate:"max=16"`
	MinGoals int    `validate:"min=0"`
	Search   string `validate:"max=64"`
}

func (q listPlayersQuery) toCriteria() player.Criteria {
	return player.Criteria{
		TeamCode: q.TeamCode,
		MinGoals: q.MinGoals,
		Search:   q.Search,
	}
}

func queryString(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func queryInt(values url.Values, key string, fallback int) (int, error) {
	raw := queryString(values, key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func parseMatchFilterQuery(values url.Values) matchFilterQuery {
	return matchFilterQuery{
		WorldcupID: queryString(values, "worldcupId"),
		Stage:      queryString(values, "stage"),
		TeamA:      queryString(values, "teamA"),
		TeamB:      queryString(values, "teamB"),
		TeamID:     queryString(values, "teamId"),
		DateFrom:   queryString(values, "dateFrom"),
		DateTo:     queryString(values, "dateTo"),
	}
}

func parsePageQuery(values url.Values) (pageQuery, error) {
	page, err := queryInt(values, "page", 1)
	if err != nil {
		return pageQuery{}, err
	}
	pageSize, err := queryInt(values, "pageSize", usecase.DefaultPageSize)
	if err != nil {
		return pageQuery{}, err
	}
	return pageQuery{Page: page, PageSize: pageSize}, nil
}
