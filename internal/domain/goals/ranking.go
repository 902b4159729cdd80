package goals

import (
	"sort"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

type SortBy string

const (
	SortByGoalsFor       SortBy = "gf"
	SortByGoalsAgainst   SortBy = "ga"
	SortByGoalDifference SortBy = "gd"
	SortByAvgGoalsFor    SortBy = "avgGf"
)

func ParseSortBy(v string) (SortBy, bool) {
	switch SortBy(v) {
	case SortByGoalsFor, SortByGoalsAgainst, SortByGoalDifference, SortByAvgGoalsFor:
		return SortBy(v), true
	default:
		return SortByGoalsFor, false
	}
}

type TeamRanking struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	AvgGoalsFor    float64 `json:"avgGoalsFor"`
	Matches        int     `json:"matches"`
}

func (r TeamRanking) metric(sortBy SortBy) float64 {
	switch sortBy {
	case SortByGoalsAgainst:
		return float64(r.GoalsAgainst)
	case SortByGoalDifference:
		return float64(r.GoalDifference)
	case SortByAvgGoalsFor:
		return r.AvgGoalsFor
	default:
		return float64(r.GoalsFor)
	}
}

// Rankings aggregates goals for and against per team code and orders the
// teams by the chosen metric, highest first. Every metric, goals against
// included, sorts descending; ties keep first-appearance order. Unknown sort
// keys fall back to goals for, and a limit of zero or less returns nothing.
func Rankings(matches []match.Match, sortBy SortBy, limit int) []TeamRanking {
	if limit <= 0 {
		return []TeamRanking{}
	}

	index := make(map[string]int)
	out := make([]TeamRanking, 0)
	add := func(code, name string, gf, ga int) {
		i, ok := index[code]
		if !ok {
			i = len(out)
			index[code] = i
			out = append(out, TeamRanking{Code: code, Name: name})
		}
		out[i].GoalsFor += gf
		out[i].GoalsAgainst += ga
		out[i].Matches++
	}

	for _, m := range matches {
		add(m.TeamACode, m.TeamA, m.ScoreA, m.ScoreB)
		add(m.TeamBCode, m.TeamB, m.ScoreB, m.ScoreA)
	}

	for i := range out {
		out[i].GoalDifference = out[i].GoalsFor - out[i].GoalsAgainst
		out[i].AvgGoalsFor = average(out[i].GoalsFor, out[i].Matches)
	}

	if _, ok := ParseSortBy(string(sortBy)); !ok {
		sortBy = SortByGoalsFor
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].metric(sortBy) > out[j].metric(sortBy)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
