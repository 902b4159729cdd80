// Package goals derives goal-scoring statistics from a match collection:
// totals, team rankings, stage and minute breakdowns, timelines and records.
// Every function is pure; an empty input yields an empty or zero result.
package goals

import (
	"math"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

type Summary struct {
	TotalGoals         int          `json:"totalGoals"`
	AvgGoalsPerMatch   float64      `json:"avgGoalsPerMatch"`
	MaxGoalsInMatch    int          `json:"maxGoalsInMatch"`
	MatchWithMostGoals *match.Match `json:"matchWithMostGoals"`
}

type H2HSummary struct {
	TotalMatches     int          `json:"totalMatches"`
	TotalGoalsA      int          `json:"totalGoalsA"`
	TotalGoalsB      int          `json:"totalGoalsB"`
	AvgGoalsPerMatch float64      `json:"avgGoalsPerMatch"`
	MaxScoreMatch    *match.Match `json:"maxScoreMatch"`
}

type StageBucket struct {
	StageType string  `json:"stageType"`
	Matches   int     `json:"matches"`
	Goals     int     `json:"goals"`
	AvgGoals  float64 `json:"avgGoals"`
}

const (
	StageTypeGroup    = "Group Stage"
	StageTypePlayoffs = "Playoffs"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func average(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return round2(float64(total) / float64(count))
}

// Summarize totals the scorelines of matches. MatchWithMostGoals is the first
// match to reach the highest total and stays nil when no match has a goal.
func Summarize(matches []match.Match) Summary {
	var out Summary
	for _, m := range matches {
		goals := m.TotalGoals()
		out.TotalGoals += goals
		if goals > out.MaxGoalsInMatch {
			out.MaxGoalsInMatch = goals
			out.MatchWithMostGoals = &m
		}
	}

	out.AvgGoalsPerMatch = average(out.TotalGoals, len(matches))
	return out
}

// HeadToHeadSummary totals the goals of every fixture between teamA and teamB,
// played in either order, credited to each side.
func HeadToHeadSummary(matches []match.Match, teamA, teamB string) H2HSummary {
	var out H2HSummary
	maxScore := -1
	for _, m := range matches {
		var goalsA, goalsB int
		switch {
		case m.TeamACode == teamA && m.TeamBCode == teamB:
			goalsA, goalsB = m.ScoreA, m.ScoreB
		case m.TeamACode == teamB && m.TeamBCode == teamA:
			goalsA, goalsB = m.ScoreB, m.ScoreA
		default:
			continue
		}

		out.TotalMatches++
		out.TotalGoalsA += goalsA
		out.TotalGoalsB += goalsB
		if goalsA+goalsB > maxScore {
			maxScore = goalsA + goalsB
			out.MaxScoreMatch = &m
		}
	}

	out.AvgGoalsPerMatch = average(out.TotalGoalsA+out.TotalGoalsB, out.TotalMatches)
	return out
}

// IsGroupStage classifies a stage label; anything that is not a group or matchday round is a playoff.
func IsGroupStage(stage string) bool {
	lower := strings.ToLower(stage)
	return strings.Contains(lower, "group") || strings.Contains(lower, "matchday")
}

// StageSummary always returns the group bucket followed by the playoffs bucket.
func StageSummary(matches []match.Match) []StageBucket {
	group := StageBucket{StageType: StageTypeGroup}
	playoffs := StageBucket{StageType: StageTypePlayoffs}

	for _, m := range matches {
		bucket := &playoffs
		if IsGroupStage(m.Stage) {
			bucket = &group
		}
		bucket.Matches++
		bucket.Goals += m.TotalGoals()
	}

	group.AvgGoals = average(group.Goals, group.Matches)
	playoffs.AvgGoals = average(playoffs.Goals, playoffs.Matches)
	return []StageBucket{group, playoffs}
}
