package goals

import "github.com/riskibarqy/worldcup-analytics/internal/domain/match"

type GoalRecord struct {
	Minute     int    `json:"minute"`
	Player     string `json:"player"`
	TeamID     string `json:"teamId"`
	MatchID    string `json:"matchId"`
	MatchScore string `json:"matchScore"`
}

type RecordBook struct {
	FastestGoal                *GoalRecord  `json:"fastestGoal"`
	LatestGoal                 *GoalRecord  `json:"latestGoal"`
	HighestScoringMatch        *match.Match `json:"highestScoringMatch"`
	BiggestGoalDifferenceMatch *match.Match `json:"biggestGoalDifferenceMatch"`
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Records finds the earliest and latest goals and the highest-scoring and most
// lopsided matches in a single pass. Ties go to whatever was seen first.
// It returns nil when there are no matches at all.
func Records(matches []match.Match) *RecordBook {
	if len(matches) == 0 {
		return nil
	}

	out := &RecordBook{}
	highest, biggestDiff := -1, -1
	for _, m := range matches {
		if total := m.TotalGoals(); total > highest {
			highest = total
			out.HighestScoringMatch = &m
		}
		if diff := absInt(m.ScoreA - m.ScoreB); diff > biggestDiff {
			biggestDiff = diff
			out.BiggestGoalDifferenceMatch = &m
		}

		for _, g := range m.Goals {
			if out.FastestGoal == nil || g.Minute < out.FastestGoal.Minute {
				out.FastestGoal = goalRecord(m, g)
			}
			if out.LatestGoal == nil || g.Minute > out.LatestGoal.Minute {
				out.LatestGoal = goalRecord(m, g)
			}
		}
	}
	return out
}

func goalRecord(m match.Match, g match.Goal) *GoalRecord {
	return &GoalRecord{
		Minute:     g.Minute,
		Player:     g.Player,
		TeamID:     g.TeamCode,
		MatchID:    m.GlobalID,
		MatchScore: m.Scoreline(),
	}
}
