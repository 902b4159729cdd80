package teamrecord

import (
	"sort"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

// HeadToHead is the fixture history between two teams seen from TeamA's side.
type HeadToHead struct {
	TeamA        string        `json:"teamA"`
	TeamB        string        `json:"teamB"`
	TotalMatches int           `json:"totalMatches"`
	WinsA        int           `json:"winsA"`
	WinsB        int           `json:"winsB"`
	Draws        int           `json:"draws"`
	GoalsA       int           `json:"goalsA"`
	GoalsB       int           `json:"goalsB"`
	Matches      []match.Match `json:"matches"`
}

// IsFixtureBetween reports whether m was played between the two codes, in either order.
func IsFixtureBetween(m match.Match, teamA, teamB string) bool {
	return (m.TeamACode == teamA && m.TeamBCode == teamB) ||
		(m.TeamACode == teamB && m.TeamBCode == teamA)
}

// CompareHeadToHead collects every fixture between teamA and teamB, oldest first.
func CompareHeadToHead(matches []match.Match, teamA, teamB string) HeadToHead {
	out := HeadToHead{
		TeamA:   teamA,
		TeamB:   teamB,
		Matches: make([]match.Match, 0),
	}

	for _, m := range matches {
		if !IsFixtureBetween(m, teamA, teamB) {
			continue
		}

		result, ga, gb := side(m, teamA)
		switch result {
		case outcomeWin:
			out.WinsA++
		case outcomeDraw:
			out.Draws++
		default:
			out.WinsB++
		}
		out.GoalsA += ga
		out.GoalsB += gb
		out.Matches = append(out.Matches, m)
	}

	sort.SliceStable(out.Matches, func(i, j int) bool {
		if out.Matches[i].Date != out.Matches[j].Date {
			return out.Matches[i].Date < out.Matches[j].Date
		}
		return out.Matches[i].ID < out.Matches[j].ID
	})
	out.TotalMatches = len(out.Matches)
	return out
}
