// Package teamrecord computes win/draw/loss records for a team over any
// subset of matches: overall, per tournament year and per opponent.
package teamrecord

import (
	"sort"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

// Stats is a team's record over a match subset.
type Stats struct {
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Draws          int     `json:"draws"`
	TotalMatches   int     `json:"total_matches"`
	WinPercentage  float64 `json:"win_percentage"`
	LossPercentage float64 `json:"loss_percentage"`
	DrawPercentage float64 `json:"draw_percentage"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
}

type YearStats struct {
	Year  string `json:"year"`
	Stats Stats  `json:"stats"`
}

type Rival struct {
	OpponentCode  string  `json:"opponent_code"`
	OpponentName  string  `json:"opponent_name"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	GoalsFor      int     `json:"goals_for"`
	GoalsAgainst  int     `json:"goals_against"`
	WinPercentage float64 `json:"win_percentage"`
}

type outcome int

const (
	outcomeLoss outcome = iota
	outcomeDraw
	outcomeWin
)

// side returns the outcome and goals for/against from teamCode's point of view.
// The caller guarantees that m involves teamCode.
func side(m match.Match, teamCode string) (outcome, int, int) {
	gf, ga := m.ScoreA, m.ScoreB
	if m.TeamACode != teamCode {
		gf, ga = m.ScoreB, m.ScoreA
	}

	switch {
	case m.IsDraw():
		return outcomeDraw, gf, ga
	case gf > ga:
		return outcomeWin, gf, ga
	default:
		return outcomeLoss, gf, ga
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Compute returns the team's record over every match in which it played either side.
func Compute(matches []match.Match, teamCode string) Stats {
	var out Stats
	for _, m := range matches {
		if !m.Involves(teamCode) {
			continue
		}

		result, gf, ga := side(m, teamCode)
		switch result {
		case outcomeWin:
			out.Wins++
		case outcomeDraw:
			out.Draws++
		default:
			out.Losses++
		}
		out.GoalsFor += gf
		out.GoalsAgainst += ga
		out.TotalMatches++
	}

	out.WinPercentage = percentage(out.Wins, out.TotalMatches)
	out.LossPercentage = percentage(out.Losses, out.TotalMatches)
	out.DrawPercentage = percentage(out.Draws, out.TotalMatches)
	return out
}

// Trends splits the team's record by tournament year, oldest first.
// Years in which the team did not play are omitted.
func Trends(matches []match.Match, teamCode string) []YearStats {
	byYear := make(map[string][]match.Match)
	for _, m := range matches {
		if !m.Involves(teamCode) {
			continue
		}
		byYear[m.Year] = append(byYear[m.Year], m)
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	out := make([]YearStats, 0, len(years))
	for _, year := range years {
		out = append(out, YearStats{
			Year:  year,
			Stats: Compute(byYear[year], teamCode),
		})
	}
	return out
}

// Rivals breaks the team's record down per opponent, most frequent opponent first.
func Rivals(matches []match.Match, teamCode string) []Rival {
	index := make(map[string]int)
	out := make([]Rival, 0)

	for _, m := range matches {
		if !m.Involves(teamCode) {
			continue
		}

		opponentCode, opponentName := m.TeamBCode, m.TeamB
		if m.TeamACode != teamCode {
			opponentCode, opponentName = m.TeamACode, m.TeamA
		}

		i, ok := index[opponentCode]
		if !ok {
			i = len(out)
			index[opponentCode] = i
			out = append(out, Rival{OpponentCode: opponentCode, OpponentName: opponentName})
		}

		rival := &out[i]
		result, gf, ga := side(m, teamCode)
		switch result {
		case outcomeWin:
			rival.Wins++
		case outcomeDraw:
			rival.Draws++
		default:
			rival.Losses++
		}
		rival.Matches++
		rival.GoalsFor += gf
		rival.GoalsAgainst += ga
	}

	for i := range out {
		out[i].WinPercentage = percentage(out[i].Wins, out[i].Matches)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Matches > out[j].Matches
	})
	return out
}
