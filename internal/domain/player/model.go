package player

import (
	"sort"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

// UnknownTeamCode attributes goals whose event carries no team code.
const UnknownTeamCode = "UNKNOWN"

// GoalDetail is one goal in a player's career log.
type GoalDetail struct {
	MatchID  string `json:"matchId"`
	Minute   int    `json:"minute"`
	Year     string `json:"year"`
	Opponent string `json:"opponent"`
	Stage    string `json:"stage"`
}

// Stats is a goal scorer's career aggregate. Players who never scored are not
// visible: the dataset has goal events but no lineups.
type Stats struct {
	Name            string       `json:"name"`
	TeamCode        string       `json:"team_code"`
	TotalGoals      int          `json:"total_goals"`
	MatchesWithGoal int          `json:"matches_with_goal"`
	FirstGoalYear   string       `json:"first_goal_year"`
	LastGoalYear    string       `json:"last_goal_year"`
	YearsPlayed     []string     `json:"years_played"`
	GoalsByMatch    []GoalDetail `json:"goals_by_match"`
}

// Criteria narrows a roster. Zero values disable each filter.
type Criteria struct {
	TeamCode string
	MinGoals int
	Search   string
}

// NormalizeName trims a scorer name; names that start with an apostrophe
// (a dataset artifact) lose every apostrophe.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if strings.HasPrefix(name, "'") {
		name = strings.TrimSpace(strings.ReplaceAll(name, "'", ""))
	}
	return name
}

type key struct {
	name     string
	teamCode string
}

type accumulator struct {
	stats   Stats
	matches map[string]struct{}
	years   map[string]struct{}
}

// Aggregate builds the roster of every (name, team) pair that appears in a
// goal event, in order of first appearance.
func Aggregate(matches []match.Match) []Stats {
	index := make(map[key]*accumulator)
	order := make([]*accumulator, 0)

	for _, m := range matches {
		for _, g := range m.Goals {
			name := NormalizeName(g.Player)
			teamCode := g.TeamCode
			if teamCode == "" {
				teamCode = UnknownTeamCode
			}

			k := key{name: name, teamCode: teamCode}
			acc, ok := index[k]
			if !ok {
				acc = &accumulator{
					stats: Stats{
						Name:         name,
						TeamCode:     teamCode,
						GoalsByMatch: make([]GoalDetail, 0, 1),
					},
					matches: make(map[string]struct{}),
					years:   make(map[string]struct{}),
				}
				index[k] = acc
				order = append(order, acc)
			}

			opponent := m.TeamA
			if m.TeamACode == teamCode {
				opponent = m.TeamB
			}

			acc.stats.TotalGoals++
			acc.matches[m.GlobalID] = struct{}{}
			acc.years[m.Year] = struct{}{}
			acc.stats.GoalsByMatch = append(acc.stats.GoalsByMatch, GoalDetail{
				MatchID:  m.GlobalID,
				Minute:   g.Minute,
				Year:     m.Year,
				Opponent: opponent,
				Stage:    m.Stage,
			})
		}
	}

	out := make([]Stats, 0, len(order))
	for _, acc := range order {
		stats := acc.stats
		stats.MatchesWithGoal = len(acc.matches)
		stats.YearsPlayed = make([]string, 0, len(acc.years))
		for year := range acc.years {
			stats.YearsPlayed = append(stats.YearsPlayed, year)
		}
		sort.Strings(stats.YearsPlayed)
		if n := len(stats.YearsPlayed); n > 0 {
			stats.FirstGoalYear = stats.YearsPlayed[0]
			stats.LastGoalYear = stats.YearsPlayed[n-1]
		}
		out = append(out, stats)
	}
	return out
}

// Filter keeps the players matching every enabled criterion.
func Filter(players []Stats, c Criteria) []Stats {
	search := strings.ToLower(c.Search)
	out := make([]Stats, 0, len(players))
	for _, p := range players {
		if c.TeamCode != "" && p.TeamCode != c.TeamCode {
			continue
		}
		if c.MinGoals > 0 && p.TotalGoals < c.MinGoals {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
