package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
)

// Goal is a single scoring event inside a match.
type Goal struct {
	Minute   int    `json:"minute"`
	Player   string `json:"player"`
	TeamCode string `json:"team_code"`
}

// Match is one historical fixture between TeamA and TeamB.
type Match struct {
	GlobalID  string `json:"global_id"`
	ID        int    `json:"id"`
	Year      string `json:"year"`
	Date      string `json:"date"`
	Stage     string `json:"stage"`
	TeamA     string `json:"team_a"`
	TeamB     string `json:"team_b"`
	TeamACode string `json:"team_a_code"`
	TeamBCode string `json:"team_b_code"`
	ScoreA    int    `json:"score_a"`
	ScoreB    int    `json:"score_b"`
	Goals     []Goal `json:"goals"`
}

func GlobalIDFor(year string, number int) string {
	return year + "-" + strconv.Itoa(number)
}

// TotalGoals is the scoreline total, which may differ from len(Goals) on incomplete data.
func (m Match) TotalGoals() int {
	return m.ScoreA + m.ScoreB
}

func (m Match) Involves(teamCode string) bool {
	return m.TeamACode == teamCode || m.TeamBCode == teamCode
}

func (m Match) IsDraw() bool {
	return m.ScoreA == m.ScoreB
}

// Scoreline renders "{teamA} {scoreA} - {scoreB} {teamB}".
func (m Match) Scoreline() string {
	return fmt.Sprintf("%s %d - %d %s", m.TeamA, m.ScoreA, m.ScoreB, m.TeamB)
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Year) == "" {
		return fmt.Errorf("match year is required")
	}
	if m.ID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if strings.TrimSpace(m.TeamACode) == "" || strings.TrimSpace(m.TeamBCode) == "" {
		return fmt.Errorf("match %s requires both team codes", m.GlobalID)
	}
	if m.ScoreA < 0 || m.ScoreB < 0 {
		return fmt.Errorf("match %s has a negative score", m.GlobalID)
	}

	return nil
}

// Corpus is everything one load of the historical dataset produces.
type Corpus struct {
	Matches     []Match
	Teams       []team.Team
	TeamsByYear map[string][]string
}
