package player

import (
	"testing"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

func rosterMatches() []match.Match {
	return []match.Match{
		{
			GlobalID: "1986-10", ID: 10, Year: "1986", Stage: "Quarter-finals",
			TeamA: "Argentina", TeamB: "England", TeamACode: "ARG", TeamBCode: "ENG",
			ScoreA: 2, ScoreB: 1,
			Goals: []match.Goal{
				{Minute: 51, Player: " Diego Maradona ", TeamCode: "ARG"},
				{Minute: 55, Player: "Diego Maradona", TeamCode: "ARG"},
				{Minute: 81, Player: "Gary Lineker", TeamCode: "ENG"},
			},
		},
		{
			GlobalID: "1982-3", ID: 3, Year: "1982", Stage: "Group C",
			TeamA: "Hungary", TeamB: "Argentina", TeamACode: "HUN", TeamBCode: "ARG",
			ScoreA: 1, ScoreB: 4,
			Goals: []match.Goal{
				{Minute: 28, Player: "'Diego Maradona'", TeamCode: "ARG"},
				{Minute: 76, Player: "Pölöskei", TeamCode: ""},
			},
		},
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  Pelé ", want: "Pelé"},
		{in: "'Pelé'", want: "Pelé"},
		{in: "' O'Neill", want: "ONeill"},
		{in: "Martin O'Neill", want: "Martin O'Neill"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Fatalf("NormalizeName(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	got := Aggregate(rosterMatches())
	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %d: %+v", len(got), got)
	}

	diego := got[0]
	if diego.Name != "Diego Maradona" || diego.TeamCode != "ARG" {
		t.Fatalf("unexpected first player: %+v", diego)
	}
	if diego.TotalGoals != 3 || diego.MatchesWithGoal != 2 {
		t.Fatalf("unexpected totals: goals=%d matches=%d", diego.TotalGoals, diego.MatchesWithGoal)
	}
	if diego.TotalGoals < diego.MatchesWithGoal {
		t.Fatalf("total goals must not be lower than matches with goal")
	}
	if diego.FirstGoalYear != "1982" || diego.LastGoalYear != "1986" {
		t.Fatalf("unexpected year span: %s..%s", diego.FirstGoalYear, diego.LastGoalYear)
	}
	if len(diego.YearsPlayed) != 2 || diego.YearsPlayed[0] != "1982" || diego.YearsPlayed[1] != "1986" {
		t.Fatalf("unexpected years played: %v", diego.YearsPlayed)
	}
	if len(diego.GoalsByMatch) != 3 {
		t.Fatalf("expected 3 goal details, got %d", len(diego.GoalsByMatch))
	}
	if diego.GoalsByMatch[0].Opponent != "England" || diego.GoalsByMatch[2].Opponent != "Hungary" {
		t.Fatalf("unexpected opponents: %+v", diego.GoalsByMatch)
	}

	if got[1].Name != "Gary Lineker" || got[1].GoalsByMatch[0].Opponent != "Argentina" {
		t.Fatalf("unexpected second player: %+v", got[1])
	}

	unknown := got[2]
	if unknown.TeamCode != UnknownTeamCode {
		t.Fatalf("expected %s team code, got %q", UnknownTeamCode, unknown.TeamCode)
	}
	if unknown.GoalsByMatch[0].Opponent != "Hungary" {
		t.Fatalf("unattributed goals resolve the opponent as team A, got %q", unknown.GoalsByMatch[0].Opponent)
	}
}

func TestAggregate_SameNameDifferentTeams(t *testing.T) {
	t.Parallel()

	m := match.Match{
		GlobalID: "2002-1", Year: "2002", TeamACode: "BRA", TeamBCode: "POR", TeamA: "Brazil", TeamB: "Portugal",
		Goals: []match.Goal{
			{Minute: 1, Player: "Ronaldo", TeamCode: "BRA"},
			{Minute: 2, Player: "Ronaldo", TeamCode: "POR"},
		},
	}

	got := Aggregate([]match.Match{m})
	if len(got) != 2 {
		t.Fatalf("expected separate entries per team, got %d", len(got))
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected empty roster, got %d", len(got))
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	roster := Aggregate(rosterMatches())

	tests := []struct {
		name     string
		criteria Criteria
		want     int
	}{
		{name: "no filters", criteria: Criteria{}, want: 3},
		{name: "team", criteria: Criteria{TeamCode: "ARG"}, want: 1},
		{name: "min goals", criteria: Criteria{MinGoals: 2}, want: 1},
		{name: "search is case insensitive", criteria: Criteria{Search: "LINE"}, want: 1},
		{name: "combined", criteria: Criteria{TeamCode: "ENG", MinGoals: 2}, want: 0},
		{name: "zero min goals is disabled", criteria: Criteria{MinGoals: 0, Search: "e"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(roster, tt.criteria); len(got) != tt.want {
				t.Fatalf("Filter(%+v) returned %d players, want %d", tt.criteria, len(got), tt.want)
			}
		})
	}
}
