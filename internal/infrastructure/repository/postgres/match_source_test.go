package postgres

import (
	"testing"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	qb "github.com/riskibarqy/worldcup-analytics/internal/platform/querybuilder"
)

func TestAssembleCorpus(t *testing.T) {
	corpus := assembleCorpus(
		[]matchTableModel{
			{GlobalID: "1930-1", Year: "1930", MatchNumber: 1, MatchDate: "1930-07-13", Stage: "Group 1", TeamA: "France", TeamB: "Mexico", TeamACode: "FRA", TeamBCode: "MEX", ScoreA: 4, ScoreB: 1},
			{GlobalID: "1930-2", Year: "1930", MatchNumber: 2, TeamA: "USA", TeamB: "Belgium", TeamACode: "USA", TeamBCode: "BEL"},
		},
		[]goalTableModel{
			{MatchGlobalID: "1930-1", Seq: 1, Minute: 19, Player: "Laurent", TeamCode: "FRA"},
			{MatchGlobalID: "1930-1", Seq: 2, Minute: 40, Player: "Langiller", TeamCode: "FRA"},
		},
		[]teamTableModel{{Code: "FRA", Name: "France"}},
		[]teamYearTableModel{{Year: "1930", TeamCode: "FRA"}, {Year: "1930", TeamCode: "MEX"}},
	)

	if len(corpus.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(corpus.Matches))
	}
	first := corpus.Matches[0]
	if first.ID != 1 || first.Date != "1930-07-13" || first.ScoreA != 4 {
		t.Fatalf("unexpected first match: %+v", first)
	}
	if len(first.Goals) != 2 || first.Goals[1].Player != "Langiller" {
		t.Fatalf("unexpected goals: %+v", first.Goals)
	}
	if corpus.Matches[1].Goals == nil {
		t.Fatalf("expected empty non-nil goals for goalless match")
	}
	if got := corpus.TeamsByYear["1930"]; len(got) != 2 || got[1] != "MEX" {
		t.Fatalf("unexpected team years: %+v", got)
	}
	if len(corpus.Teams) != 1 || corpus.Teams[0].Name != "France" {
		t.Fatalf("unexpected teams: %+v", corpus.Teams)
	}
}

func TestGoalRowsInsert(t *testing.T) {
	m := match.Match{
		GlobalID: "2014-57",
		Goals: []match.Goal{
			{Minute: 8, Player: "Kroos", TeamCode: "GER"},
			{Minute: 90, Player: "Oscar", TeamCode: "BRA"},
		},
	}

	query, args, err := qb.InsertModels("worldcup_goals", goalRowsFromDomain(m), "")
	if err != nil {
		t.Fatalf("build goals insert: %v", err)
	}

	want := "INSERT INTO worldcup_goals (match_global_id, seq, minute, player, team_code) VALUES ($1, $2, $3, $4, $5), ($6, $7, $8, $9, $10)"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 10 || args[5] != "2014-57" || args[6] != 2 || args[8] != "Oscar" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestMatchRowFromDomain(t *testing.T) {
	row := matchRowFromDomain(match.Match{GlobalID: "2022-64", ID: 64, Year: "2022", TeamACode: "ARG", TeamBCode: "FRA", ScoreA: 3, ScoreB: 3})
	if row.MatchNumber != 64 || row.Year != "2022" || row.ScoreB != 3 {
		t.Fatalf("unexpected row: %+v", row)
	}
}
