package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("global_id", "year").
		From("worldcup_matches").
		Where(In("year", []any{"1990", "1994"}), Expr("score_a > ?", 2)).
		OrderBy("year", "match_number").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT global_id, year FROM worldcup_matches WHERE year IN ($1, $2) AND score_a > $3 ORDER BY year, match_number"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "1990" || args[1] != "1994" || args[2] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("code").From("worldcup_teams").Where(In("code", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT code FROM worldcup_teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("code").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("worldcup_goals").
		Columns("match_global_id", "seq", "minute").
		Values("1990-1", 1, 10).
		Values("1990-1", 2, 44).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO worldcup_goals (match_global_id, seq, minute) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[3] != "1990-1" || args[5] != 44 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("worldcup_teams").Columns("code", "name").Values("ARG").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Code    string `db:"code"`
		Name    string `db:"name"`
		Ignored string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModel("worldcup_teams", row{Code: "ARG", Name: "Argentina", hidden: "x"}, "ON CONFLICT (code) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO worldcup_teams (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ARG" || args[1] != "Argentina" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("worldcup_teams", "ARG", ""); err == nil {
		t.Fatalf("expected error for non struct model")
	}
}

func TestInsertModels_MultiRow(t *testing.T) {
	type teamYear struct {
		Year     string `db:"year"`
		TeamCode string `db:"team_code,omitempty"`
	}

	rows := []teamYear{{Year: "1998", TeamCode: "FRA"}, {Year: "1998", TeamCode: "BRA"}}
	query, args, err := InsertModels("worldcup_team_years", rows, "ON CONFLICT (year, team_code) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO worldcup_team_years (year, team_code) VALUES ($1, $2), ($3, $4) ON CONFLICT (year, team_code) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "BRA" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_Errors(t *testing.T) {
	type a struct {
		Code string `db:"code"`
	}
	type b struct {
		Code string `db:"code"`
	}
	type untagged struct {
		Code string
	}

	tests := []struct {
		name   string
		models []any
	}{
		{name: "empty", models: nil},
		{name: "mixed types", models: []any{a{Code: "ARG"}, b{Code: "BRA"}}},
		{name: "nil pointer", models: []any{(*a)(nil)}},
		{name: "no db columns", models: []any{untagged{Code: "ARG"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := InsertModels("worldcup_teams", tt.models, ""); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestExpr_ExtraPlaceholdersStayLiteral(t *testing.T) {
	query, args, err := Select("player").
		From("worldcup_goals").
		Where(Expr("minute > ? AND player LIKE '?%' AND team_code = ?", 45)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT player FROM worldcup_goals WHERE minute > $1 AND player LIKE '?%' AND team_code = ?"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != 45 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
