package match

import "testing"

func TestMatchHelpers(t *testing.T) {
	t.Parallel()

	m := Match{
		GlobalID:  GlobalIDFor("1970", 32),
		ID:        32,
		Year:      "1970",
		TeamA:     "Brazil",
		TeamB:     "Italy",
		TeamACode: "BRA",
		TeamBCode: "ITA",
		ScoreA:    4,
		ScoreB:    1,
	}

	if m.GlobalID != "1970-32" {
		t.Fatalf("unexpected global id %q", m.GlobalID)
	}
	if m.TotalGoals() != 5 {
		t.Fatalf("unexpected total goals %d", m.TotalGoals())
	}
	if !m.Involves("ITA") || m.Involves("GER") {
		t.Fatalf("unexpected Involves result")
	}
	if m.IsDraw() {
		t.Fatalf("4-1 is not a draw")
	}
	if got := m.Scoreline(); got != "Brazil 4 - 1 Italy" {
		t.Fatalf("unexpected scoreline %q", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		match Match
	}{
		{name: "missing year", match: Match{ID: 1, TeamACode: "A", TeamBCode: "B"}},
		{name: "missing id", match: Match{Year: "1930", TeamACode: "A", TeamBCode: "B"}},
		{name: "missing code", match: Match{Year: "1930", ID: 1, TeamACode: "A"}},
		{name: "negative score", match: Match{Year: "1930", ID: 1, TeamACode: "A", TeamBCode: "B", ScoreA: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.match.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
