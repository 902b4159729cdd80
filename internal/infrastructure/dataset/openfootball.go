package dataset

import (
	"bytes"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
)

const (
	matchesFileName = "worldcup.json"
	groupsFileName  = "worldcup.groups.json"
)

// teamRef accepts both `"team1": "Italy"` and `"team1": {"name": "Italy", "code": "ITA"}`.
type teamRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (t *teamRef) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var name string
		if err := sonic.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		t.Name = name
		return nil
	}

	type plain teamRef
	var out plain
	if err := sonic.Unmarshal(trimmed, &out); err != nil {
		return err
	}
	*t = teamRef(out)
	return nil
}

func (t teamRef) code() string {
	if code := strings.TrimSpace(t.Code); code != "" {
		return code
	}
	return strings.TrimSpace(t.Name)
}

type goalPayload struct {
	Name    string `json:"name"`
	Minute  int    `json:"minute"`
	Offset  int    `json:"offset"`
	Penalty bool   `json:"penalty"`
	OwnGoal bool   `json:"owngoal"`
}

type scorePayload struct {
	FT []int `json:"ft"`
}

type matchPayload struct {
	Num    int           `json:"num"`
	Round  string        `json:"round"`
	Date   string        `json:"date"`
	Team1  teamRef       `json:"team1"`
	Team2  teamRef       `json:"team2"`
	Score1 *int          `json:"score1"`
	Score2 *int          `json:"score2"`
	Score  *scorePayload `json:"score"`
	Goals1 []goalPayload `json:"goals1"`
	Goals2 []goalPayload `json:"goals2"`
}

func (p matchPayload) scores() (int, int) {
	var a, b int
	if p.Score1 != nil {
		a = *p.Score1
	}
	if p.Score2 != nil {
		b = *p.Score2
	}
	if p.Score1 == nil && p.Score2 == nil && p.Score != nil && len(p.Score.FT) == 2 {
		a, b = p.Score.FT[0], p.Score.FT[1]
	}
	return a, b
}

type roundPayload struct {
	Name    string         `json:"name"`
	Matches []matchPayload `json:"matches"`
}

type tournamentPayload struct {
	Name    string         `json:"name"`
	Rounds  []roundPayload `json:"rounds"`
	Matches []matchPayload `json:"matches"`
}

type groupPayload struct {
	Name  string    `json:"name"`
	Teams []teamRef `json:"teams"`
}

type groupsPayload struct {
	Name   string         `json:"name"`
	Groups []groupPayload `json:"groups"`
}

// decodeMatches flattens one tournament file into matches of the given year.
// Rounds become stages; a match without "num" takes its 1-based position.
// Records that fail validation are left out and reported in skipped; only an
// undecodable file is an error.
func decodeMatches(raw []byte, year string) (out []match.Match, skipped []error, err error) {
	var payload tournamentPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, nil, crerr.Wrapf(err, "decode %s for %s", matchesFileName, year)
	}

	type staged struct {
		stage string
		item  matchPayload
	}
	items := make([]staged, 0, len(payload.Matches))
	for _, round := range payload.Rounds {
		for _, item := range round.Matches {
			items = append(items, staged{stage: round.Name, item: item})
		}
	}
	for _, item := range payload.Matches {
		items = append(items, staged{stage: item.Round, item: item})
	}

	out = make([]match.Match, 0, len(items))
	for i, s := range items {
		number := s.item.Num
		if number <= 0 {
			number = i + 1
		}
		scoreA, scoreB := s.item.scores()
		codeA, codeB := s.item.Team1.code(), s.item.Team2.code()

		goals := make([]match.Goal, 0, len(s.item.Goals1)+len(s.item.Goals2))
		goals = appendGoals(goals, s.item.Goals1, codeA)
		goals = appendGoals(goals, s.item.Goals2, codeB)

		m := match.Match{
			GlobalID:  match.GlobalIDFor(year, number),
			ID:        number,
			Year:      year,
			Date:      strings.TrimSpace(s.item.Date),
			Stage:     strings.TrimSpace(s.stage),
			TeamA:     strings.TrimSpace(s.item.Team1.Name),
			TeamB:     strings.TrimSpace(s.item.Team2.Name),
			TeamACode: codeA,
			TeamBCode: codeB,
			ScoreA:    scoreA,
			ScoreB:    scoreB,
			Goals:     goals,
		}
		if err := m.Validate(); err != nil {
			skipped = append(skipped, crerr.Wrapf(err, "match #%d of %s", i+1, year))
			continue
		}
		out = append(out, m)
	}
	return out, skipped, nil
}

func appendGoals(dst []match.Goal, goals []goalPayload, teamCode string) []match.Goal {
	for _, g := range goals {
		dst = append(dst, match.Goal{
			Minute:   g.Minute,
			Player:   g.Name,
			TeamCode: teamCode,
		})
	}
	return dst
}

// decodeGroups follows decodeMatches: invalid team entries are skipped.
func decodeGroups(raw []byte, year string) (out []team.Team, skipped []error, err error) {
	var payload groupsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, nil, crerr.Wrapf(err, "decode %s for %s", groupsFileName, year)
	}

	out = make([]team.Team, 0, len(payload.Groups)*4)
	for _, group := range payload.Groups {
		for _, ref := range group.Teams {
			t := team.Team{Code: ref.code(), Name: strings.TrimSpace(ref.Name)}
			if err := t.Validate(); err != nil {
				skipped = append(skipped, crerr.Wrapf(err, "%s in %s", group.Name, year))
				continue
			}
			out = append(out, t)
		}
	}
	return out, skipped, nil
}

// teamsFromMatches is the fallback directory for years without a groups file.
func teamsFromMatches(matches []match.Match) []team.Team {
	seen := make(map[string]struct{})
	out := make([]team.Team, 0)
	add := func(code, name string) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		out = append(out, team.Team{Code: code, Name: name})
	}
	for _, m := range matches {
		add(m.TeamACode, m.TeamA)
		add(m.TeamBCode, m.TeamB)
	}
	return out
}
