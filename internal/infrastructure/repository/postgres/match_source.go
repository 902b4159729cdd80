package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
	qb "github.com/riskibarqy/worldcup-analytics/internal/platform/querybuilder"
)

// MatchSource reads the tournament corpus from the worldcup_* tables. An empty
// years list loads every stored tournament.
type MatchSource struct {
	db    *sqlx.DB
	years []string
}

var _ match.Source = (*MatchSource)(nil)

func NewMatchSource(db *sqlx.DB, years []string) *MatchSource {
	return &MatchSource{db: db, years: append([]string(nil), years...)}
}

func (s *MatchSource) yearValues() []any {
	values := make([]any, 0, len(s.years))
	for _, year := range s.years {
		values = append(values, year)
	}
	return values
}

func (s *MatchSource) Load(ctx context.Context) (match.Corpus, error) {
	matchRows, err := s.selectMatches(ctx)
	if err != nil {
		return match.Corpus{}, err
	}
	goalRows, err := s.selectGoals(ctx)
	if err != nil {
		return match.Corpus{}, err
	}
	teamRows, err := s.selectTeams(ctx)
	if err != nil {
		return match.Corpus{}, err
	}
	yearRows, err := s.selectTeamYears(ctx)
	if err != nil {
		return match.Corpus{}, err
	}

	return assembleCorpus(matchRows, goalRows, teamRows, yearRows), nil
}

func (s *MatchSource) selectMatches(ctx context.Context) ([]matchTableModel, error) {
	builder := qb.Select(
		"global_id", "year", "match_number", "match_date", "stage",
		"team_a", "team_b", "team_a_code", "team_b_code", "score_a", "score_b",
	).
		From("worldcup_matches").
		OrderBy("year", "match_number")
	if len(s.years) > 0 {
		builder.Where(qb.In("year", s.yearValues()))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select worldcup matches query: %w", err)
	}

	var rows []matchTableModel
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select worldcup matches: %w", err)
	}
	return rows, nil
}

func (s *MatchSource) selectGoals(ctx context.Context) ([]goalTableModel, error) {
	builder := qb.Select("match_global_id", "seq", "minute", "player", "team_code").
		From("worldcup_goals").
		OrderBy("match_global_id", "seq")
	if len(s.years) > 0 {
		builder.Where(qb.Expr(
			"match_global_id IN (SELECT global_id FROM worldcup_matches WHERE year = ANY(?))",
			pq.Array(s.years),
		))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select worldcup goals query: %w", err)
	}

	var rows []goalTableModel
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select worldcup goals: %w", err)
	}
	return rows, nil
}

func (s *MatchSource) selectTeams(ctx context.Context) ([]teamTableModel, error) {
	query, args, err := qb.Select("code", "name").
		From("worldcup_teams").
		OrderBy("name", "code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select worldcup teams query: %w", err)
	}

	var rows []teamTableModel
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select worldcup teams: %w", err)
	}
	return rows, nil
}

func (s *MatchSource) selectTeamYears(ctx context.Context) ([]teamYearTableModel, error) {
	builder := qb.Select("year", "team_code").
		From("worldcup_team_years").
		OrderBy("year", "team_code")
	if len(s.years) > 0 {
		builder.Where(qb.In("year", s.yearValues()))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select worldcup team years query: %w", err)
	}

	var rows []teamYearTableModel
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select worldcup team years: %w", err)
	}
	return rows, nil
}

func assembleCorpus(
	matchRows []matchTableModel,
	goalRows []goalTableModel,
	teamRows []teamTableModel,
	yearRows []teamYearTableModel,
) match.Corpus {
	goalsByMatch := make(map[string][]match.Goal, len(matchRows))
	for _, row := range goalRows {
		goalsByMatch[row.MatchGlobalID] = append(goalsByMatch[row.MatchGlobalID], match.Goal{
			Minute:   row.Minute,
			Player:   row.Player,
			TeamCode: row.TeamCode,
		})
	}

	corpus := match.Corpus{
		Matches:     make([]match.Match, 0, len(matchRows)),
		Teams:       make([]team.Team, 0, len(teamRows)),
		TeamsByYear: make(map[string][]string),
	}
	for _, row := range matchRows {
		goals := goalsByMatch[row.GlobalID]
		if goals == nil {
			goals = []match.Goal{}
		}
		corpus.Matches = append(corpus.Matches, match.Match{
			GlobalID:  row.GlobalID,
			ID:        row.MatchNumber,
			Year:      row.Year,
			Date:      row.MatchDate,
			Stage:     row.Stage,
			TeamA:     row.TeamA,
			TeamB:     row.TeamB,
			TeamACode: row.TeamACode,
			TeamBCode: row.TeamBCode,
			ScoreA:    row.ScoreA,
			ScoreB:    row.ScoreB,
			Goals:     goals,
		})
	}
	for _, row := range teamRows {
		corpus.Teams = append(corpus.Teams, team.Team{Code: row.Code, Name: row.Name})
	}
	for _, row := range yearRows {
		corpus.TeamsByYear[row.Year] = append(corpus.TeamsByYear[row.Year], row.TeamCode)
	}

	return corpus
}
