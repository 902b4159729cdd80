package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	qb "github.com/riskibarqy/worldcup-analytics/internal/platform/querybuilder"
)

// MatchWriter upserts a loaded corpus so MatchSource can serve it later.
type MatchWriter struct {
	db *sqlx.DB
}

func NewMatchWriter(db *sqlx.DB) *MatchWriter {
	return &MatchWriter{db: db}
}

// Import replaces every stored match (and its goals) that appears in the
// corpus. Matches absent from the corpus are left untouched.
func (w *MatchWriter) Import(ctx context.Context, corpus match.Corpus) error {
	if len(corpus.Matches) == 0 && len(corpus.Teams) == 0 {
		return nil
	}

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx import worldcup corpus: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range corpus.Teams {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("validate team code=%s: %w", t.Code, err)
		}
		query, args, err := qb.InsertModel("worldcup_teams", teamTableModel{
			Code: strings.TrimSpace(t.Code),
			Name: strings.TrimSpace(t.Name),
		}, `ON CONFLICT (code)
DO UPDATE SET
    name = EXCLUDED.name,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team code=%s: %w", t.Code, err)
		}
	}

	years := make([]string, 0, len(corpus.TeamsByYear))
	for year := range corpus.TeamsByYear {
		years = append(years, year)
	}
	sort.Strings(years)
	for _, year := range years {
		codes := corpus.TeamsByYear[year]
		if len(codes) == 0 {
			continue
		}
		rows := make([]teamYearTableModel, len(codes))
		for i, code := range codes {
			rows[i] = teamYearTableModel{Year: year, TeamCode: code}
		}
		query, args, err := qb.InsertModels("worldcup_team_years", rows, `ON CONFLICT (year, team_code) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("build insert team years query year=%s: %w", year, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team years year=%s: %w", year, err)
		}
	}

	for _, m := range corpus.Matches {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validate match global_id=%s: %w", m.GlobalID, err)
		}
		if err := upsertMatch(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import worldcup corpus tx: %w", err)
	}
	return nil
}

func upsertMatch(ctx context.Context, tx *sqlx.Tx, m match.Match) error {
	query, args, err := qb.InsertModel("worldcup_matches", matchRowFromDomain(m), `ON CONFLICT (global_id)
DO UPDATE SET
    match_date = EXCLUDED.match_date,
    stage = EXCLUDED.stage,
    team_a = EXCLUDED.team_a,
    team_b = EXCLUDED.team_b,
    team_a_code = EXCLUDED.team_a_code,
    team_b_code = EXCLUDED.team_b_code,
    score_a = EXCLUDED.score_a,
    score_b = EXCLUDED.score_b,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match global_id=%s: %w", m.GlobalID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM worldcup_goals WHERE match_global_id = $1`, m.GlobalID); err != nil {
		return fmt.Errorf("delete goals global_id=%s: %w", m.GlobalID, err)
	}
	if len(m.Goals) == 0 {
		return nil
	}

	goalQuery, goalArgs, err := qb.InsertModels("worldcup_goals", goalRowsFromDomain(m), "")
	if err != nil {
		return fmt.Errorf("build insert goals query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, goalQuery, goalArgs...); err != nil {
		return fmt.Errorf("insert goals global_id=%s: %w", m.GlobalID, err)
	}
	return nil
}

func matchRowFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		GlobalID:    m.GlobalID,
		Year:        m.Year,
		MatchNumber: m.ID,
		MatchDate:   m.Date,
		Stage:       m.Stage,
		TeamA:       m.TeamA,
		TeamB:       m.TeamB,
		TeamACode:   m.TeamACode,
		TeamBCode:   m.TeamBCode,
		ScoreA:      m.ScoreA,
		ScoreB:      m.ScoreB,
	}
}

func goalRowsFromDomain(m match.Match) []goalTableModel {
	rows := make([]goalTableModel, len(m.Goals))
	for i, g := range m.Goals {
		rows[i] = goalTableModel{
			MatchGlobalID: m.GlobalID,
			Seq:           i + 1,
			Minute:        g.Minute,
			Player:        g.Player,
			TeamCode:      g.TeamCode,
		}
	}
	return rows
}
