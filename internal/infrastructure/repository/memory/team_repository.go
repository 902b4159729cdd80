package memory

import (
	"context"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
)

type TeamRepository struct {
	snapshot *Snapshot
}

var _ team.Repository = (*TeamRepository)(nil)

func NewTeamRepository(snapshot *Snapshot) *TeamRepository {
	return &TeamRepository{snapshot: snapshot}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	if r.snapshot == nil {
		return []team.Team{}, nil
	}

	out := make([]team.Team, 0, len(r.snapshot.teams))
	out = append(out, r.snapshot.teams...)
	return out, nil
}

func (r *TeamRepository) ListCodesByYear(_ context.Context, year string) ([]string, bool, error) {
	if r.snapshot == nil {
		return nil, false, nil
	}

	codes, ok := r.snapshot.teamsByYear[year]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), codes...), true, nil
}
