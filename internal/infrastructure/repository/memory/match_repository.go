package memory

import (
	"context"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

type MatchRepository struct {
	snapshot *Snapshot
}

var _ match.Repository = (*MatchRepository)(nil)

func NewMatchRepository(snapshot *Snapshot) *MatchRepository {
	return &MatchRepository{snapshot: snapshot}
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	if r.snapshot.Empty() {
		return []match.Match{}, nil
	}

	out := make([]match.Match, 0, len(r.snapshot.matches))
	out = append(out, r.snapshot.matches...)
	return out, nil
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	return r.snapshot.MatchCount(), nil
}

func (r *MatchRepository) GetByGlobalID(_ context.Context, globalID string) (match.Match, bool, error) {
	if r.snapshot.Empty() {
		return match.Match{}, false, nil
	}

	i, ok := r.snapshot.byGlobalID[globalID]
	if !ok {
		return match.Match{}, false, nil
	}
	return r.snapshot.matches[i], true, nil
}

func (r *MatchRepository) GetByYearAndNumber(ctx context.Context, year string, number int) (match.Match, bool, error) {
	return r.GetByGlobalID(ctx, match.GlobalIDFor(year, number))
}
