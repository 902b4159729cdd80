package memory

import (
	"context"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/player"
)

type PlayerRepository struct {
	snapshot *Snapshot
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(snapshot *Snapshot) *PlayerRepository {
	return &PlayerRepository{snapshot: snapshot}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Stats, error) {
	if r.snapshot.Empty() {
		return []player.Stats{}, nil
	}

	out := make([]player.Stats, 0, len(r.snapshot.players))
	for _, p := range r.snapshot.players {
		out = append(out, clonePlayer(p))
	}
	return out, nil
}

func (r *PlayerRepository) Get(_ context.Context, teamCode, name string) (player.Stats, bool, error) {
	if r.snapshot.Empty() {
		return player.Stats{}, false, nil
	}

	i, ok := r.snapshot.playerIndex[playerKey{teamCode: teamCode, name: player.NormalizeName(name)}]
	if !ok {
		return player.Stats{}, false, nil
	}
	return clonePlayer(r.snapshot.players[i]), true, nil
}

func clonePlayer(p player.Stats) player.Stats {
	p.YearsPlayed = append([]string(nil), p.YearsPlayed...)
	p.GoalsByMatch = append([]player.GoalDetail(nil), p.GoalsByMatch...)
	return p
}
