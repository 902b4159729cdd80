package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewPlayerService(playerRepo player.Repository, matchRepo match.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

// List filters the scorer roster and pages through it, top scorers first.
// Equal totals keep roster order.
func (s *PlayerService) List(ctx context.Context, criteria player.Criteria, page, pageSize int) (Page[player.Stats], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	if criteria.MinGoals < 0 {
		return Page[player.Stats]{}, fmt.Errorf("%w: minGoals must be >= 0", ErrInvalidInput)
	}
	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return Page[player.Stats]{}, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Page[player.Stats]{}, fmt.Errorf("list players: %w", err)
	}

	criteria.TeamCode = strings.TrimSpace(criteria.TeamCode)
	criteria.Search = strings.TrimSpace(criteria.Search)
	filtered := player.Filter(players, criteria)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalGoals > filtered[j].TotalGoals
	})

	return paginate(filtered, page, pageSize)
}

func (s *PlayerService) Get(ctx context.Context, teamCode, name string) (player.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	teamCode, err := requireTeamCode(teamCode)
	if err != nil {
		return player.Stats{}, err
	}
	name = player.NormalizeName(name)
	if name == "" {
		return player.Stats{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return player.Stats{}, err
	}

	stats, exists, err := s.playerRepo.Get(ctx, teamCode, name)
	if err != nil {
		return player.Stats{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Stats{}, fmt.Errorf("%w: player %s (%s) not found", ErrNotFound, name, teamCode)
	}
	return stats, nil
}
