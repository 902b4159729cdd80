package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/teamrecord"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/cache"
)

const (
	TeamSortName = "name"
	TeamSortCode = "code"
)

type TeamService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	cache     *cache.Cache
}

func NewTeamService(teamRepo team.Repository, matchRepo match.Repository, resultCache *cache.Cache) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		cache:     resultCache,
	}
}

// ListTeams returns the team directory, optionally narrowed to one tournament.
// A tournament year without a roster yields an empty list. Sorting is by name
// unless sortBy is "code".
func (s *TeamService) ListTeams(ctx context.Context, year, sortBy string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	year = strings.TrimSpace(year)
	if year != "" {
		codes, exists, err := s.teamRepo.ListCodesByYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("list team codes by year: %w", err)
		}
		if !exists {
			return []team.Team{}, nil
		}

		participating := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			participating[code] = struct{}{}
		}
		filtered := make([]team.Team, 0, len(codes))
		for _, t := range teams {
			if _, ok := participating[t.Code]; ok {
				filtered = append(filtered, t)
			}
		}
		teams = filtered
	}

	if strings.TrimSpace(sortBy) == TeamSortCode {
		sort.SliceStable(teams, func(i, j int) bool { return teams[i].Code < teams[j].Code })
	} else {
		sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	}

	return teams, nil
}

func (s *TeamService) Stats(ctx context.Context, teamCode string) (teamrecord.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Stats")
	defer span.End()

	teamCode, err := requireTeamCode(teamCode)
	if err != nil {
		return teamrecord.Stats{}, err
	}

	return cache.Remember(ctx, s.cache, "teams:stats:"+teamCode, func(ctx context.Context) (teamrecord.Stats, error) {
		matches, err := loadCorpus(ctx, s.matchRepo)
		if err != nil {
			return teamrecord.Stats{}, err
		}
		return teamrecord.Compute(matches, teamCode), nil
	})
}

func (s *TeamService) Trends(ctx context.Context, teamCode string) ([]teamrecord.YearStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Trends")
	defer span.End()

	teamCode, err := requireTeamCode(teamCode)
	if err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, "teams:trends:"+teamCode, func(ctx context.Context) ([]teamrecord.YearStats, error) {
		matches, err := loadCorpus(ctx, s.matchRepo)
		if err != nil {
			return nil, err
		}
		return teamrecord.Trends(matches, teamCode), nil
	})
}

func (s *TeamService) Rivals(ctx context.Context, teamCode string) ([]teamrecord.Rival, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Rivals")
	defer span.End()

	teamCode, err := requireTeamCode(teamCode)
	if err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, "teams:rivals:"+teamCode, func(ctx context.Context) ([]teamrecord.Rival, error) {
		matches, err := loadCorpus(ctx, s.matchRepo)
		if err != nil {
			return nil, err
		}
		return teamrecord.Rivals(matches, teamCode), nil
	})
}

// HeadToHead lists every meeting between two teams with the win/draw tally.
func (s *TeamService) HeadToHead(ctx context.Context, teamA, teamB string) (teamrecord.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.HeadToHead")
	defer span.End()

	teamA, err := requireTeamCode(teamA)
	if err != nil {
		return teamrecord.HeadToHead{}, err
	}
	teamB, err = requireTeamCode(teamB)
	if err != nil {
		return teamrecord.HeadToHead{}, err
	}

	matches, err := loadCorpus(ctx, s.matchRepo)
	if err != nil {
		return teamrecord.HeadToHead{}, err
	}
	return teamrecord.CompareHeadToHead(matches, teamA, teamB), nil
}

func requireTeamCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", fmt.Errorf("%w: team code is required", ErrInvalidInput)
	}
	return code, nil
}
