package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/goals"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/cache"
)

const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 50
	MaxBinSize          = 45
)

type GoalService struct {
	matchRepo match.Repository
	cache     *cache.Cache
}

func NewGoalService(matchRepo match.Repository, resultCache *cache.Cache) *GoalService {
	return &GoalService{
		matchRepo: matchRepo,
		cache:     resultCache,
	}
}

// filtered is the common path of every filter-keyed aggregate: load, narrow,
// compute, all behind the result cache.
func filtered[T any](ctx context.Context, s *GoalService, name string, filter MatchFilter, compute func([]match.Match) T) (T, error) {
	return cache.Remember(ctx, s.cache, "goals:"+name+":"+filter.key(), func(ctx context.Context) (T, error) {
		matches, err := loadCorpus(ctx, s.matchRepo)
		if err != nil {
			var zero T
			return zero, err
		}
		return compute(filter.Apply(matches)), nil
	})
}

func (s *GoalService) Summary(ctx context.Context, filter MatchFilter) (goals.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Summary")
	defer span.End()

	return filtered(ctx, s, "summary", filter, goals.Summarize)
}

func (s *GoalService) Rankings(ctx context.Context, filter MatchFilter, sortBy string, limit int) ([]goals.TeamRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Rankings")
	defer span.End()

	by := goals.SortByGoalsFor
	if strings.TrimSpace(sortBy) != "" {
		parsed, ok := goals.ParseSortBy(sortBy)
		if !ok {
			return nil, fmt.Errorf("%w: sort must be one of gf, ga, gd, avgGf", ErrInvalidInput)
		}
		by = parsed
	}
	if limit < 1 || limit > MaxRankingLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxRankingLimit)
	}

	name := "rankings:" + string(by) + ":" + strconv.Itoa(limit)
	return filtered(ctx, s, name, filter, func(matches []match.Match) []goals.TeamRanking {
		return goals.Rankings(matches, by, limit)
	})
}

func (s *GoalService) HeadToHeadSummary(ctx context.Context, filter MatchFilter, teamA, teamB string) (goals.H2HSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.HeadToHeadSummary")
	defer span.End()

	teamA, err := requireTeamCode(teamA)
	if err != nil {
		return goals.H2HSummary{}, err
	}
	teamB, err = requireTeamCode(teamB)
	if err != nil {
		return goals.H2HSummary{}, err
	}

	return filtered(ctx, s, "h2h:"+teamA+":"+teamB, filter, func(matches []match.Match) goals.H2HSummary {
		return goals.HeadToHeadSummary(matches, teamA, teamB)
	})
}

func (s *GoalService) StageSummary(ctx context.Context, filter MatchFilter) ([]goals.StageBucket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.StageSummary")
	defer span.End()

	return filtered(ctx, s, "stages", filter, goals.StageSummary)
}

func (s *GoalService) MinuteDistribution(ctx context.Context, filter MatchFilter, binSize int) ([]goals.MinuteBin, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.MinuteDistribution")
	defer span.End()

	if binSize < 1 || binSize > MaxBinSize {
		return nil, fmt.Errorf("%w: bins must be between 1 and %d", ErrInvalidInput, MaxBinSize)
	}

	return filtered(ctx, s, "minutes:"+strconv.Itoa(binSize), filter, func(matches []match.Match) []goals.MinuteBin {
		return goals.MinuteDistribution(matches, binSize)
	})
}

func (s *GoalService) TimeSplit(ctx context.Context, filter MatchFilter, mode string) (goals.Split, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.TimeSplit")
	defer span.End()

	splitMode := goals.ModeHalves
	if m := strings.TrimSpace(mode); m != "" && goals.SplitMode(m) != goals.ModeHalves {
		return goals.Split{}, fmt.Errorf("%w: mode must be halves", ErrInvalidInput)
	}

	return filtered(ctx, s, "split:"+string(splitMode), filter, func(matches []match.Match) goals.Split {
		return goals.TimeSplit(matches, splitMode)
	})
}

func (s *GoalService) Timeline(ctx context.Context, globalID string) ([]goals.TimelineEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Timeline")
	defer span.End()

	globalID = strings.TrimSpace(globalID)
	if globalID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return nil, err
	}

	m, exists, err := s.matchRepo.GetByGlobalID(ctx, globalID)
	if err != nil {
		return nil, fmt.Errorf("get match by global id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match %s not found", ErrNotFound, globalID)
	}
	return goals.Timeline(m), nil
}

// Records returns nil when the filtered subset is empty.
func (s *GoalService) Records(ctx context.Context, filter MatchFilter) (*goals.RecordBook, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Records")
	defer span.End()

	return filtered(ctx, s, "records", filter, goals.Records)
}
