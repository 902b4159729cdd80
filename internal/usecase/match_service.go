package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// ListAll returns the whole corpus in load order.
func (s *MatchService) ListAll(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListAll")
	defer span.End()

	return loadCorpus(ctx, s.matchRepo)
}

// Search filters, sorts newest first (date then match number, both descending)
// and paginates.
func (s *MatchService) Search(ctx context.Context, filter MatchFilter, page, pageSize int) (Page[match.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Search")
	defer span.End()

	matches, err := loadCorpus(ctx, s.matchRepo)
	if err != nil {
		return Page[match.Match]{}, err
	}

	filtered := filter.Apply(matches)
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].ID > filtered[j].ID
	})

	return paginate(filtered, page, pageSize)
}

func (s *MatchService) GetByGlobalID(ctx context.Context, globalID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByGlobalID")
	defer span.End()

	globalID = strings.TrimSpace(globalID)
	if globalID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return match.Match{}, err
	}

	m, exists, err := s.matchRepo.GetByGlobalID(ctx, globalID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by global id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s not found", ErrNotFound, globalID)
	}
	return m, nil
}

func (s *MatchService) GetByYearAndNumber(ctx context.Context, year string, number int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByYearAndNumber")
	defer span.End()

	year = strings.TrimSpace(year)
	if year == "" {
		return match.Match{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if number < 1 {
		return match.Match{}, fmt.Errorf("%w: match number must be > 0", ErrInvalidInput)
	}
	if err := ensureLoaded(ctx, s.matchRepo); err != nil {
		return match.Match{}, err
	}

	m, exists, err := s.matchRepo.GetByYearAndNumber(ctx, year, number)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by year and number: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s not found", ErrNotFound, match.GlobalIDFor(year, number))
	}
	return m, nil
}
