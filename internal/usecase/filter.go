package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

// MatchFilter narrows the corpus before any aggregation runs. Empty fields are
// ignored. Stage, TeamA and TeamB are case-insensitive substring matches; TeamA
// looks at the first side's name or code, TeamB at the second side's. TeamCode
// is an exact code on either side. Dates compare as YYYY-MM-DD strings.
type MatchFilter struct {
	Year     string
	Stage    string
	TeamA    string
	TeamB    string
	TeamCode string
	DateFrom string
	DateTo   string
}

func (f MatchFilter) normalize() MatchFilter {
	return MatchFilter{
		Year:     strings.TrimSpace(f.Year),
		Stage:    strings.ToLower(strings.TrimSpace(f.Stage)),
		TeamA:    strings.ToLower(strings.TrimSpace(f.TeamA)),
		TeamB:    strings.ToLower(strings.TrimSpace(f.TeamB)),
		TeamCode: strings.TrimSpace(f.TeamCode),
		DateFrom: strings.TrimSpace(f.DateFrom),
		DateTo:   strings.TrimSpace(f.DateTo),
	}
}

func (f MatchFilter) key() string {
	n := f.normalize()
	return fmt.Sprintf("y=%s|s=%s|a=%s|b=%s|t=%s|from=%s|to=%s",
		n.Year, n.Stage, n.TeamA, n.TeamB, n.TeamCode, n.DateFrom, n.DateTo)
}

// accepts expects a normalized filter.
func (f MatchFilter) accepts(m match.Match) bool {
	if f.Year != "" && m.Year != f.Year {
		return false
	}
	if f.Stage != "" && !strings.Contains(strings.ToLower(m.Stage), f.Stage) {
		return false
	}
	if f.TeamA != "" && !containsFold(m.TeamA, m.TeamACode, f.TeamA) {
		return false
	}
	if f.TeamB != "" && !containsFold(m.TeamB, m.TeamBCode, f.TeamB) {
		return false
	}
	if f.TeamCode != "" && !m.Involves(f.TeamCode) {
		return false
	}
	if f.DateFrom != "" && m.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && m.Date > f.DateTo {
		return false
	}
	return true
}

func containsFold(name, code, needle string) bool {
	return strings.Contains(strings.ToLower(name), needle) || strings.Contains(strings.ToLower(code), needle)
}

// Apply returns the matches accepted by the filter, preserving order.
func (f MatchFilter) Apply(matches []match.Match) []match.Match {
	n := f.normalize()
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if n.accepts(m) {
			out = append(out, m)
		}
	}
	return out
}

// loadCorpus fetches every match and reports ErrDependencyUnavailable while
// nothing has been loaded.
func loadCorpus(ctx context.Context, repo match.Repository) ([]match.Match, error) {
	matches, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: match data not loaded", ErrDependencyUnavailable)
	}
	return matches, nil
}

func ensureLoaded(ctx context.Context, repo match.Repository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count matches: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: match data not loaded", ErrDependencyUnavailable)
	}
	return nil
}

// Page is the pagination envelope shared by list endpoints.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Page[T]{}, fmt.Errorf("%w: pageSize must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)
	return Page[T]{
		Data: data,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: (total + pageSize - 1) / pageSize,
		},
	}, nil
}
