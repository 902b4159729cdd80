// Package dataset loads the per-year openfootball World Cup files from disk.
package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

const defaultWorkers = 4

type Config struct {
	Dir     string
	Years   []string
	Workers int
}

// Loader reads {Dir}/{year}/worldcup.json and worldcup.groups.json for each year.
type Loader struct {
	cfg    Config
	logger *logging.Logger
}

var _ match.Source = (*Loader)(nil)

func NewLoader(cfg Config, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkers
	}
	return &Loader{cfg: cfg, logger: logger}
}

type yearData struct {
	year      string
	matches   []match.Match
	teams     []team.Team
	hasGroups bool
}

func (l *Loader) Load(ctx context.Context) (match.Corpus, error) {
	started := time.Now()

	years, err := l.years()
	if err != nil {
		return match.Corpus{}, err
	}

	results := make([]yearData, len(years))
	errs := make([]error, len(years))

	pool, err := ants.NewPool(l.cfg.Workers)
	if err != nil {
		return match.Corpus{}, crerr.Wrap(err, "create dataset worker pool")
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, year := range years {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = l.loadYear(year)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return match.Corpus{}, crerr.Wrap(err, "submit dataset year to worker pool")
		}
	}
	workers.Wait()

	for i, err := range errs {
		if err != nil {
			return match.Corpus{}, crerr.Wrapf(err, "load dataset year %s", years[i])
		}
	}

	corpus := assemble(results)
	l.logger.InfoContext(ctx, "dataset loaded",
		"dir", l.cfg.Dir,
		"years", len(years),
		"matches", len(corpus.Matches),
		"teams", len(corpus.Teams),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return corpus, nil
}

// years returns the configured years, or every numeric directory under Dir.
func (l *Loader) years() ([]string, error) {
	if len(l.cfg.Years) > 0 {
		out := append([]string(nil), l.cfg.Years...)
		sort.Strings(out)
		return out, nil
	}

	entries, err := os.ReadDir(l.cfg.Dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "read datasets dir %q", l.cfg.Dir)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}
		out = append(out, entry.Name())
	}
	sort.Strings(out)
	return out, nil
}

func (l *Loader) loadYear(year string) (yearData, error) {
	out := yearData{year: year}
	dir := filepath.Join(l.cfg.Dir, year)

	raw, err := readOptional(filepath.Join(dir, groupsFileName))
	if err != nil {
		return yearData{}, err
	}
	if raw != nil {
		var skipped []error
		out.teams, skipped, err = decodeGroups(raw, year)
		if err != nil {
			return yearData{}, err
		}
		l.warnSkipped(year, groupsFileName, skipped)
		out.hasGroups = true
	}

	raw, err = readOptional(filepath.Join(dir, matchesFileName))
	if err != nil {
		return yearData{}, err
	}
	if raw != nil {
		var skipped []error
		out.matches, skipped, err = decodeMatches(raw, year)
		if err != nil {
			return yearData{}, err
		}
		l.warnSkipped(year, matchesFileName, skipped)
	} else {
		l.logger.Warn("dataset year has no matches file", "year", year, "dir", dir)
	}

	if !out.hasGroups {
		out.teams = teamsFromMatches(out.matches)
	}
	return out, nil
}

func (l *Loader) warnSkipped(year, file string, skipped []error) {
	for _, err := range skipped {
		l.logger.Warn("dataset record skipped", "year", year, "file", file, "error", err)
	}
}

func readOptional(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if crerr.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s", path)
	}
	return raw, nil
}

// assemble merges per-year results. Later years win when a team code repeats.
func assemble(results []yearData) match.Corpus {
	corpus := match.Corpus{
		Matches:     make([]match.Match, 0),
		TeamsByYear: make(map[string][]string, len(results)),
	}

	directory := make(map[string]team.Team)
	for _, r := range results {
		corpus.Matches = append(corpus.Matches, r.matches...)

		codes := make([]string, 0, len(r.teams))
		for _, t := range r.teams {
			directory[t.Code] = t
			codes = append(codes, t.Code)
		}
		if len(codes) > 0 {
			corpus.TeamsByYear[r.year] = codes
		}
	}

	corpus.Teams = make([]team.Team, 0, len(directory))
	for _, t := range directory {
		corpus.Teams = append(corpus.Teams, t)
	}
	sort.Slice(corpus.Teams, func(i, j int) bool {
		if corpus.Teams[i].Name != corpus.Teams[j].Name {
			return corpus.Teams[i].Name < corpus.Teams[j].Name
		}
		return corpus.Teams[i].Code < corpus.Teams[j].Code
	})
	return corpus
}
