package memory

import (
	"sort"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/player"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
)

// Snapshot is the frozen, fully indexed corpus shared by all repositories.
// Nothing mutates it after NewSnapshot returns.
type Snapshot struct {
	matches     []match.Match
	byGlobalID  map[string]int
	teams       []team.Team
	teamsByYear map[string][]string
	players     []player.Stats
	playerIndex map[playerKey]int
}

type playerKey struct {
	teamCode string
	name     string
}

// NewSnapshot orders matches by (year, match number) whatever the source's
// order. Every "first seen wins" tie in the calculators refers to this order.
func NewSnapshot(corpus match.Corpus) *Snapshot {
	matches := append([]match.Match(nil), corpus.Matches...)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Year != matches[j].Year {
			return matches[i].Year < matches[j].Year
		}
		return matches[i].ID < matches[j].ID
	})

	s := &Snapshot{
		matches:     matches,
		teams:       append([]team.Team(nil), corpus.Teams...),
		teamsByYear: make(map[string][]string, len(corpus.TeamsByYear)),
	}
	for year, codes := range corpus.TeamsByYear {
		s.teamsByYear[year] = append([]string(nil), codes...)
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		s.byGlobalID = make(map[string]int, len(matches))
		for i, m := range matches {
			if _, exists := s.byGlobalID[m.GlobalID]; !exists {
				s.byGlobalID[m.GlobalID] = i
			}
		}
	})
	wg.Go(func() {
		s.players = player.Aggregate(matches)
		s.playerIndex = make(map[playerKey]int, len(s.players))
		for i, p := range s.players {
			s.playerIndex[playerKey{teamCode: p.TeamCode, name: p.Name}] = i
		}
	})
	wg.Wait()

	return s
}

// Empty reports whether no matches were loaded.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.matches) == 0
}

func (s *Snapshot) MatchCount() int {
	if s == nil {
		return 0
	}
	return len(s.matches)
}
