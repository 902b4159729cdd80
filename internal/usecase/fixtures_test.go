package usecase

import (
	"time"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/cache"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

// 2014-1 BRA 3-1 CRO (11, 29, 71, 88), 2014-50 BRA 1-1 CHI (18, 32),
// 2018-1 RUS 2-0 KSA (12, 91).
func fixtureMatches() []match.Match {
	return []match.Match{
		{
			GlobalID: "2014-1", ID: 1, Year: "2014", Date: "2014-06-12", Stage: "Group A",
			TeamA: "Brazil", TeamB: "Croatia", TeamACode: "BRA", TeamBCode: "CRO", ScoreA: 3, ScoreB: 1,
			Goals: []match.Goal{
				{Minute: 11, Player: "Marcelo", TeamCode: "CRO"},
				{Minute: 29, Player: "Neymar", TeamCode: "BRA"},
				{Minute: 71, Player: "Neymar", TeamCode: "BRA"},
				{Minute: 88, Player: "Oscar", TeamCode: "BRA"},
			},
		},
		{
			GlobalID: "2014-50", ID: 50, Year: "2014", Date: "2014-06-28", Stage: "Round of 16",
			TeamA: "Brazil", TeamB: "Chile", TeamACode: "BRA", TeamBCode: "CHI", ScoreA: 1, ScoreB: 1,
			Goals: []match.Goal{
				{Minute: 18, Player: "David Luiz", TeamCode: "BRA"},
				{Minute: 32, Player: "Sánchez", TeamCode: "CHI"},
			},
		},
		{
			GlobalID: "2018-1", ID: 1, Year: "2018", Date: "2018-06-14", Stage: "Group A",
			TeamA: "Russia", TeamB: "Saudi Arabia", TeamACode: "RUS", TeamBCode: "KSA", ScoreA: 2, ScoreB: 0,
			Goals: []match.Goal{
				{Minute: 12, Player: "Gazinsky", TeamCode: "RUS"},
				{Minute: 91, Player: "Cheryshev", TeamCode: "RUS"},
			},
		},
	}
}

func newTestCache() *cache.Cache {
	return cache.New(cache.NewStore(time.Minute), logging.NewNop())
}
