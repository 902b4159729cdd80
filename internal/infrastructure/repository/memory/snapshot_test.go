package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/team"
)

func sampleCorpus() match.Corpus {
	return match.Corpus{
		Matches: []match.Match{
			{
				GlobalID: "2018-2", ID: 2, Year: "2018", Date: "2018-06-15", Stage: "Group A",
				TeamA: "Egypt", TeamB: "Uruguay", TeamACode: "EGY", TeamBCode: "URU", ScoreA: 0, ScoreB: 1,
				Goals: []match.Goal{{Minute: 89, Player: "Giménez", TeamCode: "URU"}},
			},
			{
				GlobalID: "2014-1", ID: 1, Year: "2014", Date: "2014-06-12", Stage: "Group A",
				TeamA: "Brazil", TeamB: "Croatia", TeamACode: "BRA", TeamBCode: "CRO", ScoreA: 3, ScoreB: 1,
				Goals: []match.Goal{
					{Minute: 11, Player: "Marcelo", TeamCode: "CRO"},
					{Minute: 29, Player: "Neymar", TeamCode: "BRA"},
					{Minute: 71, Player: "Neymar", TeamCode: "BRA"},
					{Minute: 90, Player: "Oscar", TeamCode: "BRA"},
				},
			},
			{
				GlobalID: "2018-1", ID: 1, Year: "2018", Date: "2018-06-14", Stage: "Group A",
				TeamA: "Russia", TeamB: "Saudi Arabia", TeamACode: "RUS", TeamBCode: "KSA", ScoreA: 5, ScoreB: 0,
			},
		},
		Teams: []team.Team{{Code: "BRA", Name: "Brazil"}, {Code: "URU", Name: "Uruguay"}},
		TeamsByYear: map[string][]string{
			"2014": {"BRA", "CRO"},
		},
	}
}

func TestSnapshot_OrdersByYearThenNumber(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(NewSnapshot(sampleCorpus()))
	matches, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.GlobalID)
	}
	assert.Equal(t, []string{"2014-1", "2018-1", "2018-2"}, ids)
}

func TestSnapshot_RosterFollowsMatchOrder(t *testing.T) {
	t.Parallel()

	// sampleCorpus lists 2018-2 first; its scorer still comes after the 2014 ones.
	players, err := NewPlayerRepository(NewSnapshot(sampleCorpus())).List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Marcelo", "Neymar", "Oscar", "Giménez"}, names)
}

func TestSnapshot_DoesNotAliasCorpus(t *testing.T) {
	t.Parallel()

	corpus := sampleCorpus()
	snapshot := NewSnapshot(corpus)
	corpus.Matches[0].TeamA = "mutated"
	corpus.TeamsByYear["2014"][0] = "XXX"

	m, ok, err := NewMatchRepository(snapshot).GetByGlobalID(context.Background(), "2018-2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Egypt", m.TeamA)

	codes, ok, err := NewTeamRepository(snapshot).ListCodesByYear(context.Background(), "2014")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"BRA", "CRO"}, codes)
}

func TestMatchRepository_Lookup(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(NewSnapshot(sampleCorpus()))
	ctx := context.Background()

	m, ok, err := repo.GetByYearAndNumber(ctx, "2014", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Brazil", m.TeamA)

	_, ok, err = repo.GetByGlobalID(ctx, "1930-99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTeamRepository(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(NewSnapshot(sampleCorpus()))
	ctx := context.Background()

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	_, ok, err := repo.ListCodesByYear(ctx, "1966")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlayerRepository(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(NewSnapshot(sampleCorpus()))
	ctx := context.Background()

	players, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 4)

	neymar, ok, err := repo.Get(ctx, "BRA", "Neymar")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, neymar.TotalGoals)
	assert.Equal(t, 1, neymar.MatchesWithGoal)

	neymar.GoalsByMatch[0].Opponent = "mutated"
	again, _, err := repo.Get(ctx, "BRA", "Neymar")
	require.NoError(t, err)
	assert.Equal(t, "Croatia", again.GoalsByMatch[0].Opponent)

	_, ok, err = repo.Get(ctx, "CRO", "Neymar")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptySnapshot(t *testing.T) {
	t.Parallel()

	snapshot := NewSnapshot(match.Corpus{})
	assert.True(t, snapshot.Empty())
	assert.Equal(t, 0, snapshot.MatchCount())

	matches, err := NewMatchRepository(snapshot).ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)

	var nilSnapshot *Snapshot
	assert.True(t, nilSnapshot.Empty())
}
