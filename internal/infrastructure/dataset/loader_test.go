package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

const rounds1990 = `{
  "name": "World Cup 1990",
  "rounds": [
    {
      "name": "Matchday 1",
      "matches": [
        {
          "num": 1,
          "date": "1990-06-08",
          "team1": {"name": "Argentina", "code": "ARG"},
          "team2": {"name": "Cameroon", "code": "CMR"},
          "score1": 0,
          "score2": 1,
          "goals1": [],
          "goals2": [{"name": "Omam-Biyik", "minute": 67}]
        }
      ]
    },
    {
      "name": "Final",
      "matches": [
        {
          "num": 52,
          "date": "1990-07-08",
          "team1": {"name": "West Germany", "code": "FRG"},
          "team2": {"name": "Argentina", "code": "ARG"},
          "score1": 1,
          "score2": 0,
          "goals1": [{"name": "Brehme", "minute": 85, "penalty": true}]
        }
      ]
    }
  ]
}`

const groups1990 = `{
  "name": "World Cup 1990",
  "groups": [
    {"name": "Group B", "teams": [{"name": "Argentina", "code": "ARG"}, {"name": "Cameroon", "code": "CMR"}]},
    {"name": "Group D", "teams": [{"name": "West Germany", "code": "FRG"}]}
  ]
}`

const flat2018 = `{
  "name": "World Cup 2018",
  "matches": [
    {
      "round": "Matchday 1",
      "date": "2018-06-14",
      "team1": "Russia",
      "team2": "Saudi Arabia",
      "score": {"ft": [5, 0]},
      "goals1": [{"name": "Gazinsky", "minute": 12}, {"name": "Cheryshev", "minute": 90, "offset": 1}]
    },
    {
      "round": "Round of 16",
      "date": "2018-06-30",
      "team1": "France",
      "team2": "Argentina",
      "score": {"ft": [4, 3]}
    }
  ]
}`

func writeFile(t *testing.T, dir, year, name, content string) {
	t.Helper()
	yearDir := filepath.Join(dir, year)
	require.NoError(t, os.MkdirAll(yearDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(yearDir, name), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "1990", matchesFileName, rounds1990)
	writeFile(t, dir, "1990", groupsFileName, groups1990)
	writeFile(t, dir, "2018", matchesFileName, flat2018)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))

	corpus, err := NewLoader(Config{Dir: dir, Workers: 2}, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus.Matches, 4)

	first := corpus.Matches[0]
	assert.Equal(t, "1990-1", first.GlobalID)
	assert.Equal(t, "Matchday 1", first.Stage)
	assert.Equal(t, "CMR", first.TeamBCode)
	require.Len(t, first.Goals, 1)
	assert.Equal(t, "CMR", first.Goals[0].TeamCode)
	assert.Equal(t, 67, first.Goals[0].Minute)

	final := corpus.Matches[1]
	assert.Equal(t, "1990-52", final.GlobalID)
	assert.Equal(t, "Final", final.Stage)
	assert.Equal(t, "FRG", final.Goals[0].TeamCode)

	russia := corpus.Matches[2]
	assert.Equal(t, "2018-1", russia.GlobalID)
	assert.Equal(t, "Russia", russia.TeamACode, "code falls back to the team name")
	assert.Equal(t, 5, russia.ScoreA)
	assert.Equal(t, 90, russia.Goals[1].Minute)
	assert.Equal(t, "2018-2", corpus.Matches[3].GlobalID)
	assert.Equal(t, "Round of 16", corpus.Matches[3].Stage)
	assert.Empty(t, corpus.Matches[3].Goals)

	assert.Equal(t, []string{"ARG", "CMR", "FRG"}, corpus.TeamsByYear["1990"])
	assert.Len(t, corpus.TeamsByYear["2018"], 4)

	names := make([]string, 0, len(corpus.Teams))
	for _, tm := range corpus.Teams {
		names = append(names, tm.Name)
	}
	assert.Equal(t, []string{"Argentina", "Argentina", "Cameroon", "France", "Russia", "Saudi Arabia", "West Germany"}, names, "a name-only code is a separate directory entry")
}

func TestLoader_ConfiguredYearsOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "1990", matchesFileName, rounds1990)
	writeFile(t, dir, "2018", matchesFileName, flat2018)

	corpus, err := NewLoader(Config{Dir: dir, Years: []string{"2018"}}, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus.Matches, 2)
	assert.Equal(t, "2018", corpus.Matches[0].Year)
}

func TestLoader_MissingYearFilesAreSkipped(t *testing.T) {
	t.Parallel()

	corpus, err := NewLoader(Config{Dir: t.TempDir(), Years: []string{"1930"}}, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, corpus.Matches)
	assert.Empty(t, corpus.Teams)
}

func TestLoader_InvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "1994", matchesFileName, `{"rounds": [`)

	_, err := NewLoader(Config{Dir: dir}, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1994")
}

func TestLoader_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(Config{Dir: filepath.Join(t.TempDir(), "absent")}, nil).Load(context.Background())
	require.Error(t, err)
}

func TestLoader_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "1990", matchesFileName, rounds1990)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(Config{Dir: dir}, nil).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

const partlyBroken1994 = `{
  "name": "World Cup 1994",
  "rounds": [
    {
      "name": "Matchday 1",
      "matches": [
        {"num": 1, "date": "1994-06-17", "team1": {"name": "Germany", "code": "GER"}, "team2": {"name": "Bolivia", "code": "BOL"}, "score1": 1, "score2": 0,
         "goals1": [{"name": "Klinsmann", "minute": 61}]},
        {"num": 2, "date": "1994-06-17", "team1": "", "team2": {"name": "Spain", "code": "ESP"}, "score1": 2, "score2": 2},
        {"num": 3, "date": "1994-06-18", "team1": {"name": "Italy", "code": "ITA"}, "team2": {"name": "Ireland", "code": "IRL"}, "score1": -1, "score2": 1}
      ]
    },
    {
      "name": "Final",
      "matches": [
        {"num": 52, "date": "1994-07-17", "team1": {"name": "Brazil", "code": "BRA"}, "team2": {"name": "Italy", "code": "ITA"}, "score1": 0, "score2": 0}
      ]
    }
  ]
}`

const partlyBrokenGroups1994 = `{
  "name": "World Cup 1994",
  "groups": [
    {"name": "Group C", "teams": [{"name": "Germany", "code": "GER"}, {"name": "", "code": "KOR"}]}
  ]
}`

func TestLoader_SkipsInvalidRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "1994", matchesFileName, partlyBroken1994)
	writeFile(t, dir, "1994", groupsFileName, partlyBrokenGroups1994)

	var logs bytes.Buffer
	logger := logging.NewJSONWriter(logging.LevelWarn, &logs)

	corpus, err := NewLoader(Config{Dir: dir}, logger).Load(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(corpus.Matches))
	for _, m := range corpus.Matches {
		ids = append(ids, m.GlobalID)
	}
	assert.Equal(t, []string{"1994-1", "1994-52"}, ids)
	require.Len(t, corpus.Teams, 1)
	assert.Equal(t, "GER", corpus.Teams[0].Code)

	assert.Equal(t, 3, bytes.Count(logs.Bytes(), []byte(`"msg":"dataset record skipped"`)))
	assert.Contains(t, logs.String(), "match #2 of 1994")
	assert.Contains(t, logs.String(), "match #3 of 1994")
}
