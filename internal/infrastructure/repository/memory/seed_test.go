package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

func TestDefaultSeedIsConsistent(t *testing.T) {
	t.Parallel()

	seed, err := DefaultSeed()
	require.NoError(t, err)
	require.Len(t, seed.Teams, 4)
	require.Len(t, seed.Matchdays, 3)
	require.Len(t, seed.MatchReports, 2)

	known := make(map[string]struct{}, len(seed.Teams))
	for _, item := range seed.Teams {
		known[item.Name] = struct{}{}
	}
	for _, md := range seed.Matchdays {
		for _, m := range md.Matches {
			require.NoError(t, m.Validate())
			require.Contains(t, known, m.Home)
			require.Contains(t, known, m.Away)
		}
	}
	for _, r := range seed.MatchReports {
		require.NoError(t, r.Validate())
	}
}

func TestLoadSeedReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
teams:
  - {id: a, name: A}
  - {id: b, name: B}
matchdays:
  - jornada: 1
    date: 01-03-2025
    matches:
      - {home: A, away: B, home_goals: 1, away_goals: 0, status: played}
`), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Equal(t, matchday.Status("played"), seed.Matchdays[0].Matches[0].Status)
	require.Empty(t, seed.MatchReports)
}

func TestParseSeedRejectsDuplicateJornada(t *testing.T) {
	t.Parallel()

	_, err := ParseSeed([]byte("matchdays:\n  - jornada: 1\n  - jornada: 1\n"))
	require.Error(t, err)
}

func TestMatchdayRepositoryMarkLiveIsConditional(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchdayRepository([]matchday.Matchday{{
		Jornada: 1,
		Matches: []matchday.Match{
			{Home: "A", Away: "B", Status: matchday.StatusScheduled},
			{Home: "C", Away: "D", Status: matchday.StatusPlayed},
		},
	}})

	changed, err := repo.MarkLive(ctx, 1, 0)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = repo.MarkLive(ctx, 1, 0)
	require.NoError(t, err)
	require.False(t, changed, "second sweep must not rewrite")

	changed, err = repo.MarkLive(ctx, 1, 1)
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = repo.MarkLive(ctx, 9, 0)
	require.NoError(t, err)
	require.False(t, changed)

	md, ok, err := repo.GetByJornada(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, matchday.StatusLive, md.Matches[0].Status)
}

func TestMatchdayRepositoryReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchdayRepository([]matchday.Matchday{{Jornada: 1, Matches: []matchday.Match{{Home: "A", Away: "B"}}}})

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Matches[0].Home = "mutated"

	md, _, err := repo.GetByJornada(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "A", md.Matches[0].Home)
}

func TestMatchReportRepositoryUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchReportRepository(nil)
	key := matchreport.ReportKey{Home: "A", Away: "B"}

	require.NoError(t, repo.Upsert(ctx, matchreport.MatchReport{Key: key, Observations: "first"}))
	require.NoError(t, repo.Upsert(ctx, matchreport.MatchReport{Key: key, Observations: "second"}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "second", items[0].Observations)

	_, ok, err := repo.Get(ctx, matchreport.ReportKey{Home: "B", Away: "A"})
	require.NoError(t, err)
	require.False(t, ok)
}
