package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
	matchdaymock "github.com/riskibarqy/liga-amateur/internal/mocks/domain/matchday"
	matchreportmock "github.com/riskibarqy/liga-amateur/internal/mocks/domain/matchreport"
	teammock "github.com/riskibarqy/liga-amateur/internal/mocks/domain/team"
)

var anyCtx = mock.Anything

func newStatsService(t *testing.T, now time.Time) (*LeagueStatsService, *matchdaymock.Repository, *teammock.Repository, *matchreportmock.Repository) {
	t.Helper()

	matchdayRepo := matchdaymock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	reportRepo := matchreportmock.NewRepository(t)
	svc := NewLeagueStatsService(matchdayRepo, teamRepo, reportRepo, LeagueStatsConfig{Location: time.UTC}, nil, clockwork.NewFakeClockAt(now))
	return svc, matchdayRepo, teamRepo, reportRepo
}

func TestLeagueStatsService_Standings(t *testing.T) {
	t.Parallel()

	svc, matchdayRepo, teamRepo, _ := newStatsService(t, time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	matchdayRepo.On("List", anyCtx).Return([]matchday.Matchday{
		{Jornada: 1, Date: "15-03-2025", Matches: []matchday.Match{
			{Home: "A", Away: "B", HomeGoals: 2, AwayGoals: 1, Time: "16:00", Status: "played"},
		}},
	}, nil).Once()
	teamRepo.On("List", anyCtx).Return([]team.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}, nil).Once()

	got, err := svc.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].Team)
	require.Equal(t, 3, got[0].Points)
	require.Equal(t, []leaguestats.FormResult{leaguestats.FormWin}, got[0].Form)
	require.Equal(t, "C", got[1].Team)
	require.Equal(t, 0, got[1].Played)
}

func TestLeagueStatsService_StandingsDependencyFailure(t *testing.T) {
	t.Parallel()

	svc, matchdayRepo, teamRepo, _ := newStatsService(t, time.Now())
	matchdayRepo.On("List", anyCtx).Return(nil, errors.New("connection refused")).Maybe()
	teamRepo.On("List", anyCtx).Return([]team.Team{}, nil).Maybe()

	_, err := svc.Standings(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestLeagueStatsService_FeaturedPrefersLiveMatchday(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 16, 30, 0, 0, time.UTC)
	svc, matchdayRepo, _, _ := newStatsService(t, now)
	matchdayRepo.On("List", anyCtx).Return([]matchday.Matchday{
		{Jornada: 3, Date: "22-03-2025", Matches: []matchday.Match{{Home: "A", Away: "B", Time: "16:00"}}},
		{Jornada: 1, Date: "08-03-2025", Matches: []matchday.Match{{Home: "A", Away: "C", Status: matchday.StatusPlayed}}},
		{Jornada: 2, Date: "15-03-2025", Matches: []matchday.Match{{Home: "B", Away: "C", Time: "16:00", Status: matchday.StatusScheduled}}},
	}, nil).Once()

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.True(t, got.Live)
	require.NotNil(t, got.Featured)
	require.Equal(t, 2, got.Featured.Matchday.Jornada)
	require.Equal(t, leaguestats.DisplayLive, got.Featured.Matches[0].Classification.Status)
	require.Equal(t, "30'", got.Featured.Matches[0].Classification.Minute())
	require.Equal(t, 2, got.LastPlayed.Matchday.Jornada)
	require.Equal(t, 3, got.Next.Matchday.Jornada)
}

func TestLeagueStatsService_Matchday(t *testing.T) {
	t.Parallel()

	svc, matchdayRepo, _, _ := newStatsService(t, time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC))
	matchdayRepo.On("GetByJornada", anyCtx, 4).Return(matchday.Matchday{}, false, nil).Once()
	matchdayRepo.On("GetByJornada", anyCtx, 2).Return(matchday.Matchday{
		Jornada: 2,
		Date:    "15-03-2025",
		Matches: []matchday.Match{{Home: "A", Away: "B", Time: "16:00", Status: matchday.StatusLive}},
	}, true, nil).Once()

	_, err := svc.Matchday(context.Background(), 4)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Matchday(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	got, err := svc.Matchday(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, leaguestats.DisplayPendingResult, got.Matches[0].Classification.Status)
}

func TestLeagueStatsService_SearchTeams(t *testing.T) {
	t.Parallel()

	svc, _, teamRepo, _ := newStatsService(t, time.Now())
	teamRepo.On("List", anyCtx).Return([]team.Team{
		{ID: "1", Name: "Atlético Barrio"},
		{ID: "2", Name: "Real Vecinos"},
		{ID: "3", Name: "Atletico Sur"},
	}, nil).Once()

	got, err := svc.SearchTeams(context.Background(), "atletico", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, hit := range got {
		require.NotEqual(t, "Real Vecinos", hit.Team.Name)
	}
	require.LessOrEqual(t, got[0].Distance, got[1].Distance)

	_, err = svc.SearchTeams(context.Background(), "  ", 5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLeagueStatsService_MatchReportByID(t *testing.T) {
	t.Parallel()

	svc, _, teamRepo, reportRepo := newStatsService(t, time.Now())
	teamRepo.On("List", anyCtx).Return([]team.Team{{Name: "Los-Pinos"}, {Name: "Norte"}}, nil).Once()
	key := matchreport.ReportKey{Home: "Los-Pinos", Away: "Norte"}
	reportRepo.On("Get", anyCtx, key).Return(matchreport.MatchReport{Key: key, Observations: "sin incidencias"}, true, nil).Once()

	got, err := svc.MatchReportByID(context.Background(), "Los-Pinos-Norte")
	require.NoError(t, err)
	require.Equal(t, key, got.Key)
}

func TestLeagueStatsService_RankingsTolerateBadReports(t *testing.T) {
	t.Parallel()

	svc, _, _, reportRepo := newStatsService(t, time.Now())
	reportRepo.On("List", anyCtx).Return([]matchreport.MatchReport{
		{Key: matchreport.ReportKey{Home: "A", Away: "B"}, Home: matchreport.Participation{Players: []matchreport.Player{
			{Name: "Luis", Goals: 2, YellowCards: 1},
		}}},
		{Key: matchreport.ReportKey{}, Away: matchreport.Participation{Players: []matchreport.Player{{Name: "Nadie", Goals: 7}}}},
	}, nil).Twice()

	scorers, err := svc.TopScorers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []leaguestats.TopScorer{{Name: "Luis", Team: "A", Goals: 2}}, scorers)

	cards, err := svc.CardRankings(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, 1, svc.CardScore(cards[0]))
}
