package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

const defaultTeamSearchLimit = 10

type LeagueStatsConfig struct {
	Location *time.Location
	Rules    leaguestats.Rules
}

// MatchdayView is a matchday with every match classified as of the request.
type MatchdayView struct {
	Matchday matchday.Matchday
	Matches  []leaguestats.MatchView
}

// FeaturedMatchdays is the home view selection. Featured is the live round
// when one exists, otherwise the last played round.
type FeaturedMatchdays struct {
	Featured   *MatchdayView
	Live       bool
	LastPlayed *MatchdayView
	Next       *MatchdayView
}

type TeamSearchHit struct {
	Team     team.Team
	Distance int
}

type LeagueStatsService struct {
	matchdayRepo matchday.Repository
	teamRepo     team.Repository
	reportRepo   matchreport.Repository
	cfg          LeagueStatsConfig
	logger       *logging.Logger
	clock        clockwork.Clock
}

func NewLeagueStatsService(
	matchdayRepo matchday.Repository,
	teamRepo team.Repository,
	reportRepo matchreport.Repository,
	cfg LeagueStatsConfig,
	logger *logging.Logger,
	clock clockwork.Clock,
) *LeagueStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Rules == (leaguestats.Rules{}) {
		cfg.Rules = leaguestats.DefaultRules()
	}

	return &LeagueStatsService{
		matchdayRepo: matchdayRepo,
		teamRepo:     teamRepo,
		reportRepo:   reportRepo,
		cfg:          cfg,
		logger:       logger,
		clock:        clock,
	}
}

type leagueSnapshot struct {
	matchdays []matchday.Matchday
	teams     []team.Team
	reports   []matchreport.MatchReport
}

type snapshotParts struct {
	matchdays bool
	teams     bool
	reports   bool
}

// load fetches the requested collections in parallel. The first failure
// cancels the remaining loads.
func (s *LeagueStatsService) load(ctx context.Context, parts snapshotParts) (leagueSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.load")
	defer span.End()

	var snap leagueSnapshot
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	if parts.matchdays {
		p.Go(func(ctx context.Context) error {
			items, err := s.matchdayRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("%w: list matchdays: %w", ErrDependencyUnavailable, err)
			}
			for i := range items {
				items[i] = items[i].Normalized()
			}
			leaguestats.SortByJornada(items)
			snap.matchdays = items
			return nil
		})
	}
	if parts.teams {
		p.Go(func(ctx context.Context) error {
			items, err := s.teamRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("%w: list teams: %w", ErrDependencyUnavailable, err)
			}
			snap.teams = items
			return nil
		})
	}
	if parts.reports {
		p.Go(func(ctx context.Context) error {
			items, err := s.reportRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("%w: list match reports: %w", ErrDependencyUnavailable, err)
			}
			snap.reports = items
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		s.logger.WarnContext(ctx, "load league snapshot failed", "error", err)
		return leagueSnapshot{}, err
	}
	return snap, nil
}

func (s *LeagueStatsService) Standings(ctx context.Context) ([]leaguestats.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.Standings")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{matchdays: true, teams: true})
	if err != nil {
		return nil, err
	}
	return leaguestats.ComputeStandings(snap.matchdays, snap.teams, s.cfg.Rules), nil
}

func (s *LeagueStatsService) TopScorers(ctx context.Context) ([]leaguestats.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.TopScorers")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{reports: true})
	if err != nil {
		return nil, err
	}
	return leaguestats.ComputeTopScorers(snap.reports, s.cfg.Rules), nil
}

func (s *LeagueStatsService) CardRankings(ctx context.Context) ([]leaguestats.CardRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.CardRankings")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{reports: true})
	if err != nil {
		return nil, err
	}
	return leaguestats.ComputeCardRankings(snap.reports, s.cfg.Rules), nil
}

// CardScore exposes the ranking weight so callers can render it.
func (s *LeagueStatsService) CardScore(row leaguestats.CardRanking) int {
	return leaguestats.CardScore(row, s.cfg.Rules)
}

func (s *LeagueStatsService) Matchdays(ctx context.Context) ([]MatchdayView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.Matchdays")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{matchdays: true})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]MatchdayView, 0, len(snap.matchdays))
	for _, md := range snap.matchdays {
		out = append(out, s.view(md, now))
	}
	return out, nil
}

func (s *LeagueStatsService) Matchday(ctx context.Context, jornada int) (MatchdayView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.Matchday", attribute.Int("league.jornada", jornada))
	defer span.End()

	if jornada <= 0 {
		return MatchdayView{}, fmt.Errorf("%w: jornada must be positive", ErrInvalidInput)
	}

	md, exists, err := s.matchdayRepo.GetByJornada(ctx, jornada)
	if err != nil {
		return MatchdayView{}, fmt.Errorf("%w: get matchday: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return MatchdayView{}, fmt.Errorf("%w: jornada=%d", ErrNotFound, jornada)
	}

	return s.view(md.Normalized(), s.clock.Now()), nil
}

func (s *LeagueStatsService) Featured(ctx context.Context) (FeaturedMatchdays, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.Featured")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{matchdays: true})
	if err != nil {
		return FeaturedMatchdays{}, err
	}

	now := s.clock.Now()
	sel := leaguestats.SelectFeatured(snap.matchdays, now, s.cfg.Location)
	out := FeaturedMatchdays{
		LastPlayed: s.viewPtr(sel.LastPlayed, now),
		Next:       s.viewPtr(sel.Next, now),
	}
	if live := leaguestats.FindLive(snap.matchdays, now, s.cfg.Location); live != nil {
		out.Featured = s.viewPtr(live, now)
		out.Live = true
	} else {
		out.Featured = out.LastPlayed
	}
	return out, nil
}

func (s *LeagueStatsService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.Teams")
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{teams: true})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(snap.teams, func(i, j int) bool {
		return snap.teams[i].Name < snap.teams[j].Name
	})
	return snap.teams, nil
}

// SearchTeams ranks teams whose name contains the query characters in order,
// case and accent insensitive, closest first.
func (s *LeagueStatsService) SearchTeams(ctx context.Context, query string, limit int) ([]TeamSearchHit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.SearchTeams")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultTeamSearchLimit
	}

	snap, err := s.load(ctx, snapshotParts{teams: true})
	if err != nil {
		return nil, err
	}

	ranks := fuzzy.RankFindNormalizedFold(query, team.Names(snap.teams))
	sort.Stable(ranks)

	out := make([]TeamSearchHit, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, TeamSearchHit{Team: snap.teams[r.OriginalIndex], Distance: r.Distance})
	}
	return out, nil
}

func (s *LeagueStatsService) MatchReport(ctx context.Context, key matchreport.ReportKey) (matchreport.MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.MatchReport")
	defer span.End()

	key.Home = strings.TrimSpace(key.Home)
	key.Away = strings.TrimSpace(key.Away)
	if err := key.Validate(); err != nil {
		return matchreport.MatchReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	report, exists, err := s.reportRepo.Get(ctx, key)
	if err != nil {
		return matchreport.MatchReport{}, fmt.Errorf("%w: get match report: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return matchreport.MatchReport{}, fmt.Errorf("%w: match report=%s", ErrNotFound, key.ID())
	}
	return report, nil
}

// MatchReportByID resolves a legacy "{home}-{away}" id against the current
// team names before the lookup.
func (s *LeagueStatsService) MatchReportByID(ctx context.Context, id string) (matchreport.MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStatsService.MatchReportByID", attribute.String("league.report_id", id))
	defer span.End()

	snap, err := s.load(ctx, snapshotParts{teams: true})
	if err != nil {
		return matchreport.MatchReport{}, err
	}

	key, ok := matchreport.ParseReportID(strings.TrimSpace(id), team.Names(snap.teams))
	if !ok {
		return matchreport.MatchReport{}, fmt.Errorf("%w: malformed match report id %q", ErrInvalidInput, id)
	}
	return s.MatchReport(ctx, key)
}

func (s *LeagueStatsService) view(md matchday.Matchday, now time.Time) MatchdayView {
	return MatchdayView{
		Matchday: md,
		Matches:  leaguestats.ViewMatchday(md, now, s.cfg.Location),
	}
}

func (s *LeagueStatsService) viewPtr(md *matchday.Matchday, now time.Time) *MatchdayView {
	if md == nil {
		return nil
	}
	v := s.view(*md, now)
	return &v
}
