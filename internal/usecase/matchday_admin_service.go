package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

type UpdateMatchResultInput struct {
	Jornada   int
	Index     int
	HomeGoals int
	AwayGoals int
	Status    string
}

type RescheduleMatchInput struct {
	Jornada int
	Index   int
	Date    string
	Time    string
}

type MatchdayAdminService struct {
	matchdayRepo matchday.Repository
	logger       *logging.Logger
}

func NewMatchdayAdminService(matchdayRepo matchday.Repository, logger *logging.Logger) *MatchdayAdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchdayAdminService{
		matchdayRepo: matchdayRepo,
		logger:       logger,
	}
}

func (s *MatchdayAdminService) UpdateMatchResult(ctx context.Context, input UpdateMatchResultInput) (matchday.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayAdminService.UpdateMatchResult",
		attribute.Int("league.jornada", input.Jornada),
		attribute.Int("league.match_index", input.Index),
	)
	defer span.End()

	status, err := matchday.ParseStatus(input.Status)
	if err != nil {
		return matchday.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if input.HomeGoals < 0 || input.AwayGoals < 0 {
		return matchday.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, matchday.ErrNegativeGoals)
	}
	if _, err := s.locate(ctx, input.Jornada, input.Index); err != nil {
		return matchday.Match{}, err
	}

	updated, err := s.matchdayRepo.UpdateResult(ctx, input.Jornada, input.Index, matchday.Result{
		HomeGoals: input.HomeGoals,
		AwayGoals: input.AwayGoals,
		Status:    status,
	})
	if err != nil {
		return matchday.Match{}, fmt.Errorf("%w: update match result: %w", ErrDependencyUnavailable, err)
	}
	if !updated {
		return matchday.Match{}, fmt.Errorf("%w: jornada=%d match=%d", ErrNotFound, input.Jornada, input.Index)
	}

	s.logger.InfoContext(ctx, "match result updated",
		"jornada", input.Jornada,
		"match_index", input.Index,
		"home_goals", input.HomeGoals,
		"away_goals", input.AwayGoals,
		"status", status,
	)
	return s.locate(ctx, input.Jornada, input.Index)
}

func (s *MatchdayAdminService) RescheduleMatch(ctx context.Context, input RescheduleMatchInput) (matchday.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayAdminService.RescheduleMatch",
		attribute.Int("league.jornada", input.Jornada),
		attribute.Int("league.match_index", input.Index),
	)
	defer span.End()

	date := strings.TrimSpace(input.Date)
	kickoff := strings.TrimSpace(input.Time)
	// Probe with UTC: only the text shape is checked here.
	if _, ok := leaguestats.ParseDate(date, time.UTC); !ok {
		return matchday.Match{}, fmt.Errorf("%w: date must be DD-MM-YYYY or DD/MM/YYYY, got %q", ErrInvalidInput, input.Date)
	}
	if kickoff != "" {
		if _, ok := leaguestats.ParseKickoff(date, kickoff, time.UTC); !ok {
			return matchday.Match{}, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, input.Time)
		}
	}
	if _, err := s.locate(ctx, input.Jornada, input.Index); err != nil {
		return matchday.Match{}, err
	}

	updated, err := s.matchdayRepo.UpdateSchedule(ctx, input.Jornada, input.Index, date, kickoff)
	if err != nil {
		return matchday.Match{}, fmt.Errorf("%w: reschedule match: %w", ErrDependencyUnavailable, err)
	}
	if !updated {
		return matchday.Match{}, fmt.Errorf("%w: jornada=%d match=%d", ErrNotFound, input.Jornada, input.Index)
	}

	s.logger.InfoContext(ctx, "match rescheduled",
		"jornada", input.Jornada,
		"match_index", input.Index,
		"date", date,
		"time", kickoff,
	)
	return s.locate(ctx, input.Jornada, input.Index)
}

func (s *MatchdayAdminService) locate(ctx context.Context, jornada, index int) (matchday.Match, error) {
	if jornada <= 0 {
		return matchday.Match{}, fmt.Errorf("%w: jornada must be positive", ErrInvalidInput)
	}
	if index < 0 {
		return matchday.Match{}, fmt.Errorf("%w: match index cannot be negative", ErrInvalidInput)
	}

	md, exists, err := s.matchdayRepo.GetByJornada(ctx, jornada)
	if err != nil {
		return matchday.Match{}, fmt.Errorf("%w: get matchday: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return matchday.Match{}, fmt.Errorf("%w: jornada=%d", ErrNotFound, jornada)
	}
	if index >= len(md.Matches) {
		return matchday.Match{}, fmt.Errorf("%w: jornada=%d match=%d", ErrNotFound, jornada, index)
	}

	m := md.Matches[index]
	m.Status = matchday.NormalizeStatus(string(m.Status))
	if err := m.Validate(); err != nil && !errors.Is(err, matchday.ErrNegativeGoals) {
		s.logger.WarnContext(ctx, "stored match is malformed", "jornada", jornada, "match_index", index, "error", err)
	}
	return m, nil
}
