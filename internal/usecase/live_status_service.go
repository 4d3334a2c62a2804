package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/platform/id"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

const EventMatchStarted = "match.started"

// MatchEvent is the fact published when a match transitions to LIVE.
type MatchEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Jornada    int       `json:"jornada"`
	MatchIndex int       `json:"match_index"`
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	OccurredAt time.Time `json:"occurred_at"`
}

type MatchEventPublisher interface {
	Publish(ctx context.Context, events []MatchEvent) error
}

type noopMatchEventPublisher struct{}

func (noopMatchEventPublisher) Publish(_ context.Context, _ []MatchEvent) error {
	return nil
}

func NewNoopMatchEventPublisher() MatchEventPublisher {
	return noopMatchEventPublisher{}
}

type SweepResult struct {
	Checked      int          `json:"checked"`
	Transitioned int          `json:"transitioned"`
	Events       []MatchEvent `json:"events"`
}

type LiveStatusService struct {
	matchdayRepo matchday.Repository
	publisher    MatchEventPublisher
	ids          id.Generator
	location     *time.Location
	logger       *logging.Logger
	clock        clockwork.Clock
}

func NewLiveStatusService(
	matchdayRepo matchday.Repository,
	publisher MatchEventPublisher,
	ids id.Generator,
	location *time.Location,
	logger *logging.Logger,
	clock clockwork.Clock,
) *LiveStatusService {
	if publisher == nil {
		publisher = NewNoopMatchEventPublisher()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &LiveStatusService{
		matchdayRepo: matchdayRepo,
		publisher:    publisher,
		ids:          ids,
		location:     location,
		logger:       logger,
		clock:        clock,
	}
}

// Sweep moves every PENDING match whose kickoff window has started to LIVE.
// The write is a compare-and-set, so overlapping sweeps publish each
// transition once. Publish failures are logged and do not fail the sweep.
func (s *LiveStatusService) Sweep(ctx context.Context) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveStatusService.Sweep")
	defer span.End()

	matchdays, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("%w: list matchdays: %w", ErrDependencyUnavailable, err)
	}

	now := s.clock.Now()
	result := SweepResult{Events: []MatchEvent{}}
	for _, md := range matchdays {
		for idx, m := range md.Matches {
			result.Checked++
			if !leaguestats.ShouldGoLive(m, md.Date, now, s.location) {
				continue
			}

			changed, err := s.matchdayRepo.MarkLive(ctx, md.Jornada, idx)
			if err != nil {
				return result, fmt.Errorf("%w: mark live jornada=%d match=%d: %w", ErrDependencyUnavailable, md.Jornada, idx, err)
			}
			if !changed {
				continue
			}

			eventID, err := s.ids.NewID()
			if err != nil {
				return result, fmt.Errorf("generate event id: %w", err)
			}
			result.Transitioned++
			result.Events = append(result.Events, MatchEvent{
				ID:         eventID,
				Type:       EventMatchStarted,
				Jornada:    md.Jornada,
				MatchIndex: idx,
				Home:       m.Home,
				Away:       m.Away,
				Date:       md.EffectiveDate(m),
				Time:       m.Time,
				OccurredAt: now.UTC(),
			})
		}
	}

	if len(result.Events) > 0 {
		if err := s.publisher.Publish(ctx, result.Events); err != nil {
			s.logger.WarnContext(ctx, "publish match events failed", "count", len(result.Events), "error", err)
		}
		s.logger.InfoContext(ctx, "live sweep transitioned matches", "checked", result.Checked, "transitioned", result.Transitioned)
	}

	return result, nil
}
