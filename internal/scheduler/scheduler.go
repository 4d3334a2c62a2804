package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

const liveSweepJobName = "live-sweep"

// Sweeper is the unit of work behind the live-status tick.
type Sweeper interface {
	Sweep(ctx context.Context) (usecase.SweepResult, error)
}

type Config struct {
	Interval time.Duration
	Location *time.Location
	// Timeout bounds a single sweep; it defaults to the interval.
	Timeout time.Duration
}

// Scheduler owns the server-side PENDING -> LIVE transition. Ticks run in
// singleton mode so a slow sweep is never overlapped by the next one.
type Scheduler struct {
	s       gocron.Scheduler
	sweeper Sweeper
	cfg     Config
	logger  *logging.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	stopped bool
}

func New(sweeper Sweeper, cfg Config, clock clockwork.Clock, logger *logging.Logger) (*Scheduler, error) {
	if sweeper == nil {
		return nil, fmt.Errorf("sweeper is required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be > 0")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("scheduler")

	s, err := gocron.NewScheduler(
		gocron.WithLocation(cfg.Location),
		gocron.WithClock(clock),
		gocron.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		s:       s,
		sweeper: sweeper,
		cfg:     cfg,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start registers the sweep job and starts ticking. The first sweep runs
// immediately so matches that started while the process was down go LIVE.
// A Scheduler starts at most once.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	switch {
	case s.stopped:
		s.mu.Unlock()
		return fmt.Errorf("scheduler already stopped")
	case s.started:
		s.mu.Unlock()
		return fmt.Errorf("scheduler already started")
	}
	s.started = true
	s.mu.Unlock()

	_, err := s.s.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(s.runSweep),
		gocron.WithName(liveSweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return fmt.Errorf("failed to create %s job: %w", liveSweepJobName, err)
	}

	s.s.Start()
	s.logger.Info("scheduler started", "job", liveSweepJobName, "interval", s.cfg.Interval, "location", s.cfg.Location.String())
	return nil
}

// Stop cancels an in-flight sweep and shuts the gocron scheduler down,
// whether or not Start ran, so its goroutines never outlive the Scheduler.
// Calling it more than once is safe.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	started := s.started
	s.cancel()
	s.mu.Unlock()

	if err := s.s.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	if started {
		s.logger.Info("scheduler stopped")
	}
	return nil
}

func (s *Scheduler) runSweep() {
	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()
	if parent.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parent, s.cfg.Timeout)
	defer cancel()

	result, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "live sweep failed", "error", err)
		return
	}
	if result.Transitioned > 0 {
		s.logger.InfoContext(ctx, "live sweep transitioned matches", "checked", result.Checked, "transitioned", result.Transitioned)
		return
	}
	s.logger.DebugContext(ctx, "live sweep finished", "checked", result.Checked)
}
