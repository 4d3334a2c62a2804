package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/liga-amateur/internal/config"
	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
	"github.com/riskibarqy/liga-amateur/internal/infrastructure/notify"
	cacherepo "github.com/riskibarqy/liga-amateur/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/liga-amateur/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/liga-amateur/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/liga-amateur/internal/interfaces/httpapi"
	"github.com/riskibarqy/liga-amateur/internal/platform/cache"
	"github.com/riskibarqy/liga-amateur/internal/platform/database"
	"github.com/riskibarqy/liga-amateur/internal/platform/id"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
	"github.com/riskibarqy/liga-amateur/internal/platform/resilience"
	"github.com/riskibarqy/liga-amateur/internal/scheduler"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

// App is the wired API process: HTTP server, optional live-status scheduler
// and the resources both hold.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Scheduler

	logger  *logging.Logger
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

type repositories struct {
	matchdays matchday.Repository
	teams     team.Repository
	reports   matchreport.Repository
}

// Option adjusts wiring, mainly for tests.
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if cfg.CacheEnabled {
		store := cache.NewStoreWithClock(cfg.CacheTTL, o.clock)
		repos = repositories{
			matchdays: cacherepo.NewMatchdayRepository(repos.matchdays, store),
			teams:     cacherepo.NewTeamRepository(repos.teams, store),
			reports:   cacherepo.NewMatchReportRepository(repos.reports, store),
		}
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	publisher, err := a.buildPublisher(cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	rules := leaguestats.DefaultRules()
	rules.RedCardWeight = cfg.CardRedWeight

	statsSvc := usecase.NewLeagueStatsService(repos.matchdays, repos.teams, repos.reports, usecase.LeagueStatsConfig{
		Location: cfg.LeagueLocation,
		Rules:    rules,
	}, logger, o.clock)
	matchdayAdminSvc := usecase.NewMatchdayAdminService(repos.matchdays, logger)
	reportAdminSvc := usecase.NewMatchReportAdminService(repos.reports, logger)
	liveSvc := usecase.NewLiveStatusService(repos.matchdays, publisher, id.NewUUIDGenerator(), cfg.LeagueLocation, logger, o.clock)

	if cfg.LiveSweepEnabled {
		sched, err := scheduler.New(liveSvc, scheduler.Config{
			Interval: cfg.LiveSweepInterval,
			Location: cfg.LeagueLocation,
		}, o.clock, logger)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("build live sweep scheduler: %w", err)
		}
		a.Scheduler = sched
	}

	handler := httpapi.NewHandler(statsSvc, matchdayAdminSvc, reportAdminSvc, liveSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		InternalJobToken:   cfg.InternalJobToken,
	}, logger)

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.OpenPostgres(ctx, database.Options{
			URL:                         cfg.DBURL,
			DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
		})
		if err != nil {
			return repositories{}, fmt.Errorf("open postgres: %w", err)
		}
		a.addCloser("postgres", db.Close)
		a.logger.Info("storage ready", "driver", cfg.StorageDriver, "db", database.Redact(cfg.DBURL))
		return postgresRepositories(db), nil
	default:
		seed, err := loadSeed(cfg.SeedFile)
		if err != nil {
			return repositories{}, err
		}
		a.logger.Info("storage ready",
			"driver", config.StorageMemory,
			"teams", len(seed.Teams),
			"matchdays", len(seed.Matchdays),
			"match_reports", len(seed.MatchReports),
		)
		return repositories{
			matchdays: memory.NewMatchdayRepository(seed.Matchdays),
			teams:     memory.NewTeamRepository(seed.Teams),
			reports:   memory.NewMatchReportRepository(seed.MatchReports),
		}, nil
	}
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		matchdays: postgres.NewMatchdayRepository(db),
		teams:     postgres.NewTeamRepository(db),
		reports:   postgres.NewMatchReportRepository(db),
	}
}

func loadSeed(path string) (memory.Seed, error) {
	if strings.TrimSpace(path) == "" {
		seed, err := memory.DefaultSeed()
		if err != nil {
			return memory.Seed{}, fmt.Errorf("load embedded seed: %w", err)
		}
		return seed, nil
	}
	seed, err := memory.LoadSeed(path)
	if err != nil {
		return memory.Seed{}, fmt.Errorf("load seed file %s: %w", path, err)
	}
	return seed, nil
}

// buildPublisher returns nil for NOTIFY_DRIVER=none; the live status
// service substitutes its no-op publisher.
func (a *App) buildPublisher(cfg config.Config) (usecase.MatchEventPublisher, error) {
	var publisher usecase.MatchEventPublisher
	switch cfg.NotifyDriver {
	case config.NotifyWebhook:
		webhook, err := notify.NewWebhookPublisher(notify.WebhookConfig{
			URL:     cfg.NotifyWebhookURL,
			Token:   cfg.NotifyWebhookToken,
			Timeout: cfg.NotifyTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailureCount,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMaxReq,
			},
		}, a.logger)
		if err != nil {
			return nil, fmt.Errorf("build webhook publisher: %w", err)
		}
		publisher = webhook
	case config.NotifyNATS:
		nc, err := notify.NewNATSPublisher(cfg.NotifyNATSURL, cfg.NotifyNATSSubject, cfg.ServiceName, a.logger)
		if err != nil {
			return nil, fmt.Errorf("build nats publisher: %w", err)
		}
		publisher = nc
	default:
		a.logger.Info("match event notifications disabled", "driver", cfg.NotifyDriver)
		return nil, nil
	}

	fanOut, err := notify.NewFanOut(cfg.NotifyWorkers, a.logger, publisher)
	if err != nil {
		if closer, ok := publisher.(notify.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("build notify fan-out: %w", err)
	}
	a.addCloser("notify", fanOut.Close)
	a.logger.Info("match event notifications enabled", "driver", cfg.NotifyDriver, "workers", cfg.NotifyWorkers)
	return fanOut, nil
}

func (a *App) addCloser(name string, fn func() error) {
	a.closers = append(a.closers, namedCloser{name: name, close: fn})
}

// Start begins the live-status tick. The HTTP server is started by the caller.
func (a *App) Start() error {
	if a.Scheduler == nil {
		a.logger.Info("live sweep scheduler disabled", "reason", "LIVE_SWEEP_ENABLED=false")
		return nil
	}
	return a.Scheduler.Start()
}

// Shutdown stops the HTTP server and the scheduler, then releases resources
// in reverse order of acquisition.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
	}
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close stops the scheduler and releases resources. It is idempotent.
func (a *App) Close() error {
	var errs []error
	if a.Scheduler != nil {
		if err := a.Scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

const defaultShutdownTimeout = 10 * time.Second

// ShutdownTimeout bounds graceful shutdown to the write timeout so in-flight
// responses can finish.
func ShutdownTimeout(cfg config.Config) time.Duration {
	if cfg.WriteTimeout > defaultShutdownTimeout {
		return cfg.WriteTimeout
	}
	return defaultShutdownTimeout
}
