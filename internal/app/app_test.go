package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/config"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:            config.EnvDev,
		ServiceName:       "liga-amateur-api",
		HTTPAddr:          ":0",
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		StorageDriver:     config.StorageMemory,
		LeagueLocation:    time.UTC,
		CardRedWeight:     3,
		LiveSweepInterval: time.Minute,
		NotifyDriver:      config.NotifyNone,
		NotifyWorkers:     2,
		NotifyTimeout:     time.Second,
		SwaggerEnabled:    true,
	}
}

func TestNew_MemoryStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.CacheEnabled = true
	cfg.CacheTTL = time.Minute

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Nil(t, a.Scheduler)
	require.NoError(t, a.Start())

	for _, path := range []string{"/healthz", "/v1/standings", "/v1/matchdays", "/v1/teams", "/openapi.yaml"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNew_EmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = " "

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_MissingSeedFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.SeedFile = "/nonexistent/seed.yaml"

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_WebhookRequiresValidURL(t *testing.T) {
	cfg := memoryConfig()
	cfg.NotifyDriver = config.NotifyWebhook
	cfg.NotifyWebhookURL = "not a url"

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_WebhookPublisherIsClosed(t *testing.T) {
	cfg := memoryConfig()
	cfg.NotifyDriver = config.NotifyWebhook
	cfg.NotifyWebhookURL = "https://hooks.example.com/liga"

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.Len(t, a.closers, 1)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestNew_LiveSweepScheduler(t *testing.T) {
	cfg := memoryConfig()
	cfg.LiveSweepEnabled = true

	clock := clockwork.NewFakeClockAt(time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC))
	a, err := New(context.Background(), cfg, logging.NewNop(), WithClock(clock))
	require.NoError(t, err)
	require.NotNil(t, a.Scheduler)

	require.NoError(t, a.Start())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.Shutdown(ctx))
}

func TestShutdownTimeout(t *testing.T) {
	cfg := config.Config{WriteTimeout: 3 * time.Second}
	assert.Equal(t, defaultShutdownTimeout, ShutdownTimeout(cfg))

	cfg.WriteTimeout = 30 * time.Second
	assert.Equal(t, 30*time.Second, ShutdownTimeout(cfg))
}
