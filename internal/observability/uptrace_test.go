package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/liga-amateur/internal/config"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "flag off",
			cfg: config.Config{
				UptraceEnabled: false,
				ServiceName:    "liga-amateur-api",
				ServiceVersion: "dev",
				AppEnv:         config.EnvDev,
			},
		},
		{
			name: "dsn empty",
			cfg: config.Config{
				UptraceEnabled: true,
				UptraceDSN:     "  ",
				ServiceName:    "liga-amateur-api",
				ServiceVersion: "dev",
				AppEnv:         config.EnvDev,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := InitUptrace(tt.cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "flag off", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: "UPTRACE_ENABLED=false"},
		{name: "blank dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: " "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tt.cfg); got != tt.want {
				t.Fatalf("uptraceDisabledReason()=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestUptraceOptions_SkipsEmptyMetadata(t *testing.T) {
	cfg := config.Config{UptraceDSN: "dsn", ServiceName: "liga-amateur-api"}
	if got := len(uptraceOptions(cfg)); got != 2 {
		t.Fatalf("expected 2 options, got %d", got)
	}

	cfg.ServiceVersion = "1.0.0"
	cfg.AppEnv = config.EnvProd
	if got := len(uptraceOptions(cfg)); got != 4 {
		t.Fatalf("expected 4 options, got %d", got)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	cfg := config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "liga-amateur-api",
		ServiceVersion:   "dev",
		StorageDriver:    "memory",
		PyroscopeAppName: "liga-amateur-api",
	}

	got := pyroscopeConfig(cfg)
	if got.ApplicationName != "liga-amateur-api" {
		t.Fatalf("application=%q", got.ApplicationName)
	}
	if got.Tags["storage_driver"] != "memory" || got.Tags["env"] != config.EnvDev {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	if len(got.ProfileTypes) != len(leagueProfileTypes) {
		t.Fatalf("expected %d profile types, got %d", len(leagueProfileTypes), len(got.ProfileTypes))
	}
}
