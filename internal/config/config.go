package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	NotifyNone    = "none"
	NotifyWebhook = "webhook"
	NotifyNATS    = "nats"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	StorageDriver               string
	DBURL                       string
	DBDisablePreparedBinary     bool
	SeedFile                    string
	CacheEnabled                bool
	CacheTTL                    time.Duration
	CORSAllowedOrigins          []string
	SwaggerEnabled              bool
	LeagueLocation              *time.Location
	CardRedWeight               int
	LiveSweepEnabled            bool
	LiveSweepInterval           time.Duration
	AdminToken                  string
	InternalJobToken            string
	NotifyDriver                string
	NotifyWebhookURL            string
	NotifyWebhookToken          string
	NotifyTimeout               time.Duration
	NotifyWorkers               int
	NotifyCircuitEnabled        bool
	NotifyCircuitFailureCount   int
	NotifyCircuitOpenTimeout    time.Duration
	NotifyCircuitHalfOpenMaxReq int
	NotifyNATSURL               string
	NotifyNATSSubject           string
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	storageDriver := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory)))
	switch storageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", storageDriver, StorageMemory, StoragePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	leagueTZ := strings.TrimSpace(getEnv("LEAGUE_TIMEZONE", "Europe/Madrid"))
	leagueLocation, err := time.LoadLocation(leagueTZ)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_TIMEZONE: %w", err)
	}
	cardRedWeight, err := getEnvAsInt("CARD_RED_WEIGHT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse CARD_RED_WEIGHT: %w", err)
	}
	if cardRedWeight < 1 {
		return Config{}, fmt.Errorf("CARD_RED_WEIGHT must be >= 1")
	}

	liveSweepEnabled, err := strconv.ParseBool(getEnv("LIVE_SWEEP_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_SWEEP_ENABLED: %w", err)
	}
	liveSweepInterval, err := time.ParseDuration(getEnv("LIVE_SWEEP_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_SWEEP_INTERVAL: %w", err)
	}
	if liveSweepInterval <= 0 {
		return Config{}, fmt.Errorf("LIVE_SWEEP_INTERVAL must be > 0")
	}

	notifyDriver := strings.ToLower(strings.TrimSpace(getEnv("NOTIFY_DRIVER", NotifyNone)))
	notifyWebhookURL := strings.TrimSpace(getEnv("NOTIFY_WEBHOOK_URL", ""))
	notifyNATSURL := strings.TrimSpace(getEnv("NOTIFY_NATS_URL", "nats://127.0.0.1:4222"))
	notifyNATSSubject := strings.TrimSpace(getEnv("NOTIFY_NATS_SUBJECT", "liga.matches.started"))
	switch notifyDriver {
	case NotifyNone:
	case NotifyWebhook:
		if notifyWebhookURL == "" {
			return Config{}, fmt.Errorf("NOTIFY_WEBHOOK_URL is required when NOTIFY_DRIVER=webhook")
		}
	case NotifyNATS:
		if notifyNATSURL == "" || notifyNATSSubject == "" {
			return Config{}, fmt.Errorf("NOTIFY_NATS_URL and NOTIFY_NATS_SUBJECT are required when NOTIFY_DRIVER=nats")
		}
	default:
		return Config{}, fmt.Errorf("invalid NOTIFY_DRIVER %q: valid values are %s, %s, %s", notifyDriver, NotifyNone, NotifyWebhook, NotifyNATS)
	}
	notifyTimeout, err := time.ParseDuration(getEnv("NOTIFY_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_TIMEOUT: %w", err)
	}
	if notifyTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}
	notifyWorkers, err := getEnvAsInt("NOTIFY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_WORKERS: %w", err)
	}
	if notifyWorkers < 1 {
		return Config{}, fmt.Errorf("NOTIFY_WORKERS must be >= 1")
	}
	notifyCircuitEnabled, err := strconv.ParseBool(getEnv("NOTIFY_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_ENABLED: %w", err)
	}
	notifyCircuitFailureCount, err := getEnvAsInt("NOTIFY_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if notifyCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	notifyCircuitOpenTimeout, err := time.ParseDuration(getEnv("NOTIFY_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if notifyCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	notifyCircuitHalfOpenMaxReq, err := getEnvAsInt("NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if notifyCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "liga-amateur-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StorageDriver:               storageDriver,
		DBURL:                       dbURL,
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		SeedFile:                    strings.TrimSpace(getEnv("SEED_FILE", "")),
		CacheEnabled:                cacheEnabled,
		CacheTTL:                    cacheTTL,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:              swaggerEnabled,
		LeagueLocation:              leagueLocation,
		CardRedWeight:               cardRedWeight,
		LiveSweepEnabled:            liveSweepEnabled,
		LiveSweepInterval:           liveSweepInterval,
		AdminToken:                  strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),
		InternalJobToken:            strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		NotifyDriver:                notifyDriver,
		NotifyWebhookURL:            notifyWebhookURL,
		NotifyWebhookToken:          strings.TrimSpace(getEnv("NOTIFY_WEBHOOK_TOKEN", "")),
		NotifyTimeout:               notifyTimeout,
		NotifyWorkers:               notifyWorkers,
		NotifyCircuitEnabled:        notifyCircuitEnabled,
		NotifyCircuitFailureCount:   notifyCircuitFailureCount,
		NotifyCircuitOpenTimeout:    notifyCircuitOpenTimeout,
		NotifyCircuitHalfOpenMaxReq: notifyCircuitHalfOpenMaxReq,
		NotifyNATSURL:               notifyNATSURL,
		NotifyNATSSubject:           notifyNATSSubject,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if appEnv == EnvProd && cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required when APP_ENV=prod")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
