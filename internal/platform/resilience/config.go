package resilience

import "time"

// CircuitBreakerConfig tunes a CircuitBreaker. A zero value normalizes to
// the defaults with the breaker disabled.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the count of consecutive failures that opens the circuit.
	FailureThreshold int
	OpenTimeout      time.Duration
	// HalfOpenMaxReq limits trial calls while half-open.
	HalfOpenMaxReq int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 30 * time.Second
	defaultHalfOpenMaxReq   = 1
)

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: defaultFailureThreshold,
		OpenTimeout:      defaultOpenTimeout,
		HalfOpenMaxReq:   defaultHalfOpenMaxReq,
	}
}

// Normalize fills out-of-range fields. Enabled is never changed.
func (cfg CircuitBreakerConfig) Normalize() CircuitBreakerConfig {
	cfg.FailureThreshold = atLeast(cfg.FailureThreshold, 1, defaultFailureThreshold)
	cfg.HalfOpenMaxReq = atLeast(cfg.HalfOpenMaxReq, 1, defaultHalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	return cfg
}

// LogFields renders the config as key/value pairs for the structured logger.
func (cfg CircuitBreakerConfig) LogFields() []any {
	return []any{
		"circuit_enabled", cfg.Enabled,
		"circuit_failure_threshold", cfg.FailureThreshold,
		"circuit_open_timeout", cfg.OpenTimeout.String(),
		"circuit_half_open_max", cfg.HalfOpenMaxReq,
	}
}

func atLeast(v, floor, fallback int) int {
	if v < floor {
		return fallback
	}
	return v
}
