package usecase

import "errors"

// Sentinel errors returned by the league services. Callers branch on them
// with errors.Is; the transport maps each one to a status code.
var (
	// ErrInvalidInput wraps domain validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound covers unknown jornadas, matches and reports.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is raised by admin and internal job guards.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable marks store or publisher failures.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
