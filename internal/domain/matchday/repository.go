package matchday

import "context"

// Result is an administrative score/status edit.
type Result struct {
	HomeGoals int
	AwayGoals int
	Status    Status
}

// Repository describes matchday persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Matchday, error)
	GetByJornada(ctx context.Context, jornada int) (Matchday, bool, error)
	UpdateResult(ctx context.Context, jornada, index int, result Result) (bool, error)
	UpdateSchedule(ctx context.Context, jornada, index int, date, kickoff string) (bool, error)
	// MarkLive moves a match to LIVE only when its stored status is still
	// PENDING or SCHEDULED. It reports whether a row actually changed.
	MarkLive(ctx context.Context, jornada, index int) (bool, error)
}
