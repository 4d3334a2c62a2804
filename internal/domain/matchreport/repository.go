package matchreport

import "context"

// Repository describes match report persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]MatchReport, error)
	Get(ctx context.Context, key ReportKey) (MatchReport, bool, error)
	Upsert(ctx context.Context, report MatchReport) error
}
