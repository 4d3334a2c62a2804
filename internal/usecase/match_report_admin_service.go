package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

type MatchReportAdminService struct {
	reportRepo matchreport.Repository
	logger     *logging.Logger
}

func NewMatchReportAdminService(reportRepo matchreport.Repository, logger *logging.Logger) *MatchReportAdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchReportAdminService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// SaveReport validates and stores the acta, replacing any previous report for
// the same fixture.
func (s *MatchReportAdminService) SaveReport(ctx context.Context, report matchreport.MatchReport) (matchreport.MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchReportAdminService.SaveReport")
	defer span.End()

	report.Key.Home = strings.TrimSpace(report.Key.Home)
	report.Key.Away = strings.TrimSpace(report.Key.Away)
	report.Home.Team = report.Key.Home
	report.Away.Team = report.Key.Away
	report.Observations = strings.TrimSpace(report.Observations)

	if err := report.Validate(); err != nil {
		return matchreport.MatchReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.reportRepo.Upsert(ctx, report); err != nil {
		return matchreport.MatchReport{}, fmt.Errorf("%w: upsert match report: %w", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "match report saved",
		"report_id", report.Key.ID(),
		"home_starters", report.Home.Starters(),
		"away_starters", report.Away.Starters(),
	)
	return report, nil
}
