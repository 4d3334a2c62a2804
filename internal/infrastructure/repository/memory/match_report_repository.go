package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

type MatchReportRepository struct {
	mu      sync.RWMutex
	reports map[matchreport.ReportKey]matchreport.MatchReport
}

func NewMatchReportRepository(items []matchreport.MatchReport) *MatchReportRepository {
	reports := make(map[matchreport.ReportKey]matchreport.MatchReport, len(items))
	for _, item := range items {
		reports[item.Key] = cloneReport(item)
	}

	return &MatchReportRepository{reports: reports}
}

func (r *MatchReportRepository) List(_ context.Context) ([]matchreport.MatchReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchreport.MatchReport, 0, len(r.reports))
	for _, item := range r.reports {
		out = append(out, cloneReport(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.ID() < out[j].Key.ID()
	})
	return out, nil
}

func (r *MatchReportRepository) Get(_ context.Context, key matchreport.ReportKey) (matchreport.MatchReport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.reports[key]
	if !ok {
		return matchreport.MatchReport{}, false, nil
	}
	return cloneReport(item), true, nil
}

func (r *MatchReportRepository) Upsert(_ context.Context, report matchreport.MatchReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.Key] = cloneReport(report)
	return nil
}

func cloneReport(report matchreport.MatchReport) matchreport.MatchReport {
	out := report
	out.Home.Players = append([]matchreport.Player(nil), report.Home.Players...)
	out.Away.Players = append([]matchreport.Player(nil), report.Away.Players...)
	return out
}
