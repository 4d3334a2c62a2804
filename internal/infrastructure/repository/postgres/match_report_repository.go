package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

const matchReportColumns = `home_team, away_team, observations, home_side, away_side, created_at, updated_at`

type MatchReportRepository struct {
	db *sqlx.DB
}

func NewMatchReportRepository(db *sqlx.DB) *MatchReportRepository {
	return &MatchReportRepository{db: db}
}

func (r *MatchReportRepository) List(ctx context.Context) ([]matchreport.MatchReport, error) {
	var rows []matchReportTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+matchReportColumns+` FROM match_reports ORDER BY home_team, away_team`); err != nil {
		return nil, fmt.Errorf("select match reports: %w", err)
	}

	out := make([]matchreport.MatchReport, 0, len(rows))
	for _, row := range rows {
		report, err := matchReportFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

func (r *MatchReportRepository) Get(ctx context.Context, key matchreport.ReportKey) (matchreport.MatchReport, bool, error) {
	var row matchReportTableModel
	query := `SELECT ` + matchReportColumns + ` FROM match_reports WHERE home_team = $1 AND away_team = $2`
	if err := r.db.GetContext(ctx, &row, query, key.Home, key.Away); err != nil {
		if isNotFound(err) {
			return matchreport.MatchReport{}, false, nil
		}
		return matchreport.MatchReport{}, false, fmt.Errorf("get match report %s: %w", key.ID(), err)
	}

	report, err := matchReportFromRow(row)
	if err != nil {
		return matchreport.MatchReport{}, false, err
	}
	return report, true, nil
}

func (r *MatchReportRepository) Upsert(ctx context.Context, report matchreport.MatchReport) error {
	sides := report.Sides()
	homeSide, err := sonic.Marshal(sideToDocument(sides[0]))
	if err != nil {
		return fmt.Errorf("encode home side of %s: %w", report.Key.ID(), err)
	}
	awaySide, err := sonic.Marshal(sideToDocument(sides[1]))
	if err != nil {
		return fmt.Errorf("encode away side of %s: %w", report.Key.ID(), err)
	}

	sqlQuery, args, err := sqlx.Named(`
INSERT INTO match_reports (home_team, away_team, observations, home_side, away_side)
VALUES (:home_team, :away_team, :observations, :home_side, :away_side)
ON CONFLICT (home_team, away_team) DO UPDATE
SET observations = EXCLUDED.observations,
    home_side = EXCLUDED.home_side,
    away_side = EXCLUDED.away_side,
    updated_at = NOW()`, map[string]any{
		"home_team":    report.Key.Home,
		"away_team":    report.Key.Away,
		"observations": report.Observations,
		"home_side":    string(homeSide),
		"away_side":    string(awaySide),
	})
	if err != nil {
		return fmt.Errorf("bind upsert match report query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(sqlQuery), args...); err != nil {
		return fmt.Errorf("upsert match report %s: %w", report.Key.ID(), err)
	}
	return nil
}

func matchReportFromRow(row matchReportTableModel) (matchreport.MatchReport, error) {
	var home, away sideDocument
	if len(row.HomeSide) > 0 {
		if err := sonic.Unmarshal(row.HomeSide, &home); err != nil {
			return matchreport.MatchReport{}, fmt.Errorf("decode home side of %s-%s: %w", row.HomeTeam, row.AwayTeam, err)
		}
	}
	if len(row.AwaySide) > 0 {
		if err := sonic.Unmarshal(row.AwaySide, &away); err != nil {
			return matchreport.MatchReport{}, fmt.Errorf("decode away side of %s-%s: %w", row.HomeTeam, row.AwayTeam, err)
		}
	}

	return matchreport.MatchReport{
		Key:          matchreport.ReportKey{Home: row.HomeTeam, Away: row.AwayTeam},
		Observations: row.Observations,
		Home:         home.participation(row.HomeTeam),
		Away:         away.participation(row.AwayTeam),
	}, nil
}
