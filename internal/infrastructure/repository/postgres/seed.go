package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/liga-amateur/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads seed into an empty database. It is a no-op once any
// team exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, seed memory.Seed) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", label, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	for _, t := range seed.Teams {
		if err := exec("team "+t.ID, `
INSERT INTO teams (public_id, name)
VALUES (:public_id, :name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
		}); err != nil {
			return err
		}

		for i, p := range t.Players {
			if err := exec(fmt.Sprintf("player %s/%d", t.ID, i), `
INSERT INTO players (team_public_id, player_code, name, alias, position)
VALUES (:team_public_id, :player_code, :name, :alias, :position)`, map[string]any{
				"team_public_id": t.ID,
				"player_code":    toNullString(p.ID),
				"name":           p.Name,
				"alias":          toNullString(p.Alias),
				"position":       i,
			}); err != nil {
				return err
			}
		}
	}

	for _, md := range seed.Matchdays {
		if err := exec(fmt.Sprintf("matchday %d", md.Jornada), `
INSERT INTO matchdays (jornada, match_date, rest_team)
VALUES (:jornada, :match_date, :rest_team)
ON CONFLICT (jornada) DO NOTHING`, map[string]any{
			"jornada":    md.Jornada,
			"match_date": toNullString(md.Date),
			"rest_team":  toNullString(md.Rest),
		}); err != nil {
			return err
		}

		for i, m := range md.Matches {
			if err := exec(fmt.Sprintf("match %d/%d", md.Jornada, i), `
INSERT INTO matches (jornada, match_index, home_team, away_team, home_goals, away_goals, match_date, kickoff, status, referee)
VALUES (:jornada, :match_index, :home_team, :away_team, :home_goals, :away_goals, :match_date, :kickoff, :status, :referee)
ON CONFLICT (jornada, match_index) DO NOTHING`, map[string]any{
				"jornada":     md.Jornada,
				"match_index": i,
				"home_team":   m.Home,
				"away_team":   m.Away,
				"home_goals":  m.HomeGoals,
				"away_goals":  m.AwayGoals,
				"match_date":  toNullString(m.Date),
				"kickoff":     toNullString(m.Time),
				"status":      string(m.Status),
				"referee":     toNullString(m.Referee),
			}); err != nil {
				return err
			}
		}
	}

	for _, report := range seed.MatchReports {
		sides := report.Sides()
		homeSide, err := sonic.Marshal(sideToDocument(sides[0]))
		if err != nil {
			return fmt.Errorf("encode seed report %s: %w", report.Key.ID(), err)
		}
		awaySide, err := sonic.Marshal(sideToDocument(sides[1]))
		if err != nil {
			return fmt.Errorf("encode seed report %s: %w", report.Key.ID(), err)
		}
		if err := exec("report "+report.Key.ID(), `
INSERT INTO match_reports (home_team, away_team, observations, home_side, away_side)
VALUES (:home_team, :away_team, :observations, :home_side, :away_side)
ON CONFLICT (home_team, away_team) DO NOTHING`, map[string]any{
			"home_team":    report.Key.Home,
			"away_team":    report.Key.Away,
			"observations": report.Observations,
			"home_side":    string(homeSide),
			"away_side":    string(awaySide),
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
