package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
)

const (
	matchdayColumns = `jornada, match_date, rest_team, created_at, updated_at`
	matchColumns    = `id, jornada, match_index, home_team, away_team, home_goals, away_goals, match_date, kickoff, status, referee, updated_at`
)

type MatchdayRepository struct {
	db *sqlx.DB
}

func NewMatchdayRepository(db *sqlx.DB) *MatchdayRepository {
	return &MatchdayRepository{db: db}
}

func (r *MatchdayRepository) List(ctx context.Context) ([]matchday.Matchday, error) {
	var rows []matchdayTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+matchdayColumns+` FROM matchdays ORDER BY jornada`); err != nil {
		return nil, fmt.Errorf("select matchdays: %w", err)
	}

	var matchRows []matchTableModel
	if err := r.db.SelectContext(ctx, &matchRows, `SELECT `+matchColumns+` FROM matches ORDER BY jornada, match_index`); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	byJornada := make(map[int][]matchday.Match, len(rows))
	for _, row := range matchRows {
		byJornada[row.Jornada] = append(byJornada[row.Jornada], matchFromRow(row))
	}

	out := make([]matchday.Matchday, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchdayFromRow(row, byJornada[row.Jornada]))
	}
	return out, nil
}

func (r *MatchdayRepository) GetByJornada(ctx context.Context, jornada int) (matchday.Matchday, bool, error) {
	var row matchdayTableModel
	if err := r.db.GetContext(ctx, &row, `SELECT `+matchdayColumns+` FROM matchdays WHERE jornada = $1`, jornada); err != nil {
		if isNotFound(err) {
			return matchday.Matchday{}, false, nil
		}
		return matchday.Matchday{}, false, fmt.Errorf("get matchday %d: %w", jornada, err)
	}

	var matchRows []matchTableModel
	if err := r.db.SelectContext(ctx, &matchRows, `SELECT `+matchColumns+` FROM matches WHERE jornada = $1 ORDER BY match_index`, jornada); err != nil {
		return matchday.Matchday{}, false, fmt.Errorf("select matches for matchday %d: %w", jornada, err)
	}

	matches := make([]matchday.Match, 0, len(matchRows))
	for _, m := range matchRows {
		matches = append(matches, matchFromRow(m))
	}
	return matchdayFromRow(row, matches), true, nil
}

func (r *MatchdayRepository) UpdateResult(ctx context.Context, jornada, index int, result matchday.Result) (bool, error) {
	return r.exec(ctx, "update match result", `
UPDATE matches
SET home_goals = :home_goals, away_goals = :away_goals, status = :status, updated_at = NOW()
WHERE jornada = :jornada AND match_index = :match_index`, map[string]any{
		"home_goals":  result.HomeGoals,
		"away_goals":  result.AwayGoals,
		"status":      string(result.Status),
		"jornada":     jornada,
		"match_index": index,
	})
}

func (r *MatchdayRepository) UpdateSchedule(ctx context.Context, jornada, index int, date, kickoff string) (bool, error) {
	return r.exec(ctx, "update match schedule", `
UPDATE matches
SET match_date = :match_date, kickoff = :kickoff, updated_at = NOW()
WHERE jornada = :jornada AND match_index = :match_index`, map[string]any{
		"match_date":  toNullString(date),
		"kickoff":     toNullString(kickoff),
		"jornada":     jornada,
		"match_index": index,
	})
}

// MarkLive only touches rows whose status still normalizes to PENDING, so
// concurrent sweeps and admin edits never regress a match.
func (r *MatchdayRepository) MarkLive(ctx context.Context, jornada, index int) (bool, error) {
	return r.exec(ctx, "mark match live", `
UPDATE matches
SET status = 'LIVE', updated_at = NOW()
WHERE jornada = :jornada AND match_index = :match_index
  AND UPPER(TRIM(COALESCE(status, ''))) NOT IN ('LIVE', 'PLAYED', 'POSTPONED')`, map[string]any{
		"jornada":     jornada,
		"match_index": index,
	})
}

func (r *MatchdayRepository) exec(ctx context.Context, op, query string, arg map[string]any) (bool, error) {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return false, fmt.Errorf("bind %s query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(sqlQuery), args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsChanged(res, op)
}

func rowsChanged(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n > 0, nil
}

func matchdayFromRow(row matchdayTableModel, matches []matchday.Match) matchday.Matchday {
	if matches == nil {
		matches = []matchday.Match{}
	}
	return matchday.Matchday{
		Jornada: row.Jornada,
		Date:    nullStringValue(row.MatchDate),
		Rest:    nullStringValue(row.RestTeam),
		Matches: matches,
	}
}

func matchFromRow(row matchTableModel) matchday.Match {
	return matchday.Match{
		Home:      row.HomeTeam,
		Away:      row.AwayTeam,
		HomeGoals: row.HomeGoals,
		AwayGoals: row.AwayGoals,
		Date:      nullStringValue(row.MatchDate),
		Time:      nullStringValue(row.Kickoff),
		Status:    matchday.Status(row.Status),
		Referee:   nullStringValue(row.Referee),
	}
}
