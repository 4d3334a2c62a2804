package postgres

import (
	"database/sql"
	"time"
)

type matchdayTableModel struct {
	Jornada   int            `db:"jornada"`
	MatchDate sql.NullString `db:"match_date"`
	RestTeam  sql.NullString `db:"rest_team"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type matchTableModel struct {
	ID         int64          `db:"id"`
	Jornada    int            `db:"jornada"`
	MatchIndex int            `db:"match_index"`
	HomeTeam   string         `db:"home_team"`
	AwayTeam   string         `db:"away_team"`
	HomeGoals  int            `db:"home_goals"`
	AwayGoals  int            `db:"away_goals"`
	MatchDate  sql.NullString `db:"match_date"`
	Kickoff    sql.NullString `db:"kickoff"`
	Status     string         `db:"status"`
	Referee    sql.NullString `db:"referee"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
