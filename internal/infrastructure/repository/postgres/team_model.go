package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerTableModel struct {
	ID           int64          `db:"id"`
	TeamPublicID string         `db:"team_public_id"`
	PlayerCode   sql.NullString `db:"player_code"`
	Name         string         `db:"name"`
	Alias        sql.NullString `db:"alias"`
	Position     int            `db:"position"`
}
