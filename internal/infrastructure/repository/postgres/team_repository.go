package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
)

const teamColumns = `id, public_id, name, created_at, updated_at, deleted_at`

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+teamColumns+` FROM teams WHERE deleted_at IS NULL ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	if len(rows) == 0 {
		return []team.Team{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PublicID)
	}
	players, err := r.playersByTeam(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row, players[row.PublicID]))
	}
	return out, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	var row teamTableModel
	query := `SELECT ` + teamColumns + ` FROM teams WHERE name = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if shouldRetryWithLiteral(err) {
			return r.getByNameLiteral(ctx, name)
		}
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by name: %w", err)
	}

	players, err := r.playersByTeam(ctx, []string{row.PublicID})
	if err != nil {
		return team.Team{}, false, err
	}
	return teamFromRow(row, players[row.PublicID]), true, nil
}

func (r *TeamRepository) getByNameLiteral(ctx context.Context, name string) (team.Team, bool, error) {
	var row teamTableModel
	query := `SELECT ` + teamColumns + ` FROM teams WHERE name = ` + quoteLiteral(name) + ` AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by name literal fallback: %w", err)
	}

	players, err := r.playersByTeam(ctx, []string{row.PublicID})
	if err != nil {
		return team.Team{}, false, err
	}
	return teamFromRow(row, players[row.PublicID]), true, nil
}

func (r *TeamRepository) playersByTeam(ctx context.Context, teamIDs []string) (map[string][]team.Player, error) {
	var rows []playerTableModel
	query := `
SELECT id, team_public_id, player_code, name, alias, position
FROM players
WHERE team_public_id = ANY($1) AND deleted_at IS NULL
ORDER BY team_public_id, position, id`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(teamIDs)); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make(map[string][]team.Player, len(teamIDs))
	for _, row := range rows {
		out[row.TeamPublicID] = append(out[row.TeamPublicID], team.Player{
			ID:    nullStringValue(row.PlayerCode),
			Name:  row.Name,
			Alias: nullStringValue(row.Alias),
		})
	}
	return out, nil
}

func teamFromRow(row teamTableModel, players []team.Player) team.Team {
	if players == nil {
		players = []team.Player{}
	}
	return team.Team{
		ID:      row.PublicID,
		Name:    row.Name,
		Players: players,
	}
}
