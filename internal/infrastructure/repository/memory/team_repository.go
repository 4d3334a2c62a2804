package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/liga-amateur/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		out = append(out, cloneTeam(item))
	}

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, cloneTeam(item))
	}
	return out, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, item := range r.teams {
		if item.Name == name {
			return cloneTeam(item), true, nil
		}
	}

	return team.Team{}, false, nil
}

func cloneTeam(t team.Team) team.Team {
	out := t
	out.Players = append([]team.Player(nil), t.Players...)
	return out
}
