package team

import (
	"fmt"
	"strings"
)

// Team is a club entry. Name is the display identity and the join key used
// by matches and match reports.
type Team struct {
	ID      string
	Name    string
	Players []Player
}

// Player is a roster entry. ID is the dorsal-like identifier and may be
// numeric or free text.
type Player struct {
	ID    string
	Name  string
	Alias string
}

// DisplayName prefers the alias when one is set.
func (p Player) DisplayName() string {
	if alias := strings.TrimSpace(p.Alias); alias != "" {
		return alias
	}
	return p.Name
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	seen := make(map[string]struct{}, len(t.Players))
	for _, p := range t.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player name is required in team %s", t.Name)
		}
		if p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate player id %s in team %s", p.ID, t.Name)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// Names returns the team names in input order.
func Names(teams []Team) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Name)
	}
	return out
}
