package leaguestats

import (
	"sort"
	"strings"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

// TopScorer is one row of the pichichi ranking.
type TopScorer struct {
	Name     string
	Team     string
	Goals    int
	PlayerID string
}

// CardRanking is one row of the discipline ranking. RedCards merges second
// yellow and direct reds.
type CardRanking struct {
	Name        string
	Team        string
	YellowCards int
	RedCards    int
	PlayerID    string
}

// playerKey groups by name within a team: the same name on two teams is two
// players.
type playerKey struct {
	name string
	team string
}

// ComputeTopScorers sums goals per (player name, team) over all reports,
// ordered by goals desc, then name and team asc.
func ComputeTopScorers(reports []matchreport.MatchReport, rules Rules) []TopScorer {
	rules = normalizeRules(rules)

	index := make(map[playerKey]*TopScorer)
	forEachPlayer(reports, func(teamName string, p matchreport.Player) {
		goals := nonNegative(p.Goals)
		if goals == 0 {
			return
		}
		key := playerKey{name: p.Name, team: teamName}
		row, ok := index[key]
		if !ok {
			row = &TopScorer{Name: p.Name, Team: teamName}
			index[key] = row
		}
		row.Goals += goals
		if row.PlayerID == "" {
			row.PlayerID = p.ID
		}
	})

	out := make([]TopScorer, 0, len(index))
	for _, row := range index {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Team < out[j].Team
	})

	return truncate(out, rules.RankingLimit)
}

// ComputeCardRankings sums cards per (player name, team), ranked by
// yellow + RedCardWeight*red desc, then reds desc, then name and team asc.
func ComputeCardRankings(reports []matchreport.MatchReport, rules Rules) []CardRanking {
	rules = normalizeRules(rules)

	index := make(map[playerKey]*CardRanking)
	forEachPlayer(reports, func(teamName string, p matchreport.Player) {
		yellow := nonNegative(p.YellowCards)
		red := nonNegative(p.RedCards) + nonNegative(p.DirectRedCards)
		if yellow == 0 && red == 0 {
			return
		}
		key := playerKey{name: p.Name, team: teamName}
		row, ok := index[key]
		if !ok {
			row = &CardRanking{Name: p.Name, Team: teamName}
			index[key] = row
		}
		row.YellowCards += yellow
		row.RedCards += red
		if row.PlayerID == "" {
			row.PlayerID = p.ID
		}
	})

	out := make([]CardRanking, 0, len(index))
	for _, row := range index {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := CardScore(out[i], rules), CardScore(out[j], rules)
		if si != sj {
			return si > sj
		}
		if out[i].RedCards != out[j].RedCards {
			return out[i].RedCards > out[j].RedCards
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Team < out[j].Team
	})

	return truncate(out, rules.RankingLimit)
}

// CardScore is the severity weight used to rank a discipline row.
func CardScore(c CardRanking, rules Rules) int {
	rules = normalizeRules(rules)
	return c.YellowCards + rules.RedCardWeight*c.RedCards
}

func forEachPlayer(reports []matchreport.MatchReport, fn func(teamName string, p matchreport.Player)) {
	for _, report := range reports {
		for _, side := range report.Sides() {
			teamName := strings.TrimSpace(side.Team)
			if teamName == "" {
				continue
			}
			for _, p := range side.Players {
				if strings.TrimSpace(p.Name) == "" {
					continue
				}
				fn(teamName, p)
			}
		}
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
