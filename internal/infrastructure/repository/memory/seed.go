package memory

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
)

//go:embed seeddata/default.yaml
var defaultSeed []byte

// Seed is the full dataset backing the memory driver.
type Seed struct {
	Teams        []team.Team
	Matchdays    []matchday.Matchday
	MatchReports []matchreport.MatchReport
}

type seedFile struct {
	Teams []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Players []struct {
			ID    string `yaml:"id"`
			Name  string `yaml:"name"`
			Alias string `yaml:"alias"`
		} `yaml:"players"`
	} `yaml:"teams"`
	Matchdays []struct {
		Jornada int    `yaml:"jornada"`
		Date    string `yaml:"date"`
		Rest    string `yaml:"rest"`
		Matches []struct {
			Home      string `yaml:"home"`
			Away      string `yaml:"away"`
			HomeGoals int    `yaml:"home_goals"`
			AwayGoals int    `yaml:"away_goals"`
			Date      string `yaml:"date"`
			Time      string `yaml:"time"`
			Status    string `yaml:"status"`
			Referee   string `yaml:"referee"`
		} `yaml:"matches"`
	} `yaml:"matchdays"`
	MatchReports []struct {
		Home         string          `yaml:"home"`
		Away         string          `yaml:"away"`
		Observations string          `yaml:"observations"`
		HomeSide     seedParticipant `yaml:"home_side"`
		AwaySide     seedParticipant `yaml:"away_side"`
	} `yaml:"match_reports"`
}

type seedParticipant struct {
	Formation string `yaml:"formation"`
	Players   []struct {
		ID              string `yaml:"id"`
		Name            string `yaml:"name"`
		MatchNumber     string `yaml:"match_number"`
		IsStarting      bool   `yaml:"is_starting"`
		SubstitutionMin string `yaml:"substitution_min"`
		Goals           int    `yaml:"goals"`
		YellowCards     int    `yaml:"yellow_cards"`
		RedCards        int    `yaml:"red_cards"`
		DirectRedCards  int    `yaml:"direct_red_cards"`
	} `yaml:"players"`
}

// DefaultSeed returns the bundled sample league.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads a seed file; an empty path yields the bundled sample league.
func LoadSeed(path string) (Seed, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultSeed()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file %s: %w", path, err)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		return Seed{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes YAML seed data. Matches keep their stored status text;
// normalization happens on read.
func ParseSeed(raw []byte) (Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Seed{}, fmt.Errorf("decode seed yaml: %w", err)
	}

	var out Seed
	for _, t := range file.Teams {
		item := team.Team{ID: t.ID, Name: t.Name}
		for _, p := range t.Players {
			item.Players = append(item.Players, team.Player{ID: p.ID, Name: p.Name, Alias: p.Alias})
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("invalid team %q: %w", t.Name, err)
		}
		out.Teams = append(out.Teams, item)
	}

	seen := make(map[int]struct{}, len(file.Matchdays))
	for _, md := range file.Matchdays {
		if _, dup := seen[md.Jornada]; dup {
			return Seed{}, fmt.Errorf("duplicate jornada %d", md.Jornada)
		}
		seen[md.Jornada] = struct{}{}

		item := matchday.Matchday{Jornada: md.Jornada, Date: md.Date, Rest: md.Rest}
		for _, m := range md.Matches {
			item.Matches = append(item.Matches, matchday.Match{
				Home:      m.Home,
				Away:      m.Away,
				HomeGoals: m.HomeGoals,
				AwayGoals: m.AwayGoals,
				Date:      m.Date,
				Time:      m.Time,
				Status:    matchday.Status(m.Status),
				Referee:   m.Referee,
			})
		}
		if item.Jornada <= 0 {
			return Seed{}, fmt.Errorf("jornada must be positive, got %d", item.Jornada)
		}
		out.Matchdays = append(out.Matchdays, item)
	}

	for _, r := range file.MatchReports {
		out.MatchReports = append(out.MatchReports, matchreport.MatchReport{
			Key:          matchreport.ReportKey{Home: r.Home, Away: r.Away},
			Observations: r.Observations,
			Home:         r.HomeSide.participation(r.Home),
			Away:         r.AwaySide.participation(r.Away),
		})
	}

	return out, nil
}

func (s seedParticipant) participation(teamName string) matchreport.Participation {
	out := matchreport.Participation{Team: teamName, Formation: s.Formation}
	for _, p := range s.Players {
		out.Players = append(out.Players, matchreport.Player{
			ID:              p.ID,
			Name:            p.Name,
			MatchNumber:     p.MatchNumber,
			IsStarting:      p.IsStarting,
			SubstitutionMin: p.SubstitutionMin,
			Goals:           p.Goals,
			YellowCards:     p.YellowCards,
			RedCards:        p.RedCards,
			DirectRedCards:  p.DirectRedCards,
		})
	}
	return out
}
