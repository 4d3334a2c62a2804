package matchreport

import (
	"errors"
	"fmt"
	"strings"
)

// MaxStarters is the most players a side may list as starting.
const MaxStarters = 11

var (
	ErrTooManyStarters = errors.New("too many starting players")
	ErrNegativeCount   = errors.New("player counters cannot be negative")
	ErrInvalidKey      = errors.New("invalid match report key")
)

// ReportKey identifies the report of one fixture by its two team names.
type ReportKey struct {
	Home string
	Away string
}

// ID renders the legacy "{home}-{away}" document id.
func (k ReportKey) ID() string {
	return k.Home + "-" + k.Away
}

func (k ReportKey) Validate() error {
	if strings.TrimSpace(k.Home) == "" || strings.TrimSpace(k.Away) == "" {
		return fmt.Errorf("%w: both teams are required", ErrInvalidKey)
	}
	if k.Home == k.Away {
		return fmt.Errorf("%w: home and away are the same team %q", ErrInvalidKey, k.Home)
	}
	return nil
}

// ParseReportID resolves a legacy hyphenated id. Team names may contain
// hyphens themselves, so every split point is tried against the known names:
// the first split where both sides are known wins, then the first split where
// one side is known, then the first hyphen.
func ParseReportID(id string, knownTeams []string) (ReportKey, bool) {
	known := make(map[string]struct{}, len(knownTeams))
	for _, name := range knownTeams {
		known[name] = struct{}{}
	}

	var partial, first *ReportKey
	for i := 0; i < len(id); i++ {
		if id[i] != '-' {
			continue
		}
		key := ReportKey{Home: id[:i], Away: id[i+1:]}
		if key.Home == "" || key.Away == "" {
			continue
		}
		_, homeKnown := known[key.Home]
		_, awayKnown := known[key.Away]
		if homeKnown && awayKnown {
			return key, true
		}
		if partial == nil && (homeKnown || awayKnown) {
			k := key
			partial = &k
		}
		if first == nil {
			k := key
			first = &k
		}
	}

	switch {
	case partial != nil:
		return *partial, true
	case first != nil:
		return *first, true
	default:
		return ReportKey{}, false
	}
}

// Player is one participation record inside a report.
type Player struct {
	ID              string
	Name            string
	MatchNumber     string
	IsStarting      bool
	SubstitutionMin string
	Goals           int
	YellowCards     int
	RedCards        int
	DirectRedCards  int
}

// Participation is one side's lineup and events.
type Participation struct {
	Team      string
	Players   []Player
	Formation string
}

func (p Participation) Starters() int {
	n := 0
	for _, pl := range p.Players {
		if pl.IsStarting {
			n++
		}
	}
	return n
}

func (p Participation) Validate() error {
	if n := p.Starters(); n > MaxStarters {
		return fmt.Errorf("%w: team=%s starters=%d max=%d", ErrTooManyStarters, p.Team, n, MaxStarters)
	}
	for _, pl := range p.Players {
		if pl.Goals < 0 || pl.YellowCards < 0 || pl.RedCards < 0 || pl.DirectRedCards < 0 {
			return fmt.Errorf("%w: team=%s player=%s", ErrNegativeCount, p.Team, pl.Name)
		}
	}
	return nil
}

// MatchReport is the digital acta for one match.
type MatchReport struct {
	Key          ReportKey
	Observations string
	Home         Participation
	Away         Participation
}

// Sides returns the home and away participations with their team names set
// from the key.
func (r MatchReport) Sides() []Participation {
	home := r.Home
	if home.Team == "" {
		home.Team = r.Key.Home
	}
	away := r.Away
	if away.Team == "" {
		away.Team = r.Key.Away
	}
	return []Participation{home, away}
}

func (r MatchReport) Validate() error {
	if err := r.Key.Validate(); err != nil {
		return err
	}
	for _, side := range r.Sides() {
		if err := side.Validate(); err != nil {
			return err
		}
	}
	return nil
}
