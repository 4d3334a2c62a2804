package matchday

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusLive      Status = "LIVE"
	StatusPlayed    Status = "PLAYED"
	StatusScheduled Status = "SCHEDULED"
	StatusPostponed Status = "POSTPONED"
)

var (
	ErrSameTeam      = errors.New("home and away team must differ")
	ErrMissingTeam   = errors.New("team name is required")
	ErrNegativeGoals = errors.New("goals cannot be negative")
	ErrInvalidStatus = errors.New("invalid match status")
)

// NormalizeStatus maps stored values onto the canonical set. SCHEDULED is a
// legacy alias of PENDING; empty and unknown values degrade to PENDING.
func NormalizeStatus(value string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusLive:
		return StatusLive
	case StatusPlayed:
		return StatusPlayed
	case StatusPostponed:
		return StatusPostponed
	default:
		return StatusPending
	}
}

// ParseStatus is the strict variant used for admin writes.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusPending, StatusScheduled:
		return StatusPending, nil
	case StatusLive:
		return StatusLive, nil
	case StatusPlayed:
		return StatusPlayed, nil
	case StatusPostponed:
		return StatusPostponed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
}

// HasResult reports whether goals are meaningful for the status.
func (s Status) HasResult() bool {
	return s == StatusPlayed || s == StatusLive
}

// Match is one fixture within a matchday. Team names are the join key
// across teams, matches and reports.
type Match struct {
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Date      string
	Time      string
	Status    Status
	Referee   string
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Home) == "" || strings.TrimSpace(m.Away) == "" {
		return ErrMissingTeam
	}
	if m.Home == m.Away {
		return fmt.Errorf("%w: %s", ErrSameTeam, m.Home)
	}
	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		return ErrNegativeGoals
	}
	return nil
}

// Matchday is one round (jornada) of the competition.
type Matchday struct {
	Jornada int
	Date    string
	Matches []Match
	Rest    string
}

// EffectiveDate returns the match date, falling back to the round date.
func (md Matchday) EffectiveDate(m Match) string {
	if strings.TrimSpace(m.Date) != "" {
		return m.Date
	}
	return md.Date
}

func (md Matchday) Validate() error {
	if md.Jornada <= 0 {
		return fmt.Errorf("jornada must be positive, got %d", md.Jornada)
	}
	for i, m := range md.Matches {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
	}
	return nil
}

// Normalized returns a copy with every match status canonicalised.
func (md Matchday) Normalized() Matchday {
	out := md
	out.Matches = make([]Match, len(md.Matches))
	for i, m := range md.Matches {
		m.Status = NormalizeStatus(string(m.Status))
		out.Matches[i] = m
	}
	return out
}
