package leaguestats

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
)

// FormResult is one letter of a team's recent form.
type FormResult string

const (
	FormWin  FormResult = "W"
	FormDraw FormResult = "D"
	FormLoss FormResult = "L"
)

// TeamStanding is one row of the league table.
type TeamStanding struct {
	Position       int
	Team           string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           []FormResult
}

// ComputeStandings folds every PLAYED or LIVE match into the league table.
// LIVE matches are included, so the table is provisional while a match is in
// progress. Matches are folded in kickoff order so Form reflects the most
// recent results even when rounds are stored out of order.
func ComputeStandings(matchdays []matchday.Matchday, teams []team.Team, rules Rules) []TeamStanding {
	rules = normalizeRules(rules)

	rows := make(map[string]*TeamStanding, len(teams))
	row := func(name string) *TeamStanding {
		if r, ok := rows[name]; ok {
			return r
		}
		r := &TeamStanding{Team: name}
		rows[name] = r
		return r
	}
	for _, t := range teams {
		if strings.TrimSpace(t.Name) == "" {
			continue
		}
		row(t.Name)
	}

	for _, fx := range chronological(matchdays) {
		m := fx.match
		if m.Validate() != nil {
			continue
		}
		home := row(m.Home)
		away := row(m.Away)
		if !matchday.NormalizeStatus(string(m.Status)).HasResult() {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeGoals
		home.GoalsAgainst += m.AwayGoals
		away.GoalsFor += m.AwayGoals
		away.GoalsAgainst += m.HomeGoals

		switch {
		case m.HomeGoals > m.AwayGoals:
			record(home, FormWin, rules)
			record(away, FormLoss, rules)
		case m.HomeGoals < m.AwayGoals:
			record(home, FormLoss, rules)
			record(away, FormWin, rules)
		default:
			record(home, FormDraw, rules)
			record(away, FormDraw, rules)
		}
	}

	out := make([]TeamStanding, 0, len(rows))
	for _, r := range rows {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		if len(r.Form) > rules.FormLength {
			r.Form = append([]FormResult(nil), r.Form[len(r.Form)-rules.FormLength:]...)
		}
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func record(r *TeamStanding, result FormResult, rules Rules) {
	switch result {
	case FormWin:
		r.Won++
		r.Points += rules.WinPoints
	case FormDraw:
		r.Drawn++
		r.Points += rules.DrawPoints
	case FormLoss:
		r.Lost++
		r.Points += rules.LossPoints
	}
	r.Form = append(r.Form, result)
}

type fixtureRef struct {
	match matchday.Match
	at    time.Time
	seq   int
}

// chronological flattens the matchdays and orders matches by kickoff. A
// match without a parsable kickoff falls back to its date at midnight, and
// failing that keeps the slot of the match stored before it.
func chronological(matchdays []matchday.Matchday) []fixtureRef {
	var out []fixtureRef
	var last time.Time
	seq := 0
	for _, md := range matchdays {
		for _, m := range md.Matches {
			date := md.EffectiveDate(m)
			at, ok := ParseKickoff(date, m.Time, time.UTC)
			if !ok {
				at, ok = ParseDate(date, time.UTC)
			}
			if !ok {
				at = last
			}
			last = at
			out = append(out, fixtureRef{match: m, at: at, seq: seq})
			seq++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].at.Equal(out[j].at) {
			return out[i].at.Before(out[j].at)
		}
		return out[i].seq < out[j].seq
	})
	return out
}
