package leaguestats

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
)

func played(home, away string, homeGoals, awayGoals int, date string) matchday.Match {
	return matchday.Match{
		Home:      home,
		Away:      away,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Date:      date,
		Time:      "16:00",
		Status:    matchday.StatusPlayed,
	}
}

func TestComputeStandingsSingleMatch(t *testing.T) {
	t.Parallel()

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{played("A", "B", 2, 1, "")}},
	}
	teams := []team.Team{{Name: "A"}, {Name: "B"}}

	got := ComputeStandings(matchdays, teams, DefaultRules())
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got=%d", len(got))
	}

	want := []TeamStanding{
		{Position: 1, Team: "A", Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3, Form: []FormResult{FormWin}},
		{Position: 2, Team: "B", Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 0, Form: []FormResult{FormLoss}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("standings mismatch:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestComputeStandingsIncludesIdleAndOrphanTeams(t *testing.T) {
	t.Parallel()

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{played("A", "Ghost", 1, 1, "")}},
	}
	teams := []team.Team{{Name: "A"}, {Name: "Idle"}}

	got := ComputeStandings(matchdays, teams, DefaultRules())
	names := make(map[string]TeamStanding, len(got))
	for _, row := range got {
		names[row.Team] = row
	}
	if _, ok := names["Idle"]; !ok {
		t.Fatalf("expected team without matches to appear")
	}
	if row, ok := names["Ghost"]; !ok || row.Points != 1 {
		t.Fatalf("expected orphan team row with a draw, got=%+v ok=%v", row, ok)
	}
}

func TestComputeStandingsSkipsPendingAndBadRecords(t *testing.T) {
	t.Parallel()

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{
			played("A", "B", 3, 0, ""),
			played("C", "C", 5, 0, ""),
			{Home: "", Away: "B", Status: matchday.StatusPlayed, HomeGoals: 9},
			{Home: "B", Away: "A", HomeGoals: 7, Status: matchday.StatusPending},
			{Home: "A", Away: "B", HomeGoals: -2, Status: matchday.StatusPlayed},
		}},
	}

	got := ComputeStandings(matchdays, nil, DefaultRules())
	for _, row := range got {
		switch row.Team {
		case "A":
			if row.Played != 1 || row.Points != 3 || row.GoalsFor != 3 {
				t.Fatalf("unexpected row for A: %+v", row)
			}
		case "B":
			if row.Played != 1 || row.GoalsAgainst != 3 {
				t.Fatalf("unexpected row for B: %+v", row)
			}
		default:
			t.Fatalf("unexpected team in standings: %q", row.Team)
		}
	}
}

func TestComputeStandingsCountsLiveMatches(t *testing.T) {
	t.Parallel()

	live := played("A", "B", 0, 1, "")
	live.Status = matchday.StatusLive
	got := ComputeStandings([]matchday.Matchday{{Jornada: 1, Matches: []matchday.Match{live}}}, nil, DefaultRules())
	if got[0].Team != "B" || got[0].Points != 3 {
		t.Fatalf("expected provisional win for B, got=%+v", got[0])
	}
}

func TestComputeStandingsTieBreaks(t *testing.T) {
	t.Parallel()

	// A-D finish on 3 points and are split by goal difference then goals
	// scored. Y and X draw and are identical, so the name decides.
	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{
			played("A", "B", 3, 0, ""),
			played("C", "D", 1, 0, ""),
			played("Y", "X", 1, 1, ""),
		}},
		{Jornada: 2, Date: "08-03-2025", Matches: []matchday.Match{
			played("B", "C", 2, 0, ""),
			played("D", "A", 2, 0, ""),
		}},
	}

	got := ComputeStandings(matchdays, nil, DefaultRules())
	order := make([]string, 0, len(got))
	for _, row := range got {
		order = append(order, row.Team)
	}
	want := []string{"A", "D", "B", "C", "X", "Y"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order mismatch: got=%v want=%v rows=%+v", order, want, got)
	}
	for i, row := range got {
		if row.Position != i+1 {
			t.Fatalf("position mismatch at %d: %+v", i, row)
		}
	}
}

func TestComputeStandingsIsIdempotent(t *testing.T) {
	t.Parallel()

	matchdays := sampleSeason()
	first := ComputeStandings(matchdays, nil, DefaultRules())
	second := ComputeStandings(matchdays, nil, DefaultRules())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output across runs")
	}
}

func TestComputeStandingsInvariants(t *testing.T) {
	t.Parallel()

	matchdays := sampleSeason()
	rules := DefaultRules()
	got := ComputeStandings(matchdays, nil, rules)

	var goalsFor, goalsAgainst, points, matches int
	for _, row := range got {
		goalsFor += row.GoalsFor
		goalsAgainst += row.GoalsAgainst
		points += row.Points
		if len(row.Form) > rules.FormLength {
			t.Fatalf("form too long for %s: %v", row.Team, row.Form)
		}
		if row.Won+row.Drawn+row.Lost != row.Played {
			t.Fatalf("result counts do not add up for %s: %+v", row.Team, row)
		}
	}
	if goalsFor != goalsAgainst {
		t.Fatalf("goal symmetry broken: for=%d against=%d", goalsFor, goalsAgainst)
	}

	var draws int
	for _, md := range matchdays {
		for _, m := range md.Matches {
			matches++
			if m.HomeGoals == m.AwayGoals {
				draws++
			}
		}
	}
	// Each decided match awards 3+0 and each draw 1+1.
	wantPoints := (matches-draws)*3 + draws*2
	if points != wantPoints {
		t.Fatalf("points not zero-sum: got=%d want=%d", points, wantPoints)
	}
}

func TestComputeStandingsPointsPerMatch(t *testing.T) {
	t.Parallel()

	for _, md := range sampleSeason() {
		for _, m := range md.Matches {
			rows := ComputeStandings([]matchday.Matchday{{Jornada: 1, Matches: []matchday.Match{m}}}, nil, DefaultRules())
			pair := [2]int{rows[0].Points, rows[1].Points}
			if pair != [2]int{3, 0} && pair != [2]int{1, 1} {
				t.Fatalf("unexpected point split %v for %+v", pair, m)
			}
		}
	}
}

func TestComputeStandingsFormFollowsKickoffOrder(t *testing.T) {
	t.Parallel()

	// Stored newest first: the form must still end with the latest result.
	matchdays := []matchday.Matchday{
		{Jornada: 7, Date: "19-04-2025", Matches: []matchday.Match{played("A", "B", 0, 1, "")}},
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 2, Date: "08-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 3, Date: "15-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 4, Date: "22-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 5, Date: "29-03-2025", Matches: []matchday.Match{played("A", "B", 1, 1, "")}},
		{Jornada: 6, Date: "05-04-2025", Matches: []matchday.Match{played("A", "B", 1, 1, "")}},
	}

	got := ComputeStandings(matchdays, nil, DefaultRules())
	var a TeamStanding
	for _, row := range got {
		if row.Team == "A" {
			a = row
		}
	}
	want := []FormResult{FormWin, FormWin, FormDraw, FormDraw, FormLoss}
	if !reflect.DeepEqual(a.Form, want) {
		t.Fatalf("form mismatch: got=%v want=%v", a.Form, want)
	}
	if a.Played != 7 {
		t.Fatalf("expected 7 played, got=%d", a.Played)
	}
}

func sampleSeason() []matchday.Matchday {
	return []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{
			played("Atlético Barrio", "Deportivo Sur", 2, 1, ""),
			played("Real Vecinos", "CD Norte", 0, 0, ""),
		}},
		{Jornada: 2, Date: "08-03-2025", Matches: []matchday.Match{
			played("Deportivo Sur", "Real Vecinos", 4, 2, ""),
			played("CD Norte", "Atlético Barrio", 1, 3, ""),
		}},
		{Jornada: 3, Date: "15/03/2025", Matches: []matchday.Match{
			played("Atlético Barrio", "Real Vecinos", 1, 1, ""),
			played("Deportivo Sur", "CD Norte", 0, 2, ""),
		}},
		{Jornada: 4, Date: "22-03-2025", Matches: []matchday.Match{
			played("Deportivo Sur", "Atlético Barrio", 3, 3, ""),
			played("CD Norte", "Real Vecinos", 2, 0, ""),
		}},
		{Jornada: 5, Date: "29-03-2025", Matches: []matchday.Match{
			played("Real Vecinos", "Deportivo Sur", 1, 0, ""),
			played("Atlético Barrio", "CD Norte", 5, 0, ""),
		}},
		{Jornada: 6, Date: "05-04-2025", Matches: []matchday.Match{
			played("CD Norte", "Deportivo Sur", 1, 2, ""),
			played("Real Vecinos", "Atlético Barrio", 2, 2, ""),
		}},
	}
}

func TestComputeStandingsZeroAndPartialRulesKeepDrawSplit(t *testing.T) {
	t.Parallel()

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{played("A", "B", 1, 1, "")}},
		{Jornada: 2, Date: "08-03-2025", Matches: []matchday.Match{played("A", "B", 2, 0, "")}},
	}

	for name, rules := range map[string]Rules{
		"zero":            {},
		"only red weight": {RedCardWeight: 5},
	} {
		rows := ComputeStandings(matchdays[:1], nil, rules)
		if rows[0].Points != 1 || rows[1].Points != 1 {
			t.Fatalf("%s: draw awarded %d+%d, want 1+1", name, rows[0].Points, rows[1].Points)
		}

		rows = ComputeStandings(matchdays[1:], nil, rules)
		if rows[0].Points != 3 || rows[1].Points != 0 {
			t.Fatalf("%s: win awarded %d+%d, want 3+0", name, rows[0].Points, rows[1].Points)
		}
	}
}

func TestNormalizeRules(t *testing.T) {
	t.Parallel()

	if got := normalizeRules(Rules{}); got != DefaultRules() {
		t.Fatalf("zero rules normalized to %+v", got)
	}

	custom := Rules{WinPoints: 2, DrawPoints: 1, RankingLimit: 10, RedCardWeight: 2}
	got := normalizeRules(custom)
	if got.WinPoints != 2 || got.RankingLimit != 10 || got.RedCardWeight != 2 || got.LossPoints != 0 {
		t.Fatalf("custom rules lost values: %+v", got)
	}
	if got.FormLength != 5 {
		t.Fatalf("expected default form length, got %d", got.FormLength)
	}
}
