package leaguestats

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

func report(home, away string, homePlayers, awayPlayers []matchreport.Player) matchreport.MatchReport {
	return matchreport.MatchReport{
		Key:  matchreport.ReportKey{Home: home, Away: away},
		Home: matchreport.Participation{Players: homePlayers},
		Away: matchreport.Participation{Players: awayPlayers},
	}
}

func TestComputeTopScorersTieIsDeterministic(t *testing.T) {
	t.Parallel()

	reports := []matchreport.MatchReport{
		report("C", "D", []matchreport.Player{{Name: "Yago", Goals: 2}}, nil),
		report("A", "B", []matchreport.Player{{Name: "Xavi", Goals: 2}}, nil),
	}

	got := ComputeTopScorers(reports, DefaultRules())
	want := []TopScorer{
		{Name: "Xavi", Team: "A", Goals: 2},
		{Name: "Yago", Team: "C", Goals: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("scorers mismatch:\n got=%+v\nwant=%+v", got, want)
	}

	reversed := []matchreport.MatchReport{reports[1], reports[0]}
	if again := ComputeTopScorers(reversed, DefaultRules()); !reflect.DeepEqual(again, want) {
		t.Fatalf("order depends on input order: %+v", again)
	}
}

func TestComputeTopScorersGroupsByNameAndTeam(t *testing.T) {
	t.Parallel()

	reports := []matchreport.MatchReport{
		report("A", "B",
			[]matchreport.Player{{ID: "p1", Name: "Luis", Goals: 1}, {Name: "Pedro", Goals: 0}},
			[]matchreport.Player{{ID: "p9", Name: "Luis", Goals: 1}},
		),
		report("C", "A", nil, []matchreport.Player{{ID: "p1", Name: "Luis", Goals: 2}}),
	}

	got := ComputeTopScorers(reports, DefaultRules())
	want := []TopScorer{
		{Name: "Luis", Team: "A", Goals: 3, PlayerID: "p1"},
		{Name: "Luis", Team: "B", Goals: 1, PlayerID: "p9"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("scorers mismatch:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestComputeTopScorersTruncatesAndIgnoresBadRecords(t *testing.T) {
	t.Parallel()

	players := make([]matchreport.Player, 0, 30)
	for i := 0; i < 30; i++ {
		players = append(players, matchreport.Player{Name: fmt.Sprintf("P%02d", i), Goals: i + 1})
	}
	reports := []matchreport.MatchReport{
		report("A", "B", players, []matchreport.Player{{Name: "", Goals: 50}, {Name: "Neg", Goals: -4}}),
		{Key: matchreport.ReportKey{}, Home: matchreport.Participation{Players: []matchreport.Player{{Name: "Lost", Goals: 99}}}},
	}

	got := ComputeTopScorers(reports, DefaultRules())
	if len(got) != 20 {
		t.Fatalf("expected 20 rows, got=%d", len(got))
	}
	if got[0].Name != "P29" || got[0].Goals != 30 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	for _, row := range got {
		if row.Goals <= 0 || row.Name == "Neg" || row.Name == "Lost" {
			t.Fatalf("unexpected row: %+v", row)
		}
	}
}

func TestComputeTopScorersMonotonic(t *testing.T) {
	t.Parallel()

	var reports []matchreport.MatchReport
	previous := 0
	for i := 0; i < 5; i++ {
		reports = append(reports, report("A", "B", []matchreport.Player{{Name: "Luis", Goals: i % 2}}, nil))
		got := ComputeTopScorers(reports, DefaultRules())
		total := 0
		for _, row := range got {
			total += row.Goals
		}
		if total < previous {
			t.Fatalf("total decreased after adding report %d: %d < %d", i, total, previous)
		}
		previous = total
	}
}

func TestComputeCardRankings(t *testing.T) {
	t.Parallel()

	reports := []matchreport.MatchReport{
		report("A", "B",
			[]matchreport.Player{
				{Name: "Duro", YellowCards: 1, DirectRedCards: 1},
				{Name: "Limpio"},
				{Name: "Amarillo", YellowCards: 2},
			},
			[]matchreport.Player{{Name: "Expulsado", YellowCards: 2, RedCards: 1}},
		),
		report("B", "A", []matchreport.Player{{Name: "Amarillo", YellowCards: 2}}, []matchreport.Player{{Name: "Amarillo", YellowCards: 2}}),
	}

	got := ComputeCardRankings(reports, DefaultRules())
	want := []CardRanking{
		{Name: "Expulsado", Team: "B", YellowCards: 2, RedCards: 1},
		{Name: "Duro", Team: "A", YellowCards: 1, RedCards: 1},
		{Name: "Amarillo", Team: "A", YellowCards: 4},
		{Name: "Amarillo", Team: "B", YellowCards: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cards mismatch:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestComputeCardRankingsConfigurableWeight(t *testing.T) {
	t.Parallel()

	reports := []matchreport.MatchReport{
		report("A", "B",
			[]matchreport.Player{{Name: "Rojo", RedCards: 1}, {Name: "Tarjetas", YellowCards: 4}},
			nil,
		),
	}

	rules := DefaultRules()
	if got := ComputeCardRankings(reports, rules); got[0].Name != "Tarjetas" {
		t.Fatalf("expected four yellows to outrank one red at weight 3, got=%+v", got)
	}

	rules.RedCardWeight = 5
	if got := ComputeCardRankings(reports, rules); got[0].Name != "Rojo" {
		t.Fatalf("expected red to lead at weight 5, got=%+v", got)
	}
}
