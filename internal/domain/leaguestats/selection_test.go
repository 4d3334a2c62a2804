package leaguestats

import (
	"testing"
	"time"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
)

func TestSelectFeatured(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	pending := func(home, away string) matchday.Match {
		return matchday.Match{Home: home, Away: away, Time: "16:00", Status: matchday.StatusPending}
	}

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "01-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 2, Date: "15-03-2025", Matches: []matchday.Match{pending("A", "C")}},
		{Jornada: 3, Date: "22-03-2025", Matches: []matchday.Match{played("B", "C", 0, 0, "")}},
		{Jornada: 4, Date: "29-03-2025", Matches: []matchday.Match{pending("C", "A")}},
		{Jornada: 5, Date: "05-04-2025", Matches: []matchday.Match{pending("B", "A")}},
	}

	got := SelectFeatured(matchdays, now, time.UTC)
	if got.LastPlayed == nil || got.LastPlayed.Jornada != 3 {
		t.Fatalf("expected last played jornada 3, got=%+v", got.LastPlayed)
	}
	if got.Next == nil || got.Next.Jornada != 4 {
		t.Fatalf("expected next jornada 4, got=%+v", got.Next)
	}
}

func TestSelectFeaturedTodayCountsAsPlayed(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)
	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "15/03/2025", Matches: []matchday.Match{{Home: "A", Away: "B", Status: matchday.StatusPending}}},
	}

	got := SelectFeatured(matchdays, now, time.UTC)
	if got.LastPlayed == nil || got.LastPlayed.Jornada != 1 {
		t.Fatalf("expected today's matchday as last played, got=%+v", got.LastPlayed)
	}
	if got.Next != nil {
		t.Fatalf("expected no next matchday, got=%+v", got.Next)
	}
}

func TestSelectFeaturedEmptyAndMalformed(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	if got := SelectFeatured(nil, now, time.UTC); got.LastPlayed != nil || got.Next != nil {
		t.Fatalf("expected empty selection, got=%+v", got)
	}

	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "someday", Matches: []matchday.Match{{Home: "A", Away: "B", Status: matchday.StatusPending}}},
		{Jornada: 2, Date: "20-03-2025", Matches: []matchday.Match{{Home: "A", Away: "B", Status: matchday.StatusScheduled}}},
	}
	got := SelectFeatured(matchdays, now, time.UTC)
	if got.LastPlayed != nil {
		t.Fatalf("expected no last played, got=%+v", got.LastPlayed)
	}
	if got.Next == nil || got.Next.Jornada != 2 {
		t.Fatalf("expected legacy scheduled matchday as next, got=%+v", got.Next)
	}
}

func TestSelectFeaturedUsesMatchdayDateForNext(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	matchdays := []matchday.Matchday{
		{Jornada: 1, Matches: []matchday.Match{{Home: "A", Away: "B", Date: "20-03-2025", Time: "16:00", Status: matchday.StatusPending}}},
		{Jornada: 2, Date: "27-03-2025", Matches: []matchday.Match{{Home: "B", Away: "A", Time: "16:00", Status: matchday.StatusPending}}},
	}

	got := SelectFeatured(matchdays, now, time.UTC)
	if got.Next == nil || got.Next.Jornada != 2 {
		t.Fatalf("expected the dated round as next, got=%+v", got.Next)
	}
}

func TestFindLive(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 16, 20, 0, 0, time.UTC)
	matchdays := []matchday.Matchday{
		{Jornada: 1, Date: "08-03-2025", Matches: []matchday.Match{played("A", "B", 1, 0, "")}},
		{Jornada: 2, Date: "15-03-2025", Matches: []matchday.Match{{Home: "A", Away: "C", Time: "16:00"}}},
	}

	got := FindLive(matchdays, now, time.UTC)
	if got == nil || got.Jornada != 2 {
		t.Fatalf("expected live jornada 2, got=%+v", got)
	}
	if FindLive(matchdays, now.Add(3*time.Hour), time.UTC) != nil {
		t.Fatalf("expected no live matchday after the window")
	}
}

func TestSortByJornada(t *testing.T) {
	t.Parallel()

	matchdays := []matchday.Matchday{{Jornada: 3}, {Jornada: 1}, {Jornada: 2}}
	SortByJornada(matchdays)
	for i, md := range matchdays {
		if md.Jornada != i+1 {
			t.Fatalf("unexpected order: %+v", matchdays)
		}
	}
}
