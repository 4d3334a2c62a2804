package leaguestats

import (
	"sort"
	"time"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
)

// Selection holds the matchdays a home view features. Both are nil when no
// matchday qualifies.
type Selection struct {
	LastPlayed *matchday.Matchday
	Next       *matchday.Matchday
}

// SelectFeatured picks, in stored order, the last matchday that has started
// (a PLAYED/LIVE match or a date on or before today) and the first matchday
// still holding a PENDING match whose date is strictly after today.
// Unparsable dates count as neither past nor future.
func SelectFeatured(matchdays []matchday.Matchday, now time.Time, loc *time.Location) Selection {
	var sel Selection
	for i := range matchdays {
		md := matchdays[i]
		day, dated := ParseDate(md.Date, loc)
		todayOrPast := dated && sameOrBeforeDay(day, now, loc)

		if todayOrPast || hasStatus(md, matchday.StatusPlayed, matchday.StatusLive) {
			picked := md
			sel.LastPlayed = &picked
		}
		if sel.Next == nil && dated && !todayOrPast && hasStatus(md, matchday.StatusPending) {
			picked := md
			sel.Next = &picked
		}
	}
	return sel
}

// FindLive returns the first matchday with a match classified LIVE as of
// now. Views use it to prefer a live round over the last played one.
func FindLive(matchdays []matchday.Matchday, now time.Time, loc *time.Location) *matchday.Matchday {
	for i := range matchdays {
		md := matchdays[i]
		for _, m := range md.Matches {
			if Classify(m, md.Date, now, loc).Status == DisplayLive {
				return &md
			}
		}
	}
	return nil
}

// SortByJornada orders matchdays by round number, in place.
func SortByJornada(matchdays []matchday.Matchday) {
	sort.SliceStable(matchdays, func(i, j int) bool {
		return matchdays[i].Jornada < matchdays[j].Jornada
	})
}

func hasStatus(md matchday.Matchday, statuses ...matchday.Status) bool {
	for _, m := range md.Matches {
		current := matchday.NormalizeStatus(string(m.Status))
		for _, s := range statuses {
			if current == s {
				return true
			}
		}
	}
	return false
}
