package leaguestats

import (
	"math"
	"strconv"
	"time"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
)

// DisplayStatus is the real-time status shown for a match.
type DisplayStatus string

const (
	DisplayPending       DisplayStatus = "PENDING"
	DisplayLive          DisplayStatus = "LIVE"
	DisplayPendingResult DisplayStatus = "PENDING_RESULT"
	DisplayPlayed        DisplayStatus = "PLAYED"
	DisplayPostponed     DisplayStatus = "POSTPONED"
)

// Classification is the status of one match as of a given instant.
// ElapsedMinutes is set only while LIVE.
type Classification struct {
	Status         DisplayStatus
	ElapsedMinutes *int
}

// Minute renders the elapsed clock, or "" when the match is not live.
func (c Classification) Minute() string {
	if c.Status != DisplayLive || c.ElapsedMinutes == nil {
		return ""
	}
	return DisplayMinute(*c.ElapsedMinutes)
}

// Classify derives the display status of m as of now. fallbackDate is the
// matchday date used when the match has none of its own. Missing or
// unparsable date/time fail open to PENDING.
func Classify(m matchday.Match, fallbackDate string, now time.Time, loc *time.Location) Classification {
	switch matchday.NormalizeStatus(string(m.Status)) {
	case matchday.StatusPlayed:
		return Classification{Status: DisplayPlayed}
	case matchday.StatusPostponed:
		return Classification{Status: DisplayPostponed}
	}

	date := m.Date
	if date == "" {
		date = fallbackDate
	}
	start, ok := ParseKickoff(date, m.Time, loc)
	if !ok {
		return Classification{Status: DisplayPending}
	}

	diff := int(math.Floor(now.Sub(start).Minutes()))
	switch {
	case diff < 0:
		return Classification{Status: DisplayPending}
	case diff <= LiveWindowMinutes:
		elapsed := diff
		return Classification{Status: DisplayLive, ElapsedMinutes: &elapsed}
	default:
		return Classification{Status: DisplayPendingResult}
	}
}

// ShouldGoLive reports whether the stored status still says PENDING (or the
// legacy SCHEDULED) while the kickoff window has started.
func ShouldGoLive(m matchday.Match, fallbackDate string, now time.Time, loc *time.Location) bool {
	if matchday.NormalizeStatus(string(m.Status)) != matchday.StatusPending {
		return false
	}
	return Classify(m, fallbackDate, now, loc).Status == DisplayLive
}

// DisplayMinute formats elapsed wall-clock minutes as a match clock. The
// 46-60 window is shown as halftime regardless of its true length.
func DisplayMinute(elapsed int) string {
	switch {
	case elapsed < halftimeStart:
		if elapsed < 0 {
			elapsed = 0
		}
		return strconv.Itoa(elapsed) + "'"
	case elapsed <= halftimeEnd:
		return halftimeLabel
	}

	played := elapsed - halftimeLength
	if played > regulationEnd {
		return strconv.Itoa(regulationEnd) + "+" + strconv.Itoa(played-regulationEnd) + "'"
	}
	return strconv.Itoa(played) + "'"
}

// MatchView is a match together with its derived real-time status.
type MatchView struct {
	Index          int
	Match          matchday.Match
	Date           string
	Classification Classification
}

// ViewMatchday classifies every match of md as of now, in stored order.
func ViewMatchday(md matchday.Matchday, now time.Time, loc *time.Location) []MatchView {
	out := make([]MatchView, 0, len(md.Matches))
	for i, m := range md.Matches {
		out = append(out, MatchView{
			Index:          i,
			Match:          m,
			Date:           md.EffectiveDate(m),
			Classification: Classify(m, md.Date, now, loc),
		})
	}
	return out
}
