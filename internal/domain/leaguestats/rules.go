// Package leaguestats derives league views (standings, scorer and card
// rankings, live match status, featured matchdays) from raw matchday, team
// and match report snapshots. Every function is pure and tolerant of
// malformed records: bad data is skipped or degraded, never returned as an
// error.
package leaguestats

const (
	// LiveWindowMinutes covers 90 minutes of play plus 15 for halftime and
	// stoppage. Past it a match without a result is PENDING_RESULT.
	LiveWindowMinutes = 105

	halftimeStart  = 46
	halftimeEnd    = 60
	halftimeLength = 15
	regulationEnd  = 90
	halftimeLabel  = "Descanso"
)

// Rules holds the scoring parameters of the competition.
type Rules struct {
	WinPoints     int
	DrawPoints    int
	LossPoints    int
	FormLength    int
	RankingLimit  int
	RedCardWeight int
}

func DefaultRules() Rules {
	return Rules{
		WinPoints:     3,
		DrawPoints:    1,
		LossPoints:    0,
		FormLength:    5,
		RankingLimit:  20,
		RedCardWeight: 3,
	}
}

// normalizeRules returns DefaultRules for a zero Rules. Otherwise every
// point, length and weight field <= 0 takes its default, except LossPoints
// where 0 is the default. A draw always awards DrawPoints to both sides.
func normalizeRules(r Rules) Rules {
	d := DefaultRules()
	if r == (Rules{}) {
		return d
	}
	if r.WinPoints <= 0 {
		r.WinPoints = d.WinPoints
	}
	if r.DrawPoints <= 0 {
		r.DrawPoints = d.DrawPoints
	}
	if r.LossPoints < 0 {
		r.LossPoints = d.LossPoints
	}
	if r.FormLength <= 0 {
		r.FormLength = d.FormLength
	}
	if r.RankingLimit <= 0 {
		r.RankingLimit = d.RankingLimit
	}
	if r.RedCardWeight <= 0 {
		r.RedCardWeight = d.RedCardWeight
	}
	return r
}
