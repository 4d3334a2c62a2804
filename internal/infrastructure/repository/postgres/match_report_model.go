package postgres

import (
	"time"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

type matchReportTableModel struct {
	HomeTeam     string    `db:"home_team"`
	AwayTeam     string    `db:"away_team"`
	Observations string    `db:"observations"`
	HomeSide     []byte    `db:"home_side"`
	AwaySide     []byte    `db:"away_side"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// sideDocument is the JSONB shape of one participation.
type sideDocument struct {
	Team      string           `json:"team"`
	Formation string           `json:"formation,omitempty"`
	Players   []playerDocument `json:"players"`
}

type playerDocument struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	MatchNumber     string `json:"matchNumber,omitempty"`
	IsStarting      bool   `json:"isStarting"`
	SubstitutionMin string `json:"substitutionMin,omitempty"`
	Goals           int    `json:"goals"`
	YellowCards     int    `json:"yellowCards"`
	RedCards        int    `json:"redCards"`
	DirectRedCards  int    `json:"directRedCards"`
}

func sideToDocument(p matchreport.Participation) sideDocument {
	players := make([]playerDocument, 0, len(p.Players))
	for _, pl := range p.Players {
		players = append(players, playerDocument{
			ID:              pl.ID,
			Name:            pl.Name,
			MatchNumber:     pl.MatchNumber,
			IsStarting:      pl.IsStarting,
			SubstitutionMin: pl.SubstitutionMin,
			Goals:           pl.Goals,
			YellowCards:     pl.YellowCards,
			RedCards:        pl.RedCards,
			DirectRedCards:  pl.DirectRedCards,
		})
	}
	return sideDocument{Team: p.Team, Formation: p.Formation, Players: players}
}

func (d sideDocument) participation(fallbackTeam string) matchreport.Participation {
	team := d.Team
	if team == "" {
		team = fallbackTeam
	}
	players := make([]matchreport.Player, 0, len(d.Players))
	for _, pl := range d.Players {
		players = append(players, matchreport.Player{
			ID:              pl.ID,
			Name:            pl.Name,
			MatchNumber:     pl.MatchNumber,
			IsStarting:      pl.IsStarting,
			SubstitutionMin: pl.SubstitutionMin,
			Goals:           pl.Goals,
			YellowCards:     pl.YellowCards,
			RedCards:        pl.RedCards,
			DirectRedCards:  pl.DirectRedCards,
		})
	}
	return matchreport.Participation{Team: team, Formation: d.Formation, Players: players}
}
