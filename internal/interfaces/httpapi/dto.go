package httpapi

import (
	"github.com/riskibarqy/liga-amateur/internal/domain/leaguestats"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

type standingDTO struct {
	Position       int      `json:"position"`
	Team           string   `json:"team"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goals_for"`
	GoalsAgainst   int      `json:"goals_against"`
	GoalDifference int      `json:"goal_difference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
}

type topScorerDTO struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Goals    int    `json:"goals"`
}

type cardRankingDTO struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id,omitempty"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Score       int    `json:"score"`
}

type matchDTO struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals *int   `json:"home_goals,omitempty"`
	AwayGoals *int   `json:"away_goals,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Status    string `json:"status"`
	Referee   string `json:"referee,omitempty"`
}

type matchViewDTO struct {
	Index          int      `json:"index"`
	Match          matchDTO `json:"match"`
	EffectiveDate  string   `json:"effective_date,omitempty"`
	DisplayStatus  string   `json:"display_status"`
	ElapsedMinutes *int     `json:"elapsed_minutes,omitempty"`
	Minute         string   `json:"minute,omitempty"`
}

type matchdayDTO struct {
	Jornada int            `json:"jornada"`
	Date    string         `json:"date,omitempty"`
	Rest    string         `json:"rest,omitempty"`
	HasLive bool           `json:"has_live"`
	Matches []matchViewDTO `json:"matches"`
}

type featuredMatchdaysDTO struct {
	Featured   *matchdayDTO `json:"featured"`
	Live       bool         `json:"live"`
	LastPlayed *matchdayDTO `json:"last_played"`
	Next       *matchdayDTO `json:"next"`
}

type playerDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Alias       string `json:"alias,omitempty"`
	DisplayName string `json:"display_name"`
}

type teamDTO struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Players []playerDTO `json:"players"`
}

type teamSearchHitDTO struct {
	Team     teamDTO `json:"team"`
	Distance int     `json:"distance"`
}

type reportPlayerDTO struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	MatchNumber     string `json:"match_number,omitempty"`
	IsStarting      bool   `json:"is_starting"`
	SubstitutionMin string `json:"substitution_min,omitempty"`
	Goals           int    `json:"goals"`
	YellowCards     int    `json:"yellow_cards"`
	RedCards        int    `json:"red_cards"`
	DirectRedCards  int    `json:"direct_red_cards"`
}

type participationDTO struct {
	Team      string            `json:"team"`
	Formation string            `json:"formation,omitempty"`
	Starters  int               `json:"starters"`
	Players   []reportPlayerDTO `json:"players"`
}

type matchReportDTO struct {
	ID           string           `json:"id"`
	Home         participationDTO `json:"home"`
	Away         participationDTO `json:"away"`
	Observations string           `json:"observations,omitempty"`
}

type sweepResultDTO struct {
	Checked      int                  `json:"checked"`
	Transitioned int                  `json:"transitioned"`
	Events       []usecase.MatchEvent `json:"events"`
}

type updateMatchResultRequest struct {
	HomeGoals *int   `json:"home_goals" validate:"required,gte=0,lte=99"`
	AwayGoals *int   `json:"away_goals" validate:"required,gte=0,lte=99"`
	Status    string `json:"status" validate:"required,max=16"`
}

type rescheduleMatchRequest struct {
	Date string `json:"date" validate:"required,max=10"`
	Time string `json:"time" validate:"omitempty,max=5"`
}

type reportPlayerRequest struct {
	ID              string `json:"id" validate:"omitempty,max=32"`
	Name            string `json:"name" validate:"required,max=120"`
	MatchNumber     string `json:"match_number" validate:"omitempty,max=8"`
	IsStarting      bool   `json:"is_starting"`
	SubstitutionMin string `json:"substitution_min" validate:"omitempty,max=16"`
	Goals           int    `json:"goals" validate:"gte=0"`
	YellowCards     int    `json:"yellow_cards" validate:"gte=0"`
	RedCards        int    `json:"red_cards" validate:"gte=0"`
	DirectRedCards  int    `json:"direct_red_cards" validate:"gte=0"`
}

type participationRequest struct {
	Formation string                `json:"formation" validate:"omitempty,max=32"`
	Players   []reportPlayerRequest `json:"players" validate:"dive"`
}

type saveMatchReportRequest struct {
	Home         string               `json:"home" validate:"required,max=120"`
	Away         string               `json:"away" validate:"required,max=120,nefield=Home"`
	Observations string               `json:"observations" validate:"omitempty,max=4000"`
	HomeSide     participationRequest `json:"home_participation"`
	AwaySide     participationRequest `json:"away_participation"`
}

func toStandingDTOs(rows []leaguestats.TeamStanding) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		form := make([]string, 0, len(row.Form))
		for _, f := range row.Form {
			form = append(form, string(f))
		}
		out = append(out, standingDTO{
			Position:       row.Position,
			Team:           row.Team,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Form:           form,
		})
	}
	return out
}

func toTopScorerDTOs(rows []leaguestats.TopScorer) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(rows))
	for i, row := range rows {
		out = append(out, topScorerDTO{
			Rank:     i + 1,
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Team:     row.Team,
			Goals:    row.Goals,
		})
	}
	return out
}

func toCardRankingDTOs(rows []leaguestats.CardRanking, score func(leaguestats.CardRanking) int) []cardRankingDTO {
	out := make([]cardRankingDTO, 0, len(rows))
	for i, row := range rows {
		out = append(out, cardRankingDTO{
			Rank:        i + 1,
			PlayerID:    row.PlayerID,
			Name:        row.Name,
			Team:        row.Team,
			YellowCards: row.YellowCards,
			RedCards:    row.RedCards,
			Score:       score(row),
		})
	}
	return out
}

// toMatchDTO omits goals until the match has a result to show.
func toMatchDTO(m matchday.Match) matchDTO {
	status := matchday.NormalizeStatus(string(m.Status))
	out := matchDTO{
		Home:    m.Home,
		Away:    m.Away,
		Date:    m.Date,
		Time:    m.Time,
		Status:  string(status),
		Referee: m.Referee,
	}
	if status.HasResult() {
		home, away := m.HomeGoals, m.AwayGoals
		out.HomeGoals = &home
		out.AwayGoals = &away
	}
	return out
}

func toMatchdayDTO(view usecase.MatchdayView) matchdayDTO {
	out := matchdayDTO{
		Jornada: view.Matchday.Jornada,
		Date:    view.Matchday.Date,
		Rest:    view.Matchday.Rest,
		Matches: make([]matchViewDTO, 0, len(view.Matches)),
	}
	for _, mv := range view.Matches {
		if mv.Classification.Status == leaguestats.DisplayLive {
			out.HasLive = true
		}
		out.Matches = append(out.Matches, matchViewDTO{
			Index:          mv.Index,
			Match:          toMatchDTO(mv.Match),
			EffectiveDate:  mv.Date,
			DisplayStatus:  string(mv.Classification.Status),
			ElapsedMinutes: mv.Classification.ElapsedMinutes,
			Minute:         mv.Classification.Minute(),
		})
	}
	return out
}

func toMatchdayDTOPtr(view *usecase.MatchdayView) *matchdayDTO {
	if view == nil {
		return nil
	}
	out := toMatchdayDTO(*view)
	return &out
}

func toTeamDTO(t team.Team) teamDTO {
	players := make([]playerDTO, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, playerDTO{
			ID:          p.ID,
			Name:        p.Name,
			Alias:       p.Alias,
			DisplayName: p.DisplayName(),
		})
	}
	return teamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Players: players,
	}
}

func toParticipationDTO(p matchreport.Participation) participationDTO {
	players := make([]reportPlayerDTO, 0, len(p.Players))
	for _, pl := range p.Players {
		players = append(players, reportPlayerDTO{
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
	return participationDTO{
		Team:      p.Team,
		Formation: p.Formation,
		Starters:  p.Starters(),
		Players:   players,
	}
}

func toMatchReportDTO(report matchreport.MatchReport) matchReportDTO {
	sides := report.Sides()
	return matchReportDTO{
		ID:           report.Key.ID(),
		Home:         toParticipationDTO(sides[0]),
		Away:         toParticipationDTO(sides[1]),
		Observations: report.Observations,
	}
}

func (r saveMatchReportRequest) toDomain() matchreport.MatchReport {
	return matchreport.MatchReport{
		Key:          matchreport.ReportKey{Home: r.Home, Away: r.Away},
		Observations: r.Observations,
		Home:         r.HomeSide.toDomain(r.Home),
		Away:         r.AwaySide.toDomain(r.Away),
	}
}

func (r participationRequest) toDomain(teamName string) matchreport.Participation {
	players := make([]matchreport.Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, matchreport.Player{
			ID:              p.ID,
			Name:            p.Name,
			MatchNumber:     p.MatchNumber,
			IsStarting:      p.IsStarting,
			SubstitutionMin: p.SubstitutionMin,
			Goals:           p.Goals,
			YellowCards:     p.YellowCards,
			RedCards:        p.RedCards,
			DirectRedCards:  p.DirectRedCards,
		})
	}
	return matchreport.Participation{
		Team:      teamName,
		Players:   players,
		Formation: r.Formation,
	}
}
