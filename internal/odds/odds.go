package odds

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookMaker is an odds-making company.
type BookMaker struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	URL       *string   `json:"url"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// League groups teams into a competition.
type League struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Team represents a club. LeagueName is filled by a join on read.
type Team struct {
	ID         int       `json:"id"`
	LeagueID   int       `json:"league_id"`
	LeagueName *string   `json:"league_name"`
	Name       string    `json:"name"`
	Note       *string   `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Matches is a fixture between two teams. LeagueName, HomeTeam and AwayTeam
// are read-only projections of the referenced rows.
type Matches struct {
	ID                int       `json:"id"`
	LeagueID          int       `json:"league_id"`
	LeagueName        *string   `json:"league_name"`
	HomeTeamID        int       `json:"home_team_id"`
	HomeTeam          string    `json:"home_team"`
	AwayTeamID        int       `json:"away_team_id"`
	AwayTeam          string    `json:"away_team"`
	GameTime          time.Time `json:"game_time"`
	GameYear          *string   `json:"game_year"`
	GameRound         *string   `json:"game_round"`
	GameResult        *string   `json:"game_result"`
	PredictGameResult *string   `json:"predict_game_result"`
	HistoryNote       *string   `json:"history_note"`
	Note              *string   `json:"note"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Odds holds one bookmaker's opening and closing 1X2 prices for a match.
type Odds struct {
	ID            int             `json:"id"`
	MatchID       int             `json:"match_id"`
	BookMakerID   int             `json:"bookmaker_id"`
	BookMakerName *string         `json:"bookmaker_name"`
	HomeWinStart  decimal.Decimal `json:"home_win_start"`
	DrawStart     decimal.Decimal `json:"draw_start"`
	AwayWinStart  decimal.Decimal `json:"away_win_start"`
	HomeWinEnd    decimal.Decimal `json:"home_win_end"`
	DrawEnd       decimal.Decimal `json:"draw_end"`
	AwayWinEnd    decimal.Decimal `json:"away_win_end"`
	Note          *string         `json:"note"`
}

// MatchInfo pairs a match with its odds. Building one writes nothing.
type MatchInfo struct {
	Matches Matches `json:"matches"`
	Odds    []Odds  `json:"odds"`
}

func NewMatchInfo(m Matches, odds []Odds) MatchInfo {
	if odds == nil {
		odds = []Odds{}
	}
	return MatchInfo{Matches: m, Odds: odds}
}
