package odds

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Optional returns nil for blank input so form fields map onto NULL columns.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type BookMakerParams struct {
	Name string
	URL  *string
	Note *string
}

func NewBookMaker(p BookMakerParams) (BookMaker, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return BookMaker{}, Invalidf("bookmaker name is required")
	}
	return BookMaker{Name: name, URL: p.URL, Note: p.Note}, nil
}

type LeagueParams struct {
	Name string
	Note *string
}

func NewLeague(p LeagueParams) (League, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return League{}, Invalidf("league name is required")
	}
	return League{Name: name, Note: p.Note}, nil
}

type TeamParams struct {
	LeagueID int
	Name     string
	Note     *string
}

func NewTeam(p TeamParams) (Team, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Team{}, Invalidf("team name is required")
	}
	if p.LeagueID <= 0 {
		return Team{}, Invalidf("team %q needs a league", name)
	}
	return Team{LeagueID: p.LeagueID, Name: name, Note: p.Note}, nil
}

type MatchParams struct {
	LeagueID          int
	HomeTeamID        int
	AwayTeamID        int
	GameTime          time.Time
	GameYear          *string
	GameRound         *string
	GameResult        *string
	PredictGameResult *string
	HistoryNote       *string
	Note              *string
}

func NewMatches(p MatchParams) (Matches, error) {
	switch {
	case p.LeagueID <= 0:
		return Matches{}, Invalidf("match needs a league")
	case p.HomeTeamID <= 0 || p.AwayTeamID <= 0:
		return Matches{}, Invalidf("match needs both teams")
	case p.HomeTeamID == p.AwayTeamID:
		return Matches{}, Invalidf("team %d cannot play itself", p.HomeTeamID)
	case p.GameTime.IsZero():
		return Matches{}, Invalidf("match needs a game time")
	}
	return Matches{
		LeagueID:          p.LeagueID,
		HomeTeamID:        p.HomeTeamID,
		AwayTeamID:        p.AwayTeamID,
		GameTime:          p.GameTime,
		GameYear:          p.GameYear,
		GameRound:         p.GameRound,
		GameResult:        p.GameResult,
		PredictGameResult: p.PredictGameResult,
		HistoryNote:       p.HistoryNote,
		Note:              p.Note,
	}, nil
}

// OddsParams carries prices as typed by the user, e.g. "1.25". Blank prices
// default to zero.
type OddsParams struct {
	ID           int
	BookMakerID  int
	HomeWinStart string
	DrawStart    string
	AwayWinStart string
	HomeWinEnd   string
	DrawEnd      string
	AwayWinEnd   string
	Note         *string
}

func NewOdds(p OddsParams) (Odds, error) {
	if p.BookMakerID <= 0 {
		return Odds{}, Invalidf("odds need a bookmaker")
	}
	o := Odds{ID: p.ID, BookMakerID: p.BookMakerID, Note: p.Note}
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"home_win_start", p.HomeWinStart, &o.HomeWinStart},
		{"draw_start", p.DrawStart, &o.DrawStart},
		{"away_win_start", p.AwayWinStart, &o.AwayWinStart},
		{"home_win_end", p.HomeWinEnd, &o.HomeWinEnd},
		{"draw_end", p.DrawEnd, &o.DrawEnd},
		{"away_win_end", p.AwayWinEnd, &o.AwayWinEnd},
	}
	for _, f := range fields {
		d, err := ParsePrice(f.raw)
		if err != nil {
			return Odds{}, Invalidf("%s: %v", f.name, err)
		}
		*f.dst = d
	}
	return o, nil
}

// Prices are stored as NUMERIC(10,4).
const priceScale = 4

var maxPrice = decimal.New(1, 6)

// ParsePrice parses a decimal price. Blank input is zero. Negative prices,
// more than four decimal places and values of 1000000 or more are rejected.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, Invalidf("price %s is negative", raw)
	}
	if !d.Equal(d.Truncate(priceScale)) {
		return decimal.Zero, Invalidf("price %s has more than %d decimal places", raw, priceScale)
	}
	if d.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, Invalidf("price %s must be below %s", raw, maxPrice)
	}
	return d, nil
}
