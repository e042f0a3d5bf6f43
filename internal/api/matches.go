package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

// gameTimeLayout is the form-style kick-off layout, read in local time.
const gameTimeLayout = "2006-01-02 15:04:05"

type matchRequest struct {
	LeagueID          int    `json:"league_id"`
	HomeTeamID        int    `json:"home_team_id"`
	AwayTeamID        int    `json:"away_team_id"`
	GameTime          string `json:"game_time"`
	GameYear          string `json:"game_year"`
	GameRound         string `json:"game_round"`
	GameResult        string `json:"game_result"`
	PredictGameResult string `json:"predict_game_result"`
	HistoryNote       string `json:"history_note"`
	Note              string `json:"note"`
}

type oddsRequest struct {
	ID           int    `json:"id"`
	BookMakerID  int    `json:"bookmaker_id"`
	HomeWinStart string `json:"home_win_start"`
	DrawStart    string `json:"draw_start"`
	AwayWinStart string `json:"away_win_start"`
	HomeWinEnd   string `json:"home_win_end"`
	DrawEnd      string `json:"draw_end"`
	AwayWinEnd   string `json:"away_win_end"`
	Note         string `json:"note"`
}

// matchInfoRequest is the body of POST and PUT /api/matches.
type matchInfoRequest struct {
	Match matchRequest  `json:"match_info"`
	Odds  []oddsRequest `json:"odds_infos"`
}

func parseGameTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, odds.Invalidf("game_time is required")
	}
	if t, err := time.ParseInLocation(gameTimeLayout, raw, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, odds.Invalidf("game_time %q: want %q or RFC 3339", raw, gameTimeLayout)
	}
	return t, nil
}

func (req matchInfoRequest) records() (odds.Matches, []odds.Odds, error) {
	gameTime, err := parseGameTime(req.Match.GameTime)
	if err != nil {
		return odds.Matches{}, nil, err
	}
	m, err := odds.NewMatches(odds.MatchParams{
		LeagueID:          req.Match.LeagueID,
		HomeTeamID:        req.Match.HomeTeamID,
		AwayTeamID:        req.Match.AwayTeamID,
		GameTime:          gameTime,
		GameYear:          odds.Optional(req.Match.GameYear),
		GameRound:         odds.Optional(req.Match.GameRound),
		GameResult:        odds.Optional(req.Match.GameResult),
		PredictGameResult: odds.Optional(req.Match.PredictGameResult),
		HistoryNote:       odds.Optional(req.Match.HistoryNote),
		Note:              odds.Optional(req.Match.Note),
	})
	if err != nil {
		return odds.Matches{}, nil, err
	}

	list := make([]odds.Odds, 0, len(req.Odds))
	for i, o := range req.Odds {
		rec, err := odds.NewOdds(odds.OddsParams{
			ID:           o.ID,
			BookMakerID:  o.BookMakerID,
			HomeWinStart: o.HomeWinStart,
			DrawStart:    o.DrawStart,
			AwayWinStart: o.AwayWinStart,
			HomeWinEnd:   o.HomeWinEnd,
			DrawEnd:      o.DrawEnd,
			AwayWinEnd:   o.AwayWinEnd,
			Note:         odds.Optional(o.Note),
		})
		if err != nil {
			return odds.Matches{}, nil, odds.Invalidf("odds_infos[%d]: %v", i, err)
		}
		list = append(list, rec)
	}
	return m, list, nil
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req matchInfoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	m, list, err := req.records()
	if err != nil {
		writeError(w, r, err)
		return
	}
	for i := range list {
		list[i].ID = 0
	}
	info, err := s.manager.CreateMatchInfo(r.Context(), m, list)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, info)
}

func (s *Server) handleUpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req matchInfoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	m, list, err := req.records()
	if err != nil {
		writeError(w, r, err)
		return
	}
	m.ID = id
	info, err := s.manager.UpdateMatchInfo(r.Context(), odds.NewMatchInfo(m, list))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	info, err := s.manager.GetMatchInfo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n, err := s.manager.DeleteMatchInfo(r.Context(), id)
	writeDeleted(w, r, n, err)
}

// parseMatchQuery reads the listing filters from the query string, e.g.
// ?league_id=3&game_year=2024&is_desc=true&cursor=120&page_size=50
func parseMatchQuery(values url.Values) (odds.MatchQuery, error) {
	var q odds.MatchQuery
	ints := []struct {
		key string
		dst *int
	}{
		{"book_maker_id", &q.BookMakerID},
		{"league_id", &q.LeagueID},
		{"team_id", &q.TeamID},
		{"cursor", &q.Cursor},
		{"page_size", &q.PageSize},
	}
	for _, f := range ints {
		raw := values.Get(f.key)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return q, odds.Invalidf("%s: %q is not a 32-bit number", f.key, raw)
		}
		*f.dst = int(n)
	}
	if raw := values.Get("is_desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return q, odds.Invalidf("is_desc: %q is not a boolean", raw)
		}
		q.IsDesc = desc
	}
	q.GameYear = odds.Optional(values.Get("game_year"))
	q.GameRound = odds.Optional(values.Get("game_round"))
	return q.Normalize()
}

func (s *Server) handleQueryMatches(w http.ResponseWriter, r *http.Request) {
	q, err := parseMatchQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := s.manager.QueryMatchInfo(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches":     page,
		"next_cursor": q.NextCursor(page),
	})
}
