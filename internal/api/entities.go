package api

import (
	"net/http"

	"github.com/utakatalp/odds-recorder/internal/league"
	"github.com/utakatalp/odds-recorder/internal/odds"
)

type bookMakerRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Note string `json:"note"`
}

func (req bookMakerRequest) record() (odds.BookMaker, error) {
	return odds.NewBookMaker(odds.BookMakerParams{
		Name: req.Name,
		URL:  odds.Optional(req.URL),
		Note: odds.Optional(req.Note),
	})
}

type leagueRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

func (req leagueRequest) record() (odds.League, error) {
	return odds.NewLeague(odds.LeagueParams{Name: req.Name, Note: odds.Optional(req.Note)})
}

type teamRequest struct {
	LeagueID int    `json:"league_id"`
	Name     string `json:"name"`
	Note     string `json:"note"`
}

func (req teamRequest) record() (odds.Team, error) {
	return odds.NewTeam(odds.TeamParams{
		LeagueID: req.LeagueID,
		Name:     req.Name,
		Note:     odds.Optional(req.Note),
	})
}

// bookmakers

func (s *Server) handleListBookMakers(w http.ResponseWriter, r *http.Request) {
	bms, err := s.manager.ListBookMakers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bms)
}

func (s *Server) handleGetBookMaker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	bm, err := s.manager.GetBookMakerByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bm)
}

func (s *Server) handleCreateBookMaker(w http.ResponseWriter, r *http.Request) {
	var req bookMakerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	bm, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.manager.CreateBookMaker(r.Context(), bm)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateBookMaker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req bookMakerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	bm, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	bm.ID = id
	updated, err := s.manager.UpdateBookMaker(r.Context(), bm)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBookMaker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n, err := s.manager.DeleteBookMaker(r.Context(), id)
	writeDeleted(w, r, n, err)
}

// leagues

func (s *Server) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.manager.ListLeagues(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leagues)
}

func (s *Server) handleGetLeague(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	l, err := s.manager.GetLeagueByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleCreateLeague(w http.ResponseWriter, r *http.Request) {
	var req leagueRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	l, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.manager.CreateLeague(r.Context(), l)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateLeague(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req leagueRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	l, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	l.ID = id
	updated, err := s.manager.UpdateLeague(r.Context(), l)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteLeague(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n, err := s.manager.DeleteLeague(r.Context(), id)
	writeDeleted(w, r, n, err)
}

func (s *Server) handleLeagueTeams(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	teams, err := s.manager.ListTeamsByLeague(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// handleStandings computes the table from the league's recorded results.
// GET /api/leagues/{id}/standings
func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := s.manager.GetLeagueByID(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	matches, err := s.manager.ListMatchesByLeague(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"league_id": id,
		"table":     league.Standings(matches),
	})
}

// teams

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.manager.ListTeams(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	t, err := s.manager.GetTeamByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	t, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.manager.CreateTeam(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req teamRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	t, err := req.record()
	if err != nil {
		writeError(w, r, err)
		return
	}
	t.ID = id
	updated, err := s.manager.UpdateTeam(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n, err := s.manager.DeleteTeam(r.Context(), id)
	writeDeleted(w, r, n, err)
}
