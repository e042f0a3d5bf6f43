package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

// Manager is the set of odds data operations the HTTP surface exposes.
type Manager interface {
	Ping(ctx context.Context) error

	ListBookMakers(ctx context.Context) ([]odds.BookMaker, error)
	GetBookMakerByID(ctx context.Context, id int) (odds.BookMaker, error)
	CreateBookMaker(ctx context.Context, b odds.BookMaker) (odds.BookMaker, error)
	UpdateBookMaker(ctx context.Context, b odds.BookMaker) (odds.BookMaker, error)
	DeleteBookMaker(ctx context.Context, id int) (int64, error)

	ListLeagues(ctx context.Context) ([]odds.League, error)
	GetLeagueByID(ctx context.Context, id int) (odds.League, error)
	CreateLeague(ctx context.Context, l odds.League) (odds.League, error)
	UpdateLeague(ctx context.Context, l odds.League) (odds.League, error)
	DeleteLeague(ctx context.Context, id int) (int64, error)

	ListTeams(ctx context.Context) ([]odds.Team, error)
	ListTeamsByLeague(ctx context.Context, leagueID int) ([]odds.Team, error)
	GetTeamByID(ctx context.Context, id int) (odds.Team, error)
	CreateTeam(ctx context.Context, t odds.Team) (odds.Team, error)
	UpdateTeam(ctx context.Context, t odds.Team) (odds.Team, error)
	DeleteTeam(ctx context.Context, id int) (int64, error)

	CreateMatchInfo(ctx context.Context, m odds.Matches, list []odds.Odds) (odds.MatchInfo, error)
	UpdateMatchInfo(ctx context.Context, info odds.MatchInfo) (odds.MatchInfo, error)
	GetMatchInfo(ctx context.Context, id int) (odds.MatchInfo, error)
	DeleteMatchInfo(ctx context.Context, id int) (int64, error)
	ListMatchesByLeague(ctx context.Context, leagueID int) ([]odds.Matches, error)
	QueryMatchInfo(ctx context.Context, q odds.MatchQuery) ([]odds.Matches, error)
}

type Server struct {
	addr       string
	manager    Manager
	httpServer *http.Server
}

func NewServer(addr string, manager Manager) *Server {
	s := &Server{addr: addr, manager: manager}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed API wrapped with CORS.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(logRequests)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/bookmakers", s.handleListBookMakers).Methods("GET")
	api.HandleFunc("/bookmakers", s.handleCreateBookMaker).Methods("POST")
	api.HandleFunc("/bookmakers/{id:[0-9]+}", s.handleGetBookMaker).Methods("GET")
	api.HandleFunc("/bookmakers/{id:[0-9]+}", s.handleUpdateBookMaker).Methods("PUT")
	api.HandleFunc("/bookmakers/{id:[0-9]+}", s.handleDeleteBookMaker).Methods("DELETE")

	api.HandleFunc("/leagues", s.handleListLeagues).Methods("GET")
	api.HandleFunc("/leagues", s.handleCreateLeague).Methods("POST")
	api.HandleFunc("/leagues/{id:[0-9]+}", s.handleGetLeague).Methods("GET")
	api.HandleFunc("/leagues/{id:[0-9]+}", s.handleUpdateLeague).Methods("PUT")
	api.HandleFunc("/leagues/{id:[0-9]+}", s.handleDeleteLeague).Methods("DELETE")
	api.HandleFunc("/leagues/{id:[0-9]+}/teams", s.handleLeagueTeams).Methods("GET")
	api.HandleFunc("/leagues/{id:[0-9]+}/standings", s.handleStandings).Methods("GET")

	api.HandleFunc("/teams", s.handleListTeams).Methods("GET")
	api.HandleFunc("/teams", s.handleCreateTeam).Methods("POST")
	api.HandleFunc("/teams/{id:[0-9]+}", s.handleGetTeam).Methods("GET")
	api.HandleFunc("/teams/{id:[0-9]+}", s.handleUpdateTeam).Methods("PUT")
	api.HandleFunc("/teams/{id:[0-9]+}", s.handleDeleteTeam).Methods("DELETE")

	api.HandleFunc("/matches", s.handleQueryMatches).Methods("GET")
	api.HandleFunc("/matches", s.handleCreateMatch).Methods("POST")
	api.HandleFunc("/matches/{id:[0-9]+}", s.handleGetMatch).Methods("GET")
	api.HandleFunc("/matches/{id:[0-9]+}", s.handleUpdateMatch).Methods("PUT")
	api.HandleFunc("/matches/{id:[0-9]+}", s.handleDeleteMatch).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	slog.Info("http server listening", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request served", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Ping(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func statusOf(err error) int {
	switch odds.KindOf(err) {
	case odds.KindInvalid:
		return http.StatusBadRequest
	case odds.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := odds.KindOf(err)
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "kind", kind.String(), "error", err)
	} else {
		slog.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "kind", kind.String(), "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeDeleted(w http.ResponseWriter, r *http.Request, n int64, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// pathID reads the {id} route variable, already constrained to digits.
// Ids are INT columns, so anything past 32 bits is rejected here.
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, odds.Invalidf("bad id %q", raw)
	}
	return int(id), nil
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return odds.Invalidf("decoding body: %v", err)
	}
	return nil
}
