package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// SolveLister is the read side of the solve history.
type SolveLister interface {
	RecentSolves(limit int) ([]storage.Solve, error)
	BestSolves(pictureID string, limit int) ([]storage.Solve, error)
}

// SolveView is the JSON shape of a stored solve.
type SolveView struct {
	SolveID    string    `json:"solve_id"`
	Session    string    `json:"session"`
	PictureID  string    `json:"picture_id"`
	Moves      int       `json:"moves"`
	DurationMs int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// Server serves the feed and the solve history over HTTP.
type Server struct {
	hub    *Hub
	solves SolveLister
	router *mux.Router
	http   *http.Server
	logger *log.Logger
}

// NewServer creates a server on addr. solves may be nil, in which case the
// history endpoints answer 503.
func NewServer(addr string, hub *Hub, solves SolveLister, logger *log.Logger) *Server {
	if logger == nil {
		logger = hub.logger
	}
	s := &Server{
		hub:    hub,
		solves: solves,
		router: mux.NewRouter(),
		logger: logger,
	}
	s.setupRoutes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/solves", s.handleRecent).Methods("GET")
	s.router.HandleFunc("/solves/{picture}", s.handleBest).Methods("GET")
	s.router.HandleFunc("/feed", s.hub.ServeWS)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks until the server stops. A clean Shutdown is not an
// error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Feed listening", "address", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for handlers to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if s.solves == nil {
		respondError(w, http.StatusServiceUnavailable, "history disabled")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	solves, err := s.solves.RecentSolves(limit)
	if err != nil {
		s.logger.Error("recent solves", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load solves")
		return
	}
	respondJSON(w, http.StatusOK, toViews(solves))
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	if s.solves == nil {
		respondError(w, http.StatusServiceUnavailable, "history disabled")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	picture := mux.Vars(r)["picture"]
	solves, err := s.solves.BestSolves(picture, limit)
	if err != nil {
		s.logger.Error("best solves", "picture", picture, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load solves")
		return
	}
	respondJSON(w, http.StatusOK, toViews(solves))
}

// parseLimit reads the optional ?limit= parameter; 0 means the store default.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return n, true
}

func toViews(solves []storage.Solve) []SolveView {
	views := make([]SolveView, 0, len(solves))
	for _, s := range solves {
		views = append(views, SolveView{
			SolveID:    s.SolveID,
			Session:    s.Session,
			PictureID:  s.PictureID,
			Moves:      s.Moves,
			DurationMs: s.Duration.Milliseconds(),
			At:         s.CreatedAt,
		})
	}
	return views
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away.
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
