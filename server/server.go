package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"hyperchess/engine"
	"hyperchess/game"
)

// Server exposes one match over HTTP and websockets. Mutation endpoints
// relay straight to the engine; every accepted action is also pushed to
// websocket subscribers.
type Server struct {
	engine *engine.Engine
	hub    *Hub
}

func New(eng *engine.Engine) *Server {
	return &Server{engine: eng, hub: NewHub()}
}

type moveRequest struct {
	Player int        `json:"player"`
	From   game.Coord `json:"from"`
	To     game.Coord `json:"to"`
}

type alienRequest struct {
	Player int               `json:"player"`
	Op     game.LayoutOpKind `json:"op"`
	Args   []int             `json:"args"`
}

type actionResponse struct {
	Delta  *game.Delta `json:"delta"`
	Status game.Status `json:"status"`
}

type movesResponse struct {
	At           game.Coord   `json:"at"`
	Destinations []game.Coord `json:"destinations"`
}

// Handler builds the router. Kept separate from Run so tests can drive it
// through httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.engine.Status())
	})
	r.Get("/api/board", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.engine.Snapshot())
	})
	r.Get("/api/moves", s.handleMoves)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/alien", s.handleAlien)
	r.Get("/ws", s.serveWS)
	return r
}

// Run serves until ctx is canceled, then drains connections. The update
// pump and the hub stop with the listener.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	done := make(chan struct{})
	defer close(done)
	go s.hub.Run(done)
	go s.pump(s.engine.Updates())

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	log.Info().Msgf("listening on %s", addr)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// pump forwards one update feed to the hub until the game ends. The feed
// is opened by the caller so no action can slip past before it exists.
func (s *Server) pump(updates <-chan engine.Update) {
	for u := range updates {
		s.hub.Broadcast(u)
	}
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	at, err := game.ParseCoord(r.URL.Query().Get("at"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	dests, err := s.engine.LegalDestinations(at)
	if err != nil {
		writeJSON(w, statusFor(err), errorBody(err))
		return
	}
	writeJSON(w, http.StatusOK, movesResponse{At: at, Destinations: dests})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	delta, err := s.engine.SubmitMove(req.Player, req.From, req.To)
	if err != nil {
		writeJSON(w, statusFor(err), errorBody(err))
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Delta: delta, Status: s.engine.Status()})
}

func (s *Server) handleAlien(w http.ResponseWriter, r *http.Request) {
	var req alienRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	delta, err := s.engine.SubmitAlienOp(req.Player, game.LayoutOp{Kind: req.Op, Args: req.Args})
	if err != nil {
		writeJSON(w, statusFor(err), errorBody(err))
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Delta: delta, Status: s.engine.Status()})
}

// statusFor maps rejection classes onto HTTP codes: turn and lifecycle
// conflicts are 409, malformed or illegal requests are 400.
func statusFor(err error) int {
	if errors.Is(err, game.ErrGameOver) || errors.Is(err, game.ErrNotYourTurn) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
