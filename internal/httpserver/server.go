// internal/httpserver/server.go
//
// HTTP/JSON adapter for the game engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Sessions live in a store.Store; the engine never sees HTTP types.
//   - The target word is withheld from GET /game/{id} while a game is in play.
//   - A finished session is evicted once GET /game/{id} has reported its outcome.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/config"
	"github.com/robalobadob/wordle-engine/internal/daily"
	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/store"
	"github.com/robalobadob/wordle-engine/internal/words"
)

// Options tunes the adapter.
type Options struct {
	ClientOrigin string        // CORS origin; defaults to http://localhost:5173
	DailySalt    string        // secret for the daily word index
	Timeout      time.Duration // per-request handler timeout; defaults to 10s
	Mode         string        // default for POST /game/new: random|daily; defaults to random
}

// Server bundles router, session store and word list.
type Server struct {
	r      *chi.Mux
	store  store.Store
	words  *words.Source
	picker *daily.Picker
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src *words.Source, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeRandom
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		words:  src,
		picker: &daily.Picker{Source: src, Salt: opts.DailySalt},
		opts:   opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.Timeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-engine","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","/daily/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.words.Len(), "sessions": s.store.Len()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleState)

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Handler exposes the router (useful for tests and custom listeners).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID string `json:"gameId"`
}

type newGameReq struct {
	Mode string `json:"mode"` // "random" | "daily"; empty uses Options.Mode
}

// handleNewGame creates a session whose target is picked per the requested mode.
// The body is optional.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	mode := req.Mode
	if mode == "" {
		mode = s.opts.Mode
	}
	switch mode {
	case config.ModeRandom:
		s.createSession(w, r, s.words)
	case config.ModeDaily:
		s.createSession(w, r, s.picker)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_mode"})
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request, src game.WordSource) {
	g, err := game.NewSession(src)
	if err != nil {
		log.Error().Err(err).Msg("start game")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "words_not_loaded"})
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
		return
	}
	log.Info().Str("gameId", g.ID()).Msg("game created")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID()})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess submits a guess and returns the engine Result verbatim.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	res, err := g.SubmitGuess(req.Guess)
	switch {
	case errors.Is(err, game.ErrInvalidWord):
		writeJSON(w, http.StatusUnprocessableEntity, res)
	case errors.Is(err, game.ErrGameOver):
		writeJSON(w, http.StatusConflict, res)
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("submit guess")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// handleState returns the session snapshot, hiding the target while playing.
// Finished sessions are dropped from the store after their final snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	snap := g.State()
	if snap.Status == game.Playing {
		snap.TargetWord = ""
	} else if err := s.store.Delete(r.Context(), id); err != nil {
		log.Warn().Err(err).Str("gameId", id).Msg("evict finished game")
	}
	writeJSON(w, http.StatusOK, snap)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
