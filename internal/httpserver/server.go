// internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", GET /openers.
//   - Solver sessions: /sessions/* (see routes_sessions.go).
//   - Daily puzzle: /daily/* (see routes_daily.go).
//   - Bearer-token auth on session and daily routes when an API secret is set.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Errors are JSON: {"error":"<code>","message":"<detail>"}.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/rankings"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Options configures a Server.
type Options struct {
	Dict               *words.Dictionary
	Workers            int    // per-request scoring goroutines; 0 = GOMAXPROCS
	GuessesFromAnswers bool   // sessions guess only from the answer list
	APISecret          string // HS256 key; empty disables auth
	DailySalt          string
	ClientOrigin       string
	Timeout            time.Duration // per-request bound; 0 = 30s
}

// Server bundles router, session store, and the optional rankings DB.
type Server struct {
	r        *chi.Mux
	store    store.Store
	rankings *rankings.Store // nil when no database is configured
	opts     Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, rk *rankings.Store, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, rankings: rk, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                   // one debug line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		a, g := opts.Dict.Stats()
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"answers": a,
			"allowed": g,
			"endpoints": []string{
				"/health", "GET /openers",
				"POST /sessions", "GET /sessions/{id}", "POST /sessions/{id}/suggest",
				"POST /sessions/{id}/feedback", "POST /sessions/{id}/reset", "DELETE /sessions/{id}",
				"GET /daily", "POST /daily/solve",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/openers", s.handleOpeners)

	// Sessions and daily: token required when a secret is configured.
	s.r.Group(func(r chi.Router) {
		if opts.APISecret != "" {
			r.Use(requireAuth(opts.APISecret))
		}
		s.mountSessions(r)
		s.mountDaily(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// newSession builds a solver session with the server's defaults.
func (s *Server) newSession(mode solver.Mode) *solver.Session {
	return solver.NewSession(s.opts.Dict,
		solver.WithMode(mode),
		solver.WithWorkers(s.opts.Workers),
		solver.WithGuessesFromAnswers(s.opts.GuessesFromAnswers),
	)
}

// ----------------------------- openers -------------------------------------

type openersRes struct {
	Mode     solver.Mode       `json:"mode"`
	Unit     string            `json:"unit"`
	Openers  []rankings.Opener `json:"openers"`
	Balanced []rankings.Opener `json:"balanced,omitempty"`
}

// handleOpeners serves the stored starting-word leaderboard for the active
// dictionary: GET /openers?mode=normal|hard&limit=N.
func (s *Server) handleOpeners(w http.ResponseWriter, r *http.Request) {
	if s.rankings == nil {
		writeError(w, http.StatusServiceUnavailable, "rankings_unavailable", "no rankings database configured")
		return
	}
	mode, err := solver.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_mode", err.Error())
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit", "limit must be a positive integer")
			return
		}
	}

	all, err := s.rankings.All(r.Context(), s.opts.Dict.Fingerprint())
	if err != nil {
		log.Error().Err(err).Msg("load rankings")
		writeError(w, http.StatusInternalServerError, "db_error", "could not load rankings")
		return
	}
	if len(all) == 0 {
		writeError(w, http.StatusNotFound, "not_analyzed", "run the analyze command for this word list first")
		return
	}
	writeJSON(w, http.StatusOK, openersRes{
		Mode:     mode,
		Unit:     mode.Unit(),
		Openers:  rankings.Top(all, mode, limit),
		Balanced: rankings.Balanced(all, rankings.DefaultBalancedN),
	})
}

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
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one zerolog line per request at debug level.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

// decodeOptional decodes a JSON body into v; an empty body leaves v as is.
func decodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}
