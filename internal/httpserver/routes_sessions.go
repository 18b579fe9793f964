// internal/httpserver/routes_sessions.go
//
// HTTP routes for interactive solver sessions.
//   - POST   /sessions               → start a session {"hardMode":bool}
//   - GET    /sessions/{id}          → state, history, stats
//   - POST   /sessions/{id}/suggest  → next recommended guess
//   - POST   /sessions/{id}/feedback → apply {"guess","feedback"} (G/Y/X)
//   - POST   /sessions/{id}/reset    → back to the full dictionary
//   - DELETE /sessions/{id}          → drop the session
//
// Status codes: 400 malformed word or feedback, 404 unknown session,
// 409 feedback no candidate matches or a move the session's state forbids.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/suggest", s.handleSuggest)
			r.Post("/feedback", s.handleFeedback)
			r.Post("/reset", s.handleReset)
			r.Delete("/", s.handleDeleteSession)
		})
	})
}

// sessionView is the JSON shape of a session.
type sessionView struct {
	ID      string        `json:"id"`
	Mode    solver.Mode   `json:"mode"`
	State   solver.State  `json:"state"`
	Turn    int           `json:"turn"`
	History []solver.Turn `json:"history"`
	Stats   solver.Stats  `json:"stats"`
}

func viewOf(id string, sess *solver.Session) sessionView {
	h := sess.History()
	if h == nil {
		h = []solver.Turn{}
	}
	return sessionView{
		ID:      id,
		Mode:    sess.Mode(),
		State:   sess.State(),
		Turn:    sess.Turn(),
		History: h,
		Stats:   sess.Stats(),
	}
}

// -----------------------------------------------------------------------------
// POST /sessions

type newSessionReq struct {
	HardMode bool `json:"hardMode"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	mode := solver.ModeNormal
	if req.HardMode {
		mode = solver.ModeHard
	}
	sess := s.newSession(mode)
	e, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed", "could not create session")
		return
	}
	log.Info().Str("session", e.ID).Str("mode", mode.String()).Str("sub", Subject(r.Context())).Msg("session started")
	writeJSON(w, http.StatusCreated, viewOf(e.ID, sess))
}

// withEntry loads {id} or answers 404.
func (s *Server) withEntry(w http.ResponseWriter, r *http.Request) (*store.Entry, bool) {
	e, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "no such session")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed", err.Error())
		return nil, false
	}
	return e, true
}

// -----------------------------------------------------------------------------
// GET /sessions/{id}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.withEntry(w, r)
	if !ok {
		return
	}
	var v sessionView
	_ = e.Do(func(sess *solver.Session) error {
		v = viewOf(e.ID, sess)
		return nil
	})
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/suggest

type suggestRes struct {
	solver.Suggestion
	Unit       string `json:"unit"`
	Candidates int    `json:"candidates"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	e, ok := s.withEntry(w, r)
	if !ok {
		return
	}
	var res suggestRes
	err := e.Do(func(sess *solver.Session) error {
		sg, err := sess.Suggest()
		if err != nil {
			return err
		}
		res = suggestRes{Suggestion: sg, Unit: sg.Unit(), Candidates: sess.CandidateCount()}
		return nil
	})
	if err != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/feedback

type feedbackReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	guess, err := words.Parse(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_guess", err.Error())
		return
	}
	p, err := feedback.Parse(req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_feedback", err.Error())
		return
	}

	e, ok := s.withEntry(w, r)
	if !ok {
		return
	}
	var v sessionView
	err = e.Do(func(sess *solver.Session) error {
		if err := sess.ApplyFeedback(guess, p); err != nil {
			return err
		}
		v = viewOf(e.ID, sess)
		return nil
	})
	if err != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/reset, DELETE /sessions/{id}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e, ok := s.withEntry(w, r)
	if !ok {
		return
	}
	var v sessionView
	_ = e.Do(func(sess *solver.Session) error {
		sess.Reset()
		v = viewOf(e.ID, sess)
		return nil
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "no such session")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeSolverError maps session errors to status codes.
func writeSolverError(w http.ResponseWriter, err error) {
	var inc *solver.InconsistentFeedbackError
	switch {
	case errors.As(err, &inc):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":      "inconsistent_feedback",
			"message":    err.Error(),
			"guess":      inc.Guess,
			"feedback":   inc.Feedback,
			"candidates": inc.Candidates,
		})
	case errors.Is(err, solver.ErrContractViolation):
		writeError(w, http.StatusConflict, "invalid_state", err.Error())
	default:
		log.Error().Err(err).Msg("session error")
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}
