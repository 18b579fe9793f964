// internal/httpserver/routes_daily.go
//
// HTTP routes for the puzzle of the day.
//   - GET  /daily       → today's date and word index (answer hidden)
//   - POST /daily/solve → let the solver play a day's puzzle and return its turns
//
// The day's answer is HMAC(salt, date) over the answer list, so a fixed salt
// and dictionary always give the same puzzle.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDaily)
		r.Post("/solve", s.handleDailySolve)
	})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, daily.For(time.Now(), s.opts.DailySalt, s.opts.Dict))
}

// dailySolveReq is the request payload for /daily/solve.
type dailySolveReq struct {
	HardMode bool   `json:"hardMode"`
	Date     string `json:"date"` // YYYY-MM-DD; empty means today (UTC)
}

// dailySolveRes is the response payload for /daily/solve.
type dailySolveRes struct {
	daily.Puzzle
	Answer  string        `json:"answer"`
	Mode    solver.Mode   `json:"mode"`
	Won     bool          `json:"won"`
	Guesses int           `json:"guesses"`
	Turns   []solver.Turn `json:"turns"`
}

func (s *Server) handleDailySolve(w http.ResponseWriter, r *http.Request) {
	var req dailySolveReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	day := time.Now()
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date", "date must be YYYY-MM-DD")
			return
		}
		day = t
	}
	mode := solver.ModeNormal
	if req.HardMode {
		mode = solver.ModeHard
	}

	pz := daily.For(day, s.opts.DailySalt, s.opts.Dict)
	res, err := game.Play(s.opts.Dict, pz.Answer, game.DefaultRows,
		solver.WithMode(mode),
		solver.WithWorkers(s.opts.Workers),
		solver.WithGuessesFromAnswers(s.opts.GuessesFromAnswers),
	)
	if err != nil {
		log.Error().Err(err).Str("date", pz.Date).Msg("daily solve")
		writeError(w, http.StatusInternalServerError, "solve_failed", err.Error())
		return
	}
	log.Info().Str("date", pz.Date).Str("mode", mode.String()).Bool("won", res.Won).
		Int("guesses", res.Guesses()).Msg("daily solved")

	writeJSON(w, http.StatusOK, dailySolveRes{
		Puzzle:  pz,
		Answer:  pz.Answer.String(),
		Mode:    mode,
		Won:     res.Won,
		Guesses: res.Guesses(),
		Turns:   res.Turns,
	})
}
