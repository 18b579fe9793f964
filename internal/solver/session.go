// internal/solver/session.go
//
// Solver session: the state of one puzzle being solved.
//
// State transitions:
//   - Initialized → AwaitingFeedback on the first accepted feedback.
//   - AwaitingFeedback → Solved when feedback is all Correct.
//   - any → Abandoned via Abandon; Reset returns to Initialized.
//
// Inconsistent feedback leaves the session exactly as it was so the caller
// can retry the same guess with corrected feedback.
//
// A Session is not safe for concurrent use; one puzzle, one goroutine.

package solver

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// State of a Session.
type State uint8

const (
	StateInitialized State = iota
	StateAwaitingFeedback
	StateSolved
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateAwaitingFeedback:
		return "awaiting_feedback"
	case StateSolved:
		return "solved"
	case StateAbandoned:
		return "abandoned"
	}
	return "initialized"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Finished reports whether the session accepts no more play.
func (s State) Finished() bool { return s == StateSolved || s == StateAbandoned }

// Suggestion is the guess a session recommends and its score.
type Suggestion struct {
	Word  words.Word `json:"guess"`
	Score float64    `json:"score"`
	Mode  Mode       `json:"mode"`
}

// Unit names what Score measures.
func (s Suggestion) Unit() string { return s.Mode.Unit() }

// Option configures a Session.
type Option func(*Session)

// WithMode selects normal or hard mode. Default normal.
func WithMode(m Mode) Option { return func(s *Session) { s.mode = m } }

// WithWorkers bounds scoring parallelism. <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option { return func(s *Session) { s.workers = n } }

// WithGuessesFromAnswers restricts guesses to the answer list.
func WithGuessesFromAnswers(on bool) Option { return func(s *Session) { s.fromAnswers = on } }

type rankFunc func(allowed, candidates []words.Word, mode Mode, workers int) []Scored

// Session holds candidates, allowed guesses, history and state for one puzzle.
type Session struct {
	dict        *words.Dictionary
	mode        Mode
	workers     int
	fromAnswers bool

	candidates []words.Word
	allowed    []words.Word
	history    []Turn
	state      State

	rank rankFunc // swapped in tests
}

// NewSession starts a puzzle over dict. dict is shared read-only.
func NewSession(dict *words.Dictionary, opts ...Option) *Session {
	s := &Session{dict: dict, rank: Rank}
	for _, o := range opts {
		o(s)
	}
	s.Reset()
	return s
}

// Reset returns the session to Initialized with the full dictionary.
func (s *Session) Reset() {
	s.candidates = s.dict.Answers()
	if s.fromAnswers {
		s.allowed = s.dict.Answers()
	} else {
		s.allowed = s.dict.Guesses()
	}
	s.history = nil
	s.state = StateInitialized
}

// Abandon ends the session without a solution.
func (s *Session) Abandon() {
	if s.state != StateSolved {
		s.state = StateAbandoned
	}
}

func (s *Session) Mode() Mode                    { return s.mode }
func (s *Session) State() State                  { return s.state }
func (s *Session) Turn() int                     { return len(s.history) }
func (s *Session) Dictionary() *words.Dictionary { return s.dict }
func (s *Session) CandidateCount() int           { return len(s.candidates) }
func (s *Session) AllowedCount() int             { return len(s.allowed) }

// Candidates returns a copy of the words that can still be the solution.
func (s *Session) Candidates() []words.Word { return slices.Clone(s.candidates) }

// Allowed returns a copy of the current legal guess pool.
func (s *Session) Allowed() []words.Word { return slices.Clone(s.allowed) }

// History returns a copy of the committed turns.
func (s *Session) History() []Turn { return slices.Clone(s.history) }

// Suggest returns the best next guess.
//
//   - One candidate left: that word, without scoring.
//   - Turn 0: the cached opener for this dictionary and mode.
//   - Otherwise: the top of Rank over the allowed pool.
//
// Suggesting on a solved or abandoned session is a contract violation.
func (s *Session) Suggest() (Suggestion, error) {
	if s.state.Finished() {
		return Suggestion{}, contractf("suggest on %s session", s.state)
	}
	if len(s.candidates) == 1 {
		sc := 0.0
		if s.mode == ModeHard {
			sc = 1
		}
		return Suggestion{Word: s.candidates[0], Score: sc, Mode: s.mode}, nil
	}
	if len(s.history) == 0 {
		return s.opening(), nil
	}

	ranked := s.rank(s.allowed, s.candidates, s.mode, s.workers)
	if len(ranked) == 0 {
		// Unreachable while allowed ⊇ candidates; fall back to a candidate.
		return Suggestion{Word: s.candidates[0], Mode: s.mode}, nil
	}
	best := ranked[0]
	log.Debug().Int("turn", s.Turn()).Str("mode", s.mode.String()).
		Int("candidates", len(s.candidates)).Int("allowed", len(s.allowed)).
		Str("guess", best.Word.String()).Float64("score", best.Score).Msg("suggest")
	return Suggestion{Word: best.Word, Score: best.Score, Mode: s.mode}, nil
}

// ApplyFeedback commits guess with the feedback it received.
//
//   - All Correct: the session is Solved.
//   - No candidate consistent: *InconsistentFeedbackError, nothing changes.
//   - Otherwise candidates shrink, and in hard mode so does the guess pool.
func (s *Session) ApplyFeedback(guess words.Word, p feedback.Pattern) error {
	if s.state.Finished() {
		return contractf("feedback on %s session", s.state)
	}
	if !guess.Valid() {
		return contractf("invalid guess %q", string(guess))
	}

	turn := Turn{Guess: guess, Feedback: p}
	if p.Solved() {
		s.history = append(s.history, turn)
		s.candidates = []words.Word{guess}
		s.state = StateSolved
		log.Debug().Int("turn", s.Turn()).Str("guess", guess.String()).Msg("solved")
		return nil
	}

	next, err := Filter(s.candidates, guess, p)
	if err != nil {
		log.Debug().Err(err).Str("guess", guess.String()).Str("feedback", p.String()).Msg("feedback rejected")
		return err
	}

	s.candidates = next
	s.history = append(s.history, turn)
	if s.mode == ModeHard {
		// The pool already honours earlier turns; only this turn's rules are new.
		c := &Constraints{}
		c.Add(guess, p)
		s.allowed = restrictWith(s.allowed, c)
	}
	s.state = StateAwaitingFeedback
	log.Debug().Int("turn", s.Turn()).Str("guess", guess.String()).Str("feedback", p.String()).
		Int("candidates", len(s.candidates)).Int("allowed", len(s.allowed)).Msg("feedback applied")
	return nil
}

// Stats summarises progress for display.
type Stats struct {
	Total         int          `json:"total"`
	Remaining     int          `json:"remaining"`
	Eliminated    int          `json:"eliminated"`
	EliminatedPct float64      `json:"eliminatedPct"`
	Solutions     []words.Word `json:"solutions,omitempty"` // set when few remain
}

// ListThreshold is the candidate count at or below which Stats lists them.
const ListThreshold = 10

// Stats reports how far the candidate set has shrunk.
func (s *Session) Stats() Stats {
	total, _ := s.dict.Stats()
	st := Stats{
		Total:      total,
		Remaining:  len(s.candidates),
		Eliminated: total - len(s.candidates),
	}
	if total > 0 {
		st.EliminatedPct = 100 * float64(st.Eliminated) / float64(total)
	}
	if len(s.candidates) <= ListThreshold {
		st.Solutions = s.Candidates()
	}
	return st
}
