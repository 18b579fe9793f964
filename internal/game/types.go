// internal/game/types.go
//
// Core type definitions for the referee.
// Defines:
//   - Game: a hidden answer being played, scored like the real game.
//   - Result/Report: outcomes of the solver playing against a Game.

package game

import (
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Coarse game states reported by ApplyGuess.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Game holds the state of a single referee game.
type Game struct {
	ID       string             // Unique game identifier (random hex string).
	Answer   words.Word         // The hidden solution.
	Rows     int                // Maximum number of guesses allowed (typically 6).
	Guesses  []words.Word       // Guesses made so far.
	Marks    []feedback.Pattern // Feedback for each guess.
	Finished bool               // True once the game is over (won or lost).
	Won      bool               // True if the game was finished with a win.

	dict *words.Dictionary
}

// Result is one solver-versus-referee game.
type Result struct {
	Answer words.Word    `json:"answer"`
	Turns  []solver.Turn `json:"turns"`
	Won    bool          `json:"won"`
}

// Guesses is the number of guesses the solver used.
func (r Result) Guesses() int { return len(r.Turns) }

// Report aggregates many games.
type Report struct {
	Mode      solver.Mode  `json:"mode"`
	Games     int          `json:"games"`
	Won       int          `json:"won"`
	Histogram []int        `json:"histogram"` // Histogram[n] = games won in n guesses
	Mean      float64      `json:"mean"`      // mean guesses over won games
	Worst     int          `json:"worst"`
	Lost      []words.Word `json:"lost,omitempty"`
}
