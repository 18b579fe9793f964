// internal/game/engine.go
//
// Referee for a single puzzle: knows the answer, scores guesses.
// Responsibilities:
//   - Create games with a fixed row count.
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses with feedback.Simulate, the same rule the solver uses.
//   - Track state transitions: playing → won/lost.
//
// The solver never sees Answer; it only receives the returned patterns.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultRows is the number of guesses the official game allows.
const DefaultRows = 6

var (
	ErrFinished   = errors.New("game finished")
	ErrNotAllowed = errors.New("not in word list")
)

// New constructs a referee game over dict. If answer is empty a random
// answer is drawn; rows <= 0 means DefaultRows.
func New(dict *words.Dictionary, answer words.Word, rows int) *Game {
	if answer == "" {
		answer = dict.RandomAnswer()
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{
		ID:     randomID(),
		Answer: answer,
		Rows:   rows,
		dict:   dict,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the pattern, the new state ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must parse as a Word.
//   - Guess must be in the dictionary's guess list.
func (g *Game) ApplyGuess(raw string) (feedback.Pattern, string, error) {
	if g.Finished {
		return feedback.Pattern{}, g.state(), ErrFinished
	}
	guess, err := words.Parse(raw)
	if err != nil {
		return feedback.Pattern{}, g.state(), err
	}
	if !g.dict.IsAllowed(guess) {
		return feedback.Pattern{}, g.state(), ErrNotAllowed
	}

	p := feedback.Simulate(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Marks = append(g.Marks, p)

	if p.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return p, g.state(), nil
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
