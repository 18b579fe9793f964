package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Consistent reports whether w could be the solution given that guess
// produced p. It reuses Simulate so filtering and scoring always agree.
func Consistent(w, guess words.Word, p feedback.Pattern) bool {
	return feedback.Simulate(guess, w) == p
}

// Filter returns the candidates consistent with guess having produced p, in
// their original order. candidates is not modified. An empty result is
// reported as *InconsistentFeedbackError instead of an empty slice.
func Filter(candidates []words.Word, guess words.Word, p feedback.Pattern) ([]words.Word, error) {
	out := make([]words.Word, 0, len(candidates))
	for _, w := range candidates {
		if Consistent(w, guess, p) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, &InconsistentFeedbackError{Guess: guess, Feedback: p, Candidates: len(candidates)}
	}
	return out, nil
}
