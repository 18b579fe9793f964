package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	// ErrInconsistentFeedback matches *InconsistentFeedbackError.
	ErrInconsistentFeedback = errors.New("solver: inconsistent feedback")

	// ErrContractViolation marks caller bugs: using a finished session,
	// passing a malformed word. Not meant to be retried.
	ErrContractViolation = errors.New("solver: contract violation")
)

// InconsistentFeedbackError is returned when feedback leaves no candidate.
// Either the feedback was mistyped or the dictionary lacks the solution.
type InconsistentFeedbackError struct {
	Guess      words.Word
	Feedback   feedback.Pattern
	Candidates int // candidates before filtering
}

func (e *InconsistentFeedbackError) Error() string {
	return fmt.Sprintf("no candidate among %d matches %s for guess %s", e.Candidates, e.Feedback, e.Guess)
}

func (e *InconsistentFeedbackError) Is(target error) bool { return target == ErrInconsistentFeedback }

func contractf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrContractViolation}, args...)...)
}
