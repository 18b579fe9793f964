// internal/feedback/feedback.go
//
// Feedback patterns and the Wordle feedback simulator.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Pattern: the five marks for one guess, usable as a map key.
//   - Simulate: the classic two-pass Wordle scoring.
//   - Parse: G/Y/X feedback strings typed by a user.

package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	Absent  Mark = iota // X: letter not in the solution (or all copies used up)
	Present             // Y: letter in the solution, different position
	Correct             // G: letter in this exact position
)

// NumPatterns is the number of distinct patterns (3^Length).
const NumPatterns = 243

// Code returns the single-letter feedback code (G, Y or X).
func (m Mark) Code() byte {
	switch m {
	case Correct:
		return 'G'
	case Present:
		return 'Y'
	default:
		return 'X'
	}
}

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Pattern is the feedback for one guess, position by position.
// Two patterns are equal iff all marks match.
type Pattern [words.Length]Mark

// AllCorrect is the pattern of a solved puzzle.
var AllCorrect = Pattern{Correct, Correct, Correct, Correct, Correct}

// Solved reports whether every mark is Correct.
func (p Pattern) Solved() bool { return p == AllCorrect }

// Index packs the pattern into a base-3 number in [0, NumPatterns).
func (p Pattern) Index() int {
	n := 0
	for _, m := range p {
		n = n*3 + int(m)
	}
	return n
}

// FromIndex is the inverse of Pattern.Index.
func FromIndex(n int) Pattern {
	var p Pattern
	for i := words.Length - 1; i >= 0; i-- {
		p[i] = Mark(n % 3)
		n /= 3
	}
	return p
}

// String renders the pattern as G/Y/X codes, e.g. "XYYXX".
func (p Pattern) String() string {
	var b [words.Length]byte
	for i, m := range p {
		b[i] = m.Code()
	}
	return string(b[:])
}

// MarshalText encodes the pattern as its G/Y/X string.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts the same input as Parse.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("feedback: bad format")

// FormatError describes a malformed feedback string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("feedback %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Parse reads a feedback string of exactly Length codes G (correct),
// Y (present) or X (absent), case-insensitive. Surrounding whitespace is
// ignored; anything else is a *FormatError.
func Parse(s string) (Pattern, error) {
	var p Pattern
	in := strings.TrimSpace(s)
	if len(in) != words.Length {
		return p, &FormatError{Input: s, Reason: fmt.Sprintf("need exactly %d characters", words.Length)}
	}
	for i := 0; i < len(in); i++ {
		switch in[i] {
		case 'G', 'g':
			p[i] = Correct
		case 'Y', 'y':
			p[i] = Present
		case 'X', 'x':
			p[i] = Absent
		default:
			return p, &FormatError{Input: s, Reason: fmt.Sprintf("invalid code %q at position %d (use G, Y or X)", in[i], i+1)}
		}
	}
	return p, nil
}

// Simulate returns the pattern the game shows for guess when the hidden word
// is solution.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-correct) solution letters.
//
// Pass 2:
//   - Left to right, mark a non-correct letter Present while it has remaining
//     count (decrementing it); otherwise Absent.
//
// Both words must be valid; anything else is a programming error and panics.
func Simulate(guess, solution words.Word) Pattern {
	if len(guess) != words.Length || len(solution) != words.Length {
		panic(fmt.Sprintf("feedback: Simulate(%q, %q): words must have %d letters", guess, solution, words.Length))
	}
	var p Pattern
	var counts [26]int8

	for i := 0; i < words.Length; i++ {
		if guess[i] == solution[i] {
			p[i] = Correct
		} else {
			counts[solution[i]-'A']++
		}
	}

	for i := 0; i < words.Length; i++ {
		if p[i] == Correct {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			p[i] = Present
			counts[j]--
		}
	}
	return p
}
