// internal/solver/hardmode.go
//
// Hard-mode legality. Every revealed hint must be honoured by later guesses:
//   - Correct at i:  letter required at position i.
//   - Present at i:  letter required somewhere, but not at i.
//   - Absent:        letter forbidden, unless the same guess also marked that
//                    letter Correct or Present elsewhere (duplicate letters).
//
// Constraints only accumulate; applying them to a guess pool only shrinks it.

package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Turn is one committed guess and the feedback it received.
type Turn struct {
	Guess    words.Word       `json:"guess"`
	Feedback feedback.Pattern `json:"feedback"`
}

// Constraints is the union of hard-mode rules from a sequence of turns.
type Constraints struct {
	required [words.Length]byte // 0 when the position is open
	mustHave [26]bool
	notAt    [26]uint8 // bitmask of positions a present letter may not take
	absent   [26]bool
}

// NewConstraints derives constraints from every turn in history.
func NewConstraints(history []Turn) *Constraints {
	c := &Constraints{}
	for _, t := range history {
		c.Add(t.Guess, t.Feedback)
	}
	return c
}

// Add folds one guess's feedback into c.
func (c *Constraints) Add(guess words.Word, p feedback.Pattern) {
	var hit [26]bool
	for i, m := range p {
		if m != feedback.Absent {
			hit[guess[i]-'A'] = true
		}
	}

	for i, m := range p {
		l := guess[i] - 'A'
		switch m {
		case feedback.Correct:
			c.required[i] = guess[i]
		case feedback.Present:
			c.mustHave[l] = true
			c.notAt[l] |= 1 << i
		case feedback.Absent:
			if !hit[l] {
				c.absent[l] = true
			}
		}
	}
}

// Allows reports whether w is a legal hard-mode guess under c.
func (c *Constraints) Allows(w words.Word) bool {
	var has [26]bool
	for i := 0; i < words.Length; i++ {
		l := w[i] - 'A'
		if r := c.required[i]; r != 0 && w[i] != r {
			return false
		}
		if c.absent[l] || c.notAt[l]&(1<<i) != 0 {
			return false
		}
		has[l] = true
	}
	for l, need := range c.mustHave {
		if need && !has[l] {
			return false
		}
	}
	return true
}

// Restrict returns the words of allowed that satisfy every constraint in
// history, in their original order.
func Restrict(allowed []words.Word, history []Turn) []words.Word {
	return restrictWith(allowed, NewConstraints(history))
}

func restrictWith(allowed []words.Word, c *Constraints) []words.Word {
	out := make([]words.Word, 0, len(allowed))
	for _, w := range allowed {
		if c.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
