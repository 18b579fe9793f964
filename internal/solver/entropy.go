// internal/solver/entropy.go
//
// Guess scoring.
//
// For a guess and a candidate set, every candidate is bucketed by the pattern
// the guess would produce against it. With n candidates and c_p of them in
// bucket p:
//   - Normal mode: Shannon entropy, -Σ (c_p/n)·log2(c_p/n). Higher is better.
//   - Hard mode:   expected remaining candidates, Σ (c_p/n)·c_p. Lower is better.
//
// Rank scores a whole guess pool, optionally in parallel. Scores are written
// into a slice by guess index, then sorted with a deterministic tie-break, so
// the result never depends on goroutine scheduling.

package solver

import (
	"fmt"
	"math"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Mode selects the scoring metric and whether hard-mode legality applies.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeHard
)

func (m Mode) String() string {
	if m == ModeHard {
		return "hard"
	}
	return "normal"
}

// Unit names what a score in this mode measures.
func (m Mode) Unit() string {
	if m == ModeHard {
		return "expected remaining"
	}
	return "bits"
}

// ParseMode accepts "normal" or "hard" (any case). Empty means normal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "hard":
		return ModeHard, nil
	}
	return ModeNormal, fmt.Errorf("solver: unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// scoreEpsilon is the tolerance under which two scores tie.
const scoreEpsilon = 1e-9

// Distribution counts candidates per feedback pattern, indexed by
// feedback.Pattern.Index.
type Distribution [feedback.NumPatterns]int

// Distribute buckets candidates by the pattern guess produces against each.
func Distribute(guess words.Word, candidates []words.Word) Distribution {
	var d Distribution
	for _, c := range candidates {
		d[feedback.Simulate(guess, c).Index()]++
	}
	return d
}

// Total is the number of candidates distributed.
func (d *Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Buckets is the number of distinct patterns observed.
func (d *Distribution) Buckets() int {
	n := 0
	for _, c := range d {
		if c > 0 {
			n++
		}
	}
	return n
}

// Largest is the size of the biggest bucket.
func (d *Distribution) Largest() int {
	m := 0
	for _, c := range d {
		m = max(m, c)
	}
	return m
}

// Entropy in bits of the pattern distribution.
func (d *Distribution) Entropy() float64 {
	n := float64(d.Total())
	if n == 0 {
		return 0
	}
	h := 0.0
	for _, c := range d {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// ExpectedRemaining is the mean bucket size a uniformly random solution lands in.
func (d *Distribution) ExpectedRemaining() float64 {
	n := float64(d.Total())
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range d {
		sum += float64(c) * float64(c)
	}
	return sum / n
}

// Score rates guess against candidates in the given mode.
func Score(guess words.Word, candidates []words.Word, mode Mode) float64 {
	d := Distribute(guess, candidates)
	if mode == ModeHard {
		return d.ExpectedRemaining()
	}
	return d.Entropy()
}

// Scored is one guess with its score for the current turn.
type Scored struct {
	Word      words.Word `json:"word"`
	Score     float64    `json:"score"`
	Candidate bool       `json:"candidate"` // guess could itself be the solution
}

// Better reports whether a ranks strictly ahead of b.
// Scores within scoreEpsilon tie; ties prefer a candidate word, then the
// lexicographically smaller word.
func Better(a, b Scored, mode Mode) bool {
	if math.Abs(a.Score-b.Score) > scoreEpsilon {
		if mode == ModeHard {
			return a.Score < b.Score
		}
		return a.Score > b.Score
	}
	if a.Candidate != b.Candidate {
		return a.Candidate
	}
	return a.Word < b.Word
}

// Rank scores every word in allowed against candidates and returns them
// best-first. workers <= 0 uses GOMAXPROCS; 1 scores inline.
func Rank(allowed, candidates []words.Word, mode Mode, workers int) []Scored {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	inCandidates := make(map[words.Word]struct{}, len(candidates))
	for _, c := range candidates {
		inCandidates[c] = struct{}{}
	}

	out := make([]Scored, len(allowed))
	scoreRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			w := allowed[i]
			_, isCand := inCandidates[w]
			out[i] = Scored{Word: w, Score: Score(w, candidates, mode), Candidate: isCand}
		}
	}

	if workers == 1 || len(allowed) < 2*workers {
		scoreRange(0, len(allowed))
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		chunk := (len(allowed) + workers - 1) / workers
		for lo := 0; lo < len(allowed); lo += chunk {
			hi := min(lo+chunk, len(allowed))
			g.Go(func() error {
				scoreRange(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	slices.SortFunc(out, func(a, b Scored) int {
		switch {
		case Better(a, b, mode):
			return -1
		case Better(b, a, mode):
			return 1
		}
		return 0
	})
	return out
}

// Best returns the top-ranked guess. ok is false when allowed is empty.
func Best(allowed, candidates []words.Word, mode Mode, workers int) (best Scored, ok bool) {
	ranked := Rank(allowed, candidates, mode, workers)
	if len(ranked) == 0 {
		return Scored{}, false
	}
	return ranked[0], true
}
