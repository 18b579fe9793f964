// internal/rankings/analyze.go
//
// Starting-word analysis.
// For every allowed guess, partition the full answer list by feedback and
// record:
//   - bits: Shannon entropy of the partition (normal-mode score)
//   - expected remaining: Σ c²/n (hard-mode score)
//   - largest bucket: worst case candidates left after the guess
//   - split efficiency: 1 - largest/n
//
// The ordering used by Top matches what a fresh session would pick, so the
// leader can seed the opening cache.

package rankings

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultBalancedN is how deep Balanced looks into each leaderboard.
const DefaultBalancedN = 50

// Opener is the first-turn profile of one guess word.
type Opener struct {
	Word              words.Word `json:"word"`
	Bits              float64    `json:"bits"`
	ExpectedRemaining float64    `json:"expectedRemaining"`
	LargestBucket     int        `json:"largestBucket"`
	SplitEfficiency   float64    `json:"splitEfficiency"`
	Candidate         bool       `json:"candidate"`
}

// Score is the opener's score in mode.
func (o Opener) Score(mode solver.Mode) float64 {
	if mode == solver.ModeHard {
		return o.ExpectedRemaining
	}
	return o.Bits
}

// Suggestion converts the opener to what a session would return for it.
func (o Opener) Suggestion(mode solver.Mode) solver.Suggestion {
	return solver.Suggestion{Word: o.Word, Score: o.Score(mode), Mode: mode}
}

func (o Opener) scored(mode solver.Mode) solver.Scored {
	return solver.Scored{Word: o.Word, Score: o.Score(mode), Candidate: o.Candidate}
}

// Profile computes the opener statistics of guess against answers.
func Profile(guess words.Word, answers []words.Word, isAnswer bool) Opener {
	d := solver.Distribute(guess, answers)
	o := Opener{
		Word:              guess,
		Bits:              d.Entropy(),
		ExpectedRemaining: d.ExpectedRemaining(),
		LargestBucket:     d.Largest(),
		Candidate:         isAnswer,
	}
	if n := d.Total(); n > 0 {
		o.SplitEfficiency = 1 - float64(o.LargestBucket)/float64(n)
	}
	return o
}

// Analyze profiles every guess in dict against every answer. Results come
// back in dictionary order. workers <= 0 uses GOMAXPROCS. progress, if set,
// is called once per profiled word.
func Analyze(ctx context.Context, dict *words.Dictionary, workers int, progress func()) ([]Opener, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	answers := dict.Answers()
	guesses := dict.Guesses()
	out := make([]Opener, len(guesses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var mu sync.Mutex

	for i, w := range guesses {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Profile(w, answers, dict.IsAnswer(w))
			if progress != nil {
				mu.Lock()
				progress()
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Top returns the n best openers for mode, best first. n <= 0 returns all.
func Top(openers []Opener, mode solver.Mode, n int) []Opener {
	sorted := slices.Clone(openers)
	slices.SortFunc(sorted, func(a, b Opener) int {
		sa, sb := a.scored(mode), b.scored(mode)
		switch {
		case solver.Better(sa, sb, mode):
			return -1
		case solver.Better(sb, sa, mode):
			return 1
		}
		return 0
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Balanced returns the words that make both the top-n by bits and the top-n
// by expected remaining, in bits order.
func Balanced(openers []Opener, n int) []Opener {
	if n <= 0 {
		n = DefaultBalancedN
	}
	hard := make(map[words.Word]struct{}, n)
	for _, o := range Top(openers, solver.ModeHard, n) {
		hard[o.Word] = struct{}{}
	}
	var out []Opener
	for _, o := range Top(openers, solver.ModeNormal, n) {
		if _, ok := hard[o.Word]; ok {
			out = append(out, o)
		}
	}
	return out
}
