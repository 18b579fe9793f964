package game

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Play lets a fresh solver session guess answer until the referee declares
// the game over. rows <= 0 means DefaultRows.
func Play(dict *words.Dictionary, answer words.Word, rows int, opts ...solver.Option) (Result, error) {
	g := New(dict, answer, rows)
	s := solver.NewSession(dict, opts...)
	res := Result{Answer: g.Answer}

	for !g.Finished {
		sg, err := s.Suggest()
		if err != nil {
			return res, fmt.Errorf("suggest: %w", err)
		}
		p, _, err := g.ApplyGuess(sg.Word.String())
		if err != nil {
			return res, fmt.Errorf("guess %s: %w", sg.Word, err)
		}
		res.Turns = append(res.Turns, solver.Turn{Guess: sg.Word, Feedback: p})
		if err := s.ApplyFeedback(sg.Word, p); err != nil {
			return res, fmt.Errorf("feedback %s for %s: %w", p, sg.Word, err)
		}
	}
	res.Won = g.Won
	return res, nil
}

// Benchmark plays every answer in answers and aggregates the outcome.
// Games run concurrently, at most workers at a time (<= 0: no limit); each
// game scores on a single goroutine. progress, if set, is called once per
// finished game.
func Benchmark(ctx context.Context, dict *words.Dictionary, answers []words.Word, mode solver.Mode, workers int, progress func()) (Report, error) {
	results := make([]Result, len(answers))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	var mu sync.Mutex

	for i, answer := range answers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Play(dict, answer, DefaultRows, solver.WithMode(mode), solver.WithWorkers(1))
			if err != nil {
				return err
			}
			results[i] = r
			if progress != nil {
				mu.Lock()
				progress()
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return summarize(mode, results), nil
}

func summarize(mode solver.Mode, results []Result) Report {
	rep := Report{Mode: mode, Games: len(results), Histogram: make([]int, DefaultRows+1)}
	total := 0
	for _, r := range results {
		if !r.Won {
			rep.Lost = append(rep.Lost, r.Answer)
			continue
		}
		n := r.Guesses()
		rep.Won++
		rep.Histogram[n]++
		total += n
		rep.Worst = max(rep.Worst, n)
	}
	if rep.Won > 0 {
		rep.Mean = float64(total) / float64(rep.Won)
	}
	slices.Sort(rep.Lost)
	return rep
}
