// play.go
//
// Interactive co-solver loop. The player types the suggested word into their
// game and reports the colours back:
//
//	G = green (right letter, right spot)
//	Y = yellow (in the word, wrong spot)
//	X = grey (not in the word)
//
// "WORD FEEDBACK" reports a different word than the one suggested.
// "solved" or "yes" means the suggested word was the answer; "quit" stops.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/render"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// interact runs the co-solver until the puzzle is solved, the player quits,
// or input ends. It reports whether the puzzle was solved.
func interact(s *solver.Session, in io.Reader, out io.Writer) (bool, error) {
	sc := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}
	solved := func(w words.Word) (bool, error) {
		if err := s.ApplyFeedback(w, feedback.AllCorrect); err != nil {
			return false, err
		}
		fmt.Fprintln(out, render.GuessStyle.Render(fmt.Sprintf("Solved in %d guesses!", s.Turn())))
		return true, nil
	}

	banner(s, out)
	for {
		sg, err := s.Suggest()
		if err != nil {
			return false, err
		}

		if s.CandidateCount() == 1 {
			fmt.Fprintf(out, "Only one solution remaining: %s\n", render.GuessStyle.Render(sg.Word.String()))
			ans, ok := prompt("Is this the correct solution? (yes/no): ")
			if ok && isYes(ans) {
				return solved(sg.Word)
			}
			fmt.Fprintln(out, render.ErrorStyle.Render("Out of possible solutions; the word list may be incomplete."))
			s.Abandon()
			return false, nil
		}

		fmt.Fprintln(out, render.Suggestion(sg))
		for {
			line, ok := prompt("Enter feedback (G/Y/X), 'solved' or 'quit': ")
			switch lower := strings.ToLower(line); {
			case !ok || lower == "quit" || lower == "q":
				s.Abandon()
				return false, nil
			case lower == "solved" || isYes(lower):
				return solved(sg.Word)
			}

			guess, fb := sg.Word, line
			if fields := strings.Fields(line); len(fields) == 2 {
				w, err := words.Parse(fields[0])
				if err != nil {
					fmt.Fprintln(out, render.ErrorStyle.Render(err.Error()))
					continue
				}
				guess, fb = w, fields[1]
			}
			p, err := feedback.Parse(fb)
			if err != nil {
				fmt.Fprintln(out, render.ErrorStyle.Render(err.Error()))
				continue
			}
			if p.Solved() {
				return solved(guess)
			}

			if err := s.ApplyFeedback(guess, p); err != nil {
				if errors.Is(err, solver.ErrInconsistentFeedback) {
					fmt.Fprintln(out, render.ErrorStyle.Render("No remaining word fits that feedback; check it and try again."))
					continue
				}
				return false, err
			}
			fmt.Fprintln(out, render.Tiles(guess, p))
			fmt.Fprintln(out, render.Stats(s.Stats()))
			break
		}
	}
}

func banner(s *solver.Session, out io.Writer) {
	fmt.Fprintln(out, render.HeaderStyle.Render(fmt.Sprintf("Wordle co-solver (%s mode)", s.Mode())))
	fmt.Fprintln(out, render.DimStyle.Render("Feedback: G=green Y=yellow X=grey, e.g. GYXGY. 'solved' when done, 'quit' to stop."))
	if s.Mode() == solver.ModeHard {
		fmt.Fprintln(out, render.DimStyle.Render("Hard mode: every guess must use the hints revealed so far."))
	}
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "yes" || s == "y"
}
