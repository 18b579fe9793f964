package render

import (
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/rankings"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func TestTilesKeepLetterOrder(t *testing.T) {
	p, _ := feedback.Parse("XYYXX")
	out := Tiles("CLOUT", p)
	last := -1
	for _, c := range "CLOUT" {
		i := strings.IndexRune(out, c)
		if i <= last {
			t.Fatalf("letter %c out of order in %q", c, out)
		}
		last = i
	}
}

func TestSuggestionShowsUnit(t *testing.T) {
	out := Suggestion(solver.Suggestion{Word: "SLATE", Score: 5.8, Mode: solver.ModeNormal})
	if !strings.Contains(out, "SLATE") || !strings.Contains(out, "5.8000 bits") {
		t.Fatalf("got %q", out)
	}
	out = Suggestion(solver.Suggestion{Word: "SLATE", Score: 61, Mode: solver.ModeHard})
	if !strings.Contains(out, "expected remaining") {
		t.Fatalf("got %q", out)
	}
}

func TestStatsListsFewSolutions(t *testing.T) {
	out := Stats(solver.Stats{Total: 10, Remaining: 2, Eliminated: 8, EliminatedPct: 80, Solutions: words.MustParseAll("KOALA", "POLKA")})
	for _, want := range []string{"Remaining solutions: 2", "80.0%", "KOALA POLKA"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestOpenersAndReport(t *testing.T) {
	out := Openers("Top", solver.ModeNormal, []rankings.Opener{{Word: "ROATE", Bits: 5.9, LargestBucket: 40, SplitEfficiency: 0.9}})
	if !strings.Contains(out, "ROATE") || !strings.Contains(out, "90.0%") {
		t.Fatalf("got %q", out)
	}

	rep := Report(game.Report{Mode: solver.ModeNormal, Games: 3, Won: 2, Histogram: []int{0, 0, 1, 1, 0, 0, 0}, Mean: 2.5, Worst: 3, Lost: []words.Word{"ZONAL"}})
	if !strings.Contains(rep, "2/3 solved") || !strings.Contains(rep, "failed: ZONAL") {
		t.Fatalf("got %q", rep)
	}
}
