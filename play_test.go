package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func cloutDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New(
		words.MustParseAll("AGLOW", "KOALA", "LOAMY", "LOYAL", "MODAL", "OFFAL", "POLKA", "ZONAL", "CLOUT", "CRANE"),
		nil,
	)
	if err != nil {
		t.Fatalf("dictionary: %v", err)
	}
	return d
}

func TestInteractSolvesWithReportedWord(t *testing.T) {
	s := solver.NewSession(cloutDict(t))
	var out bytes.Buffer
	ok, err := interact(s, strings.NewReader("clout xyyxx\nsolved\n"), &out)
	if err != nil || !ok {
		t.Fatalf("interact = %v, %v\n%s", ok, err, out.String())
	}
	if s.State() != solver.StateSolved || s.Turn() != 2 {
		t.Fatalf("state %s turn %d", s.State(), s.Turn())
	}
	if h := s.History(); h[0].Guess != "CLOUT" || h[0].Feedback.String() != "XYYXX" {
		t.Fatalf("history %+v", h)
	}
	if !strings.Contains(out.String(), "Remaining solutions: 8") || !strings.Contains(out.String(), "Solved in 2 guesses") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestInteractRepromptsOnBadInput(t *testing.T) {
	s := solver.NewSession(cloutDict(t))
	var out bytes.Buffer
	ok, err := interact(s, strings.NewReader("GYZ\nCLOUT XYXXX\nquit\n"), &out)
	if err != nil || ok {
		t.Fatalf("interact = %v, %v", ok, err)
	}
	if s.State() != solver.StateAbandoned || s.Turn() != 0 {
		t.Fatalf("state %s turn %d", s.State(), s.Turn())
	}
	if !strings.Contains(out.String(), "No remaining word fits") {
		t.Fatalf("missing inconsistency message:\n%s", out.String())
	}
	if strings.Count(out.String(), "Enter feedback") != 3 {
		t.Fatalf("expected three prompts:\n%s", out.String())
	}
}

func TestInteractSingleCandidate(t *testing.T) {
	d, err := words.New(words.MustParseAll("KOALA"), words.MustParseAll("CRANE"))
	if err != nil {
		t.Fatalf("dictionary: %v", err)
	}

	s := solver.NewSession(d)
	ok, err := interact(s, strings.NewReader("yes\n"), &bytes.Buffer{})
	if err != nil || !ok || s.Turn() != 1 {
		t.Fatalf("yes: ok=%v err=%v turn=%d", ok, err, s.Turn())
	}

	s = solver.NewSession(d)
	var out bytes.Buffer
	ok, err = interact(s, strings.NewReader("no\n"), &out)
	if err != nil || ok || s.State() != solver.StateAbandoned {
		t.Fatalf("no: ok=%v err=%v state=%s", ok, err, s.State())
	}
	if !strings.Contains(out.String(), "Out of possible solutions") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestInteractEndOfInputAbandons(t *testing.T) {
	s := solver.NewSession(cloutDict(t))
	ok, err := interact(s, strings.NewReader(""), &bytes.Buffer{})
	if err != nil || ok || s.State() != solver.StateAbandoned {
		t.Fatalf("ok=%v err=%v state=%s", ok, err, s.State())
	}
}
