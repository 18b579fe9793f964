package rankings

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func fixtureDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New(
		words.MustParseAll("CRANE", "CRATE", "CRAZE", "GRACE", "TRACE"),
		words.MustParseAll("SLATE", "ROATE", "GRAZE"),
	)
	if err != nil {
		t.Fatalf("dictionary: %v", err)
	}
	return d
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "rankings.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfile(t *testing.T) {
	answers := words.MustParseAll("CRANE", "CRATE", "CRAZE", "GRACE")
	o := Profile("GRACE", answers, true)
	if o.LargestBucket != 3 {
		t.Fatalf("largest bucket = %d, want 3", o.LargestBucket)
	}
	if math.Abs(o.ExpectedRemaining-2.5) > 1e-9 {
		t.Fatalf("expected remaining = %f, want 2.5", o.ExpectedRemaining)
	}
	if math.Abs(o.SplitEfficiency-0.25) > 1e-9 {
		t.Fatalf("split efficiency = %f, want 0.25", o.SplitEfficiency)
	}
	if math.Abs(o.Bits-solver.Score("GRACE", answers, solver.ModeNormal)) > 1e-12 {
		t.Fatalf("bits = %f disagrees with solver.Score", o.Bits)
	}
}

func TestAnalyzeLeaderMatchesSolver(t *testing.T) {
	d, err := words.Default()
	if err != nil {
		t.Fatalf("default dictionary: %v", err)
	}
	openers, err := Analyze(context.Background(), d, 0, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(openers) != len(d.Guesses()) {
		t.Fatalf("got %d openers for %d guesses", len(openers), len(d.Guesses()))
	}
	for _, mode := range []solver.Mode{solver.ModeNormal, solver.ModeHard} {
		want, _ := solver.Best(d.Guesses(), d.Answers(), mode, 0)
		got := Top(openers, mode, 1)[0]
		if got.Word != want.Word {
			t.Fatalf("%s: leader %s, solver picks %s", mode, got.Word, want.Word)
		}
	}
}

func TestAnalyzeProgressAndCancel(t *testing.T) {
	d := fixtureDict(t)
	calls := 0
	if _, err := Analyze(context.Background(), d, 1, func() { calls++ }); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if calls != len(d.Guesses()) {
		t.Fatalf("progress called %d times, want %d", calls, len(d.Guesses()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Analyze(ctx, d, 1, nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestBalancedIsIntersection(t *testing.T) {
	openers := []Opener{
		{Word: "AAAAA", Bits: 3, ExpectedRemaining: 9},
		{Word: "BBBBB", Bits: 2, ExpectedRemaining: 1},
		{Word: "CCCCC", Bits: 1, ExpectedRemaining: 2},
		{Word: "DDDDD", Bits: 2.5, ExpectedRemaining: 1.5},
	}
	got := Balanced(openers, 2)
	if len(got) != 1 || got[0].Word != "DDDDD" {
		t.Fatalf("Balanced = %v, want [DDDDD]", got)
	}
	got = Balanced(openers, 3)
	if len(got) != 2 || got[0].Word != "DDDDD" || got[1].Word != "BBBBB" {
		t.Fatalf("Balanced(3) = %v, want [DDDDD BBBBB]", got)
	}
}

func TestStoreSaveTopBest(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d := fixtureDict(t)

	if _, ok, err := s.Best(ctx, d.Fingerprint(), solver.ModeNormal); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	openers, err := Analyze(ctx, d, 2, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := s.Save(ctx, d.Fingerprint(), openers); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Saving again replaces rather than duplicates.
	if err := s.Save(ctx, d.Fingerprint(), openers); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	all, err := s.All(ctx, d.Fingerprint())
	if err != nil || len(all) != len(openers) {
		t.Fatalf("All: %d rows, err=%v", len(all), err)
	}
	for _, mode := range []solver.Mode{solver.ModeNormal, solver.ModeHard} {
		top, err := s.Top(ctx, d.Fingerprint(), mode, 3)
		if err != nil || len(top) != 3 {
			t.Fatalf("%s Top: %v %v", mode, top, err)
		}
		want := Top(openers, mode, 3)
		for i := range top {
			if top[i] != want[i] {
				t.Fatalf("%s Top[%d] = %+v, want %+v", mode, i, top[i], want[i])
			}
		}
		best, ok, err := s.Best(ctx, d.Fingerprint(), mode)
		if err != nil || !ok || best.Word != want[0].Word {
			t.Fatalf("%s Best = %+v ok=%v err=%v", mode, best, ok, err)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.db")
	for range 2 {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		s.Close()
	}
}

func TestSeedPrimesOpening(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d, err := words.New(
		words.MustParseAll("BLAST", "BLEAT", "BLOAT", "FLOAT"),
		words.MustParseAll("LOTUS"),
	)
	if err != nil {
		t.Fatalf("dictionary: %v", err)
	}

	// A fabricated leader proves the session takes the stored word.
	fake := []Opener{{Word: "LOTUS", Bits: 99, ExpectedRemaining: 0.5}}
	if err := s.Save(ctx, d.Fingerprint(), fake); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Seed(ctx, d); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, mode := range []solver.Mode{solver.ModeNormal, solver.ModeHard} {
		sg, err := solver.NewSession(d, solver.WithMode(mode)).Suggest()
		if err != nil {
			t.Fatalf("Suggest: %v", err)
		}
		if sg.Word != "LOTUS" || sg.Mode != mode {
			t.Fatalf("%s: opening %+v, want seeded LOTUS", mode, sg)
		}
	}
}
