package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(ts); got != "2026-03-01" {
		t.Fatalf("DateKey = %s, want 2026-03-01", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 400)
	b := WordIndex(day.Add(6*time.Hour), "salt", 400)
	if a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 400 {
		t.Fatalf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Fatal("empty list must give index 0")
	}
}

func TestForPicksAnswer(t *testing.T) {
	d, err := words.Default()
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	p := For(day, "local_dev_salt", d)
	if p.Date != "2026-10-18" || !d.IsAnswer(p.Answer) || d.Answers()[p.Index] != p.Answer {
		t.Fatalf("unexpected puzzle %+v", p)
	}
}
