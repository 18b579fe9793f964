package feedback

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func sim(guess, solution string) string {
	return Simulate(words.MustParse(guess), words.MustParse(solution)).String()
}

func TestSimulateBasic(t *testing.T) {
	cases := []struct{ guess, solution, want string }{
		{"CRANE", "CRANE", "GGGGG"},
		{"CLOUT", "KOALA", "XYYXX"},
		{"CLOUT", "AGLOW", "XYYXX"},
		{"RAISE", "CLOUT", "XXXXX"},
		{"SLATE", "LEAST", "YYGYY"},
	}
	for _, c := range cases {
		if got := sim(c.guess, c.solution); got != c.want {
			t.Fatalf("Simulate(%s, %s) = %s, want %s", c.guess, c.solution, got, c.want)
		}
	}
}

func TestSimulateDuplicateLetters(t *testing.T) {
	// Guess has more Ls than the solution: only the first unplaced L is Present.
	if got := sim("LLAMA", "PLANK"); got != "XGGXX" {
		t.Fatalf("LLAMA/PLANK = %s", got)
	}
	if got := sim("ALLOY", "LOYAL"); got != "YYYYY" {
		t.Fatalf("ALLOY/LOYAL = %s", got)
	}
	// Correct placement consumes the letter before any Present is handed out.
	if got := sim("EERIE", "THERE"); got != "YXYXG" {
		t.Fatalf("EERIE/THERE = %s", got)
	}
	if got := sim("SPEED", "ABIDE"); got != "XXYXY" {
		t.Fatalf("SPEED/ABIDE = %s", got)
	}
}

func TestSimulateAllCorrectIffEqual(t *testing.T) {
	ws := words.MustParseAll("AGLOW", "KOALA", "LOAMY", "LOYAL", "MODAL", "OFFAL", "POLKA", "ZONAL", "EERIE", "THERE")
	for _, g := range ws {
		for _, s := range ws {
			solved := Simulate(g, s).Solved()
			if solved != (g == s) {
				t.Fatalf("Simulate(%s, %s).Solved() = %v", g, s, solved)
			}
		}
	}
}

func TestSimulatePanicsOnBadWord(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short word")
		}
	}()
	Simulate("CRAN", "CRANE")
}

func TestParse(t *testing.T) {
	p, err := Parse(" gyXxY ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Pattern{Correct, Present, Absent, Absent, Present}
	if p != want {
		t.Fatalf("got %v, want %v", p, want)
	}
	if p.String() != "GYXXY" {
		t.Fatalf("String() = %s", p.String())
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "GGGG", "GGGGGG", "GGBGG", "G G G"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("Parse(%q): expected ErrFormat, got %v", in, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Input != in {
			t.Fatalf("Parse(%q): expected *FormatError with input, got %v", in, err)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	seen := make(map[int]bool, NumPatterns)
	for n := 0; n < NumPatterns; n++ {
		p := FromIndex(n)
		if p.Index() != n {
			t.Fatalf("FromIndex(%d).Index() = %d", n, p.Index())
		}
		seen[p.Index()] = true
	}
	if len(seen) != NumPatterns {
		t.Fatalf("expected %d distinct indices, got %d", NumPatterns, len(seen))
	}
	if AllCorrect.Index() != NumPatterns-1 {
		t.Fatalf("AllCorrect index = %d", AllCorrect.Index())
	}
}

func TestPatternJSON(t *testing.T) {
	var body struct {
		Feedback Pattern `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(`{"feedback":"xyyxx"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"feedback":"XYYXX"}` {
		t.Fatalf("got %s", out)
	}
	if err := json.Unmarshal([]byte(`{"feedback":"nope"}`), &body); err == nil {
		t.Fatal("expected error from bad JSON feedback")
	}
}
