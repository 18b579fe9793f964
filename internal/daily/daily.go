// internal/daily/daily.go
//
// Puzzle of the day: a deterministic answer per UTC date, derived from
// HMAC-SHA256(salt, "YYYY-MM-DD"). Same salt and dictionary, same puzzle.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle is the answer chosen for one date.
type Puzzle struct {
	Date   string     `json:"date"`
	Index  int        `json:"index"`
	Answer words.Word `json:"-"`
}

// For picks the puzzle of the day for t from dict's answers.
func For(t time.Time, salt string, dict *words.Dictionary) Puzzle {
	answers := dict.Answers()
	idx := WordIndex(t, salt, len(answers))
	return Puzzle{Date: DateKey(t), Index: idx, Answer: answers[idx]}
}
