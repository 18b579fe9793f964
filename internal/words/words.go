// internal/words/words.go
//
// Word and dictionary types for the solver.
//
// Responsibilities:
//   - Word: a validated, immutable 5-letter uppercase word.
//   - Dictionary: an immutable pair of lists (answers, guesses) owned by the
//     caller and passed into solver sessions. There is no package-level state.
//   - Loading lists from files (one word per line) or the embedded defaults.
//
// Word Lists:
//   - "answers": words that can be the hidden solution.
//   - "guesses": valid guesses (always includes answers).
//
// Constraints:
//   • Words must be 5 letters A–Z after trimming and upper-casing.
//   • Invalid lines in files are dropped, like blank lines and comments.
//   • Both lists are sorted and de-duplicated on construction.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// Length is the fixed number of letters in every word.
const Length = 5

// ErrInvalidWord is returned by Parse for input that is not 5 letters A–Z.
var ErrInvalidWord = errors.New("words: invalid word")

// ErrEmptyDictionary is returned when no valid answer words are available.
var ErrEmptyDictionary = errors.New("words: answers list is empty")

// Word is a 5-letter uppercase word. Construct with Parse or MustParse.
type Word string

// Parse trims and upper-cases s and checks it is Length letters A–Z.
func Parse(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != Length || !isAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// MustParse is Parse for literals and tests; it panics on bad input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// MustParseAll parses every element of list with MustParse.
func MustParseAll(list ...string) []Word {
	out := make([]Word, len(list))
	for i, s := range list {
		out[i] = MustParse(s)
	}
	return out
}

// Valid reports whether w satisfies the Word invariant.
func (w Word) Valid() bool { return len(w) == Length && isAlpha(string(w)) }

func (w Word) String() string { return string(w) }

// Contains reports whether letter c occurs anywhere in w.
func (w Word) Contains(c byte) bool { return strings.IndexByte(string(w), c) >= 0 }

// Dictionary is an immutable answers/guesses pair.
type Dictionary struct {
	answers     []Word
	guesses     []Word
	answerSet   map[Word]struct{}
	guessSet    map[Word]struct{}
	fingerprint string
}

// New builds a Dictionary. Every answer is also added to the guess list.
// Returns ErrEmptyDictionary if answers is empty and ErrInvalidWord if any
// entry breaks the Word invariant.
func New(answers, guesses []Word) (*Dictionary, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyDictionary
	}
	for _, w := range answers {
		if !w.Valid() {
			return nil, fmt.Errorf("%w: answer %q", ErrInvalidWord, string(w))
		}
	}
	for _, w := range guesses {
		if !w.Valid() {
			return nil, fmt.Errorf("%w: guess %q", ErrInvalidWord, string(w))
		}
	}

	d := &Dictionary{
		answers: sortedUnique(answers),
		guesses: sortedUnique(append(slices.Clone(answers), guesses...)),
	}
	d.answerSet = toSet(d.answers)
	d.guessSet = toSet(d.guesses)
	d.fingerprint = fingerprint(d.answers, d.guesses)
	return d, nil
}

// FromStrings is New for raw strings; invalid entries are skipped.
func FromStrings(answers, guesses []string) (*Dictionary, error) {
	return New(normalize(answers), normalize(guesses))
}

// Load reads word lists from files.
//
//  1. answersPath and guessesPath set: answers from the first, extra guesses
//     from the second.
//  2. only guessesPath set: that file is used for both lists.
//  3. only answersPath set: answers double as the guess list.
//  4. neither set: the embedded defaults (see Default).
func Load(answersPath, guessesPath string) (*Dictionary, error) {
	switch {
	case answersPath != "" && guessesPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		gs, err := readWordFile(guessesPath)
		if err != nil {
			return nil, err
		}
		return New(ans, gs)

	case answersPath == "" && guessesPath != "":
		gs, err := readWordFile(guessesPath)
		if err != nil {
			return nil, err
		}
		return New(gs, gs)

	case answersPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		return New(ans, nil)

	default:
		return Default()
	}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the dictionary built from the embedded lists. It is built
// once and shared; Dictionary is immutable so sharing is safe.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		ans, err := assets.AnswersList()
		if err != nil {
			defaultErr = err
			return
		}
		all, err := assets.AllowedList()
		if err != nil {
			defaultErr = err
			return
		}
		defaultDict, defaultErr = FromStrings(ans, all)
	})
	return defaultDict, defaultErr
}

// Answers returns a copy of the sorted answer list.
func (d *Dictionary) Answers() []Word { return slices.Clone(d.answers) }

// Guesses returns a copy of the sorted guess list (answers included).
func (d *Dictionary) Guesses() []Word { return slices.Clone(d.guesses) }

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w Word) bool {
	_, ok := d.answerSet[w]
	return ok
}

// IsAllowed reports whether w is a valid guess.
func (d *Dictionary) IsAllowed(w Word) bool {
	_, ok := d.guessSet[w]
	return ok
}

// Stats returns counts of loaded words: (answers, guesses).
func (d *Dictionary) Stats() (answersCount int, guessesCount int) {
	return len(d.answers), len(d.guesses)
}

// Fingerprint identifies the dictionary contents. Two dictionaries with the
// same lists share a fingerprint; it keys caches and stored rankings.
func (d *Dictionary) Fingerprint() string { return d.fingerprint }

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() Word {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[nBig.Int64()]
}

// readWordFile loads one word per line from a file, keeping only valid words.
func readWordFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	var out []Word
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, err := Parse(line); err == nil {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// normalize parses each string, dropping anything that is not a Word.
func normalize(list []string) []Word {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		if w, err := Parse(s); err == nil {
			out = append(out, w)
		}
	}
	return out
}

func sortedUnique(list []Word) []Word {
	out := slices.Clone(list)
	slices.Sort(out)
	return slices.Compact(out)
}

// toSet converts a list of words into a lookup set.
func toSet(list []Word) map[Word]struct{} {
	m := make(map[Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

func fingerprint(answers, guesses []Word) string {
	h, _ := blake2b.New256(nil)
	for _, w := range answers {
		h.Write([]byte(w))
	}
	h.Write([]byte{'|'})
	for _, w := range guesses {
		h.Write([]byte(w))
	}
	return hex.EncodeToString(h.Sum(nil)[:12])
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
