package solver

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// The first-turn ranking depends only on the dictionary, the mode and which
// pool guesses come from, so it is computed once per process and shared by
// every session. Entries are written once and never mutated.

type openingKey struct {
	fingerprint string
	mode        Mode
	fromAnswers bool
}

type openingEntry struct {
	once sync.Once
	best Suggestion
}

var openings sync.Map // openingKey -> *openingEntry

func openingEntryFor(k openingKey) *openingEntry {
	e, _ := openings.LoadOrStore(k, &openingEntry{})
	return e.(*openingEntry)
}

// SeedOpening records a precomputed opener (e.g. from stored rankings) for
// sessions over dict with guesses drawn from the full guess list. It has no
// effect if an opener is already cached for that key.
func SeedOpening(dict *words.Dictionary, mode Mode, s Suggestion) {
	e := openingEntryFor(openingKey{fingerprint: dict.Fingerprint(), mode: mode})
	e.once.Do(func() {
		s.Mode = mode
		e.best = s
		log.Debug().Str("guess", s.Word.String()).Str("mode", mode.String()).Msg("opening seeded")
	})
}

// opening returns the cached best first guess for the session's dictionary,
// computing it on first use.
func (s *Session) opening() Suggestion {
	k := openingKey{fingerprint: s.dict.Fingerprint(), mode: s.mode, fromAnswers: s.fromAnswers}
	e := openingEntryFor(k)
	e.once.Do(func() {
		best, _ := Best(s.allowed, s.candidates, s.mode, s.workers)
		e.best = Suggestion{Word: best.Word, Score: best.Score, Mode: s.mode}
		log.Debug().Str("guess", best.Word.String()).Float64("score", best.Score).
			Str("mode", s.mode.String()).Msg("opening computed")
	})
	return e.best
}
