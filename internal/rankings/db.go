// internal/rankings/db.go
//
// SQLite persistence for opener rankings.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Saving and querying analysis results keyed by dictionary fingerprint.
//   - Seeding the solver's opening cache from stored results.

package rankings

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

//go:embed sql/*.sql
var migrations embed.FS

// Store is an opener leaderboard backed by SQLite.
type Store struct {
	db *sql.DB
}

/**
 * Open opens (and creates if missing) the rankings database at dsn and
 * applies pending migrations.
 *
 * - Ensures parent directory exists for relative paths (e.g. ./data/solver.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

/**
 * migrate applies the embedded sql/*.sql files in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs in its own transaction together with its _migrations row.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

/**
 * Save replaces every stored opener for fingerprint with openers.
 * Runs in one transaction so readers never see a partial analysis.
 */
func (s *Store) Save(ctx context.Context, fingerprint string, openers []Opener) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM opener_rankings WHERE fingerprint=?`, fingerprint); err != nil {
		return fmt.Errorf("clear rankings: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO opener_rankings
            (fingerprint, word, bits, expected_remaining, largest_bucket, split_efficiency, candidate)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range openers {
		if _, err := stmt.ExecContext(ctx,
			fingerprint, o.Word.String(), o.Bits, o.ExpectedRemaining,
			o.LargestBucket, o.SplitEfficiency, o.Candidate,
		); err != nil {
			return fmt.Errorf("insert %s: %w", o.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Str("fingerprint", fingerprint).Int("words", len(openers)).Msg("rankings saved")
	return nil
}

// All loads every stored opener for fingerprint in word order.
func (s *Store) All(ctx context.Context, fingerprint string) ([]Opener, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT word, bits, expected_remaining, largest_bucket, split_efficiency, candidate
        FROM opener_rankings
        WHERE fingerprint=?
        ORDER BY word ASC`, fingerprint)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Opener
	for rows.Next() {
		var (
			o    Opener
			word string
		)
		if err := rows.Scan(&word, &o.Bits, &o.ExpectedRemaining, &o.LargestBucket, &o.SplitEfficiency, &o.Candidate); err != nil {
			return nil, err
		}
		o.Word = words.Word(word)
		out = append(out, o)
	}
	return out, rows.Err()
}

/**
 * Top returns the limit best stored openers for mode.
 *
 * - Ordered the same way the solver ranks guesses (score with tolerance,
 *   then candidate words, then alphabetical).
 * - limit <= 0 returns everything.
 */
func (s *Store) Top(ctx context.Context, fingerprint string, mode solver.Mode, limit int) ([]Opener, error) {
	all, err := s.All(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	return Top(all, mode, limit), nil
}

// Best returns the stored leader for mode; ok is false when nothing has
// been analyzed for fingerprint.
func (s *Store) Best(ctx context.Context, fingerprint string, mode solver.Mode) (o Opener, ok bool, err error) {
	top, err := s.Top(ctx, fingerprint, mode, 1)
	if err != nil || len(top) == 0 {
		return Opener{}, false, err
	}
	return top[0], true, nil
}

// Seed primes the solver's opening cache for dict from stored results, in
// both modes. Missing rankings are not an error.
func (s *Store) Seed(ctx context.Context, dict *words.Dictionary) error {
	all, err := s.All(ctx, dict.Fingerprint())
	if err != nil {
		return err
	}
	if len(all) == 0 {
		log.Debug().Str("fingerprint", dict.Fingerprint()).Msg("no stored rankings")
		return nil
	}
	for _, mode := range []solver.Mode{solver.ModeNormal, solver.ModeHard} {
		solver.SeedOpening(dict, mode, Top(all, mode, 1)[0].Suggestion(mode))
	}
	return nil
}
