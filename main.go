// main.go
//
// Entry point for the Wordle solver.
//
//	solver [play]   interactive co-solver: suggests guesses, reads G/Y/X feedback
//	solver serve    HTTP API over solver sessions
//	solver analyze  rank every starting word and store the result
//	solver bench    let the solver play every answer and report guess counts
//	solver token    print a bearer token for the API
//
// Configuration comes from defaults, an optional TOML file, .env and the
// environment (see internal/config). Flags override all of them.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/rankings"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

const usage = `usage: solver [command] [flags]

commands:
  play     interactive co-solver (default)
  serve    HTTP API
  analyze  rank starting words and store them
  bench    play every answer and report guess counts
  token    print an API bearer token

run "solver <command> -h" for flags`

// env bundles what every command needs.
type env struct {
	cfg  config.Config
	dict *words.Dictionary
	mode solver.Mode
}

// sessionOptions are the solver options implied by the configuration.
func (e *env) sessionOptions() []solver.Option {
	return []solver.Option{
		solver.WithMode(e.mode),
		solver.WithWorkers(e.cfg.Solver.Workers),
		solver.WithGuessesFromAnswers(e.cfg.Solver.GuessesFromAnswers),
	}
}

func main() {
	_ = godotenv.Load()

	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	run, ok := commands[cmd]
	if !ok {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config (default: $SOLVER_CONFIG or ./solver.toml)")
	hard := fs.Bool("hard", false, "hard mode: guesses must honour every revealed hint")
	workers := fs.Int("workers", -1, "scoring goroutines (0 = GOMAXPROCS; default from config)")
	exec := run(fs)
	_ = fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *hard {
		cfg.Solver.HardMode = true
	}
	if *workers >= 0 {
		cfg.Solver.Workers = *workers
	}
	setupLogging(cfg.LogLevel, cmd != "serve")

	dict, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := dict.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Str("fingerprint", dict.Fingerprint()).Msg("word lists loaded")

	e := &env{cfg: cfg, dict: dict}
	if cfg.Solver.HardMode {
		e.mode = solver.ModeHard
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := exec(ctx, e); err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("failed")
	}
}

// setupLogging applies LOG_LEVEL and, for terminal commands, human-readable output.
func setupLogging(level string, console bool) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// openRankings opens the rankings database and seeds the opening cache from
// it. A missing or broken database only costs the first turn its cache.
func openRankings(ctx context.Context, e *env) *rankings.Store {
	if e.cfg.DBPath == "" {
		return nil
	}
	rk, err := rankings.Open(e.cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", e.cfg.DBPath).Msg("rankings unavailable")
		return nil
	}
	if err := rk.Seed(ctx, e.dict); err != nil {
		log.Warn().Err(err).Msg("seed opening from rankings")
	}
	return rk
}
