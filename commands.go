// commands.go
//
// Subcommands. Each registers its own flags on the shared FlagSet and
// returns the function main runs once configuration is loaded.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/rankings"
	"github.com/robalobadob/wordle/apps/solver/internal/render"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

type command func(fs *flag.FlagSet) func(ctx context.Context, e *env) error

var commands = map[string]command{
	"play":    playCommand,
	"serve":   serveCommand,
	"analyze": analyzeCommand,
	"bench":   benchCommand,
	"token":   tokenCommand,
}

func playCommand(fs *flag.FlagSet) func(context.Context, *env) error {
	return func(ctx context.Context, e *env) error {
		if rk := openRankings(ctx, e); rk != nil {
			defer rk.Close()
		}
		sess := solver.NewSession(e.dict, e.sessionOptions()...)
		_, err := interact(sess, os.Stdin, os.Stdout)
		return err
	}
}

func serveCommand(fs *flag.FlagSet) func(context.Context, *env) error {
	return func(ctx context.Context, e *env) error {
		rk := openRankings(ctx, e)
		if rk != nil {
			defer rk.Close()
		}
		srv := httpserver.New(store.NewMemoryStore(), rk, httpserver.Options{
			Dict:               e.dict,
			Workers:            e.cfg.Solver.Workers,
			GuessesFromAnswers: e.cfg.Solver.GuessesFromAnswers,
			APISecret:          e.cfg.Server.APISecret,
			DailySalt:          e.cfg.Server.DailySalt,
			ClientOrigin:       e.cfg.Server.ClientOrigin,
		})
		if e.cfg.Server.APISecret == "" {
			log.Warn().Msg("API_SECRET not set; session routes are unauthenticated")
		}
		log.Info().Str("port", e.cfg.Server.Port).Msg("starting solver server")
		return srv.Start(":" + e.cfg.Server.Port)
	}
}

func analyzeCommand(fs *flag.FlagSet) func(context.Context, *env) error {
	top := fs.Int("top", 10, "leaderboard length per mode")
	balancedN := fs.Int("balanced", rankings.DefaultBalancedN, "depth of each leaderboard for the balanced list")
	noSave := fs.Bool("no-save", false, "print only; do not write the rankings database")

	return func(ctx context.Context, e *env) error {
		guesses := e.dict.Guesses()
		bar := progressbar.Default(int64(len(guesses)), "analyzing")
		openers, err := rankings.Analyze(ctx, e.dict, e.cfg.Solver.Workers, func() { _ = bar.Add(1) })
		_ = bar.Finish()
		if err != nil {
			return err
		}

		fmt.Print(render.Openers("Best openers by information (normal mode)", solver.ModeNormal,
			rankings.Top(openers, solver.ModeNormal, *top)))
		fmt.Print(render.Openers("Best openers by expected remaining (hard mode)", solver.ModeHard,
			rankings.Top(openers, solver.ModeHard, *top)))
		fmt.Print(render.Openers(fmt.Sprintf("Balanced (top %d in both)", *balancedN), solver.ModeNormal,
			rankings.Balanced(openers, *balancedN)))

		if *noSave {
			return nil
		}
		if e.cfg.DBPath == "" {
			return errors.New("no database configured (set DB_PATH or db_path, or pass -no-save)")
		}
		rk, err := rankings.Open(e.cfg.DBPath)
		if err != nil {
			return err
		}
		defer rk.Close()
		return rk.Save(ctx, e.dict.Fingerprint(), openers)
	}
}

func benchCommand(fs *flag.FlagSet) func(context.Context, *env) error {
	limit := fs.Int("limit", 0, "play only the first N answers (0 = all)")

	return func(ctx context.Context, e *env) error {
		if rk := openRankings(ctx, e); rk != nil {
			defer rk.Close()
		}
		answers := e.dict.Answers()
		if *limit > 0 && *limit < len(answers) {
			answers = answers[:*limit]
		}
		bar := progressbar.Default(int64(len(answers)), "playing")
		start := time.Now()
		rep, err := game.Benchmark(ctx, e.dict, answers, e.mode, e.cfg.Solver.Workers, func() { _ = bar.Add(1) })
		_ = bar.Finish()
		if err != nil {
			return err
		}
		log.Info().Dur("took", time.Since(start)).Int("games", rep.Games).Msg("benchmark done")
		fmt.Print(render.Report(rep))
		return nil
	}
}

func tokenCommand(fs *flag.FlagSet) func(context.Context, *env) error {
	sub := fs.String("sub", "cli", "token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")

	return func(ctx context.Context, e *env) error {
		if e.cfg.Server.APISecret == "" {
			return errors.New("API_SECRET is not set")
		}
		tok, exp, err := httpserver.SignToken(e.cfg.Server.APISecret, *sub, *ttl)
		if err != nil {
			return err
		}
		log.Info().Time("expires", exp).Str("sub", *sub).Msg("token issued")
		fmt.Println(tok)
		return nil
	}
}
