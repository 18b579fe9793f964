// internal/config/config.go
//
// Runtime configuration.
//
// Sources, later wins:
//   1. Built-in defaults (Default).
//   2. Optional TOML file: the path passed to Load, else $SOLVER_CONFIG,
//      else ./solver.toml when it exists.
//   3. Environment variables (a .env file is loaded into the environment by
//      main before Load runs).
//
// Environment variables:
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE
//   SOLVER_HARD_MODE, SOLVER_WORKERS, SOLVER_GUESSES_FROM_ANSWERS
//   LOG_LEVEL, PORT, DB_PATH, API_SECRET, DAILY_SALT, CLIENT_ORIGIN

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked for in the working directory.
const DefaultPath = "solver.toml"

type Config struct {
	LogLevel string       `toml:"log_level"`
	DBPath   string       `toml:"db_path"`
	Words    WordsConfig  `toml:"words"`
	Solver   SolverConfig `toml:"solver"`
	Server   ServerConfig `toml:"server"`
}

type WordsConfig struct {
	AnswersFile string `toml:"answers_file"`
	AllowedFile string `toml:"allowed_file"`
}

type SolverConfig struct {
	HardMode           bool `toml:"hard_mode"`
	Workers            int  `toml:"workers"` // 0 = GOMAXPROCS
	GuessesFromAnswers bool `toml:"guesses_from_answers"`
}

type ServerConfig struct {
	Port         string `toml:"port"`
	APISecret    string `toml:"api_secret"` // empty disables token auth
	DailySalt    string `toml:"daily_salt"`
	ClientOrigin string `toml:"client_origin"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		DBPath:   "./data/solver.db",
		Server: ServerConfig{
			Port:         "5175",
			DailySalt:    "local_dev_salt",
			ClientOrigin: "http://localhost:5173",
		},
	}
}

// Load builds the configuration from defaults, the TOML file and the
// environment. An explicit path that does not exist is an error; the
// implicit ./solver.toml is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p := os.Getenv("SOLVER_CONFIG"); p != "" {
			path, explicit = p, true
		} else {
			path = DefaultPath
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(k string, dst *string) {
		if v := getenv(k); v != "" {
			*dst = v
		}
	}
	str("WORDS_ANSWERS_FILE", &c.Words.AnswersFile)
	str("WORDS_ALLOWED_FILE", &c.Words.AllowedFile)
	str("LOG_LEVEL", &c.LogLevel)
	str("DB_PATH", &c.DBPath)
	str("PORT", &c.Server.Port)
	str("API_SECRET", &c.Server.APISecret)
	str("DAILY_SALT", &c.Server.DailySalt)
	str("CLIENT_ORIGIN", &c.Server.ClientOrigin)

	for k, dst := range map[string]*bool{
		"SOLVER_HARD_MODE":            &c.Solver.HardMode,
		"SOLVER_GUESSES_FROM_ANSWERS": &c.Solver.GuessesFromAnswers,
	} {
		if v := getenv(k); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*dst = b
		}
	}
	if v := getenv("SOLVER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SOLVER_WORKERS: %w", err)
		}
		c.Solver.Workers = n
	}
	return nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	if c.Solver.Workers < 0 {
		return fmt.Errorf("solver.workers must be >= 0, got %d", c.Solver.Workers)
	}
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	return nil
}
