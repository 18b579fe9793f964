package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadFileThenEnv(t *testing.T) {
	p := writeFile(t, "solver.toml", `
log_level = "debug"

[solver]
hard_mode = true
workers = 3

[server]
port = "9000"
`)
	t.Setenv("SOLVER_WORKERS", "7")
	t.Setenv("API_SECRET", "s3cret")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.Solver.HardMode || cfg.Server.Port != "9000" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Solver.Workers != 7 || cfg.Server.APISecret != "s3cret" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Server.DailySalt != Default().Server.DailySalt {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.Server.DailySalt)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadImplicitFileOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SOLVER_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != Default().Server.Port {
		t.Fatalf("got port %q", cfg.Server.Port)
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"SOLVER_HARD_MODE": "maybe",
		"SOLVER_WORKERS":   "many",
	}
	for k, v := range cases {
		cfg := Default()
		env := map[string]string{k: v}
		if err := cfg.applyEnv(func(key string) string { return env[key] }); err == nil {
			t.Errorf("%s=%s: expected error", k, v)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Solver.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative workers should be rejected")
	}
	cfg = Default()
	cfg.Server.Port = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty port should be rejected")
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}
