package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"umdproc/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.DumpDir != filepath.Join(tempHome, "dumps") {
		t.Fatalf("unexpected dump dir: %q", cfg.Paths.DumpDir)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, ".local", "share", "umdproc", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Processing.MediaType != "umd" {
		t.Fatalf("unexpected media type default: %q", cfg.Processing.MediaType)
	}
	if cfg.Watch.SettleSeconds != 5 {
		t.Fatalf("unexpected settle default: %d", cfg.Watch.SettleSeconds)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DumpDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "umdproc.toml")
	content := `
[paths]
dump_dir = "` + filepath.Join(dir, "rips") + `"

[processing]
media_type = "UMD"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DumpDir != filepath.Join(dir, "rips") {
		t.Fatalf("unexpected dump dir: %q", cfg.Paths.DumpDir)
	}
	if cfg.Processing.MediaType != "umd" {
		t.Fatalf("expected media type lowered, got %q", cfg.Processing.MediaType)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging normalized, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownMediaType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "umdproc.toml")
	if err := os.WriteFile(path, []byte("[processing]\nmedia_type = \"laserdisc\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "media_type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Processing.MediaType != "umd" {
		t.Fatalf("unexpected media type from sample: %q", cfg.Processing.MediaType)
	}
}
