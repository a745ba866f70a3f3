// Package testsupport provides shared fixtures for umdproc tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"umdproc/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DumpDir = filepath.Join(base, "dumps")
	cfg.Paths.ExportDir = filepath.Join(base, "export")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Watch.SettleSeconds = 1
	return &cfg
}

// WriteDumpFile writes content under the dump directory and returns the full
// path.
func WriteDumpFile(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.DumpDir, 0o755); err != nil {
		t.Fatalf("create dump dir: %v", err)
	}
	path := filepath.Join(cfg.Paths.DumpDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
