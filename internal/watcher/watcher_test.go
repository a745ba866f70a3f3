package watcher

import (
	"path/filepath"
	"testing"
	"time"

	"umdproc/internal/testsupport"
)

func TestBasePathForTrackedSuffixes(t *testing.T) {
	cases := []struct {
		name string
		base string
		ok   bool
	}{
		{"/dumps/game_disc.txt", "/dumps/game", true},
		{"/dumps/game_mainError.txt", "/dumps/game", true},
		{"/dumps/game_mainInfo.txt", "/dumps/game", true},
		{"/dumps/game_volDesc.txt", "/dumps/game", true},
		{"/dumps/game.iso", "/dumps/game", true},
		{"/dumps/notes.md", "", false},
		{"/dumps/game_disc.txt.tmp", "", false},
	}
	for _, tc := range cases {
		base, ok := basePathFor(tc.name)
		if ok != tc.ok || base != tc.base {
			t.Fatalf("basePathFor(%q) = (%q, %v), want (%q, %v)", tc.name, base, ok, tc.base, tc.ok)
		}
	}
}

func TestDrainSettledReportsCompleteDumps(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	for _, suffix := range []string{"_disc.txt", "_mainError.txt", "_mainInfo.txt", "_volDesc.txt"} {
		testsupport.WriteDumpFile(t, cfg, "game"+suffix, "x\n")
	}
	testsupport.WriteDumpFile(t, cfg, "partial_disc.txt", "x\n")

	w := New(cfg, nil)
	complete := filepath.Join(cfg.Paths.DumpDir, "game")
	partial := filepath.Join(cfg.Paths.DumpDir, "partial")

	pending := map[string]time.Time{
		complete: time.Now().Add(-2 * time.Second),
		partial:  time.Now().Add(-2 * time.Second),
	}
	settled := w.drainSettled(pending)
	if len(pending) != 0 {
		t.Fatalf("expected pending drained, %d left", len(pending))
	}
	if !settled[complete] {
		t.Fatal("expected complete dump to be ready")
	}
	if settled[partial] {
		t.Fatal("expected partial dump to be dropped")
	}
}

func TestDrainSettledKeepsFreshEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	w := New(cfg, nil)

	base := filepath.Join(cfg.Paths.DumpDir, "game")
	pending := map[string]time.Time{base: time.Now()}

	settled := w.drainSettled(pending)
	if len(settled) != 0 {
		t.Fatalf("expected nothing settled, got %v", settled)
	}
	if _, ok := pending[base]; !ok {
		t.Fatal("expected fresh entry to stay pending")
	}
}
