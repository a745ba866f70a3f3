// Package watcher monitors the dump directory for newly completed dumps.
//
// The imaging tool writes its log files last, after the image itself, so the
// watcher waits for a dump's file set to settle before handing the base path
// to the processing callback. A lock file guards against two watch loops
// racing over the same directory.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"umdproc/internal/config"
	"umdproc/internal/dump"
)

// Watcher tracks dump output appearing in a directory and reports base paths
// whose required file set is complete and stable.
type Watcher struct {
	dir    string
	media  dump.MediaType
	settle time.Duration
	logger *slog.Logger
	lock   *flock.Flock
}

// trackedSuffixes are the filenames, relative to a base path, whose
// appearance marks dump activity.
var trackedSuffixes = []string{
	"_disc.txt",
	"_mainError.txt",
	"_mainInfo.txt",
	"_volDesc.txt",
	".iso",
}

// New builds a watcher over the configured dump directory.
func New(cfg *config.Config, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:    cfg.Paths.DumpDir,
		media:  dump.ParseMediaType(cfg.Processing.MediaType),
		settle: time.Duration(cfg.Watch.SettleSeconds) * time.Second,
		logger: logger.With("component", "watcher"),
		lock:   flock.New(filepath.Join(cfg.Paths.LogDir, "umdproc-watch.lock")),
	}
}

// Run blocks until ctx is cancelled, invoking handle once for every dump
// whose file set completes and then stays unchanged for the settle window.
// Only one Run may be active per log directory; a second caller gets an
// error instead of a duplicate loop.
func (w *Watcher) Run(ctx context.Context, handle func(basePath string)) error {
	locked, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire watch lock: %w", err)
	}
	if !locked {
		return errors.New("another umdproc watch is already running")
	}
	defer func() { _ = w.lock.Unlock() }()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching dump directory", "dir", w.dir, "settle", w.settle)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("fs watcher closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			base, ok := basePathFor(event.Name)
			if !ok {
				continue
			}
			pending[base] = time.Now()
		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("fs watcher closed")
			}
			w.logger.Warn("watch error", "error", err)
		case <-ticker.C:
			for base, ready := range w.drainSettled(pending) {
				if ready {
					w.logger.Info("dump settled", "base_path", base)
					handle(base)
				}
			}
		}
	}
}

func (w *Watcher) tickInterval() time.Duration {
	interval := w.settle / 2
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// drainSettled removes and returns the pending entries whose settle window
// has elapsed. Entries that settled but are still missing required files are
// dropped silently; the next write re-arms them.
func (w *Watcher) drainSettled(pending map[string]time.Time) map[string]bool {
	settled := make(map[string]bool)
	now := time.Now()
	for base, last := range pending {
		if now.Sub(last) < w.settle {
			continue
		}
		delete(pending, base)
		settled[base] = dump.Completeness(base, w.media).OK
	}
	return settled
}

// basePathFor strips a tracked suffix from a dump output filename, returning
// the base path the imaging tool was invoked with.
func basePathFor(name string) (string, bool) {
	for _, suffix := range trackedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	return "", false
}
