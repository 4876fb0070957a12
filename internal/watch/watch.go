// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch rebuilds a cookbook whenever its note or any embedded
// recipe changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/vaultchef/internal/build"
	"github.com/pdiddy/vaultchef/internal/expand"
	"github.com/pdiddy/vaultchef/internal/paths"
	"github.com/pdiddy/vaultchef/pkg/types"
)

// Watcher rebuilds one cookbook on change. Events are debounced so editor
// write bursts trigger a single build.
type Watcher struct {
	name     string
	cfg      types.Config
	debounce time.Duration
	verbose  bool

	// rebuild is swapped out in tests.
	rebuild func() error
}

// New returns a Watcher for the named cookbook.
func New(name string, cfg types.Config, debounce time.Duration, verbose bool) *Watcher {
	w := &Watcher{name: name, cfg: cfg, debounce: debounce, verbose: verbose}
	w.rebuild = func() error {
		_, err := build.Cookbook(w.name, w.cfg, false, w.verbose)
		return err
	}
	return w
}

// Run blocks, rebuilding on changes, until ctx is cancelled. The watch set
// is re-collected after every successful rebuild so newly added embeds are
// picked up. Build failures are reported to stderr and watching continues;
// content errors are fixed by editing, not by exiting.
func (w *Watcher) Run(ctx context.Context) error {
	cookbookPath := paths.CookbookPath(w.cfg, w.name)
	if _, err := os.Stat(cookbookPath); err != nil {
		return fmt.Errorf("cookbook not found: %s: %w", cookbookPath, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	watched, err := w.collectWatchSet(cookbookPath)
	if err != nil {
		return err
	}
	if err := addDirs(fw, watched); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)

		case <-fire:
			timer = nil
			fire = nil
			if err := w.rebuild(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			next, err := w.collectWatchSet(cookbookPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			if err := addDirs(fw, next); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			watched = next
		}
	}
}

// collectWatchSet gathers the cookbook note and every embedded recipe
// path, keyed by cleaned path.
func (w *Watcher) collectWatchSet(cookbookPath string) (map[string]bool, error) {
	raw, err := os.ReadFile(cookbookPath)
	if err != nil {
		return nil, fmt.Errorf("reading cookbook: %w", err)
	}

	watched := map[string]bool{filepath.Clean(cookbookPath): true}
	for _, embed := range expand.References(string(raw)) {
		path, err := expand.ResolvePath(embed, w.cfg.VaultPath)
		if err != nil {
			return nil, err
		}
		watched[filepath.Clean(path)] = true
	}
	return watched, nil
}

// addDirs watches the parent directories of the watch set; editors often
// replace files instead of writing in place, so watching files directly
// loses events.
func addDirs(fw *fsnotify.Watcher, watched map[string]bool) error {
	dirs := map[string]bool{}
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return nil
}
