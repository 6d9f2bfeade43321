// Package watch re-runs a callback when the configuration file or a
// document under the content root changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zzft/ftsite/internal/logfields"
)

// DefaultDebounce collapses editor save bursts into one callback.
const DefaultDebounce = 500 * time.Millisecond

// Func receives the changed paths, sorted and de-duplicated. Errors are
// logged and do not stop the watcher.
type Func func(ctx context.Context, changed []string) error

// Watcher monitors one config file and one content root.
type Watcher struct {
	configPath  string
	contentRoot string
	debounce    time.Duration
	onChange    Func
}

// New creates a watcher. Either path may be empty to skip it.
func New(configPath, contentRoot string, debounce time.Duration, onChange Func) (*Watcher, error) {
	w := &Watcher{debounce: debounce, onChange: onChange}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	var err error
	if configPath != "" {
		if w.configPath, err = filepath.Abs(configPath); err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}
	if contentRoot != "" {
		if w.contentRoot, err = filepath.Abs(contentRoot); err != nil {
			return nil, fmt.Errorf("failed to resolve content root: %w", err)
		}
	}
	return w, nil
}

// Run watches until ctx is canceled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	if w.configPath != "" {
		// The directory is watched so editors that replace the file are seen.
		if err := fw.Add(filepath.Dir(w.configPath)); err != nil {
			return fmt.Errorf("failed to watch config directory: %w", err)
		}
	}
	if w.contentRoot != "" {
		if err := w.watchContentRoot(fw); err != nil {
			return err
		}
	}
	slog.Info("Watching for changes", logfields.File(w.configPath), logfields.Path(w.contentRoot))

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = map[string]struct{}{}
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			var changed []string
			if event.Has(fsnotify.Create) && w.isContentDir(event.Name) {
				// Documents written before the directory was watched
				// produce no events of their own.
				docs, err := w.addTree(fw, event.Name)
				if err != nil {
					slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
				}
				changed = docs
			} else if w.relevant(event) {
				changed = []string{event.Name}
			}
			if len(changed) == 0 {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()), logfields.Count(len(changed)))
			for _, p := range changed {
				pending[p] = struct{}{}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)

			if err := w.onChange(ctx, changed); err != nil {
				slog.Error("Change handler failed", logfields.Count(len(changed)), logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if w.configPath != "" && name == w.configPath {
		return true
	}
	if w.contentRoot == "" || !within(w.contentRoot, name) || hiddenBelow(w.contentRoot, name) {
		return false
	}
	return isMarkdown(name)
}

func (w *Watcher) isContentDir(p string) bool {
	if w.contentRoot == "" || !within(w.contentRoot, p) || hiddenBelow(w.contentRoot, p) {
		return false
	}
	return isDir(p)
}

// watchContentRoot watches the content tree, or its parent until the root
// is created.
func (w *Watcher) watchContentRoot(fw *fsnotify.Watcher) error {
	if isDir(w.contentRoot) {
		_, err := w.addTree(fw, w.contentRoot)
		return err
	}
	parent := filepath.Dir(w.contentRoot)
	if err := fw.Add(parent); err != nil {
		slog.Warn("Content root missing; watching config only", logfields.Path(w.contentRoot), logfields.Error(err))
		return nil
	}
	slog.Warn("Content root missing; waiting for it to be created", logfields.Path(w.contentRoot))
	return nil
}

// addTree watches root and every directory below it except dot
// directories and node_modules. It returns the Markdown files found.
func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if isMarkdown(p) {
				docs = append(docs, p)
			}
			return nil
		}
		if p != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := fw.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
	return docs, err
}
