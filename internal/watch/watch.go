// Package watch re-runs a callback whenever the configuration file or the
// pages of a docs directory change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// DefaultDebounce collapses editor save bursts into one run.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a configuration file and an optional docs tree.
type Watcher struct {
	configPath string
	docsRoot   string
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	onChange   func(ctx context.Context)
	trigger    chan struct{}

	mu      sync.Mutex
	watched map[string]bool
}

// New creates a watcher for configPath. onChange runs after each burst of
// changes, never concurrently with itself.
func New(configPath string, debounce time.Duration, onChange func(ctx context.Context)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		configPath: absPath,
		watcher:    watcher,
		debounce:   debounce,
		onChange:   onChange,
		trigger:    make(chan struct{}, 1),
		watched:    map[string]bool{},
	}

	// Watch the directory containing the config file; editors often replace
	// the file instead of writing it.
	if err := w.add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return w, nil
}

// WatchDocs adds root and every directory below it.
func (w *Watcher) WatchDocs(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve docs path: %w", err)
	}
	w.mu.Lock()
	w.docsRoot = absRoot
	w.mu.Unlock()
	return w.addTree(absRoot)
}

func (w *Watcher) addTree(root string) error {
	return afero.Walk(afero.NewOsFs(), root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && p != root {
			return filepath.SkipDir
		}
		return w.add(p)
	})
}

func (w *Watcher) add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.watched[dir] = true
	return nil
}

// Run blocks until ctx is done, dispatching change notifications.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	slog.Info("Watching configuration", logfields.Path(w.configPath))

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.reloadLoop(ctx)
	}()
	w.watchLoop(ctx)
	<-done
	return nil
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	if name == w.configPath {
		if event.Op.Has(fsnotify.Remove) {
			slog.Warn("Config file removed", logfields.Path(name))
			return
		}
		slog.Debug("Config file changed", logfields.Path(name))
		w.triggerReload()
		return
	}

	w.mu.Lock()
	docsRoot := w.docsRoot
	w.mu.Unlock()
	if docsRoot == "" || !within(docsRoot, name) {
		return
	}

	if event.Op.Has(fsnotify.Create) {
		if ok, _ := afero.IsDir(afero.NewOsFs(), name); ok {
			if err := w.addTree(name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(name), logfields.Error(err))
			}
			w.triggerReload()
			return
		}
	}
	if isPage(name) {
		slog.Debug("Page changed", logfields.Path(name))
		w.triggerReload()
	}
}

// reloadLoop handles debounced reruns
func (w *Watcher) reloadLoop(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-w.trigger:
			// Reset/start debounce timer
			timer.Reset(w.debounce)
		case <-timer.C:
			w.onChange(ctx)
		}
	}
}

// triggerReload triggers a debounced rerun
func (w *Watcher) triggerReload() {
	select {
	case w.trigger <- struct{}{}:
		// Rerun triggered
	default:
		// Rerun already pending
	}
}

func within(root, name string) bool {
	rel, err := filepath.Rel(root, name)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isPage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
