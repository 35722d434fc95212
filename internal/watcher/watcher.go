// Package watcher re-lints files when they change on disk. Each change
// triggers a full re-parse of the touched files; nothing incremental
// happens below the file level.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/abrick/brick/internal/engine"
)

// Watcher watches a project tree and re-lints changed files.
type Watcher struct {
	projectPath string
	engine      *engine.Engine
	fsWatcher   *fsnotify.Watcher

	// Debouncing
	debounceDelay time.Duration
	pendingFiles  map[string]struct{}
	pendingMu     sync.Mutex
	debounceTimer *time.Timer

	// Callbacks
	onLintStart func(files []string)
	onLintDone  func(report *engine.DirectoryReport, duration time.Duration)
	onError     func(error)

	// Control
	done chan struct{}
}

// Option configures the watcher.
type Option func(*Watcher)

// WithDebounceDelay sets the debounce delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounceDelay = d
	}
}

// WithOnLintStart sets the callback for when a re-lint begins.
func WithOnLintStart(fn func(files []string)) Option {
	return func(w *Watcher) {
		w.onLintStart = fn
	}
}

// WithOnLintDone sets the callback for when a re-lint completes.
func WithOnLintDone(fn func(report *engine.DirectoryReport, duration time.Duration)) Option {
	return func(w *Watcher) {
		w.onLintDone = fn
	}
}

// WithOnError sets the callback for errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New creates a watcher over projectPath driving the given engine.
func New(projectPath string, eng *engine.Engine, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		projectPath:   projectPath,
		engine:        eng,
		fsWatcher:     fsWatcher,
		debounceDelay: 500 * time.Millisecond,
		pendingFiles:  make(map[string]struct{}),
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := w.addDirs(); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to add directories to watch: %w", err)
	}

	return w, nil
}

// addDirs recursively adds all directories to the watcher.
func (w *Watcher) addDirs() error {
	return filepath.Walk(w.projectPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories and common non-source directories
		name := info.Name()
		if info.IsDir() {
			if path != w.projectPath &&
				(strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules" || name == "__pycache__") {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(path)
		}

		return nil
	})
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	go w.eventLoop()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// eventLoop handles file system events.
func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// Handle new directories
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.fsWatcher.Add(event.Name)
			return
		}
	}

	// Only care about supported source files
	if w.engine.Languages().ByPath(event.Name) == nil {
		return
	}

	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pendingFiles[event.Name] = struct{}{}

	// Reset debounce timer
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.triggerLint)
}

// triggerLint re-lints the accumulated files after the debounce delay.
func (w *Watcher) triggerLint() {
	w.pendingMu.Lock()
	files := make([]string, 0, len(w.pendingFiles))
	for f := range w.pendingFiles {
		files = append(files, f)
	}
	w.pendingFiles = make(map[string]struct{})
	w.pendingMu.Unlock()

	if len(files) == 0 {
		return
	}
	sort.Strings(files)

	if w.onLintStart != nil {
		w.onLintStart(files)
	}

	start := time.Now()
	report := w.lintFiles(files)

	if w.onLintDone != nil {
		w.onLintDone(report, time.Since(start))
	}
}

// lintFiles runs the per-file pipeline over the changed files. Deleted
// files drop out silently; everything else reports through the normal
// per-file result, including parse failures.
func (w *Watcher) lintFiles(files []string) *engine.DirectoryReport {
	ctx := context.Background()
	report := &engine.DirectoryReport{}
	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		result := w.engine.LintFile(ctx, path)
		report.Results = append(report.Results, result)
		report.TotalFiles++
		report.TotalErrors += result.ErrorCount
		report.TotalWarnings += result.WarningCount
	}
	return report
}
