package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/studiokit/workbench/tokens"
)

// LoadDir does a one-shot load of every theme file in dir into the
// engine. Malformed files are logged and skipped. Returns the number of
// themes loaded.
func LoadDir(engine *Engine, dir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read theme dir: %w", err)
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}
		if set := loadThemeFile(filepath.Join(dir, entry.Name()), logger); set != nil {
			engine.Register(set)
			loaded++
		}
	}
	return loaded, nil
}

// loadThemeFile parses a theme file, returning nil (after logging) when
// the file is unreadable, malformed, or unnamed.
func loadThemeFile(path string, logger *slog.Logger) *tokens.Set {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("read theme file", "path", path, "error", err)
		return nil
	}
	var set *tokens.Set
	if strings.HasSuffix(path, ".json") {
		set, err = tokens.FromJSON(data)
	} else {
		set, err = tokens.FromYAML(data)
	}
	if err != nil {
		logger.Warn("skipping malformed theme file", "path", path, "error", err)
		return nil
	}
	if set.Name == "" {
		logger.Warn("skipping theme file without a name", "path", path)
		return nil
	}
	return set
}

// Watcher hot-reloads theme files from a directory into an Engine.
// Files with .json, .yaml, or .yml extensions are loaded on create and
// write events; the corresponding theme is removed when its file is
// deleted. Malformed files are logged and skipped.
type Watcher struct {
	engine *Engine
	dir    string
	logger *slog.Logger

	fw *fsnotify.Watcher

	mu    sync.Mutex
	byPat map[string]string // file path -> theme name
}

// NewWatcher creates a watcher over dir feeding engine. The directory is
// scanned once up front so existing theme files are registered before any
// events arrive.
func NewWatcher(engine *Engine, dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		engine: engine,
		dir:    dir,
		logger: logger,
		fw:     fw,
		byPat:  make(map[string]string),
	}
	if err := w.scan(); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Run processes filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !isThemeFile(event.Name) {
		return
	}
	switch {
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		w.load(event.Name)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.unload(event.Name)
	}
}

func (w *Watcher) scan() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read theme dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}
		w.load(filepath.Join(w.dir, entry.Name()))
	}
	return nil
}

func (w *Watcher) load(path string) {
	set := loadThemeFile(path, w.logger)
	if set == nil {
		return
	}
	w.engine.Register(set)
	w.mu.Lock()
	w.byPat[path] = set.Name
	w.mu.Unlock()
	w.logger.Info("loaded theme", "name", set.Name, "path", path)
}

func (w *Watcher) unload(path string) {
	w.mu.Lock()
	name, ok := w.byPat[path]
	if ok {
		delete(w.byPat, path)
	}
	w.mu.Unlock()
	if !ok {
		return
	}
	if w.engine.Remove(name) {
		w.logger.Info("removed theme", "name", name, "path", path)
	}
}

func isThemeFile(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
