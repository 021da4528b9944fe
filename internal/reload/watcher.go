package reload

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for edits to settle.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc receives the paths that changed since the last call.
type ChangeFunc func(ctx context.Context, changed []string)

// WatcherConfig selects what to watch.
type WatcherConfig struct {
	// Paths are files or directories. Directories are watched recursively;
	// missing paths are skipped.
	Paths []string
	// Ignore lists path prefixes whose events are dropped, e.g. the output dir.
	Ignore   []string
	Debounce time.Duration
}

// Watcher batches filesystem events and calls OnChange once edits settle.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	cfg      WatcherConfig
	onChange ChangeFunc
	logger   *log.Logger

	roots   []string
	files   map[string]bool
	pending map[string]struct{}
	last    time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher. Start must be called to begin watching.
func NewWatcher(cfg WatcherConfig, onChange ChangeFunc, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg.Ignore = append([]string(nil), cfg.Ignore...)
	for i, p := range cfg.Ignore {
		if abs, err := filepath.Abs(p); err == nil {
			cfg.Ignore[i] = abs
		}
	}
	return &Watcher{
		watcher:  fw,
		cfg:      cfg,
		onChange: onChange,
		logger:   logger,
		files:    make(map[string]bool),
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers the paths and runs the event loop in a goroutine.
// If a path cannot be registered the fsnotify watcher is released and the
// Watcher is left stopped.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.register(); err != nil {
		if cerr := w.watcher.Close(); cerr != nil {
			w.logger.Error("watch: closing watcher", "err", cerr)
		}
		return err
	}

	w.running = true
	go w.run(ctx)
	return nil
}

func (w *Watcher) register() error {
	for _, p := range w.cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if os.IsNotExist(err) {
			w.logger.Debug("watch: skipping missing path", "path", p)
			continue
		}
		if err != nil {
			return err
		}

		if info.IsDir() {
			w.roots = append(w.roots, abs)
			if err := w.addTree(abs); err != nil {
				return err
			}
			continue
		}

		// Editors often replace files, so watch the parent and filter.
		w.files[abs] = true
		if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	return nil
}

// Stop ends the event loop and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("watch: closing watcher", "err", err)
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || w.ignored(path)) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.cfg.Debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch: error", "err", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	name := filepath.Clean(event.Name)
	if !w.relevant(name) {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err := w.addTree(name); err != nil {
				w.logger.Warn("watch: adding directory", "path", name, "err", err)
			}
		}
	}

	w.mu.Lock()
	w.pending[name] = struct{}{}
	w.last = time.Now()
	w.mu.Unlock()
	w.logger.Debug("watch: event", "op", event.Op.String(), "path", name)
}

// flush fires the callback once no event arrived for the debounce window.
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 || time.Since(w.last) < w.cfg.Debounce {
		w.mu.Unlock()
		return
	}
	changed := make([]string, 0, len(w.pending))
	for p := range w.pending {
		changed = append(changed, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	sort.Strings(changed)
	if w.onChange != nil {
		w.onChange(ctx, changed)
	}
}

func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	if w.ignored(path) {
		return false
	}
	if w.files[path] {
		return true
	}
	for _, root := range w.roots {
		if within(path, root) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignored(path string) bool {
	for _, prefix := range w.cfg.Ignore {
		if within(path, prefix) {
			return true
		}
	}
	return false
}

func within(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
