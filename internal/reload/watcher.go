package reload

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// DefaultDebounce groups bursts of editor writes into one re-index.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a content tree and calls a ReindexFunc after changes
// to markdown files settle.
type Watcher struct {
	root     string
	reindex  ReindexFunc
	debounce time.Duration
	recorder metrics.Recorder

	watcher *fsnotify.Watcher
	trigger chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithWatcherRecorder attaches a metrics recorder.
func WithWatcherRecorder(r metrics.Recorder) WatcherOption {
	return func(w *Watcher) { w.recorder = r }
}

// NewWatcher creates a watcher for root. Nothing is watched until Start.
func NewWatcher(root string, reindex ReindexFunc, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}

	w := &Watcher{
		root:     absRoot,
		reindex:  reindex,
		debounce: DefaultDebounce,
		recorder: metrics.NoopRecorder{},
		watcher:  fw,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start registers every directory under root and begins watching.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addTree(w.root); err != nil {
		return err
	}
	slog.Info("Starting content watcher", logfields.Path(w.root))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reindexLoop(ctx)
	return nil
}

// Stop ends watching and waits for the loops to exit.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
					}
					w.fire()
					continue
				}
			}
			if relevant(event) {
				slog.Debug("Content change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				w.fire()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reindexLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.trigger:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			result := metrics.ResultSuccess
			if err := w.reindex(ctx); err != nil {
				result = metrics.ResultFailed
				slog.Error("Re-index after content change failed", logfields.Error(err))
			}
			w.recorder.IncReload(metrics.TriggerWatch, result)
		}
	}
}

func (w *Watcher) fire() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// relevant reports whether event touches a markdown file. Removes and renames
// of directories cannot be told apart from files after the fact, so they count.
func relevant(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
			event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	}
	return filepath.Ext(event.Name) == "" && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename))
}
