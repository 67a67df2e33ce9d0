package file

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/evsearch/internal/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a ConfigStore when its file changes on disk.
// The parent directory is watched so atomic replace-by-rename is seen.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	mu    sync.Mutex
	timer *time.Timer

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for store. onChange, if non-nil, runs after
// every successful reload.
func NewWatcher(store *ConfigStore, debounce time.Duration, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(store.Path())); err != nil {
		_ = w.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		store:    store,
		watcher:  w,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Start processes events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.processEvents(ctx)
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
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
			logger.Warn("config watcher: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != FileName {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if err := w.store.Load(); err != nil {
		logger.Warn("config reload failed: %v", err)
		return
	}
	logger.Debug("config reloaded from %s", w.store.Path())
	if w.onChange != nil {
		w.onChange()
	}
}
