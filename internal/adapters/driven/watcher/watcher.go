// Package watcher monitors the source document corpus for changes.
// A persisted index is not tied to the corpus state by any version
// check, so watching the corpus is how a long-running process keeps
// the index from going stale.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/torqueware/assist/internal/logger"
)

// DebounceInterval batches bursts of filesystem events (editors and
// copies touch files several times) into a single change signal.
const DebounceInterval = 2 * time.Second

// CorpusWatcher watches a corpus directory and signals when its
// documents change.
type CorpusWatcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
}

// New creates a corpus watcher for the given file extensions.
// Defaults to watching PDF documents.
func New(extensions []string) (*CorpusWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = []string{".pdf"}
	}

	return &CorpusWatcher{
		watcher:    w,
		extensions: extensions,
	}, nil
}

// Watch monitors dir and emits one signal per debounced burst of
// corpus changes. The channel closes when ctx is cancelled.
func (w *CorpusWatcher) Watch(ctx context.Context, dir string) (<-chan struct{}, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	changed := make(chan struct{}, 1)

	go func() {
		defer close(changed)

		var debounce *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.isWatchedExtension(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				logger.Debug("corpus change: %s %s", event.Op, event.Name)
				if debounce == nil {
					debounce = time.NewTimer(DebounceInterval)
				} else {
					debounce.Reset(DebounceInterval)
				}
				fire = debounce.C

			case <-fire:
				fire = nil
				select {
				case changed <- struct{}{}:
				default:
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("corpus watcher: %v", err)
			}
		}
	}()

	return changed, nil
}

// Close stops the watcher.
func (w *CorpusWatcher) Close() error {
	return w.watcher.Close()
}

func (w *CorpusWatcher) isWatchedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, watched := range w.extensions {
		if ext == watched {
			return true
		}
	}
	return false
}
