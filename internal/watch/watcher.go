// Package watch monitors a declaration manifest and triggers revalidation
// when it changes. A full schema graph is rebuilt per change; nothing is
// patched incrementally.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ManifestWatcher watches one manifest file and debounces change events
// before invoking the revalidation callback.
type ManifestWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	path      string
	onChange  func(path string) error
	log       *zap.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// NewManifestWatcher creates a watcher for the manifest at path. onChange
// runs after the debounce window closes; its error is logged, not fatal, so
// a broken intermediate save does not stop the watch loop.
func NewManifestWatcher(path string, log *zap.Logger, onChange func(path string) error) (*ManifestWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	mw := &ManifestWatcher{
		watcher:   watcher,
		debouncer: NewDebouncer(100 * time.Millisecond),
		path:      filepath.Clean(path),
		onChange:  onChange,
		log:       log,
		stopChan:  make(chan struct{}),
	}

	mw.debouncer.SetCallback(func() {
		if err := mw.onChange(mw.path); err != nil {
			mw.log.Warn("revalidation failed", zap.String("manifest", mw.path), zap.Error(err))
		}
	})

	return mw, nil
}

// Start begins watching. The manifest's directory is watched rather than the
// file itself, so editors that replace the file on save keep triggering.
func (mw *ManifestWatcher) Start() error {
	dir := filepath.Dir(mw.path)
	if err := mw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	mw.log.Info("watching manifest", zap.String("manifest", mw.path))

	mw.wg.Add(1)
	go mw.watch()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (mw *ManifestWatcher) Stop() error {
	select {
	case <-mw.stopChan:
		return nil
	default:
		close(mw.stopChan)
	}
	mw.wg.Wait()
	mw.debouncer.Stop()
	return mw.watcher.Close()
}

// watch is the main event loop.
func (mw *ManifestWatcher) watch() {
	defer mw.wg.Done()

	for {
		select {
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if !mw.isManifestEvent(event) {
				continue
			}
			mw.log.Debug("manifest changed", zap.String("op", event.Op.String()))
			mw.debouncer.Trigger()

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			mw.log.Warn("watch error", zap.Error(err))

		case <-mw.stopChan:
			return
		}
	}
}

// isManifestEvent reports whether an event concerns the watched manifest.
// Write, Create, and Rename all count: save-by-replace shows up as
// Rename+Create on some platforms.
func (mw *ManifestWatcher) isManifestEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != mw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Debouncer coalesces bursts of change events into one callback after a
// quiet period.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	pending  bool
	mutex    sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// SetCallback sets the function invoked after the quiet period.
func (d *Debouncer) SetCallback(callback func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Trigger records a change and restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.stopped {
		return
	}
	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.fire)
}

// fire invokes the callback if a trigger is still pending.
func (d *Debouncer) fire() {
	d.mutex.Lock()
	if !d.pending || d.stopped {
		d.mutex.Unlock()
		return
	}
	d.pending = false
	callback := d.callback
	d.mutex.Unlock()

	if callback != nil {
		callback()
	}
}

// Stop cancels any pending trigger.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
