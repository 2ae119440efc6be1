package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce batches the event bursts editors produce when they
// save a file in several steps.
const defaultDebounce = 150 * time.Millisecond

// Watcher watches one configuration file and invokes a callback after
// it changes. The parent directory is watched rather than the file
// itself, so atomic saves (write temp, rename over) keep working.
type Watcher struct {
	path     string
	base     string
	debounce time.Duration
	onChange func(path string)

	fw        *fsnotify.Watcher
	errs      chan error
	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching path and calls onChange, debounced, from
// the watcher goroutine each time the file is written, created or
// renamed into place. The caller must Close the watcher when done.
func NewWatcher(path string, onChange func(path string)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("config watcher: nil onChange callback")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watcher: resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config watcher: watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		base:     filepath.Base(abs),
		debounce: defaultDebounce,
		onChange: onChange,
		fw:       fw,
		errs:     make(chan error, 10),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Errors returns watcher errors. The channel is buffered; errors
// beyond the buffer are dropped.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and waits for its goroutine to exit.
// Closing twice is a no-op.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.fw.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			if pending {
				pending = false
				w.onChange(w.path)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
				// Error channel full; drop.
			}

		case <-w.closeCh:
			return
		}
	}
}
