package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events editors emit when saving a file
const debounce = 100 * time.Millisecond

// ChangeSource delivers reloaded configurations
type ChangeSource interface {
	Changes() <-chan *Config
	Errors() <-chan error
	Close() error
}

// Watcher reloads a keypad file whenever it changes on disk
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	changes  chan *Config
	errors   chan error
	done     chan struct{}
}

// NewWatcher starts watching filePath. The containing directory is watched
// so editors that replace the file on save are still seen.
func NewWatcher(filePath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	filePath = filepath.Clean(filePath)
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		filePath: filePath,
		changes:  make(chan *Config, 1),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the event loop until Close
func (w *Watcher) watch() {
	defer close(w.changes)
	defer close(w.errors)

	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(debounce)
			}

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// reload parses the file and publishes the result
func (w *Watcher) reload() {
	cfg, err := LoadFile(w.filePath)
	if err != nil {
		w.sendError(err)
		return
	}
	select {
	case w.changes <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.done:
	default:
		// Nobody is draining errors; drop rather than stall the loop
	}
}

// Changes returns a channel of configurations loaded after each change
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Errors returns a channel of load and watch errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
