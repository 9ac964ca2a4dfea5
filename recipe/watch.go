package recipe

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a recipe file must stay quiet before it is reported.
const settleDelay = 100 * time.Millisecond

// Watcher reports the path of recipe files that changed in the watched directories.
// A path is reported once its writes have settled, so a save made of several
// writes (truncate, then write) yields a single event after the last one.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error

	delay   time.Duration
	settled chan string
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(settleDelay, dirs...)
}

func newWatcher(delay time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		delay:   delay,
		settled: make(chan string),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the watcher has stopped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range pending {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !IsRecipeFile(event.Name) {
				continue
			}
			w.schedule(pending, event.Name)
		case name := <-w.settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// schedule (re)arms the settle timer of name; every new event pushes the report back.
func (w *Watcher) schedule(pending map[string]*time.Timer, name string) {
	if timer, ok := pending[name]; ok {
		timer.Reset(w.delay)
		return
	}

	pending[name] = time.AfterFunc(w.delay, func() {
		select {
		case w.settled <- name:
		case <-w.closeCh:
		}
	})
}

// IsRecipeFile reports whether path has a YAML extension
func IsRecipeFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
