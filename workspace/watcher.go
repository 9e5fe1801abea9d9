package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Event reports a file the watcher reparsed or dropped. Document is nil for
// removed files.
type Event struct {
	Path     string
	Document *Document
}

// FileWatcher polls the workspace root for Solidity files that were added,
// modified or deleted since the last poll. Files open in an editor are left
// alone.
type FileWatcher struct {
	workspace    *Workspace
	pollInterval time.Duration
	onEvent      func(Event)
	modTimes     map[string]time.Time

	stopCh chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewFileWatcher creates a watcher that calls onEvent, if not nil, from its
// own goroutine for every change it applies.
func NewFileWatcher(w *Workspace, interval time.Duration, onEvent func(Event)) *FileWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &FileWatcher{
		workspace:    w,
		pollInterval: interval,
		onEvent:      onEvent,
		modTimes:     make(map[string]time.Time),
		stopCh:       make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

// Stop ends polling and waits for the watcher goroutine to exit.
func (fw *FileWatcher) Stop() {
	fw.once.Do(func() {
		close(fw.stopCh)
	})
	<-fw.done
}

func (fw *FileWatcher) run() {
	defer close(fw.done)

	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Poll()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.Poll()
		}
	}
}

// Poll runs one scan synchronously. It must not be called while the watcher
// goroutine is running.
func (fw *FileWatcher) Poll() {
	w := fw.workspace
	current := make(map[string]bool)

	err := afero.Walk(w.fs, w.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Extension {
			return nil
		}

		current[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			if w.IsOpen(path) {
				return nil
			}
			doc, err := w.ScanFile(path)
			if err != nil {
				w.log.Warningf("%s", err)
				return nil
			}
			fw.emit(Event{Path: path, Document: doc})
		}
		return nil
	})
	if err != nil {
		w.log.Warningf("polling %s: %s", w.root, err)
	}

	for path := range fw.modTimes {
		if !current[path] && !w.IsOpen(path) {
			delete(fw.modTimes, path)
			w.RemoveFile(path)
			fw.emit(Event{Path: path})
		}
	}
}

func (fw *FileWatcher) emit(e Event) {
	if fw.onEvent != nil {
		fw.onEvent(e)
	}
}
