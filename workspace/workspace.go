// Package workspace keeps the parse of every Solidity file under a root
// directory up to date, and serves the results to editors over LSP.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/sol/solidity/parser"
)

const Extension = ".sol"

var log = commonlog.GetLogger("sol.workspace")

type Workspace struct {
	mu   sync.RWMutex
	fs   afero.Fs
	root string
	jobs int
	log  commonlog.Logger
	docs map[string]*Document
	open map[string]bool
}

// Document is the latest parse of one file.
type Document struct {
	Path    string
	Version int32
	Output  *parser.Output
}

func (d *Document) Source() string {
	return d.Output.Source()
}

type Option func(*Workspace)

// WithFs reads files from fsys instead of the operating system.
func WithFs(fsys afero.Fs) Option {
	return func(w *Workspace) {
		w.fs = fsys
	}
}

// WithJobs bounds the number of files parsed at the same time. Values below
// one mean one job per CPU.
func WithJobs(n int) Option {
	return func(w *Workspace) {
		w.jobs = n
	}
}

func WithLogger(logger commonlog.Logger) Option {
	return func(w *Workspace) {
		w.log = logger
	}
}

func New(root string, opts ...Option) *Workspace {
	w := &Workspace{
		fs:   afero.NewOsFs(),
		root: root,
		log:  log,
		docs: make(map[string]*Document),
		open: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.jobs < 1 {
		w.jobs = runtime.GOMAXPROCS(0)
	}
	return w
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Fs() afero.Fs {
	return w.fs
}

// ScanAll parses every Solidity file below the root.
func (w *Workspace) ScanAll(ctx context.Context) error {
	_, err := w.Load(ctx, w.root)
	return err
}

// Load parses the given files, and every Solidity file below the given
// directories, using at most the configured number of jobs. The documents
// come back sorted by path.
func (w *Workspace) Load(ctx context.Context, paths ...string) ([]*Document, error) {
	var files []string
	for _, path := range paths {
		found, err := w.expand(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	slices.Sort(files)
	files = slices.Compact(files)

	w.log.Infof("scanning %d files", len(files))

	docs := make([]*Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.jobs)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := w.ScanFile(file)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// expand returns path itself if it is a file, or the Solidity files below
// it if it is a directory. Hidden directories are skipped.
func (w *Workspace) expand(path string) ([]string, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = afero.Walk(w.fs, path, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if p != path && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) == Extension {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	return files, nil
}

// ScanFile reads path from the file system and parses it.
func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	return w.UpdateFile(path, string(content), 0), nil
}

// UpdateFile parses content as the new text of path. The parse runs outside
// the lock, so updates to different files proceed in parallel. A version
// older than the stored one is discarded and the stored document returned.
func (w *Workspace) UpdateFile(path, content string, version int32) *Document {
	doc := &Document{
		Path:    path,
		Version: version,
		Output:  parser.Parse(content, parser.WithFile(path), parser.WithLogger(w.log)),
	}

	w.mu.Lock()
	if prev, ok := w.docs[path]; ok && version < prev.Version {
		w.mu.Unlock()
		w.log.Debugf("ignored %s version %d, have %d", path, version, prev.Version)
		return prev
	}
	w.docs[path] = doc
	w.mu.Unlock()

	w.log.Debugf("updated %s: %d bytes, %d errors", path, len(content), len(doc.Output.Errors()))
	return doc
}

// OpenFile hands path to an editor: content replaces the file's text until
// CloseFile, and the file system is no longer consulted for it.
func (w *Workspace) OpenFile(path, content string, version int32) *Document {
	w.mu.Lock()
	w.open[path] = true
	w.mu.Unlock()
	return w.UpdateFile(path, content, version)
}

// CloseFile hands path back to the file system and rereads it. It returns
// nil when the file does not exist on disk.
func (w *Workspace) CloseFile(path string) *Document {
	w.mu.Lock()
	delete(w.open, path)
	delete(w.docs, path)
	w.mu.Unlock()

	doc, err := w.ScanFile(path)
	if err != nil {
		w.log.Debugf("closed %s: %s", path, err)
		return nil
	}
	return doc
}

func (w *Workspace) IsOpen(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.open[path]
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.docs[path]; ok {
		delete(w.docs, path)
		w.log.Debugf("removed %s", path)
	}
}

func (w *Workspace) Document(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// Documents returns every known document sorted by path.
func (w *Workspace) Documents() []*Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]*Document, 0, len(w.docs))
	for _, doc := range w.docs {
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b *Document) int {
		return strings.Compare(a.Path, b.Path)
	})
	return docs
}

// ErrorCount is the number of parse errors across all documents.
func (w *Workspace) ErrorCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	n := 0
	for _, doc := range w.docs {
		n += len(doc.Output.Errors())
	}
	return n
}
