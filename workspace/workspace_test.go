package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return fsys
}

func paths(docs []*Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Path
	}
	return out
}

func TestLoad(t *testing.T) {
	fsys := memFs(t, map[string]string{
		"/proj/a.sol":        "contract A {}",
		"/proj/sub/b.sol":    "contract B { uint x }",
		"/proj/.cache/c.sol": "contract C {}",
		"/proj/notes.txt":    "not solidity",
		"/other/d.sol":       "library D {}",
	})

	tests := []struct {
		name  string
		jobs  int
		paths []string
		want  []string
	}{
		{"root", 1, []string{"/proj"}, []string{"/proj/a.sol", "/proj/sub/b.sol"}},
		{"parallel", 4, []string{"/proj"}, []string{"/proj/a.sol", "/proj/sub/b.sol"}},
		{"explicit file", 0, []string{"/proj/notes.txt"}, []string{"/proj/notes.txt"}},
		{"dedupe", 2, []string{"/proj/a.sol", "/proj", "/other"}, []string{"/other/d.sol", "/proj/a.sol", "/proj/sub/b.sol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New("/proj", WithFs(fsys), WithJobs(tt.jobs))
			docs, err := w.Load(context.Background(), tt.paths...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(docs))
			assert.Equal(t, tt.want, paths(w.Documents()))
		})
	}
}

func TestLoadMissingPath(t *testing.T) {
	w := New("/proj", WithFs(afero.NewMemMapFs()))
	_, err := w.Load(context.Background(), "/nowhere")
	assert.Error(t, err)
}

func TestLoadCancelled(t *testing.T) {
	fsys := memFs(t, map[string]string{"/proj/a.sol": "contract A {}"})
	w := New("/proj", WithFs(fsys))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Load(ctx, "/proj")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanAllAndErrors(t *testing.T) {
	fsys := memFs(t, map[string]string{
		"/proj/good.sol": "contract A {}",
		"/proj/bad.sol":  "contract B { uint x }",
	})
	w := New("/proj", WithFs(fsys))
	require.NoError(t, w.ScanAll(context.Background()))

	assert.True(t, w.Document("/proj/good.sol").Output.IsValid())
	assert.False(t, w.Document("/proj/bad.sol").Output.IsValid())
	assert.Equal(t, len(w.Document("/proj/bad.sol").Output.Errors()), w.ErrorCount())

	w.RemoveFile("/proj/bad.sol")
	assert.Nil(t, w.Document("/proj/bad.sol"))
	assert.Zero(t, w.ErrorCount())
}

func TestUpdateFileKeepsVersion(t *testing.T) {
	w := New("/proj", WithFs(afero.NewMemMapFs()))
	doc := w.UpdateFile("/proj/a.sol", "contract A {}", 7)

	assert.Equal(t, int32(7), doc.Version)
	assert.Equal(t, "contract A {}", doc.Source())
	assert.Same(t, doc, w.Document("/proj/a.sol"))
	assert.Equal(t, "/proj/a.sol", doc.Output.File())
}

func TestUpdateFileIgnoresOlderVersions(t *testing.T) {
	w := New("/proj", WithFs(afero.NewMemMapFs()))
	newer := w.UpdateFile("/proj/a.sol", "contract New {}", 3)

	got := w.UpdateFile("/proj/a.sol", "contract Old {}", 2)
	assert.Same(t, newer, got)
	assert.Equal(t, "contract New {}", w.Document("/proj/a.sol").Source())

	same := w.UpdateFile("/proj/a.sol", "contract Saved {}", 3)
	assert.Same(t, same, w.Document("/proj/a.sol"))
}

func TestOpenAndCloseFile(t *testing.T) {
	fsys := memFs(t, map[string]string{"/proj/a.sol": "contract Disk {}"})
	w := New("/proj", WithFs(fsys))

	doc := w.OpenFile("/proj/a.sol", "contract Editor {}", 1)
	assert.True(t, w.IsOpen("/proj/a.sol"))
	assert.Equal(t, "contract Editor {}", doc.Source())

	scanned, err := w.ScanFile("/proj/a.sol")
	require.NoError(t, err)
	assert.Same(t, doc, scanned, "disk contents never replace a newer editor buffer")

	closed := w.CloseFile("/proj/a.sol")
	require.NotNil(t, closed)
	assert.False(t, w.IsOpen("/proj/a.sol"))
	assert.Equal(t, "contract Disk {}", closed.Source())

	w.OpenFile("/proj/new.sol", "contract Unsaved {}", 1)
	assert.Nil(t, w.CloseFile("/proj/new.sol"))
	assert.Nil(t, w.Document("/proj/new.sol"))
}

func TestFileWatcherSkipsOpenFiles(t *testing.T) {
	fsys := memFs(t, map[string]string{"/proj/a.sol": "contract Disk {}"})
	w := New("/proj", WithFs(fsys))
	w.OpenFile("/proj/a.sol", "contract Editor {}", 1)

	var events []Event
	fw := NewFileWatcher(w, time.Hour, func(e Event) {
		events = append(events, e)
	})

	fw.Poll()
	assert.Empty(t, events)

	require.NoError(t, afero.WriteFile(fsys, "/proj/a.sol", []byte("contract Changed {}"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, fsys.Chtimes("/proj/a.sol", later, later))
	fw.Poll()
	assert.Empty(t, events)
	assert.Equal(t, "contract Editor {}", w.Document("/proj/a.sol").Source())

	require.NoError(t, fsys.Remove("/proj/a.sol"))
	fw.Poll()
	assert.Empty(t, events)
	require.NotNil(t, w.Document("/proj/a.sol"))
}

func TestFileWatcherPoll(t *testing.T) {
	fsys := memFs(t, map[string]string{"/proj/a.sol": "contract A {}"})
	w := New("/proj", WithFs(fsys))

	var events []Event
	fw := NewFileWatcher(w, time.Hour, func(e Event) {
		events = append(events, e)
	})

	fw.Poll()
	require.Len(t, events, 1)
	assert.Equal(t, "/proj/a.sol", events[0].Path)
	require.NotNil(t, events[0].Document)

	events = nil
	fw.Poll()
	assert.Empty(t, events, "unchanged files are not reparsed")

	require.NoError(t, afero.WriteFile(fsys, "/proj/a.sol", []byte("contract A { uint x }"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, fsys.Chtimes("/proj/a.sol", later, later))
	require.NoError(t, afero.WriteFile(fsys, "/proj/b.sol", []byte("library B {}"), 0o644))
	fw.Poll()
	assert.ElementsMatch(t, []string{"/proj/a.sol", "/proj/b.sol"}, []string{events[0].Path, events[1].Path})
	assert.False(t, w.Document("/proj/a.sol").Output.IsValid())

	events = nil
	require.NoError(t, fsys.Remove("/proj/b.sol"))
	fw.Poll()
	require.Len(t, events, 1)
	assert.Equal(t, Event{Path: "/proj/b.sol"}, events[0])
	assert.Nil(t, w.Document("/proj/b.sol"))
}

func TestFileWatcherStartStop(t *testing.T) {
	fsys := memFs(t, map[string]string{"/proj/a.sol": "contract A {}"})
	w := New("/proj", WithFs(fsys))

	seen := make(chan string, 8)
	fw := NewFileWatcher(w, 10*time.Millisecond, func(e Event) {
		seen <- e.Path
	})
	fw.Start()

	select {
	case path := <-seen:
		assert.Equal(t, "/proj/a.sol", path)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the initial file")
	}

	fw.Stop()
	fw.Stop()
}
