package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherAccept(t *testing.T) {
	mock := clock.NewMock()
	w := &Watcher{clock: mock}
	last := map[string]time.Time{}

	assert.True(t, w.accept(fsnotify.Event{Name: "world.yaml", Op: fsnotify.Write}, last))
	assert.False(t, w.accept(fsnotify.Event{Name: "world.yaml", Op: fsnotify.Write}, last), "debounced")
	assert.False(t, w.accept(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, last))
	assert.False(t, w.accept(fsnotify.Event{Name: "other.yml", Op: fsnotify.Chmod}, last))

	mock.Add(debounce)
	assert.True(t, w.accept(fsnotify.Event{Name: "world.yaml", Op: fsnotify.Write}, last))
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for world.yaml")
	}

	require.NoError(t, w.Close())
	for range w.Events {
		// drain anything buffered; the loop ends once Events is closed
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
