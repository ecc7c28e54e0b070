package app

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hibiscus/internal/config"
	"hibiscus/internal/recents"
	"hibiscus/internal/tree"
	"hibiscus/internal/watcher"
	"hibiscus/internal/workspace"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := recents.Open(recents.Config{
		Path: filepath.Join(t.TempDir(), "recents.db"),
	}, slogger)
	require.NoError(t, err)

	cfg := &config.Config{
		MaxTreeDepth: 20,
		DebounceMs:   10,
		WatchTickMs:  20,
	}

	a := New(cfg, store, log.New(io.Discard, "", 0))
	t.Cleanup(func() { a.Close() })
	return a
}

func TestApp_FileRoundTrip(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "doc.md")

	require.NoError(t, a.WriteFile(path, "body"))

	got, err := a.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body", got)
}

func TestApp_WorkspaceLifecycle(t *testing.T) {
	a := newTestApp(t)
	root := t.TempDir()

	assert.False(t, a.DiscoverWorkspace(root).Found)

	ws := workspace.New(root, "demo")
	require.NoError(t, a.SaveWorkspace(workspace.WorkspacePath(root), ws))

	d := a.DiscoverWorkspace(root)
	assert.True(t, d.Found)
	assert.Equal(t, workspace.WorkspacePath(root), d.Path)

	loaded, err := a.LoadWorkspace(d.Path)
	require.NoError(t, err)
	assert.Equal(t, ws.Workspace.ID, loaded.Workspace.ID)
}

func TestApp_StructuredRoundTrip(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, a.SaveStructured(path, map[string]any{"pinned": []any{"a.md"}}))

	data, err := a.LoadStructured(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pinned":["a.md"]}`, string(data))
}

func TestApp_BuildTree(t *testing.T) {
	a := newTestApp(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "zzz"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "aaa.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".hibiscus"), 0o755))

	nodes, err := a.BuildTree(root)
	require.NoError(t, err)

	require.Len(t, nodes, 2)
	assert.Equal(t, "zzz", nodes[0].Name)
	assert.Equal(t, tree.NodeFolder, nodes[0].Type)
	assert.Equal(t, "aaa.txt", nodes[1].Name)
}

func TestApp_WatchLifecycleAndRecents(t *testing.T) {
	a := newTestApp(t)
	root := t.TempDir()

	a.StartWatch(root)
	assert.True(t, a.IsWatching())
	assert.Equal(t, root, a.WatchedPath())

	entries, err := a.Recents().List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, root, entries[0].Root)

	time.Sleep(200 * time.Millisecond)
	target := filepath.Join(root, "changed.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	select {
	case n := <-a.Notifications():
		assert.Equal(t, watcher.EventChanged, n.Event)
		assert.Contains(t, n.Paths, target)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	a.StopWatch()
	assert.False(t, a.IsWatching())
	assert.Empty(t, a.WatchedPath())
}
