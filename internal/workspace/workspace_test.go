package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hibiscus/internal/fileops"
	"hibiscus/internal/tree"
)

func TestDiscover_NoMetadata(t *testing.T) {
	d := Discover(t.TempDir())
	assert.False(t, d.Found)
	assert.Empty(t, d.Path)
}

func TestDiscover_FindsWorkspaceFile(t *testing.T) {
	root := t.TempDir()
	path := WorkspacePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	d := Discover(root)
	assert.True(t, d.Found)
	assert.Equal(t, path, d.Path)
}

func TestDiscover_DirectoryDoesNotCount(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(WorkspacePath(root), 0o755))

	d := Discover(root)
	assert.False(t, d.Found)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	root := t.TempDir()
	path := WorkspacePath(root)

	in := New(root, "demo")
	in.Settings = json.RawMessage(`{"theme":"dark"}`)
	in.Tree = []tree.Node{
		{ID: "docs", Name: "docs", Type: tree.NodeFolder, Children: []tree.Node{}},
		{ID: "a.md", Name: "a.md", Type: tree.NodeFile, Path: "a.md"},
	}
	in.Session = &SessionState{
		OpenNodes:  []string{"docs"},
		ActiveNode: "a.md",
		Cursor:     json.RawMessage(`{"line":3}`),
	}

	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, in.SchemaVersion, out.SchemaVersion)
	assert.Equal(t, in.Workspace, out.Workspace)
	assert.Equal(t, in.Tree, out.Tree)
	// Raw payloads survive modulo re-indentation.
	assert.JSONEq(t, string(in.Settings), string(out.Settings))
	require.NotNil(t, out.Session)
	assert.Equal(t, in.Session.OpenNodes, out.Session.OpenNodes)
	assert.Equal(t, in.Session.ActiveNode, out.Session.ActiveNode)
	assert.JSONEq(t, string(in.Session.Cursor), string(out.Session.Cursor))

	// The atomic save leaves no .tmp sibling behind.
	_, statErr := os.Stat(path + fileops.TempJSONSuffix)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(WorkspacePath(t.TempDir()))
	assert.ErrorIs(t, err, fileops.ErrNotFound)
}

func TestLoad_Corrupt(t *testing.T) {
	root := t.TempDir()
	path := WorkspacePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, fileops.ErrParse)
}

func TestNew_PopulatesIdentity(t *testing.T) {
	ws := New("/tmp/ws", "notes")

	assert.Equal(t, SchemaVersion, ws.SchemaVersion)
	assert.NotEmpty(t, ws.Workspace.ID)
	assert.Equal(t, "notes", ws.Workspace.Name)
	assert.Equal(t, "/tmp/ws", ws.Workspace.Root)
	assert.Equal(t, ws.Workspace.CreatedAt, ws.Workspace.UpdatedAt)
	assert.NotNil(t, ws.Tree)
}

func TestCalendar_DefaultWhenMissing(t *testing.T) {
	data, err := LoadCalendar(t.TempDir())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []any{}, doc["events"])
	assert.Equal(t, []any{}, doc["tasks"])

	settings, ok := doc["settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "month", settings["view"])
	assert.Equal(t, "monday", settings["startOfWeek"])
}

func TestCalendar_RoundTrip(t *testing.T) {
	root := t.TempDir()
	in := json.RawMessage(`{"events":[{"title":"standup"}],"tasks":[]}`)

	require.NoError(t, SaveCalendar(root, in))

	out, err := LoadCalendar(root)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}
