package pathguard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Traversal(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"leading segment", "../etc/passwd"},
		{"middle segment", "/home/user/../../etc/passwd"},
		{"trailing segment", "/workspace/notes/.."},
		{"windows separators", `C:\workspace\..\secrets`},
		{"deeply nested", "/a/b/c/d/e/f/../g"},
		{"bare dots", ".."},
		{"embedded dots", "notes..txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.path)
			assert.ErrorIs(t, err, ErrTraversal)
		})
	}
}

func TestValidate_Depth(t *testing.T) {
	exact := strings.Repeat("/d", MaxPathDepth)
	over := strings.Repeat("/d", MaxPathDepth+1)

	assert.NoError(t, Validate(exact))
	assert.ErrorIs(t, Validate(over), ErrDepthExceeded)

	// Separator style does not change the count.
	overWin := strings.TrimPrefix(strings.Repeat(`\d`, MaxPathDepth+1), `\`)
	assert.ErrorIs(t, Validate(overWin), ErrDepthExceeded)
}

func TestValidate_AcceptsRegularPaths(t *testing.T) {
	paths := []string{
		"/home/user/workspace/notes.txt",
		"relative/path/file.md",
		"/",
		"",
		"single",
	}
	for _, p := range paths {
		assert.NoError(t, Validate(p), p)
	}
}

func TestWithin(t *testing.T) {
	root := t.TempDir()

	inside := filepath.Join(root, "docs", "a.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(inside), 0o755))
	require.NoError(t, os.WriteFile(inside, []byte("x"), 0o644))

	outside := t.TempDir()
	outsideFile := filepath.Join(outside, "b.txt")
	require.NoError(t, os.WriteFile(outsideFile, []byte("x"), 0o644))

	assert.NoError(t, Within(inside, root))
	assert.NoError(t, Within(root, root))
	assert.ErrorIs(t, Within(outsideFile, root), ErrOutsideRoot)

	// Not-yet-created target: containment degrades to plain validation.
	assert.NoError(t, Within(filepath.Join(root, "new.txt"), root))

	// Traversal still rejected before any canonicalization.
	assert.ErrorIs(t, Within(filepath.Join(root, "..", "x"), root), ErrTraversal)
}
