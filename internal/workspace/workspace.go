// Package workspace persists and discovers the structured state the client
// keeps inside a workspace root: the workspace document and the calendar.
// All writes go through the atomic fileops layer, so a crash never leaves a
// corrupt document behind.
package workspace

import (
	"os"
	"path/filepath"

	"hibiscus/internal/fileops"
)

const (
	// MetaDir is the hidden application-owned subfolder of a workspace
	// root. The tree builder and the watcher both exclude it.
	MetaDir = ".hibiscus"

	WorkspaceFileName = "workspace.json"
	CalendarFileName  = "calendar.json"

	SchemaVersion = "1.0"
)

// WorkspacePath returns <root>/.hibiscus/workspace.json.
func WorkspacePath(root string) string {
	return filepath.Join(root, MetaDir, WorkspaceFileName)
}

// CalendarPath returns <root>/.hibiscus/calendar.json.
func CalendarPath(root string) string {
	return filepath.Join(root, MetaDir, CalendarFileName)
}

// Discover checks whether root already holds workspace metadata. It is a
// pure existence probe: no content is read or validated.
func Discover(root string) Discovery {
	candidate := WorkspacePath(root)

	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return Discovery{Found: false}
	}
	return Discovery{Found: true, Path: candidate}
}

// Load reads and decodes a workspace document.
func Load(path string) (*File, error) {
	var ws File
	if err := fileops.LoadJSON(path, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Save writes a workspace document atomically.
func Save(path string, ws *File) error {
	return fileops.SaveJSON(path, ws)
}
