package workspace

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"hibiscus/internal/tree"
)

// File is the persisted workspace document stored at
// <root>/.hibiscus/workspace.json. Settings and Session cursor contents are
// opaque to the core; they belong to the UI layer.
type File struct {
	SchemaVersion string          `json:"schema_version"`
	Workspace     Info            `json:"workspace"`
	Settings      json.RawMessage `json:"settings,omitempty"`
	Tree          []tree.Node     `json:"tree"`
	Session       *SessionState   `json:"session,omitempty"`
}

type Info struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Root      string `json:"root"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SessionState remembers what the user had open.
type SessionState struct {
	OpenNodes  []string        `json:"open_nodes,omitempty"`
	ActiveNode string          `json:"active_node,omitempty"`
	Cursor     json.RawMessage `json:"cursor,omitempty"`
}

// Discovery is the result of probing a root folder for workspace metadata.
type Discovery struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// New returns a fresh workspace document for root.
func New(root, name string) *File {
	now := time.Now().UTC().Format(time.RFC3339)
	return &File{
		SchemaVersion: SchemaVersion,
		Workspace: Info{
			ID:        uuid.NewString(),
			Name:      name,
			Root:      root,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Tree: []tree.Node{},
	}
}
