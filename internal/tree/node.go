package tree

import "encoding/json"

// NodeType distinguishes files from folders in a tree snapshot.
type NodeType string

const (
	NodeFile   NodeType = "file"
	NodeFolder NodeType = "folder"
)

// Node is one filesystem entry exposed to consumers. The ID is the path
// relative to the walked root, forward-slash normalized, unique within one
// snapshot. Files carry Path; folders carry Children (present even when
// empty) and are addressed by traversal, not by a path field.
type Node struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     NodeType        `json:"type"`
	Path     string          `json:"path,omitempty"`
	Children []Node          `json:"children,omitempty"`
	Meta     json.RawMessage `json:"meta,omitempty"`
}

// MarshalJSON keeps the wire shape exact: path appears only on files,
// children only on folders, and an empty folder still serializes
// "children": [].
func (n Node) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Type     NodeType        `json:"type"`
		Path     *string         `json:"path,omitempty"`
		Children *[]Node         `json:"children,omitempty"`
		Meta     json.RawMessage `json:"meta,omitempty"`
	}

	w := wire{ID: n.ID, Name: n.Name, Type: n.Type, Meta: n.Meta}
	switch n.Type {
	case NodeFolder:
		children := n.Children
		if children == nil {
			children = []Node{}
		}
		w.Children = &children
	default:
		path := n.Path
		w.Path = &path
	}

	return json.Marshal(w)
}

// IsFolder reports whether the node represents a directory.
func (n Node) IsFolder() bool {
	return n.Type == NodeFolder
}
