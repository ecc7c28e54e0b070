// Package tree builds ordered directory-tree snapshots for workspace
// navigation. The walk is depth-bounded, skips hidden entries, and never
// fails as a whole because one child is unreadable.
package tree

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hibiscus/internal/pathguard"
)

// DefaultMaxDepth bounds recursion for normal workspace trees.
const DefaultMaxDepth = 20

// Config contains settings for a Builder.
type Config struct {
	MaxDepth int
	Logger   *log.Logger
}

// Builder walks directories into Node hierarchies. It performs no writes;
// the only side effect is diagnostic logging for skipped entries.
type Builder struct {
	maxDepth int
	logger   *log.Logger
}

func NewBuilder(config Config) *Builder {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stdout, "[Tree] ", log.LstdFlags)
	}

	return &Builder{
		maxDepth: config.MaxDepth,
		logger:   config.Logger,
	}
}

// Build returns the ordered tree under root. The root itself must exist and
// be a directory; everything below it degrades gracefully (unreadable
// entries are logged and skipped).
func (b *Builder) Build(root string) ([]Node, error) {
	if err := pathguard.Validate(root); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	return b.readDir(root, root, b.maxDepth), nil
}

// readDir is the recursive walk. maxDepth == 0 is the recursion floor and
// short-circuits to an empty snapshot, not an error.
func (b *Builder) readDir(dir, base string, maxDepth int) []Node {
	if maxDepth == 0 {
		return []Node{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		b.logger.Printf("Warning: failed to read directory %q: %v", dir, err)
		return []Node{}
	}

	var folders, files []Node

	for _, entry := range entries {
		name := entry.Name()

		// Hidden entries cover .hibiscus, VCS folders and OS artifacts.
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)

		relPath, err := filepath.Rel(base, path)
		if err != nil {
			// Entry lies outside base: fall back to the absolute path
			// rather than failing the walk.
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		node := Node{
			ID:   relPath,
			Name: name,
		}

		if entry.IsDir() {
			node.Type = NodeFolder
			node.Children = b.readDir(path, base, maxDepth-1)
			folders = append(folders, node)
		} else {
			node.Type = NodeFile
			node.Path = relPath
			files = append(files, node)
		}
	}

	sortNodes(folders)
	sortNodes(files)

	result := make([]Node, 0, len(folders)+len(files))
	result = append(result, folders...)
	result = append(result, files...)
	return result
}

// sortNodes orders a partition case-insensitively by name. Stability
// matters: the folders-then-files ordering is part of the observable
// contract the UI relies on.
func sortNodes(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
}
