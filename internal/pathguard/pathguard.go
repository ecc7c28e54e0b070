// Package pathguard validates untrusted path strings before any filesystem
// call touches them. The checks are advisory defense-in-depth, not a
// sandbox: symlink-based escapes are not prevented here.
package pathguard

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxPathDepth bounds the number of path components accepted by Validate.
// Deeply nested paths are rejected to prevent resource exhaustion.
const MaxPathDepth = 50

// Validate checks that a path is safe to hand to the filesystem layer.
//
// It rejects any path whose textual form contains a ".." sequence
// (regardless of separator style; "a..b" is rejected too, deliberately
// aggressive) and any path with more than MaxPathDepth components.
//
// It performs no existence check and no canonicalization: canonicalizing
// requires the path to exist, which would reject legitimate not-yet-created
// save targets.
func Validate(path string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: %q", ErrTraversal, path)
	}

	if depth := componentCount(path); depth > MaxPathDepth {
		return fmt.Errorf("%w: depth %d > %d in %q", ErrDepthExceeded, depth, MaxPathDepth, path)
	}

	return nil
}

// Within checks that path resolves inside root. Both sides are
// canonicalized only when they already exist; for not-yet-created paths the
// check degrades to Validate alone.
func Within(path, root string) error {
	if err := Validate(path); err != nil {
		return err
	}

	canonPath, okPath := canonicalize(path)
	canonRoot, okRoot := canonicalize(root)
	if !okPath || !okRoot {
		return nil
	}

	if canonPath != canonRoot && !strings.HasPrefix(canonPath, canonRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q not under %q", ErrOutsideRoot, path, root)
	}

	return nil
}

func canonicalize(path string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", false
	}
	return abs, true
}

func componentCount(path string) int {
	return len(strings.FieldsFunc(path, isSeparator))
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
