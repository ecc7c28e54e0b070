// Package fileops persists file content crash-safely. Writes go through a
// temp-file/sync/rename sequence so a target path is never observable in a
// half-written state: either the old content or the fully written new
// content is on disk, never a truncated mix.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"hibiscus/internal/pathguard"
)

const (
	// TempSaveSuffix is appended to the full target filename for raw file
	// saves ("notes.txt" -> "notes.txt.hibiscus-save~"). Appending rather
	// than replacing the extension avoids clobbering a same-named user
	// file, and the temp stays a sibling so the final rename never crosses
	// a filesystem boundary.
	TempSaveSuffix = ".hibiscus-save~"

	// TempJSONSuffix is the sibling suffix used for structured saves
	// ("workspace.json" -> "workspace.json.tmp").
	TempJSONSuffix = ".tmp"
)

// ReadFile returns the contents of path. The path must exist and be a
// regular file; a directory yields ErrNotAFile rather than a raw I/O error.
func ReadFile(path string) (string, error) {
	if err := validate(path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotAFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes contents to path using the editor save strategy:
//
//  1. validate the path
//  2. create parent directories if missing
//  3. write everything to a .hibiscus-save~ sibling
//  4. fsync the temp file before any rename
//  5. on Windows remove the existing target first (rename over an existing
//     file is not atomic there; the brief no-file window is accepted)
//  6. rename temp to target — the single atomic commit point
//
// On failure at any step the temp file is removed best-effort and the
// original error is returned.
func WriteFile(path, contents string) error {
	return writeAtomic(path, []byte(contents), TempSaveSuffix)
}

func writeAtomic(path string, data []byte, suffix string) error {
	if err := validate(path); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directories for %q: %w", path, err)
	}

	tempPath := path + suffix

	if err := writeAndSync(tempPath, data); err != nil {
		removeQuiet(tempPath)
		return err
	}

	// Windows cannot rename over an existing destination.
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				removeQuiet(tempPath)
				return fmt.Errorf("failed to remove existing file %q before save: %w", path, err)
			}
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		removeQuiet(tempPath)
		return fmt.Errorf("failed to rename %q to %q: %w", tempPath, path, err)
	}

	return nil
}

func writeAndSync(tempPath string, data []byte) error {
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file %q: %w", tempPath, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file %q: %w", tempPath, err)
	}

	// Never rename before the sync completes: a crash could otherwise
	// leave a renamed-but-truncated file at the target.
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file %q: %w", tempPath, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %q: %w", tempPath, err)
	}
	return nil
}

// removeQuiet deletes a temp artifact, ignoring secondary errors so the
// original failure stays the one surfaced.
func removeQuiet(path string) {
	_ = os.Remove(path)
}

func validate(path string) error {
	return pathguard.Validate(path)
}
