package fileops

import (
	"encoding/json"
	"fmt"
)

// SaveJSON serializes v to indented JSON and writes it through the same
// temp/sync/rename sequence as WriteFile, using a ".tmp" sibling.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return writeAtomic(path, data, TempJSONSuffix)
}

// LoadJSON reads path and decodes it into out. The path must exist and be
// a regular file.
func LoadJSON(path string, out any) error {
	content, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return nil
}
