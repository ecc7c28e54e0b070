package workspace

import (
	"encoding/json"
	"errors"
	"os"

	"hibiscus/internal/fileops"
	"hibiscus/internal/pathguard"
)

// defaultCalendar is what LoadCalendar returns for a workspace that has
// never saved calendar data.
const defaultCalendar = `{
  "events": [],
  "tasks": [],
  "settings": {
    "view": "month",
    "startOfWeek": "monday"
  }
}`

// LoadCalendar reads <root>/.hibiscus/calendar.json. A missing file is not
// an error: the default empty calendar document is returned instead.
func LoadCalendar(root string) (json.RawMessage, error) {
	path := CalendarPath(root)
	if err := pathguard.Validate(path); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return json.RawMessage(defaultCalendar), nil
	}

	var data json.RawMessage
	if err := fileops.LoadJSON(path, &data); err != nil {
		if errors.Is(err, fileops.ErrNotFound) {
			return json.RawMessage(defaultCalendar), nil
		}
		return nil, err
	}
	return data, nil
}

// SaveCalendar writes calendar data atomically, creating the metadata
// folder if needed.
func SaveCalendar(root string, data json.RawMessage) error {
	path := CalendarPath(root)
	if err := pathguard.Validate(path); err != nil {
		return err
	}
	return fileops.SaveJSON(path, data)
}
