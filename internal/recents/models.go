package recents

import "time"

// Entry records one workspace the user has opened.
type Entry struct {
	ID         string    `json:"id"`
	Root       string    `json:"root"`
	Name       string    `json:"name,omitempty"`
	LastOpened time.Time `json:"last_opened"`
	OpenCount  int       `json:"open_count"`
}
