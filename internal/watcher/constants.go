package watcher

import "time"

const (
	// DefaultDebounce is the minimum interval between two emitted change
	// notifications. Events inside the window are dropped, not queued.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultTick bounds how long the session loop waits before re-checking
	// the run flag, and therefore bounds shutdown latency.
	DefaultTick = 100 * time.Millisecond

	// DefaultBufferSize is the capacity of the ChannelSink notification
	// channel.
	DefaultBufferSize = 64
)

// Event names delivered to the downstream sink.
const (
	EventChanged      = "fs-changed"
	EventWatcherError = "fs-watcher-error"
)

// DefaultIgnores lists path substrings that never trigger a notification:
// the application metadata folder, version-control folders, and common
// editor/OS artifacts.
var DefaultIgnores = []string{
	".hibiscus",
	".git",
	".vscode",
	"node_modules",
	"__pycache__",
	".DS_Store",
	"Thumbs.db",
}
