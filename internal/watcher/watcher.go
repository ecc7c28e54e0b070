// Package watcher owns the single background watch session of a workspace
// root. It monitors the directory recursively, filters and debounces
// filesystem events, and forwards coalesced change batches to a downstream
// sink.
package watcher

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"hibiscus/internal/pathguard"
)

// relevantOps are the operations that represent an actual change. Chmod
// (the closest fsnotify gets to a pure-access touch) and zero-op platform
// noise carry nothing actionable and are discarded.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Config contains settings for a Watcher.
type Config struct {
	Debounce time.Duration
	Tick     time.Duration
	Ignores  []string
	Logger   *log.Logger
}

// session is one watch lifetime. The background goroutine holds the run
// flag cooperatively: it re-checks it at every tick, which bounds shutdown
// latency to the tick interval. Each session owns its flag, so a stale
// goroutine winding down can never disturb a newer session.
type session struct {
	root string
	run  atomic.Bool
}

// Watcher manages at most one active watch session — a single shared
// resource, not a pool.
type Watcher struct {
	sink   Sink
	config Config

	mu  sync.Mutex
	cur *session
}

func New(sink Sink, config Config) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Tick <= 0 {
		config.Tick = DefaultTick
	}
	if config.Ignores == nil {
		config.Ignores = DefaultIgnores
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stdout, "[Watcher] ", log.LstdFlags)
	}

	return &Watcher{
		sink:   sink,
		config: config,
	}
}

// Start begins watching root recursively, replacing any active session.
// Setup failures are not returned: they flip the session back to idle and
// surface once through an EventWatcherError notification.
//
// Two concurrent Start calls race only at the stop-old/start-new boundary;
// callers needing deterministic sequencing must serialize their own
// invocations.
func (w *Watcher) Start(root string) {
	// Stop any existing session and give its goroutine a bounded grace
	// period to observe the flag. Not a hard join: the underlying event
	// wait offers no synchronous cancel.
	if old := w.current(); old != nil && old.run.Swap(false) {
		time.Sleep(2 * w.config.Tick)
	}

	s := &session{root: root}
	s.run.Store(true)

	w.mu.Lock()
	w.cur = s
	w.mu.Unlock()

	go w.run(s)
}

// Stop signals the active session to shut down. Idempotent; a no-op when
// already idle.
func (w *Watcher) Stop() {
	if s := w.current(); s != nil && s.run.Swap(false) {
		w.config.Logger.Printf("Stopping file watcher for: %s", s.root)
	}
}

// IsWatching reports whether a session is currently active.
func (w *Watcher) IsWatching() bool {
	s := w.current()
	return s != nil && s.run.Load()
}

// WatchedPath returns the root of the active session, or "" when idle —
// even though the last root stays cached internally.
func (w *Watcher) WatchedPath() string {
	if s := w.current(); s != nil && s.run.Load() {
		return s.root
	}
	return ""
}

func (w *Watcher) current() *session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cur
}

// run is the watch session body. It lives on its own goroutine for the
// whole session lifetime and exits when the run flag drops or the event
// channel disconnects.
func (w *Watcher) run(s *session) {
	logger := w.config.Logger
	logger.Printf("Starting file watcher for: %s", s.root)

	if err := pathguard.Validate(s.root); err != nil {
		w.fail(s, "invalid watch root", err)
		return
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.fail(s, "failed to create file watcher", err)
		return
	}
	defer fsw.Close()

	if err := addRecursive(fsw, s.root); err != nil {
		w.fail(s, "failed to watch path '"+s.root+"'", err)
		return
	}

	logger.Printf("File watcher started successfully")

	// Seed in the past so the first real change emits immediately.
	lastEmit := time.Now().Add(-time.Second)

	ticker := time.NewTicker(w.config.Tick)
	defer ticker.Stop()

loop:
	for s.run.Load() {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				logger.Printf("Warning: watcher channel disconnected")
				break loop
			}
			w.handleEvent(fsw, event, &lastEmit)

		case err, ok := <-fsw.Errors:
			if !ok {
				logger.Printf("Warning: watcher channel disconnected")
				break loop
			}
			// Transient; log and keep the session alive.
			logger.Printf("Warning: watcher error: %v", err)

		case <-ticker.C:
			// Re-check the run flag.
		}
	}

	s.run.Store(false)
	logger.Printf("File watcher stopped for: %s", s.root)
}

// handleEvent classifies, filters, and rate-limits one filesystem event.
func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event, lastEmit *time.Time) {
	if event.Op&relevantOps == 0 {
		return
	}

	batch := newPendingBatch()
	for _, path := range eventPaths(event) {
		if !w.ignored(path) {
			batch.add(path)
		}
	}
	if batch.empty() {
		return
	}

	// fsnotify does not extend watches into directories created after
	// Start; keep recursive coverage by adding them as they appear.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fsw.Add(event.Name); err != nil {
				w.config.Logger.Printf("Warning: failed to watch new directory %q: %v", event.Name, err)
			}
		}
	}

	// Rate-limiting drop, not a queue: a burst collapses to at most one
	// emission per window, and changes landing entirely inside a
	// suppressed window are not replayed later.
	if time.Since(*lastEmit) < w.config.Debounce {
		return
	}
	*lastEmit = time.Now()

	w.sink.Emit(Notification{
		Event: EventChanged,
		Paths: batch.take(),
	})
}

func (w *Watcher) ignored(path string) bool {
	for _, pattern := range w.config.Ignores {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// fail ends a session during setup: flag off, one error notification, no
// retry. Restarting is a new explicit Start from the caller.
func (w *Watcher) fail(s *session, context string, err error) {
	s.run.Store(false)
	w.config.Logger.Printf("Error: %s: %v", context, err)
	w.sink.Emit(Notification{
		Event:   EventWatcherError,
		Message: context + ": " + err.Error(),
	})
}

// addRecursive attaches the low-level monitor to every directory under
// root, hidden ones included — their events are filtered by name later, so
// metadata writes are seen and then deliberately dropped.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

func eventPaths(event fsnotify.Event) []string {
	return []string{event.Name}
}
