// Package app aggregates the core components behind the operation surface
// the host shell calls: file persistence, workspace state, tree snapshots,
// and watch-session control.
package app

import (
	"encoding/json"
	"log"
	"os"

	"hibiscus/internal/config"
	"hibiscus/internal/fileops"
	"hibiscus/internal/recents"
	"hibiscus/internal/tree"
	"hibiscus/internal/watcher"
	"hibiscus/internal/workspace"
)

// App owns the single watch session as an explicit resource handle; there
// is no ambient global state.
type App struct {
	cfg     *config.Config
	builder *tree.Builder
	sink    *watcher.ChannelSink
	watcher *watcher.Watcher
	store   *recents.Store
	logger  *log.Logger
}

// New wires an App from configuration. store may be nil when no recents
// database is available; recents tracking then degrades to a no-op.
func New(cfg *config.Config, store *recents.Store, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(os.Stdout, "[Hibiscus] ", log.LstdFlags)
	}

	sink := watcher.NewChannelSink(watcher.DefaultBufferSize, logger)

	return &App{
		cfg: cfg,
		builder: tree.NewBuilder(tree.Config{
			MaxDepth: cfg.MaxTreeDepth,
			Logger:   logger,
		}),
		sink: sink,
		watcher: watcher.New(sink, watcher.Config{
			Debounce: cfg.Debounce(),
			Tick:     cfg.WatchTick(),
			Logger:   logger,
		}),
		store:  store,
		logger: logger,
	}
}

// Close stops the watch session and releases the recents store.
func (a *App) Close() error {
	a.watcher.Stop()
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// ReadFile returns the contents of a text file.
func (a *App) ReadFile(path string) (string, error) {
	return fileops.ReadFile(path)
}

// WriteFile saves a text file atomically.
func (a *App) WriteFile(path, contents string) error {
	return fileops.WriteFile(path, contents)
}

// LoadStructured reads any JSON document as an opaque value.
func (a *App) LoadStructured(path string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := fileops.LoadJSON(path, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SaveStructured persists an opaque JSON value atomically.
func (a *App) SaveStructured(path string, v any) error {
	return fileops.SaveJSON(path, v)
}

// LoadWorkspace reads a workspace document.
func (a *App) LoadWorkspace(path string) (*workspace.File, error) {
	return workspace.Load(path)
}

// SaveWorkspace persists a workspace document atomically.
func (a *App) SaveWorkspace(path string, ws *workspace.File) error {
	return workspace.Save(path, ws)
}

// DiscoverWorkspace probes root for existing workspace metadata.
func (a *App) DiscoverWorkspace(root string) workspace.Discovery {
	return workspace.Discover(root)
}

// LoadCalendar reads calendar data, defaulting when absent.
func (a *App) LoadCalendar(root string) (json.RawMessage, error) {
	return workspace.LoadCalendar(root)
}

// SaveCalendar persists calendar data atomically.
func (a *App) SaveCalendar(root string, data json.RawMessage) error {
	return workspace.SaveCalendar(root, data)
}

// BuildTree returns the ordered tree snapshot under root.
func (a *App) BuildTree(root string) ([]tree.Node, error) {
	return a.builder.Build(root)
}

// StartWatch begins monitoring root, replacing any active session, and
// records the workspace in the recents list.
func (a *App) StartWatch(root string) {
	a.watcher.Start(root)

	if a.store != nil {
		if _, err := a.store.Touch(root, ""); err != nil {
			a.logger.Printf("Warning: failed to record recent workspace %q: %v", root, err)
		}
	}
}

// StopWatch ends the active session; a no-op when idle.
func (a *App) StopWatch() {
	a.watcher.Stop()
}

func (a *App) IsWatching() bool {
	return a.watcher.IsWatching()
}

func (a *App) WatchedPath() string {
	return a.watcher.WatchedPath()
}

// Notifications is the single-consumer channel carrying change batches and
// watcher errors.
func (a *App) Notifications() <-chan watcher.Notification {
	return a.sink.Notifications()
}

// Recents exposes the recently-opened store; nil when not configured.
func (a *App) Recents() *recents.Store {
	return a.store
}
