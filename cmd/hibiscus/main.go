package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hibiscus/internal/app"
	"hibiscus/internal/cli"
	"hibiscus/internal/config"
	"hibiscus/internal/recents"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		fmt.Fprintln(os.Stderr, "\nshutdown signal received")
		cancel()
	}()

	cfg := config.MustLoad(os.Getenv("HIBISCUS_CONFIG"))
	logger := log.New(os.Stderr, "[Hibiscus] ", log.LstdFlags)

	store := openRecents(cfg, logger)

	a := app.New(cfg, store, logger)
	defer a.Close()

	appCtx := cli.NewAppContext(a, cancel)
	if err := cli.Execute(ctx, appCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRecents is best-effort: the core works without a recents database.
func openRecents(cfg *config.Config, logger *log.Logger) *recents.Store {
	path, err := cfg.RecentsPath()
	if err != nil {
		logger.Printf("Warning: recents disabled: %v", err)
		return nil
	}

	store, err := recents.Open(recents.Config{Path: path}, nil)
	if err != nil {
		logger.Printf("Warning: recents disabled: %v", err)
		return nil
	}
	return store
}
