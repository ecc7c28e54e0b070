package cli

import (
	"context"
	"io"
	"os"

	"hibiscus/internal/app"
)

// AppContext carries the dependencies the CLI commands use.
type AppContext struct {
	App    *app.App
	Out    io.Writer
	Cancel context.CancelFunc
}

func NewAppContext(a *app.App, cancel context.CancelFunc) *AppContext {
	return &AppContext{
		App:    a,
		Out:    os.Stdout,
		Cancel: cancel,
	}
}
