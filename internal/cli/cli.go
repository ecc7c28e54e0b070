// Package cli is the command-line surface over the workspace core. It is
// a thin shell: every command maps onto one App operation.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the hibiscus command tree.
func NewRootCommand(appCtx *AppContext) *cobra.Command {
	root := &cobra.Command{
		Use:           "hibiscus",
		Short:         "Local workspace core: trees, persistence, change watching",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		createTreeCommand(appCtx),
		createDiscoverCommand(appCtx),
		createInitCommand(appCtx),
		createCatCommand(appCtx),
		createSaveCommand(appCtx),
		createCalendarCommand(appCtx),
		createWatchCommand(appCtx),
		createRecentsCommand(appCtx),
	)

	return root
}

// Execute runs the CLI against a cancellable context.
func Execute(ctx context.Context, appCtx *AppContext) error {
	return NewRootCommand(appCtx).ExecuteContext(ctx)
}
