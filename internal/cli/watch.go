package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hibiscus/internal/watcher"
)

func createWatchCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <root>",
		Short: "Watch a workspace folder and print change batches until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			appCtx.App.StartWatch(root)
			defer appCtx.App.StopWatch()

			fmt.Fprintf(appCtx.Out, "watching %s (Ctrl+C to stop)\n", root)

			changed := color.New(color.FgGreen)
			failed := color.New(color.FgRed)

			for {
				select {
				case <-cmd.Context().Done():
					return nil

				case n, ok := <-appCtx.App.Notifications():
					if !ok {
						return nil
					}
					switch n.Event {
					case watcher.EventChanged:
						changed.Fprintf(appCtx.Out, "changed: %s\n", strings.Join(n.Paths, ", "))
					case watcher.EventWatcherError:
						failed.Fprintf(appCtx.Out, "watcher error: %s\n", n.Message)
						return fmt.Errorf("watch session failed: %s", n.Message)
					}
				}
			}
		},
	}
}
