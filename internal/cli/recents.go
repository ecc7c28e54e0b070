package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func createRecentsCommand(appCtx *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recents",
		Short: "Manage the recently opened workspace list",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recently opened workspaces, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := appCtx.App.Recents()
			if store == nil {
				return fmt.Errorf("no recents database configured")
			}

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(appCtx.Out, "no recent workspaces")
				return nil
			}

			name := color.New(color.Bold)
			for _, e := range entries {
				name.Fprintf(appCtx.Out, "%s", e.Root)
				fmt.Fprintf(appCtx.Out, "  opened %d time(s), last %s\n",
					e.OpenCount, e.LastOpened.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all recent workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := appCtx.App.Recents()
			if store == nil {
				return fmt.Errorf("no recents database configured")
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(appCtx.Out, "recents cleared")
			return nil
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}
