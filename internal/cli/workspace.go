package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hibiscus/internal/workspace"
)

func createDiscoverCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "discover <root>",
		Short: "Check a folder for existing workspace metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := appCtx.App.DiscoverWorkspace(args[0])
			if d.Found {
				color.New(color.FgGreen).Fprintf(appCtx.Out, "workspace found: %s\n", d.Path)
			} else {
				fmt.Fprintln(appCtx.Out, "no workspace found")
			}
			return nil
		},
	}
}

func createInitCommand(appCtx *AppContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init <root>",
		Short: "Create workspace metadata in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			if d := appCtx.App.DiscoverWorkspace(root); d.Found {
				return fmt.Errorf("workspace already exists at %s", d.Path)
			}

			if name == "" {
				name = filepath.Base(root)
			}

			ws := workspace.New(root, name)
			path := workspace.WorkspacePath(root)
			if err := appCtx.App.SaveWorkspace(path, ws); err != nil {
				return err
			}

			fmt.Fprintf(appCtx.Out, "initialized workspace %q at %s\n", name, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "workspace name (default: folder name)")
	return cmd
}

func createCalendarCommand(appCtx *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Read or write workspace calendar data",
	}

	show := &cobra.Command{
		Use:   "show <root>",
		Short: "Print calendar data (defaults when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := appCtx.App.LoadCalendar(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(appCtx.Out, string(data))
			return nil
		},
	}

	save := &cobra.Command{
		Use:   "save <root>",
		Short: "Atomically save calendar data from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if !json.Valid(data) {
				return fmt.Errorf("input is not valid JSON")
			}
			if err := appCtx.App.SaveCalendar(args[0], data); err != nil {
				return err
			}
			fmt.Fprintln(appCtx.Out, "calendar saved")
			return nil
		},
	}

	cmd.AddCommand(show, save)
	return cmd
}
