package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func createCatCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the contents of a workspace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := appCtx.App.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(appCtx.Out, content)
			return nil
		},
	}
}

func createSaveCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <path>",
		Short: "Atomically save stdin to a workspace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if err := appCtx.App.WriteFile(args[0], string(data)); err != nil {
				return err
			}
			fmt.Fprintf(appCtx.Out, "saved %s\n", args[0])
			return nil
		},
	}
}
