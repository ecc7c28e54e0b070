package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hibiscus/internal/tree"
)

func createTreeCommand(appCtx *AppContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree <root>",
		Short: "Print the navigable tree of a workspace folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := appCtx.App.BuildTree(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(nodes, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(appCtx.Out, string(data))
				return nil
			}

			printNodes(appCtx, nodes, 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the tree as JSON")
	return cmd
}

func printNodes(appCtx *AppContext, nodes []tree.Node, depth int) {
	folderStyle := color.New(color.FgBlue, color.Bold)
	indent := strings.Repeat("  ", depth)

	for _, n := range nodes {
		if n.IsFolder() {
			folderStyle.Fprintf(appCtx.Out, "%s%s/\n", indent, n.Name)
			printNodes(appCtx, n.Children, depth+1)
		} else {
			fmt.Fprintf(appCtx.Out, "%s%s\n", indent, n.Name)
		}
	}
}
