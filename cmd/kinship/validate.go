package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/family"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the graph for empty ids, duplicates, self-loops and ancestry cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := family.Validate(a.graph); err != nil {
				a.log.Error("graph is invalid", "path", a.graphPath, "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d people, %d edges\n", len(a.graph.Nodes), len(a.graph.Edges))
			return nil
		},
	}
}
