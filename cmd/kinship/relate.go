package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/pathfind"
	"github.com/katalvlaran/kinship/relation"
)

func newRelateCmd(a *app) *cobra.Command {
	var you, other string
	cmd := &cobra.Command{
		Use:   "relate",
		Short: "Show how one person is related to another",
		Long: `Show how --to is related to --you: the relationship label, how many
generational steps apart they are, the closeness tier and the path used.

Examples:
  kinship relate -g family.yaml --you me --to cousin1
  kinship relate -g family.yaml --to mother   # --you taken from the config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := a.person(you)
			if err != nil {
				return err
			}
			a.log.Debug("relate", "you", from, "other", other)

			r := relation.Calculate(a.graph, from, other)
			out := cmd.OutOrStdout()
			if r == nil {
				fmt.Fprintf(out, "no known relationship between %s and %s\n", a.name(from), a.name(other))
				return nil
			}
			fmt.Fprintf(out, "%s is %s\n", a.name(other), r.Label)
			fmt.Fprintf(out, "  kind:  %s\n", r.Kind)
			fmt.Fprintf(out, "  tier:  %s\n", r.Tier)
			fmt.Fprintf(out, "  steps: %d\n", r.StepsAway)
			fmt.Fprintf(out, "  path:  %s\n", formatPath(r.Path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&you, "you", "y", "", "perspective person id")
	cmd.Flags().StringVarP(&other, "to", "t", "", "person id to relate to")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// formatPath renders a path as "me -parent-> father -sibling-> uncle_f".
func formatPath(p pathfind.Path) string {
	var b strings.Builder
	for i, id := range p.Nodes {
		if i > 0 {
			fmt.Fprintf(&b, " -%s-> ", p.Edges[i-1])
		}
		b.WriteString(id)
	}
	return b.String()
}
