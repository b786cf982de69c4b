package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/relation"
	"github.com/katalvlaran/kinship/tier"
)

func newSurveyCmd(a *app) *cobra.Command {
	var you string
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "List everyone grouped by closeness tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := a.person(you)
			if err != nil {
				return err
			}
			s := relation.NewCalculator(a.graph).Survey(from)
			a.log.Debug("survey", "you", from, "related", len(s.Related), "unrelated", len(s.Unrelated))

			out := cmd.OutOrStdout()
			groups := s.Group()
			for _, t := range tier.All() {
				members := groups[t]
				if len(members) == 0 {
					continue
				}
				fmt.Fprintln(out, t)
				for _, r := range members {
					fmt.Fprintf(out, "  %-16s %-36s steps=%d\n", a.name(r.Target()), r.Label, r.StepsAway)
				}
			}
			if len(s.Unrelated) > 0 {
				fmt.Fprintln(out, "UNRELATED")
				for _, id := range s.Unrelated {
					fmt.Fprintf(out, "  %s\n", a.name(id))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&you, "you", "y", "", "perspective person id")
	return cmd
}
