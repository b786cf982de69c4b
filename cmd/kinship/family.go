package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/family"
)

func newFamilyCmd(a *app) *cobra.Command {
	var you string
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Show a person's parents, siblings, spouses and children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.person(you)
			if err != nil {
				return err
			}
			f := family.ImmediateFamily(a.graph, id)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d direct relatives)\n", a.name(id), f.Len())
			a.printGroup(out, "parents", f.Parents)
			a.printGroup(out, "siblings", f.Siblings)
			a.printGroup(out, "spouses", f.Spouses)
			a.printGroup(out, "children", f.Children)
			return nil
		},
	}
	cmd.Flags().StringVarP(&you, "you", "y", "", "person id")
	return cmd
}

func (a *app) printGroup(out io.Writer, title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = a.name(id)
	}
	fmt.Fprintf(out, "  %s: %s\n", title, strings.Join(names, ", "))
}
