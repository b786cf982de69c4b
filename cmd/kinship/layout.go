package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/layout"
	"github.com/katalvlaran/kinship/relation"
	"github.com/katalvlaran/kinship/tier"
)

// placedNode and placedLink are the YAML output of the layout command.
type placedNode struct {
	ID   string    `yaml:"id"`
	Name string    `yaml:"name"`
	Tier tier.Tier `yaml:"tier"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
	Ring float64   `yaml:"ring"`
}

type placedLink struct {
	Source   string     `yaml:"source"`
	Target   string     `yaml:"target"`
	Verified bool       `yaml:"verified"`
	From     [2]float64 `yaml:"from,flow"`
	To       [2]float64 `yaml:"to,flow"`
}

type layoutDoc struct {
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Nodes  []placedNode `yaml:"nodes"`
	Links  []placedLink `yaml:"links"`
}

func newLayoutCmd(a *app) *cobra.Command {
	var (
		you           string
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute radial tree positions and print them as YAML",
		Long: `Place --you at the center and everyone related on concentric rings by
closeness tier. Unrelated people are left out. Links come from the graph's
edges and records; links with an unplaced end are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			center, err := a.person(you)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				a.cfg.Width = width
			}
			if cmd.Flags().Changed("height") {
				a.cfg.Height = height
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			s := relation.NewCalculator(a.graph).Survey(center)
			nodes := relation.Nodes(s, a.doc.Names())
			pos, err := layout.Compute(nodes, center, a.cfg.Width, a.cfg.Height, layout.WithRadii(a.cfg.LayoutRadii()))
			if err != nil {
				return err
			}

			doc := layoutDoc{Width: a.cfg.Width, Height: a.cfg.Height}
			for _, n := range nodes {
				p := pos[n.ID]
				doc.Nodes = append(doc.Nodes, placedNode{ID: n.ID, Name: n.Name, Tier: n.Tier, X: p.X, Y: p.Y, Ring: p.Ring})
			}
			for _, seg := range layout.Segments(a.doc.Links(), pos) {
				doc.Links = append(doc.Links, placedLink{
					Source:   seg.Source,
					Target:   seg.Target,
					Verified: seg.Verified,
					From:     [2]float64{seg.From.X, seg.From.Y},
					To:       [2]float64{seg.To.X, seg.To.Y},
				})
			}
			a.log.Debug("layout", "center", center, "nodes", len(doc.Nodes), "links", len(doc.Links))

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode layout: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&you, "you", "y", "", "person id at the center")
	cmd.Flags().Float64Var(&width, "width", 0, "viewport width (overrides the config)")
	cmd.Flags().Float64Var(&height, "height", 0, "viewport height (overrides the config)")
	return cmd
}
