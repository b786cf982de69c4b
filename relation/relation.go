// Package relation composes path finding, kinship analysis and tier
// classification into the single "how is this person related to me" call,
// and surveys a whole family from one person's point of view.
package relation

import (
	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/kinship"
	"github.com/katalvlaran/kinship/pathfind"
	"github.com/katalvlaran/kinship/tier"
)

// Calculated is an analyzed relationship together with its tier and the
// path it was derived from.
type Calculated struct {
	kinship.Relationship
	Tier tier.Tier
	Path pathfind.Path
}

// Target returns the id the relationship describes.
func (c Calculated) Target() string {
	return c.Path.Target()
}

// Calculate returns how other is related to you in g, or nil when no path
// connects them. It builds the adjacency on every call; use a Calculator
// for repeated queries against one graph.
func Calculate(g *family.Graph, you, other string) *Calculated {
	return calculate(family.BuildAdjacency(g), you, other)
}

// Calculator answers many queries against one graph, building the
// adjacency once. It holds no mutable state and is safe for concurrent use
// as long as the graph is not modified after NewCalculator.
type Calculator struct {
	graph *family.Graph
	adj   family.Adjacency
}

// NewCalculator prepares a Calculator for g.
func NewCalculator(g *family.Graph) *Calculator {
	return &Calculator{graph: g, adj: family.BuildAdjacency(g)}
}

// Calculate behaves like the package-level Calculate.
func (c *Calculator) Calculate(you, other string) *Calculated {
	return calculate(c.adj, you, other)
}

func calculate(adj family.Adjacency, you, other string) *Calculated {
	p := pathfind.Search(adj, you, other)
	if p == nil {
		return nil
	}
	r := kinship.Analyze(*p)

	return &Calculated{
		Relationship: r,
		Tier:         tier.Of(r),
		Path:         *p,
	}
}
