// Package pathfind provides tunable options and the Path result type
// for breadth-first shortest-path search over a family.Adjacency.
package pathfind

import (
	"github.com/katalvlaran/kinship/family"
)

// Option configures a search via functional arguments.
// Options never make a search fail: out-of-range values fall back to defaults.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// Zero or a negative value disables the limit.
	MaxDepth int

	// Allow reports whether a hop with the given relation may be taken.
	Allow func(rel family.Relation) bool

	// OnVisit is called for every dequeued vertex with its depth.
	OnVisit func(id string, depth int)
}

// DefaultOptions returns Options with no depth limit, every relation
// allowed and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Allow:    func(family.Relation) bool { return true },
		OnVisit:  func(string, int) {},
	}
}

// WithMaxDepth limits the search to paths of at most d hops.
//
//	d > 0:  limit to d hops
//	d <= 0: no limit
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.MaxDepth = d
	}
}

// WithRelations restricts traversal to the listed relations, e.g.
// WithRelations(family.RelParent, family.RelChild, family.RelSibling) for a
// blood-only search. An empty list leaves every relation allowed.
func WithRelations(rels ...family.Relation) Option {
	return func(o *Options) {
		if len(rels) == 0 {
			return
		}
		allowed := make(map[family.Relation]bool, len(rels))
		for _, r := range rels {
			allowed[r] = true
		}
		o.Allow = func(rel family.Relation) bool { return allowed[rel] }
	}
}

// WithOnVisit registers a callback run as each vertex is dequeued.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Path is one shortest route between two people.
//
// Invariants: len(Edges) == len(Nodes)-1, Nodes[0] is the source,
// Nodes[len(Nodes)-1] is the target, and Edges[i] is the relation of
// Nodes[i+1] as seen from Nodes[i]. A path from a person to themselves
// has one node and no edges.
type Path struct {
	Nodes []string
	Edges []family.Relation
}

// Steps returns the number of hops.
func (p Path) Steps() int {
	return len(p.Edges)
}

// Source returns the first node, or "" for an empty path.
func (p Path) Source() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[0]
}

// Target returns the last node, or "" for an empty path.
func (p Path) Target() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[len(p.Nodes)-1]
}

// Reverse returns the same route walked from target to source:
// nodes in reverse order and every relation inverted (parent↔child).
func (p Path) Reverse() Path {
	n := len(p.Nodes)
	out := Path{
		Nodes: make([]string, n),
		Edges: make([]family.Relation, len(p.Edges)),
	}
	for i, id := range p.Nodes {
		out.Nodes[n-1-i] = id
	}
	m := len(p.Edges)
	for i, rel := range p.Edges {
		out.Edges[m-1-i] = rel.Inverse()
	}

	return out
}
