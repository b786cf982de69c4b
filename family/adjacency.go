package family

// BuildAdjacency normalizes g into a traversal-ready Adjacency.
//
// Every id in g.Nodes receives an entry, possibly empty. Edges are processed
// in declaration order:
//
//	ParentChild{p,c}: adj[p] += (c, child);   adj[c] += (p, parent)
//	Sibling{a,b}:     adj[a] += (b, sibling); adj[b] += (a, sibling)
//	Spouse{a,b}:      adj[a] += (b, spouse);  adj[b] += (a, spouse)
//
// Ids referenced only by edges are added on the fly. Parallel edges are not
// deduplicated, and an edge with an unknown kind contributes nothing.
// A nil graph yields an empty Adjacency.
//
// Complexity: O(V + E).
func BuildAdjacency(g *Graph) Adjacency {
	if g == nil {
		return Adjacency{}
	}
	adj := make(Adjacency, len(g.Nodes))
	for _, id := range g.Nodes {
		if _, ok := adj[id]; !ok {
			adj[id] = []Neighbor{}
		}
	}

	for _, e := range g.Edges {
		switch e.Kind {
		case EdgeParentChild:
			adj.link(e.From, e.To, RelChild)
			adj.link(e.To, e.From, RelParent)
		case EdgeSibling:
			adj.link(e.From, e.To, RelSibling)
			adj.link(e.To, e.From, RelSibling)
		case EdgeSpouse:
			adj.link(e.From, e.To, RelSpouse)
			adj.link(e.To, e.From, RelSpouse)
		}
	}

	return adj
}

// link appends (to, rel) to from's list, creating the list if needed.
func (a Adjacency) link(from, to string, rel Relation) {
	a[from] = append(a[from], Neighbor{To: to, Rel: rel})
}

// Has reports whether id has an entry, i.e. it is a node or an edge endpoint.
func (a Adjacency) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Neighbors returns id's entries in enumeration order; nil for unknown ids.
// The returned slice is shared with the Adjacency and must not be modified.
func (a Adjacency) Neighbors(id string) []Neighbor {
	return a[id]
}
