// Package pathfind finds one shortest relational path between two people,
// recording the relation of every hop.
package pathfind

import (
	"github.com/katalvlaran/kinship/family"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// step is a predecessor link: the vertex we came from and the relation
// of the current vertex as seen from it.
type step struct {
	from string
	rel  family.Relation
}

// walker encapsulates mutable BFS state for a single search.
type walker struct {
	adj     family.Adjacency
	opts    Options
	target  string
	queue   []queueItem
	visited map[string]bool
	prev    map[string]step
}

// ShortestPath builds the adjacency of g and searches it from source to
// target. See Search for the result contract. Callers issuing many queries
// against one graph should build the adjacency once and call Search.
func ShortestPath(g *family.Graph, source, target string, opts ...Option) *Path {
	if source == target {
		return &Path{Nodes: []string{source}}
	}

	return Search(family.BuildAdjacency(g), source, target, opts...)
}

// Search returns one shortest path (by hop count) from source to target
// over adj, traversing parent and child hops in either direction.
//
//   - source == target: a one-node, zero-edge path, for any id.
//   - source absent from adj, or target unreachable: nil.
//
// Ties between equally short paths are broken by adjacency enumeration
// order, i.e. edge-declaration order in the input graph. This choice is
// deterministic but not canonical: reordering edges can change the path,
// and with it the derived kinship label.
func Search(adj family.Adjacency, source, target string, opts ...Option) *Path {
	if source == target {
		return &Path{Nodes: []string{source}}
	}
	if !adj.Has(source) {
		return nil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		target:  target,
		queue:   make([]queueItem, 0, len(adj)),
		visited: make(map[string]bool, len(adj)),
		prev:    make(map[string]step, len(adj)),
	}
	w.visited[source] = true
	w.queue = append(w.queue, queueItem{id: source, depth: 0})

	if !w.loop() {
		return nil
	}

	return w.reconstruct(source)
}

// loop processes the queue until the target is discovered (true) or the
// reachable component is exhausted (false).
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(item.id, item.depth)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.adj.Neighbors(item.id) {
			if w.visited[nb.To] || !w.opts.Allow(nb.Rel) {
				continue
			}
			w.visited[nb.To] = true
			w.prev[nb.To] = step{from: item.id, rel: nb.Rel}
			// stop on discovery, not on dequeue
			if nb.To == w.target {
				return true
			}
			w.queue = append(w.queue, queueItem{id: nb.To, depth: next})
		}
	}

	return false
}

// reconstruct walks predecessor links back from the target, then reverses.
func (w *walker) reconstruct(source string) *Path {
	p := &Path{}
	for cur := w.target; ; {
		p.Nodes = append(p.Nodes, cur)
		if cur == source {
			break
		}
		s := w.prev[cur]
		p.Edges = append(p.Edges, s.rel)
		cur = s.from
	}
	for i, j := 0, len(p.Nodes)-1; i < j; i, j = i+1, j-1 {
		p.Nodes[i], p.Nodes[j] = p.Nodes[j], p.Nodes[i]
	}
	for i, j := 0, len(p.Edges)-1; i < j; i, j = i+1, j-1 {
		p.Edges[i], p.Edges[j] = p.Edges[j], p.Edges[i]
	}

	return p
}
