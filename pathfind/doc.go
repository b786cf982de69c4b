// Package pathfind computes one shortest relational path between two people
// in a family graph, returning both the people visited and the relation of
// each hop.
//
// What
//
//   - Breadth-first search over family.Adjacency, counting hops (unweighted).
//   - Parent and child hops are legal in both directions; direction only
//     changes the recorded Relation, never reachability.
//   - Each vertex is visited at most once (visited-on-discovery), so cycles
//     such as sibling rings or shared-ancestor loops need no special casing.
//   - The search stops the first time the target is discovered; the path is
//     rebuilt from an explicit predecessor map, walked back and reversed
//     (no recursion, so depth is bounded only by memory).
//
// Results
//
//	ShortestPath(g, x, x) is always {Nodes: [x], Edges: []}.
//	An unknown source or an unreachable target yields nil, which callers
//	treat as "relationship unknown" rather than a fault.
//
// Tie-breaking
//
//	When several shortest paths exist (two common ancestors, say), the one
//	returned depends on adjacency enumeration order, which follows the order
//	edges were declared. That is deterministic but not canonical: a product
//	rule such as "prefer blood over marriage" would need a weighted search.
//
// Options
//
//   - WithMaxDepth(d): give up on paths longer than d hops.
//   - WithRelations(rels...): traverse only the listed relations.
//   - WithOnVisit(fn): observe each dequeued vertex and its depth.
//
// Complexity (V = people, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and predecessor map.
//
// Concurrency
//
//	Search reads its Adjacency and allocates all state per call, so one
//	Adjacency may serve any number of goroutines.
package pathfind
