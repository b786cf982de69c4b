// Package family is the graph model underneath kinship inference: people,
// typed relationship edges, and the adjacency view that traversal walks.
//
// What
//
//   - Edge is a closed sum type with discriminant EdgeKind:
//     EdgeParentChild (directed parent→child), EdgeSibling and EdgeSpouse
//     (undirected). Build edges with ParentChild, Sibling and Spouse.
//   - Graph owns a node-id list and an edge list. It is caller data: this
//     module never mutates it.
//   - BuildAdjacency turns a Graph into an Adjacency, where each entry carries
//     the Relation of the neighbor as seen from the owning node
//     (a ParentChild edge reads "child" from the parent and "parent" from
//     the child).
//   - Validate, DanglingReferences, ImmediateFamily and FromRecords are
//     helpers for callers preparing or inspecting a Graph.
//
// Tolerance
//
//	Adjacency construction never fails. Ids referenced only by edges are added,
//	parallel edges are kept (first enumerated wins during traversal), and an
//	unknown EdgeKind contributes nothing. Validate exists for callers that want
//	to surface such problems; traversal does not call it.
//
// Determinism
//
//	Neighbor lists follow edge-declaration order, which is what makes BFS
//	tie-breaking in package pathfind reproducible (though input-order dependent).
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - BuildAdjacency: O(V + E) time and memory.
//   - Validate:       O(V + E).
//   - ImmediateFamily: O(E).
//
// Errors
//
//   - ErrEmptyPersonID, ErrDuplicateNode, ErrUnknownEdgeKind, ErrSelfLoop,
//     ErrAncestryCycle: joined by Validate.
//   - ErrUnknownEdgeKind, ErrUnknownRelation: from ParseEdgeKind and ParseRelation.
package family
