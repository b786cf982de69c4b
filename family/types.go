// Package family defines the genealogical graph model: person ids, tagged
// relationship edges, the caller-owned Graph, and the traversal-ready
// Adjacency derived from it.
//
// This file declares EdgeKind, Edge, Graph, Relation, Neighbor, Adjacency
// and the sentinel errors reported by Validate.
package family

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate and the parsing helpers.
// Traversal never returns them: malformed graphs are tolerated silently.
var (
	// ErrEmptyPersonID indicates a node or edge endpoint with an empty id.
	ErrEmptyPersonID = errors.New("family: person id is empty")

	// ErrSelfLoop indicates an edge whose two endpoints are the same person.
	ErrSelfLoop = errors.New("family: self-loop edge")

	// ErrUnknownEdgeKind indicates an edge whose discriminant is not one of
	// EdgeParentChild, EdgeSibling or EdgeSpouse.
	ErrUnknownEdgeKind = errors.New("family: unknown edge kind")

	// ErrDuplicateNode indicates the same id listed twice in Graph.Nodes.
	ErrDuplicateNode = errors.New("family: duplicate node id")

	// ErrAncestryCycle indicates a person who is their own ancestor
	// through a chain of parent_child edges.
	ErrAncestryCycle = errors.New("family: ancestry cycle")

	// ErrUnknownRelation is returned by ParseRelation for an unrecognized name.
	ErrUnknownRelation = errors.New("family: unknown relation")
)

// EdgeKind is the discriminant of the Edge sum type.
type EdgeKind uint8

const (
	// EdgeParentChild is a directed parent→child edge.
	EdgeParentChild EdgeKind = iota + 1
	// EdgeSibling is an undirected sibling edge.
	EdgeSibling
	// EdgeSpouse is an undirected marriage edge.
	EdgeSpouse
)

// String returns the wire name of the kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeParentChild:
		return "parent_child"
	case EdgeSibling:
		return "sibling"
	case EdgeSpouse:
		return "spouse"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// ParseEdgeKind maps a wire name back to its EdgeKind.
func ParseEdgeKind(s string) (EdgeKind, error) {
	switch s {
	case "parent_child":
		return EdgeParentChild, nil
	case "sibling":
		return EdgeSibling, nil
	case "spouse":
		return EdgeSpouse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeKind, s)
	}
}

// Edge is one genealogical relationship.
//
// For EdgeParentChild, From is the parent and To is the child.
// For EdgeSibling and EdgeSpouse the pair is unordered.
// Build edges with ParentChild, Sibling or Spouse rather than by hand.
type Edge struct {
	Kind EdgeKind
	From string
	To   string
}

// ParentChild returns a directed edge from parent to child.
func ParentChild(parent, child string) Edge {
	return Edge{Kind: EdgeParentChild, From: parent, To: child}
}

// Sibling returns an undirected sibling edge between a and b.
func Sibling(a, b string) Edge {
	return Edge{Kind: EdgeSibling, From: a, To: b}
}

// Spouse returns an undirected marriage edge between a and b.
func Spouse(a, b string) Edge {
	return Edge{Kind: EdgeSpouse, From: a, To: b}
}

// String renders the edge for diagnostics, e.g. "parent_child(mother→me)".
func (e Edge) String() string {
	if e.Kind == EdgeParentChild {
		return fmt.Sprintf("%s(%s→%s)", e.Kind, e.From, e.To)
	}

	return fmt.Sprintf("%s(%s–%s)", e.Kind, e.From, e.To)
}

// Graph is the caller-owned family graph. Edges may reference ids absent
// from Nodes. Nothing in this module mutates a Graph it is handed, so one
// Graph may be queried from many goroutines at once.
type Graph struct {
	Nodes []string
	Edges []Edge
}

// Relation is the kind of one traversal hop as seen from the node being left.
type Relation uint8

const (
	// RelParent: the neighbor is a parent of the current node.
	RelParent Relation = iota + 1
	// RelChild: the neighbor is a child of the current node.
	RelChild
	// RelSibling: the neighbor is a sibling.
	RelSibling
	// RelSpouse: the neighbor is a spouse.
	RelSpouse
)

// String returns "parent", "child", "sibling" or "spouse".
func (r Relation) String() string {
	switch r {
	case RelParent:
		return "parent"
	case RelChild:
		return "child"
	case RelSibling:
		return "sibling"
	case RelSpouse:
		return "spouse"
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

// Inverse returns the relation seen from the other end of the same hop:
// parent and child swap, sibling and spouse are symmetric.
func (r Relation) Inverse() Relation {
	switch r {
	case RelParent:
		return RelChild
	case RelChild:
		return RelParent
	default:
		return r
	}
}

// ParseRelation maps "parent", "child", "sibling" or "spouse" to a Relation.
func ParseRelation(s string) (Relation, error) {
	switch s {
	case "parent":
		return RelParent, nil
	case "child":
		return RelChild, nil
	case "sibling":
		return RelSibling, nil
	case "spouse":
		return RelSpouse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
	}
}

// Neighbor is one adjacency entry: the person reached and the relation of
// that person to the node whose list holds the entry.
type Neighbor struct {
	To  string
	Rel Relation
}

// Adjacency maps each person id to its neighbors in edge-declaration order.
// It is derived and ephemeral; see BuildAdjacency.
type Adjacency map[string][]Neighbor
