// Package kinship is the root of a family-relationship inference engine:
// given a family graph of people joined by parent_child, sibling and spouse
// edges, it answers "how is this person related to me?".
//
// What it does
//
//	• Graph model: typed edges, undirected adjacency, validation
//	• Path finding: breadth-first search returning the node and relation path
//	• Kinship analysis: folds a path into generational movement and labels it
//	  (parent, grandparent, aunt/uncle, nth cousin m times removed, in-laws)
//	• Tiers: closeness buckets (center, superior, intermediate, distant)
//	• Radial layout: concentric rings per tier for tree renderers
//
// Everything is organized under subpackages:
//
//	family/      Graph, Edge, adjacency, validation, immediate family, stored records
//	pathfind/    BFS shortest path between two people
//	kinship/     decision table from a path to a labeled Relationship
//	tier/        closeness tier of a Relationship
//	layout/      radial positions and drawable link segments
//	relation/    one-call Calculate and whole-family Survey
//	cmd/kinship  command-line tool over YAML family graphs
//
// Quick ASCII example:
//
//	  mother ── aunt
//	    │         │
//	    me      cousin
//
// relation.Calculate(g, "me", "cousin") walks me→mother→aunt→cousin
// (parent, sibling, child) and reports "Your First Cousin".
//
// All computation is pure and synchronous; graphs are never mutated.
package kinship
