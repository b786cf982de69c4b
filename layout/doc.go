// Package layout computes a deterministic radial placement of a family
// around one viewed person, for rendering by an external view.
//
// What
//
//   - The center person sits at the middle of the viewport.
//   - Every other tier has its own concentric ring, at a fixed fraction of
//     min(width, height): Superior 0.25, Intermediate 0.40, Distant 0.52 by
//     default (see WithRadii). Only the ordering of the radii is contractual.
//   - Within a ring, members keep their input order and are spaced at equal
//     angles, starting at 12 o'clock (−π/2) and moving toward increasing
//     angles (clockwise on a y-down screen).
//   - Segments turns links into drawable endpoint pairs, skipping links whose
//     ends were not placed.
//
// Tiers are taken from the nodes as given: they may come from tier.Classify
// or be assigned by hand.
//
// Degenerate input
//
//	Empty rings are skipped (no division by zero). A missing center yields a
//	partial map without a center entry. Nothing is cached: every call
//	recomputes from scratch, so resizing simply means calling again.
//
// Complexity: O(N) time and memory for N nodes.
package layout
