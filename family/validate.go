package family

import (
	"errors"
	"fmt"
)

// vertex colors for ancestry-cycle detection.
const (
	white = iota // not visited
	gray         // on the current descent stack
	black        // fully explored
)

// Validate reports structural problems in g without rejecting anything:
// traversal tolerates every one of them. The result joins (errors.Join) one
// wrapped error per problem, so callers can test each with errors.Is:
//
//   - ErrEmptyPersonID   node or edge endpoint is ""
//   - ErrDuplicateNode   id listed twice in Nodes
//   - ErrUnknownEdgeKind edge discriminant out of range
//   - ErrSelfLoop        edge endpoints are equal
//   - ErrAncestryCycle   someone is their own ancestor
//
// Dangling references are not errors; see DanglingReferences.
// A nil graph is valid.
func Validate(g *Graph) error {
	if g == nil {
		return nil
	}
	var errs []error

	seen := make(map[string]struct{}, len(g.Nodes))
	for i, id := range g.Nodes {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: nodes[%d]", ErrEmptyPersonID, i))
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateNode, id))
			continue
		}
		seen[id] = struct{}{}
	}

	for i, e := range g.Edges {
		switch e.Kind {
		case EdgeParentChild, EdgeSibling, EdgeSpouse:
		default:
			errs = append(errs, fmt.Errorf("%w: edges[%d] %s", ErrUnknownEdgeKind, i, e))
			continue
		}
		if e.From == "" || e.To == "" {
			errs = append(errs, fmt.Errorf("%w: edges[%d] %s", ErrEmptyPersonID, i, e))
			continue
		}
		if e.From == e.To {
			errs = append(errs, fmt.Errorf("%w: edges[%d] %s", ErrSelfLoop, i, e))
		}
	}

	if cycle := ancestryCycle(g); cycle != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrAncestryCycle, cycle))
	}

	return errors.Join(errs...)
}

// ancestryCycle runs a three-color DFS over parent→child edges only and
// returns the first cycle found (closed: first id repeated at the end),
// or nil. Self-loops are reported separately and skipped here.
func ancestryCycle(g *Graph) []string {
	children := make(map[string][]string)
	var roots []string
	for _, e := range g.Edges {
		if e.Kind != EdgeParentChild || e.From == e.To {
			continue
		}
		if _, ok := children[e.From]; !ok {
			roots = append(roots, e.From)
		}
		children[e.From] = append(children[e.From], e.To)
	}

	state := make(map[string]int, len(children))
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		state[id] = gray
		stack = append(stack, id)
		for _, c := range children[id] {
			switch state[c] {
			case white:
				if cyc := visit(c); cyc != nil {
					return cyc
				}
			case gray:
				// back-edge: the cycle is the stack suffix starting at c
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == c {
						cyc := append([]string{}, stack[i:]...)
						return append(cyc, c)
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = black

		return nil
	}

	for _, r := range roots {
		if state[r] == white {
			if cyc := visit(r); cyc != nil {
				return cyc
			}
		}
	}

	return nil
}

// DanglingReferences returns ids referenced by edges but absent from
// g.Nodes, in first-seen order. Such ids are still traversable.
func DanglingReferences(g *Graph) []string {
	if g == nil {
		return nil
	}
	known := make(map[string]struct{}, len(g.Nodes))
	for _, id := range g.Nodes {
		known[id] = struct{}{}
	}

	var out []string
	for _, e := range g.Edges {
		for _, id := range [2]string{e.From, e.To} {
			if _, ok := known[id]; ok {
				continue
			}
			known[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}
