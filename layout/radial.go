package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/kinship/tier"
)

// ringOrder lists the ring tiers from the center outwards.
var ringOrder = [...]tier.Tier{tier.Superior, tier.Intermediate, tier.Distant}

// Compute places nodes on concentric rings around centerID.
//
//   - The center node sits at (width/2, height/2) with Ring 0. If centerID is
//     not among nodes, no center position is emitted; rings are still placed.
//   - Each ring tier gets radius fraction·min(width, height). Its n members,
//     in input order, are spaced 2π/n apart starting at −π/2 (12 o'clock) and
//     moving toward increasing angles.
//   - Empty rings are skipped. Nodes tagged Center other than centerID, or
//     with an unknown tier, are not placed.
//
// The only error is ErrOptionViolation for an invalid Option.
func Compute(nodes []Node, centerID string, width, height float64, opts ...Option) (map[string]Position, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	center := r2.Vec{X: width / 2, Y: height / 2}
	side := math.Min(width, height)
	positions := make(map[string]Position, len(nodes))

	rings := make(map[tier.Tier][]Node, len(ringOrder))
	for _, n := range nodes {
		if n.ID == centerID {
			positions[n.ID] = Position{X: center.X, Y: center.Y, Ring: 0}
			continue
		}
		rings[n.Tier] = append(rings[n.Tier], n)
	}

	for _, t := range ringOrder {
		placeRing(positions, rings[t], center, o.Radii.fraction(t)*side)
	}

	return positions, nil
}

// placeRing spaces members evenly on a circle of the given radius.
func placeRing(dst map[string]Position, members []Node, center r2.Vec, radius float64) {
	count := len(members)
	if count == 0 {
		return
	}
	step := 2 * math.Pi / float64(count)
	for i, n := range members {
		a := float64(i)*step - math.Pi/2
		p := r2.Add(center, r2.Scale(radius, r2.Vec{X: math.Cos(a), Y: math.Sin(a)}))
		dst[n.ID] = Position{X: p.X, Y: p.Y, Ring: radius}
	}
}

// Segments returns one drawable segment per link whose both ends are in
// positions, in link order. Links touching an unplaced person are dropped.
func Segments(links []Link, positions map[string]Position) []Segment {
	out := make([]Segment, 0, len(links))
	for _, l := range links {
		s, ok := positions[l.Source]
		if !ok {
			continue
		}
		t, ok := positions[l.Target]
		if !ok {
			continue
		}
		out = append(out, Segment{Link: l, From: s.Vec(), To: t.Vec()})
	}

	return out
}
