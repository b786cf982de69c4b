// Package layout provides the node, link and position types and the
// tunable options of the radial family-tree layout.
package layout

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/kinship/tier"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("layout: invalid option supplied")

// Node is one person to place. Name is carried for renderers only.
type Node struct {
	ID   string
	Name string
	Tier tier.Tier
}

// Link connects two placed people. Verified affects rendering only.
type Link struct {
	Source   string
	Target   string
	Verified bool
}

// Position is a placed node: its coordinates and the radius of its ring
// (0 for the center).
type Position struct {
	X, Y float64
	Ring float64
}

// Vec returns the coordinates as an r2.Vec.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Segment is a drawable link between two positioned people.
type Segment struct {
	Link
	From, To r2.Vec
}

// Radii are ring radii as fractions of min(width, height).
type Radii struct {
	Superior     float64
	Intermediate float64
	Distant      float64
}

// DefaultRadii places Superior at 0.25, Intermediate at 0.40 and
// Distant at 0.52 of the smaller viewport side.
var DefaultRadii = Radii{Superior: 0.25, Intermediate: 0.40, Distant: 0.52}

// Validate requires 0 < Superior < Intermediate < Distant.
func (r Radii) Validate() error {
	if !(r.Superior > 0 && r.Superior < r.Intermediate && r.Intermediate < r.Distant) {
		return fmt.Errorf("%w: radii must satisfy 0 < superior < intermediate < distant, got %.3f/%.3f/%.3f",
			ErrOptionViolation, r.Superior, r.Intermediate, r.Distant)
	}
	return nil
}

// fraction returns the radius fraction of a ring tier.
func (r Radii) fraction(t tier.Tier) float64 {
	switch t {
	case tier.Superior:
		return r.Superior
	case tier.Intermediate:
		return r.Intermediate
	case tier.Distant:
		return r.Distant
	default:
		return 0
	}
}

// Option configures Compute.
type Option func(*Options)

// Options holds the parameters of Compute.
type Options struct {
	Radii Radii

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options using DefaultRadii.
func DefaultOptions() Options {
	return Options{Radii: DefaultRadii}
}

// WithRadii overrides the ring fractions. Non-monotonic or non-positive
// radii surface as ErrOptionViolation from Compute.
func WithRadii(r Radii) Option {
	return func(o *Options) {
		if err := r.Validate(); err != nil {
			o.err = err
			return
		}
		o.Radii = r
	}
}
