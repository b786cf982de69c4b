// Package tier classifies analyzed relationships into the coarse social
// rings used to group people in a family view.
//
// Rules, in order:
//
//	self                                              → Center
//	parent, child, sibling, spouse, grandparent, grandchild → Superior
//	aunt_uncle, niece_nephew, cousin with stepsAway ≤ 3 → Intermediate
//	everything else                                   → Distant
//
// Because a sibling hop folds into two steps, a first cousin reached as
// parent→sibling→child sits at stepsAway 4 and therefore lands in Distant.
package tier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kinship/kinship"
)

// ErrUnknownTier is returned by Parse for an unrecognized name.
var ErrUnknownTier = errors.New("tier: unknown tier")

// Tier is a ring of closeness around the viewed person.
type Tier uint8

const (
	// Center is the viewed person.
	Center Tier = iota
	// Superior holds immediate family and grandparents/grandchildren.
	Superior
	// Intermediate holds close collateral relatives.
	Intermediate
	// Distant holds everyone else.
	Distant
)

// intermediateMaxSteps is the inclusive stepsAway bound of Intermediate.
const intermediateMaxSteps = 3

var names = [...]string{
	Center:       "CENTER",
	Superior:     "SUPERIOR",
	Intermediate: "INTERMEDIATE",
	Distant:      "DISTANT",
}

// All returns every tier from the center outwards.
func All() []Tier {
	return []Tier{Center, Superior, Intermediate, Distant}
}

// String returns the upper-case tier name.
func (t Tier) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// Parse maps a tier name (case-insensitive) to its Tier.
func Parse(s string) (Tier, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == up {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if int(t) >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, uint8(t))
	}
	return []byte(names[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Classify maps a relationship kind and distance to its Tier.
// It is total: every Kind, including unknown values, yields a Tier.
func Classify(kind kinship.Kind, stepsAway int) Tier {
	switch kind {
	case kinship.KindSelf:
		return Center
	case kinship.KindParent, kinship.KindChild, kinship.KindSibling,
		kinship.KindSpouse, kinship.KindGrandparent, kinship.KindGrandchild:
		return Superior
	case kinship.KindAuntUncle, kinship.KindNieceNephew, kinship.KindCousin:
		if stepsAway <= intermediateMaxSteps {
			return Intermediate
		}
	}

	return Distant
}

// Of classifies an analyzed relationship.
func Of(r kinship.Relationship) Tier {
	return Classify(r.Kind, r.StepsAway)
}
