// Package kinship defines relationship kinds and the analyzed result
// produced from a relational path.
package kinship

import "fmt"

// Kind classifies an analyzed relationship.
type Kind uint8

const (
	KindSelf Kind = iota
	KindParent
	KindChild
	KindSibling
	KindSpouse
	KindGrandparent
	KindGrandchild
	KindAuntUncle
	KindNieceNephew
	KindCousin
)

var kindNames = [...]string{
	KindSelf:        "self",
	KindParent:      "parent",
	KindChild:       "child",
	KindSibling:     "sibling",
	KindSpouse:      "spouse",
	KindGrandparent: "grandparent",
	KindGrandchild:  "grandchild",
	KindAuntUncle:   "aunt_uncle",
	KindNieceNephew: "niece_nephew",
	KindCousin:      "cousin",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// CousinDegree is the cousin-specific part of a Relationship.
type CousinDegree struct {
	// Degree: 1 = first cousin, 2 = second cousin, ...
	Degree int
	// Removed is the generational offset between the two cousins.
	Removed int
}

// Relationship is the immutable result of analyzing one path.
type Relationship struct {
	Kind  Kind
	Label string
	// StepsAway is the consanguinity distance: up + down hops, spouse hops
	// excluded, sibling hops counted as one up and one down.
	StepsAway int
	// InLaw is true iff the path crosses at least one spouse edge.
	InLaw bool
	// Cousin is set only by the general cousin rule; the "Distant Relative"
	// catch-all also has KindCousin but leaves it nil.
	Cousin *CousinDegree
}
