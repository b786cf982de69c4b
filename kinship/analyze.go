// Package kinship translates a relational path into a typed, labeled
// relationship.
package kinship

import (
	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/pathfind"
)

// fold is the reduction of an edge sequence used by the decision table.
type fold struct {
	up, down   int
	hasSibling bool
	inLaw      bool
}

// foldEdges counts parent hops as up and child hops as down. A sibling hop
// counts as one of each (up to the shared parent, down again); a spouse hop
// adds no distance and only marks the path as in-law.
func foldEdges(edges []family.Relation) fold {
	var f fold
	for _, e := range edges {
		switch e {
		case family.RelParent:
			f.up++
		case family.RelChild:
			f.down++
		case family.RelSibling:
			f.hasSibling = true
			f.up++
			f.down++
		case family.RelSpouse:
			f.inLaw = true
		}
	}

	return f
}

// Analyze derives the relationship of p's target to p's source.
func Analyze(p pathfind.Path) Relationship {
	return AnalyzeEdges(p.Edges)
}

// AnalyzeEdges derives a relationship from a hop sequence. It never fails:
// shapes no rule recognizes become "Your Distant Relative" of KindCousin.
// Rules are evaluated in order and the first match wins.
func AnalyzeEdges(edges []family.Relation) Relationship {
	f := foldEdges(edges)
	steps := f.up + f.down
	rel := func(k Kind, label string, steps int) Relationship {
		return Relationship{Kind: k, Label: label, StepsAway: steps, InLaw: f.inLaw}
	}

	if len(edges) == 0 {
		return Relationship{Kind: KindSelf, Label: "You"}
	}

	if len(edges) == 1 {
		switch edges[0] {
		case family.RelParent:
			return rel(KindParent, "Your Parent"+inLawSuffix(f.inLaw), 1)
		case family.RelChild:
			return rel(KindChild, "Your Child"+inLawSuffix(f.inLaw), 1)
		case family.RelSibling:
			return rel(KindSibling, "Your Sibling"+inLawSuffix(f.inLaw), 2)
		case family.RelSpouse:
			return rel(KindSpouse, "Your Spouse", 0)
		}
	}

	switch {
	case f.up == 2 && f.down == 0:
		return rel(KindGrandparent, "Your Grandparent", 2)
	case f.up == 0 && f.down == 2:
		return rel(KindGrandchild, "Your Grandchild", 2)
	case f.up == 1 && f.down == 1 && f.hasSibling:
		return rel(KindSibling, "Your Sibling"+inLawSuffix(f.inLaw), 2)
	case f.hasSibling && f.up == 2 && f.down == 1:
		return rel(KindAuntUncle, "Your Aunt/Uncle"+inLawSuffix(f.inLaw), 3)
	case f.hasSibling && f.up == 1 && f.down == 2:
		return rel(KindNieceNephew, "Your Niece/Nephew"+inLawSuffix(f.inLaw), 3)
	case f.inLaw && f.up == 1 && f.down == 0:
		return rel(KindParent, "Your Parent-in-law", 1)
	case f.inLaw && f.up == 0 && f.down == 1:
		return rel(KindChild, "Your Child-in-law", 1)
	case f.up >= 1 && f.down >= 1:
		c := &CousinDegree{
			Degree:  max(1, min(f.up, f.down)-1),
			Removed: abs(f.up - f.down),
		}
		r := rel(KindCousin, CousinLabel(c.Degree, c.Removed)+inLawSuffix(f.inLaw), steps)
		r.Cousin = c
		return r
	case f.up == 1 && f.down == 0:
		return rel(KindParent, "Your Parent", 1)
	case f.up == 0 && f.down == 1:
		return rel(KindChild, "Your Child", 1)
	}

	return rel(KindCousin, "Your Distant Relative"+inLawSuffix(f.inLaw), steps)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
