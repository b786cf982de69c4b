// Package familytest holds the shared sample family used across tests and
// examples: "me" with parents, spouse, children, siblings, one aunt, one
// uncle, their children, and an isolated "second_cousin".
package familytest

import (
	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/layout"
	"github.com/katalvlaran/kinship/tier"
)

// Person ids of the sample family.
const (
	Me           = "me"
	Mother       = "mother"
	Father       = "father"
	Spouse       = "spouse"
	Child1       = "child1"
	Child2       = "child2"
	Sibling1     = "sibling1"
	Sibling2     = "sibling2"
	AuntM        = "aunt_m"
	UncleF       = "uncle_f"
	Cousin1      = "cousin1"
	Cousin2      = "cousin2"
	GreatAunt    = "g_aunt"
	SecondCousin = "second_cousin"
)

// Graph returns a fresh copy of the sample family graph. The edge order is
// significant: it fixes BFS tie-breaking in every test that uses it.
func Graph() *family.Graph {
	return &family.Graph{
		Nodes: []string{
			Me, Mother, Father, Spouse, Child1, Child2, Sibling1, Sibling2,
			AuntM, UncleF, Cousin1, Cousin2, GreatAunt, SecondCousin,
		},
		Edges: []family.Edge{
			family.ParentChild(Mother, Me),
			family.ParentChild(Father, Me),
			family.Spouse(Me, Spouse),
			family.ParentChild(Me, Child1),
			family.ParentChild(Me, Child2),
			family.Sibling(Me, Sibling1),
			family.Sibling(Me, Sibling2),
			family.Sibling(Mother, AuntM),
			family.ParentChild(AuntM, Cousin2),
			family.Sibling(Father, UncleF),
			family.ParentChild(UncleF, Cousin1),
			family.Sibling(GreatAunt, Mother),
		},
	}
}

// Names returns display names keyed by person id.
func Names() map[string]string {
	return map[string]string{
		Me:           "You",
		Mother:       "Mother",
		Father:       "Father",
		Spouse:       "Spouse",
		Child1:       "Daughter",
		Child2:       "Son",
		Sibling1:     "Sister",
		Sibling2:     "Brother",
		AuntM:        "Aunt (M)",
		UncleF:       "Uncle (F)",
		Cousin1:      "Cousin",
		Cousin2:      "Cousin",
		GreatAunt:    "Great Aunt",
		SecondCousin: "2nd Cousin",
	}
}

// Nodes returns the hand-tiered layout nodes of the sample tree view.
func Nodes() []layout.Node {
	names := Names()
	n := func(id string, t tier.Tier) layout.Node {
		return layout.Node{ID: id, Name: names[id], Tier: t}
	}

	return []layout.Node{
		n(Me, tier.Center),
		n(Mother, tier.Superior),
		n(Father, tier.Superior),
		n(Spouse, tier.Superior),
		n(Child1, tier.Superior),
		n(Child2, tier.Superior),
		n(Sibling1, tier.Superior),
		n(Sibling2, tier.Superior),
		n(AuntM, tier.Intermediate),
		n(UncleF, tier.Intermediate),
		n(Cousin1, tier.Intermediate),
		n(Cousin2, tier.Intermediate),
		n(GreatAunt, tier.Distant),
		n(SecondCousin, tier.Distant),
	}
}

// Links returns the sample tree links with their verification flags.
func Links() []layout.Link {
	return []layout.Link{
		{Source: Me, Target: Mother, Verified: true},
		{Source: Me, Target: Father, Verified: true},
		{Source: Me, Target: Spouse, Verified: true},
		{Source: Me, Target: Child1, Verified: true},
		{Source: Me, Target: Child2},
		{Source: Me, Target: Sibling1, Verified: true},
		{Source: Me, Target: Sibling2},
		{Source: Mother, Target: AuntM, Verified: true},
		{Source: Father, Target: UncleF, Verified: true},
		{Source: UncleF, Target: Cousin1, Verified: true},
		{Source: AuntM, Target: Cousin2},
		{Source: AuntM, Target: GreatAunt},
		{Source: Cousin1, Target: SecondCousin},
	}
}
