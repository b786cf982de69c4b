package relation

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/layout"
	"github.com/katalvlaran/kinship/tier"
)

// Survey is one person's view of everyone else in the graph.
type Survey struct {
	You string
	// Related is ordered by tier (center outwards), then StepsAway, then id.
	Related []Calculated
	// Unrelated lists ids with no path from You, in graph order.
	Unrelated []string
}

// surveyLess orders survey entries by tier, distance, then target id.
func surveyLess(a, b Calculated) bool {
	if a.Tier != b.Tier {
		return a.Tier < b.Tier
	}
	if a.StepsAway != b.StepsAway {
		return a.StepsAway < b.StepsAway
	}
	return a.Target() < b.Target()
}

// Survey relates you to every other person: first the ids of Nodes, then
// any ids only referenced by edges. A person listed twice is surveyed once.
func (c *Calculator) Survey(you string) Survey {
	s := Survey{You: you}
	ordered := btree.NewBTreeG[Calculated](surveyLess)

	var ids []string
	if c.graph != nil {
		ids = append(ids, c.graph.Nodes...)
		ids = append(ids, family.DanglingReferences(c.graph)...)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == you {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if r := c.Calculate(you, id); r != nil {
			ordered.Set(*r)
		} else {
			s.Unrelated = append(s.Unrelated, id)
		}
	}

	s.Related = make([]Calculated, 0, ordered.Len())
	ordered.Scan(func(item Calculated) bool {
		s.Related = append(s.Related, item)
		return true
	})

	return s
}

// Group splits Related by tier, preserving order within each tier.
func (s Survey) Group() map[tier.Tier][]Calculated {
	out := make(map[tier.Tier][]Calculated)
	for _, r := range s.Related {
		out[r.Tier] = append(out[r.Tier], r)
	}
	return out
}

// Nodes converts a survey into layout input: You as the center, then every
// related person tagged with their computed tier. Unrelated people are left
// out. names supplies display names; missing entries fall back to the id.
func Nodes(s Survey, names map[string]string) []layout.Node {
	name := func(id string) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return id
	}

	out := make([]layout.Node, 0, len(s.Related)+1)
	out = append(out, layout.Node{ID: s.You, Name: name(s.You), Tier: tier.Center})
	for _, r := range s.Related {
		out = append(out, layout.Node{ID: r.Target(), Name: name(r.Target()), Tier: r.Tier})
	}

	return out
}
