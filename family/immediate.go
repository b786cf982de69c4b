package family

// Family groups the people one edge away from a person.
type Family struct {
	Parents  []string
	Siblings []string
	Spouses  []string
	Children []string
}

// Len returns the total number of people across all groups.
func (f Family) Len() int {
	return len(f.Parents) + len(f.Siblings) + len(f.Spouses) + len(f.Children)
}

// ImmediateFamily collects the direct relatives of id, each group
// deduplicated and kept in edge-declaration order. Unknown ids yield an
// empty Family.
func ImmediateFamily(g *Graph, id string) Family {
	var f Family
	if g == nil {
		return f
	}
	seen := make(map[Relation]map[string]struct{}, 4)
	add := func(dst *[]string, rel Relation, other string) {
		s := seen[rel]
		if s == nil {
			s = make(map[string]struct{})
			seen[rel] = s
		}
		if _, dup := s[other]; dup {
			return
		}
		s[other] = struct{}{}
		*dst = append(*dst, other)
	}

	for _, e := range g.Edges {
		switch e.Kind {
		case EdgeParentChild:
			if e.To == id {
				add(&f.Parents, RelParent, e.From)
			}
			if e.From == id {
				add(&f.Children, RelChild, e.To)
			}
		case EdgeSibling:
			if other, ok := e.other(id); ok {
				add(&f.Siblings, RelSibling, other)
			}
		case EdgeSpouse:
			if other, ok := e.other(id); ok {
				add(&f.Spouses, RelSpouse, other)
			}
		}
	}

	return f
}

// other returns the endpoint opposite id on an undirected edge.
func (e Edge) other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}
