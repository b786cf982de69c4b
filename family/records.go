package family

import (
	"strings"
)

// Record is one stored relationship row as kept by a backend: Label names
// what To is to From ("father", "Sister", "Uncle (Father's Brother)").
type Record struct {
	From     string
	To       string
	Label    string
	Verified bool
}

// RecordOption configures FromRecords.
type RecordOption func(*RecordOptions)

// RecordOptions holds the parameters of FromRecords.
type RecordOptions struct {
	// VerifiedOnly drops rows whose Verified flag is false.
	VerifiedOnly bool
}

// DefaultRecordOptions keeps every row.
func DefaultRecordOptions() RecordOptions {
	return RecordOptions{VerifiedOnly: false}
}

// WithVerifiedOnly keeps only verified rows.
func WithVerifiedOnly() RecordOption {
	return func(o *RecordOptions) { o.VerifiedOnly = true }
}

// labelRelations maps a normalized label to the relation of To as seen
// from From. Labels spanning more than one hop are absent on purpose.
var labelRelations = map[string]Relation{
	"father":   RelParent,
	"mother":   RelParent,
	"parent":   RelParent,
	"son":      RelChild,
	"daughter": RelChild,
	"child":    RelChild,
	"brother":  RelSibling,
	"sister":   RelSibling,
	"sibling":  RelSibling,
	"husband":  RelSpouse,
	"wife":     RelSpouse,
	"spouse":   RelSpouse,
}

// RelationForLabel resolves a stored label to a one-hop Relation.
// Matching ignores case, surrounding space and a trailing parenthetical
// qualifier, so "Grandfather (Paternal)" normalizes to "grandfather".
// Multi-hop labels (grandparent, aunt, uncle, cousin, other) report false.
func RelationForLabel(label string) (Relation, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if i := strings.IndexByte(l, '('); i >= 0 {
		l = strings.TrimSpace(l[:i])
	}
	rel, ok := labelRelations[l]

	return rel, ok
}

// FromRecords converts stored rows into a Graph. Nodes lists every endpoint
// of a converted row in first-seen order; Edges follow row order.
// Rows that cannot be expressed as one edge (multi-hop labels, empty ids)
// or that are filtered out by options are returned in skipped.
func FromRecords(records []Record, opts ...RecordOption) (g *Graph, skipped []Record) {
	o := DefaultRecordOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g = &Graph{}
	seen := make(map[string]struct{})
	addNode := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		g.Nodes = append(g.Nodes, id)
	}

	for _, r := range records {
		if o.VerifiedOnly && !r.Verified {
			skipped = append(skipped, r)
			continue
		}
		rel, ok := RelationForLabel(r.Label)
		if !ok || r.From == "" || r.To == "" {
			skipped = append(skipped, r)
			continue
		}

		var e Edge
		switch rel {
		case RelParent:
			e = ParentChild(r.To, r.From)
		case RelChild:
			e = ParentChild(r.From, r.To)
		case RelSibling:
			e = Sibling(r.From, r.To)
		case RelSpouse:
			e = Spouse(r.From, r.To)
		}
		addNode(r.From)
		addNode(r.To)
		g.Edges = append(g.Edges, e)
	}

	return g, skipped
}
