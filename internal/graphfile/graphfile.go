// Package graphfile reads family graphs from YAML documents for the
// command-line tool.
//
// A document lists people, typed edges, and optionally stored relationship
// records (as a backend would keep them):
//
//	people:
//	  - id: me
//	    name: You
//	  - id: mother
//	    name: Mother
//	edges:
//	  - kind: parent_child
//	    parent: mother
//	    child: me
//	  - kind: spouse
//	    a: me
//	    b: partner
//	records:
//	  - from: me
//	    to: sis
//	    label: Sister
//	    verified: true
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/layout"
)

// ErrInvalidEdge is returned when an edge entry lacks the fields its kind needs.
var ErrInvalidEdge = errors.New("graphfile: invalid edge")

// Person is one entry of the people list.
type Person struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Edge is one entry of the edges list. parent/child apply to parent_child,
// a/b to sibling and spouse.
type Edge struct {
	Kind   string `yaml:"kind"`
	Parent string `yaml:"parent,omitempty"`
	Child  string `yaml:"child,omitempty"`
	A      string `yaml:"a,omitempty"`
	B      string `yaml:"b,omitempty"`
}

// Record is one stored relationship row; see family.Record.
type Record struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Label    string `yaml:"label"`
	Verified bool   `yaml:"verified"`
}

// File is a decoded graph document.
type File struct {
	People  []Person `yaml:"people"`
	Edges   []Edge   `yaml:"edges"`
	Records []Record `yaml:"records"`
}

// Load reads and decodes the document at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open graph file '%s': %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse graph file '%s': %w", path, err)
	}
	return doc, nil
}

// Decode parses a document, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

// toEdge converts one edge entry into a family.Edge.
func (e Edge) toEdge() (family.Edge, error) {
	kind, err := family.ParseEdgeKind(e.Kind)
	if err != nil {
		return family.Edge{}, fmt.Errorf("%w: %v", ErrInvalidEdge, err)
	}
	switch kind {
	case family.EdgeParentChild:
		if e.Parent == "" || e.Child == "" {
			return family.Edge{}, fmt.Errorf("%w: parent_child needs parent and child", ErrInvalidEdge)
		}
		return family.ParentChild(e.Parent, e.Child), nil
	case family.EdgeSibling, family.EdgeSpouse:
		if e.A == "" || e.B == "" {
			return family.Edge{}, fmt.Errorf("%w: %s needs a and b", ErrInvalidEdge, kind)
		}
		if kind == family.EdgeSibling {
			return family.Sibling(e.A, e.B), nil
		}
		return family.Spouse(e.A, e.B), nil
	default:
		return family.Edge{}, fmt.Errorf("%w: kind %q", ErrInvalidEdge, e.Kind)
	}
}

// Graph builds the family graph: people become nodes, edges follow in
// document order, and records are converted with family.FromRecords and
// appended after them. Records that map to no single edge are returned.
func (f *File) Graph(opts ...family.RecordOption) (*family.Graph, []family.Record, error) {
	g := &family.Graph{Nodes: make([]string, 0, len(f.People))}
	for _, p := range f.People {
		g.Nodes = append(g.Nodes, p.ID)
	}
	for i, e := range f.Edges {
		edge, err := e.toEdge()
		if err != nil {
			return nil, nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		g.Edges = append(g.Edges, edge)
	}

	if len(f.Records) == 0 {
		return g, nil, nil
	}
	fromRecords, skipped := family.FromRecords(f.familyRecords(), opts...)
	known := make(map[string]struct{}, len(g.Nodes))
	for _, id := range g.Nodes {
		known[id] = struct{}{}
	}
	for _, id := range fromRecords.Nodes {
		if _, ok := known[id]; !ok {
			known[id] = struct{}{}
			g.Nodes = append(g.Nodes, id)
		}
	}
	g.Edges = append(g.Edges, fromRecords.Edges...)

	return g, skipped, nil
}

func (f *File) familyRecords() []family.Record {
	out := make([]family.Record, len(f.Records))
	for i, r := range f.Records {
		out[i] = family.Record{From: r.From, To: r.To, Label: r.Label, Verified: r.Verified}
	}
	return out
}

// Names returns display names keyed by id; people without a name are omitted.
func (f *File) Names() map[string]string {
	out := make(map[string]string, len(f.People))
	for _, p := range f.People {
		if p.Name != "" {
			out[p.ID] = p.Name
		}
	}
	return out
}

// Links returns one tree link per edge (verified) and per record that maps
// to an edge (carrying the record's verified flag), in document order.
func (f *File) Links() []layout.Link {
	out := make([]layout.Link, 0, len(f.Edges)+len(f.Records))
	for _, e := range f.Edges {
		edge, err := e.toEdge()
		if err != nil {
			continue
		}
		out = append(out, layout.Link{Source: edge.From, Target: edge.To, Verified: true})
	}
	for _, r := range f.Records {
		if _, ok := family.RelationForLabel(r.Label); !ok {
			continue
		}
		out = append(out, layout.Link{Source: r.From, Target: r.To, Verified: r.Verified})
	}
	return out
}
