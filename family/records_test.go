package family_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/internal/familytest"
)

func TestRelationForLabel(t *testing.T) {
	cases := []struct {
		label string
		rel   family.Relation
		ok    bool
	}{
		{"father", family.RelParent, true},
		{"Mother", family.RelParent, true},
		{"  Daughter ", family.RelChild, true},
		{"Brother", family.RelSibling, true},
		{"wife", family.RelSpouse, true},
		{"Spouse", family.RelSpouse, true},
		{"Grandfather (Paternal)", 0, false},
		{"Uncle (Father's Brother)", 0, false},
		{"cousin", 0, false},
		{"Other", 0, false},
		{"Sister (half)", family.RelSibling, true},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			rel, ok := family.RelationForLabel(tc.label)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.rel, rel)
		})
	}
}

func TestFromRecords(t *testing.T) {
	records := []family.Record{
		{From: "me", To: "mom", Label: "Mother", Verified: true},
		{From: "me", To: "kid", Label: "son", Verified: true},
		{From: "me", To: "sis", Label: "Sister", Verified: false},
		{From: "me", To: "wife", Label: "wife", Verified: true},
		{From: "me", To: "grandpa", Label: "Grandfather (Maternal)", Verified: true},
		{From: "", To: "x", Label: "father", Verified: true},
	}

	g, skipped := family.FromRecords(records)
	require.NotNil(t, g)
	assert.Equal(t, []string{"me", "mom", "kid", "sis", "wife"}, g.Nodes)
	assert.Equal(t, []family.Edge{
		family.ParentChild("mom", "me"),
		family.ParentChild("me", "kid"),
		family.Sibling("me", "sis"),
		family.Spouse("me", "wife"),
	}, g.Edges)
	assert.Equal(t, []family.Record{records[4], records[5]}, skipped)
	assert.NoError(t, family.Validate(g))
}

func TestFromRecords_VerifiedOnly(t *testing.T) {
	records := []family.Record{
		{From: "me", To: "mom", Label: "mother", Verified: true},
		{From: "me", To: "sis", Label: "sister", Verified: false},
	}
	g, skipped := family.FromRecords(records, family.WithVerifiedOnly())
	assert.Equal(t, []string{"me", "mom"}, g.Nodes)
	assert.Len(t, g.Edges, 1)
	assert.Equal(t, []family.Record{records[1]}, skipped)
}

func TestImmediateFamily(t *testing.T) {
	g := familytest.Graph()

	me := family.ImmediateFamily(g, familytest.Me)
	assert.Equal(t, []string{familytest.Mother, familytest.Father}, me.Parents)
	assert.Equal(t, []string{familytest.Sibling1, familytest.Sibling2}, me.Siblings)
	assert.Equal(t, []string{familytest.Spouse}, me.Spouses)
	assert.Equal(t, []string{familytest.Child1, familytest.Child2}, me.Children)
	assert.Equal(t, 7, me.Len())

	mom := family.ImmediateFamily(g, familytest.Mother)
	assert.Empty(t, mom.Parents)
	assert.Equal(t, []string{familytest.AuntM, familytest.GreatAunt}, mom.Siblings)
	assert.Equal(t, []string{familytest.Me}, mom.Children)

	assert.Zero(t, family.ImmediateFamily(g, familytest.SecondCousin).Len())
	assert.Zero(t, family.ImmediateFamily(nil, "anyone").Len())
}

func TestImmediateFamily_Dedup(t *testing.T) {
	g := &family.Graph{Edges: []family.Edge{
		family.Spouse("a", "b"),
		family.Spouse("b", "a"),
	}}
	assert.Equal(t, []string{"b"}, family.ImmediateFamily(g, "a").Spouses)
}
