package relation_test

import (
	"fmt"

	"github.com/katalvlaran/kinship/internal/familytest"
	"github.com/katalvlaran/kinship/relation"
)

// ExampleCalculate answers "how is this person related to me?".
func ExampleCalculate() {
	g := familytest.Graph()
	for _, other := range []string{"mother", "spouse", "aunt_m", "cousin1", "second_cousin"} {
		r := relation.Calculate(g, "me", other)
		if r == nil {
			fmt.Printf("%s: no known relationship\n", other)
			continue
		}
		fmt.Printf("%s: %s (%s, steps=%d)\n", other, r.Label, r.Tier, r.StepsAway)
	}
	// Output:
	// mother: Your Parent (SUPERIOR, steps=1)
	// spouse: Your Spouse (SUPERIOR, steps=0)
	// aunt_m: Your Aunt/Uncle (INTERMEDIATE, steps=3)
	// cousin1: Your First Cousin (DISTANT, steps=4)
	// second_cousin: no known relationship
}

// ExampleCalculator_Survey lists everyone relative to one person, closest first.
func ExampleCalculator_Survey() {
	s := relation.NewCalculator(familytest.Graph()).Survey("me")
	for _, r := range s.Related[:4] {
		fmt.Printf("%-8s %-12s %s\n", r.Target(), r.Tier, r.Label)
	}
	fmt.Println("unrelated:", s.Unrelated)
	// Output:
	// spouse   SUPERIOR     Your Spouse
	// child1   SUPERIOR     Your Child
	// child2   SUPERIOR     Your Child
	// father   SUPERIOR     Your Parent
	// unrelated: [second_cousin]
}
