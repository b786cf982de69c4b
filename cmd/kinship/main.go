// Command kinship answers "how is this person related to me" over a family
// graph stored as YAML, surveys a whole family from one person's point of
// view, and computes the radial tree layout.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
