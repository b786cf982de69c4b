// Package kinship turns a relational path (a sequence of parent, child,
// sibling and spouse hops) into a typed relationship with a human-readable
// label such as "Your Aunt/Uncle" or "Your Second Cousin Once Removed".
//
// Fold
//
//	The hop sequence is reduced to up (parent hops), down (child hops),
//	hasSibling and inLaw. A sibling hop counts as one up AND one down: it is
//	modeled as climbing to the shared parent and descending again. A spouse
//	hop adds no distance and marks the path as in-law. StepsAway = up + down.
//
// Decision table (first match wins)
//
//	0 hops                              self          "You"
//	1 hop parent / child / sibling      parent, child, sibling (+ " (In-Law)")
//	1 hop spouse                        spouse        "Your Spouse", steps 0
//	up 2, down 0                        grandparent
//	up 0, down 2                        grandchild
//	up 1, down 1, sibling               sibling
//	sibling, up 2, down 1               aunt_uncle    steps 3
//	sibling, up 1, down 2               niece_nephew  steps 3
//	in-law, up 1, down 0                parent        "Your Parent-in-law"
//	in-law, up 0, down 1                child         "Your Child-in-law"
//	up ≥ 1 and down ≥ 1                 cousin        degree = max(1, min(up,down)-1), removed = |up-down|
//	up 1, down 0 / up 0, down 1         parent / child
//	anything else                       cousin        "Your Distant Relative"
//
// Known limits
//
//   - Because the sibling hop folds into one up and one down, a first cousin
//     reached as parent→sibling→child has up 2, down 2 and StepsAway 4.
//   - Half relations cannot be told apart from full ones; the fold has no
//     notion of how many parents are shared.
//   - Several valid up/down decompositions can exist for one pair in exotic
//     pedigrees; the label follows whichever path pathfind returned.
//
// Analyze never fails: every path yields some label.
package kinship
