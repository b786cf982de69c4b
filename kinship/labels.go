package kinship

import (
	"fmt"
	"strings"
)

// inLawText is appended to labels of paths that cross a marriage.
const inLawText = " (In-Law)"

func inLawSuffix(inLaw bool) string {
	if inLaw {
		return inLawText
	}
	return ""
}

// DegreeName names a cousin degree: 1→"First", 2→"Second", 3→"Third",
// anything else "{d}th".
func DegreeName(d int) string {
	switch d {
	case 1:
		return "First"
	case 2:
		return "Second"
	case 3:
		return "Third"
	default:
		return fmt.Sprintf("%dth", d)
	}
}

// RemovedSuffix renders a removal count: 0→"", 1→" Once Removed",
// 2→" Twice Removed", anything else " {r} Times Removed".
func RemovedSuffix(r int) string {
	switch r {
	case 0:
		return ""
	case 1:
		return " Once Removed"
	case 2:
		return " Twice Removed"
	default:
		return fmt.Sprintf(" %d Times Removed", r)
	}
}

// CousinLabel renders "Your {DegreeName} Cousin{RemovedSuffix}".
func CousinLabel(degree, removed int) string {
	var b strings.Builder
	b.WriteString("Your ")
	b.WriteString(DegreeName(degree))
	b.WriteString(" Cousin")
	b.WriteString(RemovedSuffix(removed))

	return b.String()
}
