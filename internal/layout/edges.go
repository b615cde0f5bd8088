package layout

// edge is the internal Phase 2/3 record for one child→parent arrow. Rows
// are 0-based positions in the input slice; parentIndex is 0 for the first
// parent, >=1 for additional (merge) parents.
type edge struct {
	childRow, parentRow int
	parentIndex         int
	upLI, downLI         int
	colorIndex           int
}

// isDangling reports whether e's parent identity was absent from the input
// — "off the bottom" per §4.1's failure semantics. collectEdges marks such
// edges with parentRow == numRows (one past the last valid row), so the
// edge stays active through the end of the loaded window (see
// activeset.go) without ever resolving to a drawn parent node (phase3.go).
func (e edge) isDangling(numRows int) bool {
	return e.parentRow >= numRows
}

// collectEdges builds every child→parent edge the input supports. Several
// classes of malformed input are silently normalized here, per §7:
//
//   - a parent identity absent from the input produces an edge with a
//     sentinel parentRow of len(commits) (see isDangling) rather than being dropped
//     outright — §4.1 calls these edges "off the bottom" and has Phase 3
//     draw their truncated-but-present start rather than erasing them;
//   - a parent declared more than once on the same commit is collapsed to
//     its first occurrence, so parentIndex numbering for the kept parents
//     stays a dense 0,1,2,... in first-seen order (§9, Open Question
//     decision — the spec leaves duplicate-parent handling unspecified);
//   - a "parent" that actually appears *before* its child in row order
//     (parentRow <= childRow) is dropped entirely, since the invariant in
//     §3 requires child_row < parent_row for every edge.
func collectEdges(commits []Commit, idx rowIndex, layoutIndex []int, colorIndex []int) []edge {
	numRows := len(commits)
	var edges []edge

	for childRow, c := range commits {
		seen := make(map[CommitID]bool, len(c.Parents))
		parentIndex := 0
		for _, p := range c.Parents {
			if seen[p] {
				continue
			}
			seen[p] = true

			parentRow, ok := idx[p]
			if ok && parentRow <= childRow {
				continue
			}

			e := edge{
				childRow:    childRow,
				parentIndex: parentIndex,
				upLI:        layoutIndex[childRow],
			}
			if ok {
				e.parentRow = parentRow
				e.downLI = layoutIndex[parentRow]
			} else {
				e.parentRow = numRows
				e.downLI = layoutIndex[childRow]
			}

			switch {
			case parentIndex == 0:
				e.colorIndex = colorIndex[childRow]
			case ok:
				e.colorIndex = colorIndex[parentRow]
			default:
				// No parent row to derive a merge color from; fall back to
				// the child's color rather than fabricating one.
				e.colorIndex = colorIndex[childRow]
			}

			edges = append(edges, e)
			parentIndex++
		}
	}

	return edges
}
