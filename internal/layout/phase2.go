package layout

import "sort"

// edgeTrack records, in increasing row order, the column an edge occupied
// at each row where it was active and visible (excluding its two
// endpoints, which are represented by the node's own column there).
type edgeTrack struct {
	rows []int
	cols []int
}

// sweepColumns runs Phase 2 (§4.3) over every row: activate edges starting
// there, build the row's {node, visible active edges} element list, sort it
// with the §4.3 comparator, and record the resulting column positions.
// Edges are retired from the active set only after their row's sort has
// run, matching the step order the spec lays out.
func sweepColumns(commits []Commit, layoutIndex []int, edges []edge, t Thresholds) (nodeColumn []int, tracks []edgeTrack) {
	n := len(commits)
	nodeColumn = make([]int, n)
	tracks = make([]edgeTrack, len(edges))

	active := newActiveEdgeSet(edges)

	for row := 0; row < n; row++ {
		active.enter(row)

		elems := make([]rowElement, 0, len(active.active)+1)
		elems = append(elems, nodeElement(row, layoutIndex[row]))
		for _, ei := range active.active {
			if visibleAt(edges[ei], row, t) {
				elems = append(elems, edgeElement(ei, edges[ei]))
			}
		}

		sort.SliceStable(elems, func(i, j int) bool {
			return compare(elems[i], elems[j]) < 0
		})

		for col, el := range elems {
			if el.isNode {
				nodeColumn[row] = col
				continue
			}
			tracks[el.edgeIdx].rows = append(tracks[el.edgeIdx].rows, row)
			tracks[el.edgeIdx].cols = append(tracks[el.edgeIdx].cols, col)
		}

		active.leave(row)
	}

	return nodeColumn, tracks
}
