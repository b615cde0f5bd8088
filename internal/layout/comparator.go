package layout

// rowElement is a tagged variant over {Node, Edge} projected down to the
// four fields the Phase 2 comparator actually needs (up_li, down_li, up_row,
// down_row). Precomputing this projection once per row — rather than
// branching on the tag inside the hot comparator — is the optimization the
// spec's design notes (§9, "Comparator") call out explicitly.
type rowElement struct {
	isNode  bool
	edgeIdx int // index into the row's edge slice; unused for a node
	upLI    int
	downLI  int
	upRow   int
	downRow int
}

func nodeElement(row, li int) rowElement {
	return rowElement{isNode: true, edgeIdx: -1, upLI: li, downLI: li, upRow: row, downRow: row}
}

func edgeElement(i int, e edge) rowElement {
	return rowElement{
		isNode:  false,
		edgeIdx: i,
		upLI:    e.upLI,
		downLI:  e.downLI,
		upRow:   e.childRow,
		downRow: e.parentRow,
	}
}

// compareEdgeNode is the primary relation of §4.3: a positive result places
// the edge to the right of the node.
func compareEdgeNode(e, n rowElement) int {
	maxEdgeLI := e.upLI
	if e.downLI > maxEdgeLI {
		maxEdgeLI = e.downLI
	}
	if maxEdgeLI != n.upLI {
		return maxEdgeLI - n.upLI
	}
	return e.upRow - n.upRow
}

// virtualNode stands in for a node at (li, row) purely for the edge-vs-edge
// reduction below; only upLI/upRow are read by compareEdgeNode.
func virtualNode(li, row int) rowElement {
	return rowElement{isNode: true, edgeIdx: -1, upLI: li, upRow: row, downLI: li, downRow: row}
}

// compare is the general comparator of §4.3. A node-vs-node comparison never
// occurs (there is exactly one node per row); it is defined as equal
// defensively rather than left to panic.
func compare(lhs, rhs rowElement) int {
	switch {
	case lhs.isNode && rhs.isNode:
		return 0

	case !lhs.isNode && rhs.isNode:
		return compareEdgeNode(lhs, rhs)

	case lhs.isNode && !rhs.isNode:
		return -compareEdgeNode(rhs, lhs)

	default: // edge vs edge
		if lhs.upRow == rhs.upRow {
			if lhs.downRow < rhs.downRow {
				vn := virtualNode(lhs.downLI, lhs.downRow)
				return -compareEdgeNode(rhs, vn)
			}
			vn := virtualNode(rhs.downLI, rhs.downRow)
			return compareEdgeNode(lhs, vn)
		}
		if lhs.upRow < rhs.upRow {
			vn := virtualNode(rhs.upLI, rhs.upRow)
			return compareEdgeNode(lhs, vn)
		}
		vn := virtualNode(lhs.upLI, lhs.upRow)
		return -compareEdgeNode(rhs, vn)
	}
}
