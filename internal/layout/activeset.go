package layout

// activeEdgeSet tracks which edges are "active" — §4.6's
// absent → active → absent state machine — as the row sweep walks forward.
// A dense slice rather than a hash set is enough: the spec notes typical
// max concurrent edges are well under a hundred, where linear insert/remove
// beats hashing (§9, "Active edge set").
type activeEdgeSet struct {
	// startingAt[r] lists edge indices whose first intermediate row is r,
	// i.e. childRow+1. endingAt[r] lists edge indices whose last
	// intermediate row is r, i.e. parentRow-1.
	startingAt map[int][]int
	endingAt   map[int][]int

	// active holds currently-active edge indices in insertion order, which
	// is what Phase 2's comparator tie-break relies on for determinism
	// (§9, Open Question decision #2).
	active []int
}

func newActiveEdgeSet(edges []edge) *activeEdgeSet {
	s := &activeEdgeSet{
		startingAt: make(map[int][]int),
		endingAt:   make(map[int][]int),
	}
	for i, e := range edges {
		firstIntermediate := e.childRow + 1
		lastIntermediate := e.parentRow - 1
		if firstIntermediate <= lastIntermediate {
			s.startingAt[firstIntermediate] = append(s.startingAt[firstIntermediate], i)
			s.endingAt[lastIntermediate] = append(s.endingAt[lastIntermediate], i)
		}
	}
	return s
}

// enter activates every edge whose span of intermediate rows begins at row.
func (s *activeEdgeSet) enter(row int) {
	s.active = append(s.active, s.startingAt[row]...)
}

// leave deactivates every edge whose span of intermediate rows ends at row.
// Call this only after the row has been fully processed (Phase 2 sorts the
// row's elements before retiring edges, per §4.3 step order).
func (s *activeEdgeSet) leave(row int) {
	ending := s.endingAt[row]
	if len(ending) == 0 {
		return
	}
	done := make(map[int]bool, len(ending))
	for _, i := range ending {
		done[i] = true
	}
	kept := s.active[:0]
	for _, i := range s.active {
		if !done[i] {
			kept = append(kept, i)
		}
	}
	s.active = kept
}
