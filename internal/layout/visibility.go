package layout

// visibleAt implements the three-tier truncation table of §4.4. An edge
// that is active at row (childRow < row < parentRow) may still be invisible
// there — it occupies no column and contributes no element to that row's
// sort — if its span is long enough that only the ends near either anchor
// are drawn.
func visibleAt(e edge, row int, t Thresholds) bool {
	span := e.parentRow - e.childRow
	upOffset := row - e.childRow
	downOffset := e.parentRow - row

	switch {
	case span < t.ArrowEdge:
		return true
	case span < t.LongEdge:
		return upOffset <= 1 || downOffset <= 1
	default:
		return upOffset <= t.VisiblePart || downOffset <= t.VisiblePart
	}
}
