package layout

// xOf converts a column index into the normalized x coordinate of §4.5:
// lane centers spaced lane_width apart, offset by half a lane plus the
// caller's left margin.
func xOf(column int, cfg Config) float64 {
	return float64(column)*cfg.LaneWidth + cfg.LaneWidth/2 + cfg.LeftMargin
}

type anchor struct {
	row int
	x   float64
}

// buildAnchors walks the edge's track (its swept column at every visible
// intermediate row) into the ordered anchor list of §4.5 step 1: the
// child's own node position, one point per visible intermediate row, and
// the parent's node position — or, for an edge whose parent is off the
// bottom of the loaded window (§4.1), no closing anchor at all, so the walk
// in generateRows simply stops drawing once the tracked points run out.
func buildAnchors(e edge, track edgeTrack, nodeColumn []int, cfg Config) []anchor {
	numRows := len(nodeColumn)
	anchors := make([]anchor, 0, len(track.rows)+2)
	anchors = append(anchors, anchor{row: e.childRow, x: xOf(nodeColumn[e.childRow], cfg)})

	for i, r := range track.rows {
		anchors = append(anchors, anchor{row: r, x: xOf(track.cols[i], cfg)})
	}

	if !e.isDangling(numRows) {
		lastRow := e.parentRow
		if lastRow > numRows-1 {
			lastRow = numRows - 1
		}
		anchors = append(anchors, anchor{row: lastRow, x: xOf(nodeColumn[lastRow], cfg)})
	}

	return anchors
}

// emitSegments walks consecutive anchor pairs (§4.5 step 2) and appends the
// two half-row segments each adjacent pair contributes. Anchors whose rows
// are not adjacent — a gap introduced by long-edge truncation — contribute
// no segments for that gap (step 3); the break/visible-edge arrows are what
// communicate the continuation instead.
func emitSegments(rows []RowLayout, anchors []anchor, colorIndex int, cfg Config) {
	for i := 0; i+1 < len(anchors); i++ {
		a, b := anchors[i], anchors[i+1]
		if b.row != a.row+1 {
			continue
		}
		xMid := (a.x + b.x) / 2

		rows[a.row].Segments = append(rows[a.row].Segments, Segment{
			XTop: a.x, YTop: cfg.RowHeight / 2,
			XBottom: xMid, YBottom: cfg.RowHeight,
			ColorIndex: colorIndex,
		})
		rows[b.row].Segments = append(rows[b.row].Segments, Segment{
			XTop: xMid, YTop: 0,
			XBottom: b.x, YBottom: cfg.RowHeight / 2,
			ColorIndex: colorIndex,
		})
	}
}

// emitArrows implements both independent arrow rule sets of §4.5. Either,
// both, or neither may fire for a given edge; every arrow whose target row
// falls outside the loaded window is suppressed.
func emitArrows(rows []RowLayout, e edge, nodeColumn []int, track edgeTrack, cfg Config, t Thresholds) {
	numRows := len(nodeColumn)
	span := e.parentRow - e.childRow
	dangling := e.isDangling(numRows)

	columnAt := func(row int) (int, bool) {
		for i, r := range track.rows {
			if r == row {
				return track.cols[i], true
			}
		}
		if row == e.childRow {
			return nodeColumn[e.childRow], true
		}
		if !dangling && row == e.parentRow {
			return nodeColumn[e.parentRow], true
		}
		return 0, false
	}

	addArrow := func(row int, y float64, dir ArrowDirection) {
		if row < 0 || row >= numRows {
			return
		}
		col, ok := columnAt(row)
		if !ok {
			return
		}
		rows[row].Arrows = append(rows[row].Arrows, Arrow{
			X: xOf(col, cfg), Y: y, ColorIndex: e.colorIndex, Direction: dir,
		})
	}

	if span >= t.LongEdge {
		addArrow(e.childRow+t.VisiblePart, cfg.RowHeight, ArrowDown)
		if !dangling {
			addArrow(e.parentRow-t.VisiblePart, 0, ArrowUp)
		}
	}

	if span >= t.ArrowEdge {
		addArrow(e.childRow+1, cfg.RowHeight/2, ArrowDown)
		if !dangling {
			addArrow(e.parentRow-1, cfg.RowHeight/2, ArrowUp)
		}
	}
}

// generateRows runs Phase 3 over every edge, filling in the Segments and
// Arrows of the already-allocated RowLayout slice.
func generateRows(rows []RowLayout, edges []edge, nodeColumn []int, tracks []edgeTrack, cfg Config, t Thresholds) {
	for i, e := range edges {
		track := tracks[i]
		anchors := buildAnchors(e, track, nodeColumn, cfg)
		emitSegments(rows, anchors, e.colorIndex, cfg)
		emitArrows(rows, e, nodeColumn, track, cfg, t)
	}
}
