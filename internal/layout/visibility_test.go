package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleAtShortEdgeAlwaysVisible(t *testing.T) {
	e := edge{childRow: 0, parentRow: 20}
	t_ := Thresholds{ArrowEdge: 30, LongEdge: 1000, VisiblePart: 250}

	for row := 1; row < 20; row++ {
		assert.True(t, visibleAt(e, row, t_))
	}
}

func TestVisibleAtMediumEdgeOnlyNearEnds(t *testing.T) {
	e := edge{childRow: 0, parentRow: 50} // span 50: >= ArrowEdge(30), < LongEdge(1000)
	th := Thresholds{ArrowEdge: 30, LongEdge: 1000, VisiblePart: 250}

	assert.True(t, visibleAt(e, 1, th))  // one row below child
	assert.True(t, visibleAt(e, 49, th)) // one row above parent
	assert.False(t, visibleAt(e, 25, th))
}

func TestVisibleAtLongEdgeOnlyWithinVisiblePart(t *testing.T) {
	e := edge{childRow: 0, parentRow: 1000} // span 1000: >= CollapsedThresholds.LongEdge(30)
	th := CollapsedThresholds

	assert.True(t, visibleAt(e, 1, th))               // within VisiblePart of child
	assert.True(t, visibleAt(e, 999, th))              // within VisiblePart of parent
	assert.False(t, visibleAt(e, 500, th))
}

func TestVisibleAtCollapsedThresholdsMakeMostSpansLong(t *testing.T) {
	// Collapsed mode's LongEdge == ArrowEdge (30), so a 40-row edge is
	// already in the "only near ends" tier, with only 1 visible row each side.
	e := edge{childRow: 0, parentRow: 40}
	th := CollapsedThresholds

	assert.True(t, visibleAt(e, 1, th))
	assert.True(t, visibleAt(e, 39, th))
	assert.False(t, visibleAt(e, 20, th))
}
