package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveEdgeSetEntersAndLeavesAtIntermediateRows(t *testing.T) {
	// childRow 0, parentRow 4: intermediate rows are 1, 2, 3.
	edges := []edge{{childRow: 0, parentRow: 4}}
	s := newActiveEdgeSet(edges)

	s.enter(0)
	assert.Empty(t, s.active)

	s.enter(1)
	assert.Equal(t, []int{0}, s.active)

	s.leave(1)
	assert.Equal(t, []int{0}, s.active, "edge 0 only ends at row 3")

	s.enter(3)
	s.leave(3)
	assert.Empty(t, s.active)
}

func TestActiveEdgeSetAdjacentRowsNeverActivate(t *testing.T) {
	// childRow 2, parentRow 3: no intermediate row exists at all.
	edges := []edge{{childRow: 2, parentRow: 3}}
	s := newActiveEdgeSet(edges)

	for row := 0; row < 5; row++ {
		s.enter(row)
		assert.Empty(t, s.active)
		s.leave(row)
	}
}

func TestActiveEdgeSetPreservesInsertionOrderAmongSurvivors(t *testing.T) {
	edges := []edge{
		{childRow: 0, parentRow: 10}, // intermediate rows 1-9
		{childRow: 0, parentRow: 5},  // intermediate rows 1-4
		{childRow: 2, parentRow: 10}, // intermediate rows 3-9
	}
	s := newActiveEdgeSet(edges)

	s.enter(1)
	assert.Equal(t, []int{0, 1}, s.active)

	s.enter(3)
	assert.Equal(t, []int{0, 1, 2}, s.active)

	s.leave(4) // edge 1 ends here
	assert.Equal(t, []int{0, 2}, s.active)
}
