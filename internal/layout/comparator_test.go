package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareEdgeNodePlacesHigherLayoutIndexEdgeToTheRight(t *testing.T) {
	n := nodeElement(5, 2)
	e := edgeElement(0, edge{childRow: 1, parentRow: 9, upLI: 3, downLI: 3})

	assert.Greater(t, compareEdgeNode(e, n), 0)
}

func TestCompareEdgeNodeFallsBackToRowWhenLayoutIndicesTie(t *testing.T) {
	n := nodeElement(5, 2)
	eEarlier := edgeElement(0, edge{childRow: 1, parentRow: 9, upLI: 2, downLI: 2})
	eLater := edgeElement(1, edge{childRow: 6, parentRow: 9, upLI: 2, downLI: 2})

	assert.Less(t, compareEdgeNode(eEarlier, n), 0)
	assert.Greater(t, compareEdgeNode(eLater, n), 0)
}

func TestCompareIsAntiSymmetricForNodeAndEdge(t *testing.T) {
	n := nodeElement(3, 1)
	e := edgeElement(0, edge{childRow: 0, parentRow: 9, upLI: 4, downLI: 4})

	a := compare(n, e)
	b := compare(e, n)
	assert.Equal(t, a, -b)
}

// Two edges sharing the same up_row are ordered by a reduction to their
// down_row, via a virtual node — this is the tie-break §9's Open Question
// decision resolves by active-set insertion order when even that ties.
func TestCompareEdgeVsEdgeSameUpRowOrdersByDownRow(t *testing.T) {
	short := edgeElement(0, edge{childRow: 2, parentRow: 4, upLI: 1, downLI: 1})
	long := edgeElement(1, edge{childRow: 2, parentRow: 9, upLI: 1, downLI: 2})

	assert.NotEqual(t, 0, compare(short, long))
	assert.Equal(t, compare(short, long), -compare(long, short))
}

func TestCompareEdgeVsEdgeDifferentUpRow(t *testing.T) {
	earlier := edgeElement(0, edge{childRow: 1, parentRow: 9, upLI: 1, downLI: 1})
	later := edgeElement(1, edge{childRow: 3, parentRow: 9, upLI: 2, downLI: 2})

	assert.NotEqual(t, 0, compare(earlier, later))
	assert.Equal(t, compare(earlier, later), -compare(later, earlier))
}

func TestCompareNodeVsNodeIsDefensivelyEqual(t *testing.T) {
	a := nodeElement(1, 1)
	b := nodeElement(2, 1)
	assert.Equal(t, 0, compare(a, b))
}
