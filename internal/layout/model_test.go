package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigThresholdsDefaultsToExpandedOrCollapsed(t *testing.T) {
	expanded := Config{ShowLongEdges: true, LaneWidth: 1, RowHeight: 1}
	collapsed := Config{ShowLongEdges: false, LaneWidth: 1, RowHeight: 1}

	assert.Equal(t, ExpandedThresholds, expanded.thresholds())
	assert.Equal(t, CollapsedThresholds, collapsed.thresholds())
}

func TestConfigThresholdsOverride(t *testing.T) {
	custom := Thresholds{ArrowEdge: 5, LongEdge: 10, VisiblePart: 2}
	cfg := Config{LaneWidth: 1, RowHeight: 1, Thresholds: custom}

	assert.Equal(t, custom, cfg.thresholds())
}

func TestConfigValidateRejectsNonPositiveGeometry(t *testing.T) {
	cases := []Config{
		{LaneWidth: 0, RowHeight: 1},
		{LaneWidth: 1, RowHeight: 0},
		{LaneWidth: -1, RowHeight: 1},
	}
	for _, cfg := range cases {
		assert.ErrorIs(t, cfg.validate(), ErrInvalidConfiguration)
	}
	assert.NoError(t, Config{LaneWidth: 1, RowHeight: 1}.validate())
}

func TestBuildRowIndexRejectsDuplicateIdentity(t *testing.T) {
	commits := []Commit{
		{ID: "a"},
		{ID: "b"},
		{ID: "a"},
	}
	_, err := buildRowIndex(commits)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestBuildRowIndexMapsEveryRow(t *testing.T) {
	commits := []Commit{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	idx, err := buildRowIndex(commits)
	assert.NoError(t, err)
	assert.Equal(t, 0, idx["a"])
	assert.Equal(t, 1, idx["b"])
	assert.Equal(t, 2, idx["c"])
}
