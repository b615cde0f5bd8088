package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/ideagraph/internal/layout"
)

func testCfg() layout.Config {
	return layout.Config{LaneWidth: 2, RowHeight: 1, LeftMargin: 1}
}

func TestRenderRowPlacesCommitSymbolAtItsColumn(t *testing.T) {
	r := New(CatppuccinMocha(), testCfg())
	row := Row{
		Layout:  layout.RowLayout{Column: 0, ColorIndex: 0},
		Hash:    "abcdef1234567890",
		Subject: "initial commit",
		Date:    time.Unix(0, 0),
	}

	out := r.RenderRow(row)
	assert.Contains(t, out, CommitSymbol)
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "initial commit")
}

func TestRenderAllMatchesSequentialForSmallBatches(t *testing.T) {
	r := New(CatppuccinMocha(), testCfg())
	rows := make([]Row, 5)
	for i := range rows {
		rows[i] = Row{Layout: layout.RowLayout{Column: 0}, Hash: "deadbeef", Subject: "x"}
	}

	got := r.RenderAll(rows)
	assert.Len(t, got, 5)
	for i, row := range rows {
		assert.Equal(t, r.RenderRow(row), got[i])
	}
}

func TestRenderAllParallelPathMatchesSequentialOutput(t *testing.T) {
	r := New(CatppuccinMocha(), testCfg())
	rows := make([]Row, 250)
	for i := range rows {
		rows[i] = Row{Layout: layout.RowLayout{Column: i % 3}, Hash: "cafebabe", Subject: "y"}
	}

	got := r.RenderAll(rows)
	assert.Len(t, got, 250)
	for i, row := range rows {
		assert.Equal(t, r.RenderRow(row), got[i])
	}
}

func TestRenderAllEmpty(t *testing.T) {
	r := New(CatppuccinMocha(), testCfg())
	assert.Nil(t, r.RenderAll(nil))
}
