// Package render draws layout.RowLayout rows as terminal text, in the
// glyph vocabulary lazygit-style graph renderers use. Unlike the graph
// package it's grounded on, it never computes lanes itself — it only turns
// the columns, segments, and arrows the layout engine already produced into
// characters and lipgloss styling.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/ideagraph/internal/layout"
)

const (
	CommitSymbol  = "●"
	LineVertical  = "│"
	LineCornerTR  = "┌"
	LineCornerBR  = "└"
	LineCornerTL  = "┐"
	LineCornerBL  = "┘"
	LineMergeDown = "┬"
	LineMergeUp   = "┴"
	ArrowDownChar = "↓"
	ArrowUpChar   = "↑"

	// laneSpacing is the padding printed after every lane glyph, matching
	// the gutter width the graph package's LaneSpacing constant describes.
	laneSpacing = 1
)

// Row is one line to draw: the layout result for a commit plus the display
// text a caller (gitlog's *Meta, typically) has already formatted.
type Row struct {
	Layout  layout.RowLayout
	Hash    string
	Author  string
	Date    time.Time
	Subject string
}

// Renderer draws Rows into styled terminal lines.
type Renderer struct {
	theme Theme
	cfg   layout.Config
}

// New returns a Renderer using cfg's geometry to map segment/arrow x
// coordinates back onto integer lane columns.
func New(theme Theme, cfg layout.Config) *Renderer {
	return &Renderer{theme: theme, cfg: cfg}
}

func (r *Renderer) columnOf(x float64) int {
	if r.cfg.LaneWidth <= 0 {
		return 0
	}
	col := (x - r.cfg.LeftMargin - r.cfg.LaneWidth/2) / r.cfg.LaneWidth
	return int(col + 0.5)
}

// RenderRow draws one row's graph gutter plus its commit text.
func (r *Renderer) RenderRow(row Row) string {
	gutter := r.renderGutter(row.Layout)
	return gutter + r.renderCommitText(row)
}

func (r *Renderer) renderGutter(rl layout.RowLayout) string {
	lanes := rl.Column
	for _, seg := range rl.Segments {
		if c := r.columnOf(seg.XTop); c > lanes {
			lanes = c
		}
		if c := r.columnOf(seg.XBottom); c > lanes {
			lanes = c
		}
	}
	for _, a := range rl.Arrows {
		if c := r.columnOf(a.X); c > lanes {
			lanes = c
		}
	}
	lanes++

	cells := make([]string, lanes)
	colors := make([]lipgloss.Color, lanes)
	for i := range cells {
		cells[i] = " "
		colors[i] = r.theme.Background
	}

	for _, seg := range rl.Segments {
		top, bottom := r.columnOf(seg.XTop), r.columnOf(seg.XBottom)
		glyph := LineVertical
		switch {
		case top < bottom:
			glyph = LineCornerTL
		case top > bottom:
			glyph = LineCornerTR
		}
		// One terminal cell can't show a column shift mid-row; the bottom
		// endpoint is where the row's own node (or the next row) sits, so
		// that's the column a diagonal segment is drawn under.
		if bottom >= 0 && bottom < lanes {
			cells[bottom] = glyph
			colors[bottom] = r.theme.laneColor(seg.ColorIndex)
		}
	}

	if rl.Column >= 0 && rl.Column < lanes {
		cells[rl.Column] = CommitSymbol
		colors[rl.Column] = r.theme.laneColor(rl.ColorIndex)
	}

	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(cell))
		b.WriteString(strings.Repeat(" ", laneSpacing))
	}
	for _, a := range rl.Arrows {
		col := r.columnOf(a.X)
		if col < 0 || col >= lanes {
			continue
		}
		glyph := ArrowDownChar
		if a.Direction == layout.ArrowUp {
			glyph = ArrowUpChar
		}
		b.WriteString(lipgloss.NewStyle().Foreground(r.theme.laneColor(a.ColorIndex)).Render(glyph))
	}

	return b.String()
}

func (r *Renderer) renderCommitText(row Row) string {
	hashStyle := lipgloss.NewStyle().Foreground(r.theme.CommitHash)
	subjectStyle := lipgloss.NewStyle().Foreground(r.theme.Foreground)
	dateStyle := lipgloss.NewStyle().Foreground(r.theme.Subtext)

	shortHash := row.Hash
	if len(shortHash) > 7 {
		shortHash = shortHash[:7]
	}

	return fmt.Sprintf(" %s %s %s",
		hashStyle.Render(shortHash),
		subjectStyle.Render(row.Subject),
		dateStyle.Render(row.Date.Format("2006-01-02")),
	)
}
