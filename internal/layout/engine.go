package layout

// Engine runs the three-phase layout pipeline of §2 over one commit
// snapshot at a time. It is safe to reuse across calls — per §9 the engine
// is allowed, not required, to retain its internal scratch slices between
// invocations — but every call recomputes the full batch from scratch; no
// state from a prior call influences a later one's output.
type Engine struct {
	// scratch is reused across calls to cut allocations for repeat layouts
	// of growing snapshots (the common incremental-reload case described in
	// §5). It carries no information between calls; everything is
	// re-sliced to length 0 (or overwritten in full) before use.
	scratch []RowLayout
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Layout runs the full pipeline described in §2 and returns one RowLayout
// per input commit, in the same order. It returns ErrInvalidConfiguration
// for a non-positive LaneWidth/RowHeight and ErrDuplicateIdentity if two
// commits share an identity; every other malformed-input condition is
// normalized silently per §7.
func (e *Engine) Layout(commits []Commit, mainChain map[CommitID]bool, cfg Config) ([]RowLayout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, nil
	}

	idx, err := buildRowIndex(commits)
	if err != nil {
		return nil, err
	}

	layoutIndex := assignLayoutIndices(commits, idx)
	colorIndex := assignColors(commits, layoutIndex, mainChain)
	edges := collectEdges(commits, idx, layoutIndex, colorIndex)

	t := cfg.thresholds()
	nodeColumn, tracks := sweepColumns(commits, layoutIndex, edges, t)

	rows := e.rowScratch(len(commits))
	for i := range commits {
		rows[i] = RowLayout{
			LayoutIndex: layoutIndex[i],
			Column:      nodeColumn[i],
			ColorIndex:  colorIndex[i],
		}
	}

	generateRows(rows, edges, nodeColumn, tracks, cfg, t)

	out := make([]RowLayout, len(rows))
	copy(out, rows)
	return out, nil
}

func (e *Engine) rowScratch(n int) []RowLayout {
	if cap(e.scratch) < n {
		e.scratch = make([]RowLayout, n)
	}
	rows := e.scratch[:n]
	for i := range rows {
		rows[i] = RowLayout{}
	}
	return rows
}
