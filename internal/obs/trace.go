// Package obs holds the ambient logging setup shared by the ingestion,
// layout-invocation, and rendering layers. The layout engine itself stays
// free of any logging dependency; obs wraps the callers around it.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog.Logger. debug raises the level
// to debug (the engine invocation's per-phase tracing lives at that level);
// pretty switches to zerolog's console writer for an interactive terminal
// session instead of the default JSON stream.
func NewLogger(debug, pretty bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Tracer records per-invocation layout diagnostics: a row count and an edge
// count per phase, and each row's resolved column/color. It does not
// measure timing. It is
// the concrete form a caller's debug-trace flag takes — the engine package
// itself never imports obs or zerolog.
type Tracer struct {
	log     zerolog.Logger
	enabled bool
}

// NewTracer returns a Tracer. When enabled is false every method is a no-op,
// so callers can construct one unconditionally and branch only once.
func NewTracer(log zerolog.Logger, enabled bool) *Tracer {
	return &Tracer{log: log.With().Str("component", "layout-trace").Logger(), enabled: enabled}
}

// Phase logs one pipeline phase's headline row and edge counts.
func (t *Tracer) Phase(name string, rows, edges int) {
	if !t.enabled {
		return
	}
	t.log.Debug().Str("phase", name).Int("rows", rows).Int("edges", edges).Msg("layout phase complete")
}

// Row logs a single row's resolved column/color, gated further behind
// trace level since a large history would otherwise flood the log.
func (t *Tracer) Row(row, column, colorIndex, layoutIndex int) {
	if !t.enabled {
		return
	}
	t.log.Trace().
		Int("row", row).
		Int("column", column).
		Int("color_index", colorIndex).
		Int("layout_index", layoutIndex).
		Msg("row placed")
}
