package render

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette the terminal renderer paints rows with. The
// graph lanes cycle through Lanes; everything else is a single fixed color.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtext    lipgloss.Color
	CommitHash lipgloss.Color
	MainLane   lipgloss.Color
	Lanes      []lipgloss.Color
}

// CatppuccinMocha mirrors the palette graphdemo ships by default.
func CatppuccinMocha() Theme {
	return Theme{
		Background: lipgloss.Color("#1e1e2e"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Subtext:    lipgloss.Color("#a6adc8"),
		CommitHash: lipgloss.Color("#fab387"),
		MainLane:   lipgloss.Color("#a6e3a1"),
		Lanes: []lipgloss.Color{
			lipgloss.Color("#89b4fa"),
			lipgloss.Color("#cba6f7"),
			lipgloss.Color("#94e2d5"),
			lipgloss.Color("#f9e2af"),
			lipgloss.Color("#f38ba8"),
		},
	}
}

// laneColor resolves a layout color index to an actual terminal color.
// Index 0 is always the main chain; everything else cycles through Lanes.
func (th Theme) laneColor(colorIndex int) lipgloss.Color {
	if colorIndex == 0 {
		return th.MainLane
	}
	if len(th.Lanes) == 0 {
		return th.Foreground
	}
	return th.Lanes[(colorIndex-1)%len(th.Lanes)]
}
