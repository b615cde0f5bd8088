// Package config loads graphdemo's on-disk configuration: the layout
// geometry/mode the engine runs with, and the ingestion/performance
// settings that govern how much history gets pulled into one batch.
package config

// Config is the top-level, YAML-backed configuration tree.
type Config struct {
	UI          UIConfig          `yaml:"ui"`
	Layout      LayoutConfig      `yaml:"layout"`
	Performance PerformanceConfig `yaml:"performance"`
	Keybindings KeybindingsConfig `yaml:"keybindings"`
}

// UIConfig holds the display settings. ShowLongEdges selects the engine's
// long-edge visibility mode; Theme and DateFormat are loaded but not read by
// the renderer, which always uses the Catppuccin Mocha palette and a
// YYYY-MM-DD date.
type UIConfig struct {
	Theme         string `yaml:"theme"`
	DateFormat    string `yaml:"date_format" mapstructure:"date_format"`
	ShowLongEdges bool   `yaml:"show_long_edges" mapstructure:"show_long_edges"`
}

// LayoutConfig carries the geometry the layout engine's Config needs.
type LayoutConfig struct {
	LaneWidth  float64 `yaml:"lane_width" mapstructure:"lane_width"`
	RowHeight  float64 `yaml:"row_height" mapstructure:"row_height"`
	LeftMargin float64 `yaml:"left_margin" mapstructure:"left_margin"`
}

// PerformanceConfig bounds how much history one invocation processes.
type PerformanceConfig struct {
	MaxCommits        int `yaml:"max_commits" mapstructure:"max_commits"`
	LazyLoadThreshold int `yaml:"lazy_load_threshold" mapstructure:"lazy_load_threshold"`
}

// KeybindingsConfig lists scroll/quit key bindings. They are loaded but
// nothing in graphdemo reads them: it prints one static frame and handles
// no keys.
type KeybindingsConfig struct {
	Quit     []string `yaml:"quit"`
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Top      []string `yaml:"top"`
	Bottom   []string `yaml:"bottom"`
	PageUp   []string `yaml:"page_up" mapstructure:"page_up"`
	PageDown []string `yaml:"page_down" mapstructure:"page_down"`
}
