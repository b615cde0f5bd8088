package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/yourusername/ideagraph/internal/layout"
)

// DefaultConfig returns graphdemo's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:         "catppuccin-mocha",
			DateFormat:    "relative",
			ShowLongEdges: false,
		},
		Layout: LayoutConfig{
			LaneWidth:  2,
			RowHeight:  1,
			LeftMargin: 1,
		},
		Performance: PerformanceConfig{
			MaxCommits:        1000,
			LazyLoadThreshold: 100,
		},
		Keybindings: KeybindingsConfig{
			Quit:     []string{"q", "ctrl+c"},
			Up:       []string{"k", "up"},
			Down:     []string{"j", "down"},
			Top:      []string{"g", "home"},
			Bottom:   []string{"G", "end"},
			PageUp:   []string{"ctrl+u"},
			PageDown: []string{"ctrl+d"},
		},
	}
}

// Load reads ~/.config/graphdemo/config.yaml over the defaults, via viper.
// A missing config file is not an error — the defaults stand on their own.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	configPath := filepath.Join(home, ".config", "graphdemo")
	viper.AddConfigPath(configPath)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, err
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EngineConfig converts the on-disk geometry into the engine's own Config,
// folding in the caller's long-edge-visibility mode.
func (c *Config) EngineConfig() layout.Config {
	return layout.Config{
		ShowLongEdges: c.UI.ShowLongEdges,
		LaneWidth:     c.Layout.LaneWidth,
		RowHeight:     c.Layout.RowHeight,
		LeftMargin:    c.Layout.LeftMargin,
	}
}
