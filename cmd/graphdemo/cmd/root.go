// Package cmd wires graphdemo's cobra commands: load a config, ingest a
// repository, run it through the layout engine, and print the result.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yourusername/ideagraph/internal/config"
	"github.com/yourusername/ideagraph/internal/obs"
)

var (
	verbose    bool
	debugTrace bool
	prettyLog  bool
	cfg        *config.Config
	log        zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "graphdemo",
	Short: "Render a git repository's commit graph with the IDEA-style layout engine",
	Long: `graphdemo loads a repository's commit history, runs it through the
three-phase layout engine (layout-index assignment, per-row column sweep,
segment/arrow generation), and prints the resulting graph to the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = obs.NewLogger(verbose, prettyLog)
		if debugTrace {
			log = log.Level(zerolog.TraceLevel)
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&debugTrace, "debug-trace", false, "trace per-row layout decisions")
	rootCmd.PersistentFlags().BoolVar(&prettyLog, "pretty", false, "use a human-readable console log writer instead of JSON")
}
