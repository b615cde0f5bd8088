package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/ideagraph/internal/gitlog"
	"github.com/yourusername/ideagraph/internal/layout"
	"github.com/yourusername/ideagraph/internal/obs"
	"github.com/yourusername/ideagraph/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Render the commit graph of the repository at path (default: current directory)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	repo, err := gitlog.OpenRepository(path, log)
	if err != nil {
		return err
	}

	commits, err := repo.GetCommits(cfg.Performance.MaxCommits)
	if err != nil {
		return err
	}
	commits = repo.WithUncommitted(commits)
	if len(commits) == 0 {
		fmt.Println("no commits to render")
		return nil
	}

	mainChain := gitlog.FirstParentChain(commits, commits[0].ID)

	tracer := obs.NewTracer(log, debugTrace)
	engineCfg := cfg.EngineConfig()
	rows, err := layout.NewEngine().Layout(commits, mainChain, engineCfg)
	if err != nil {
		return fmt.Errorf("laying out graph: %w", err)
	}
	edgeCount := 0
	for _, rl := range rows {
		edgeCount += len(rl.Segments)
	}
	tracer.Phase("layout", len(rows), edgeCount)

	renderRows := make([]render.Row, len(rows))
	for i, rl := range rows {
		meta, _ := commits[i].Meta.(*gitlog.Meta)
		row := render.Row{Layout: rl}
		if meta != nil {
			row.Hash = meta.Hash
			row.Author = meta.Author
			row.Date = meta.Date
			row.Subject = meta.Subject
		}
		renderRows[i] = row
		tracer.Row(i, rl.Column, rl.ColorIndex, rl.LayoutIndex)
	}

	theme := render.CatppuccinMocha()
	lines := render.New(theme, engineCfg).RenderAll(renderRows)
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
