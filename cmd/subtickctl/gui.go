package main

import (
	"github.com/spf13/cobra"

	"github.com/subtickctl/subtickctl/engine"
)

var (
	guiScale        int
	guiTicksPerDraw int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open an ebiten window driven by the simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromFlags()
		eng, err := engine.NewEngine(cfg, log)
		if err != nil {
			return err
		}
		BuildDemoScenario(eng)
		return engine.RunGUI(eng, guiScale, guiTicksPerDraw, "subtickctl")
	},
}

func init() {
	guiCmd.Flags().IntVar(&guiScale, "scale", 5, "pixels per cell")
	guiCmd.Flags().IntVar(&guiTicksPerDraw, "ticks-per-draw", 2, "rendered frames per simulation tick")
}
