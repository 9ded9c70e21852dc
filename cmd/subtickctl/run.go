package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/subtickctl/subtickctl/engine"
)

var runTicks int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless for a fixed number of ticks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromFlags()
		eng, err := engine.NewEngine(cfg, log)
		if err != nil {
			return err
		}
		BuildDemoScenario(eng)

		start := time.Now()
		eng.Run(runTicks)
		elapsed := time.Since(start)

		log.Info("run complete",
			zap.Int("ticks", eng.TickCount()),
			zap.Duration("elapsed", elapsed),
		)
		fmt.Printf("completed %d ticks in %s\n", eng.TickCount(), elapsed)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 100, "number of ticks to run")
}
