package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/subtickctl/subtickctl/engine"
)

var (
	cfgFile string
	vp      = viper.New()
	log     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subtickctl",
	Short: "Drive a subtick-scheduled cellular grid",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			vp.SetConfigFile(cfgFile)
			if err := vp.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
		}
		log = engine.NewLogger()
		if vp.GetBool("trace") {
			// Subtick tracing is logged at debug level, which the
			// production logger drops.
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			if l, err := zcfg.Build(); err == nil {
				log = l
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a config file (TOML, YAML, JSON)")
	flags.Int("width", 150, "grid width")
	flags.Int("height", 150, "grid height")
	flags.Int("chunk-size", engine.DefaultChunkSize, "activity-tracking chunk size")
	flags.Int("opt-size", 4, "per-cell optimization scratch bytes")
	flags.Int("worker-limit", 0, "max concurrent subtick tasks (0 = unlimited)")
	flags.Bool("single-threaded", false, "run every subtick and reset on the calling goroutine")
	flags.Bool("turbo", false, "skip per-tick reset and generator bookkeeping")
	flags.Bool("trace", false, "log every subtick as it runs")

	for _, name := range []string{
		"width", "height", "chunk-size", "opt-size",
		"worker-limit", "single-threaded", "turbo", "trace",
	} {
		_ = vp.BindPFlag(name, flags.Lookup(name))
	}
	vp.SetEnvPrefix("SUBTICKCTL")
	vp.AutomaticEnv()

	rootCmd.AddCommand(runCmd, guiCmd, benchCmd)
}

// configFromFlags builds an engine.Config from whatever combination of
// flags, environment variables and config file viper resolved.
func configFromFlags() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Width = vp.GetInt("width")
	cfg.Height = vp.GetInt("height")
	cfg.ChunkSize = vp.GetInt("chunk-size")
	cfg.OptSize = vp.GetInt("opt-size")
	cfg.WorkerLimit = vp.GetInt("worker-limit")
	cfg.SingleThreaded = vp.GetBool("single-threaded")
	cfg.Turbo = vp.GetBool("turbo")
	cfg.TraceSubticks = vp.GetBool("trace")
	return cfg
}
