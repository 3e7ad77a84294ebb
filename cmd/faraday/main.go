package main

import (
	"os"

	"github.com/san-kum/faraday/internal/config"
	"github.com/san-kum/faraday/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	turns      int
	speed      float64
	amplitude  float64
	frameRate  int
	theme      string
	playing    bool
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "faraday",
		Short:         "electromagnetic induction lab",
		Long:          "Move a bar magnet through a coil and watch flux and induced EMF respond.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml), defaults to ./"+config.DefaultFile+" when present")
	pf.StringVar(&preset, "preset", "", "start from a preset ("+joinPresets()+")")
	pf.IntVar(&turns, "turns", 5, "coil turns (1-20)")
	pf.Float64Var(&speed, "speed", 1, "oscillation speed (0.5-3.0)")
	pf.Float64Var(&amplitude, "amplitude", 300, "oscillation amplitude")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "tick rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+joinThemes()+")")
	pf.BoolVar(&playing, "play", false, "start with the oscillator running")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newLiveCmd(),
		newRunCmd(),
		newSweepCmd(),
		newCompareCmd(),
		newAnalyzeCmd(),
		newScriptCmd(),
		newScanCmd(),
		newExplainCmd(),
		newServeCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	tu, err := newTutor(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if preset != "" {
		return viz.RunLab(cfg, tu, logger)
	}
	return viz.RunInteractive(cfg, tu, logger)
}
