package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/faraday/internal/automation"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/spf13/cobra"
)

func newScriptCmd() *cobra.Command {
	o := &scenarioOpts{}
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml script of scenarios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()

			s, err := automation.LoadScript(args[0])
			if err != nil {
				return err
			}
			if s.Description != "" {
				logger.Info(s.Description, "script", s.Name)
			}
			traces, err := automation.RunScript(cmd.Context(), s, cfg.NewRunner(), o.scenario(cfg), logger)
			for i, tr := range traces {
				fmt.Printf("step %d: %s N=%d frames=%d skipped=%d\n", i+1, tr.Scenario.Mode, tr.Scenario.Turns, len(tr.Frames), tr.Skipped)
			}
			return err
		},
	}
	o.bind(cmd, string(sim.ModeOscillate), 5)
	return cmd
}

func newScanCmd() *cobra.Command {
	o := &scenarioOpts{}
	scan := automation.Scan{}
	var param string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "repeat a scenario across a range of turns or speed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			scan.Param = automation.Param(param)
			results, err := automation.RunScan(cmd.Context(), scan, cfg.NewRunner(), o.scenario(cfg))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\tPEAK EMF\tAT X\tRMS EMF\tMAX FLUX\n", param)
			for _, r := range results {
				fmt.Fprintf(w, "%.2f\t%.3f\t%.1f\t%.3f\t%.2f\n", r.Value, r.PeakEMF, r.PeakAt, r.RMSEMF, r.MaxFlux)
			}
			return w.Flush()
		},
	}
	o.bind(cmd, string(sim.ModeSweep), 1)
	cmd.Flags().StringVar(&param, "param", string(automation.ParamTurns), "control to vary (turns, speed)")
	cmd.Flags().Float64Var(&scan.Min, "min", 1, "first value")
	cmd.Flags().Float64Var(&scan.Max, "max", 20, "last value")
	cmd.Flags().IntVar(&scan.Steps, "steps", 5, "number of values")
	return cmd
}
