package main

import (
	"context"
	"fmt"

	"github.com/san-kum/faraday/internal/tutor"
	"github.com/spf13/cobra"
)

type explainOpts struct {
	position float64
	velocity float64
}

func newExplainCmd() *cobra.Command {
	o := &explainOpts{}
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "ask the tutor about the magnet at a given position and velocity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, o)
		},
	}
	cmd.Flags().Float64Var(&o.position, "position", -106, "magnet position")
	cmd.Flags().Float64Var(&o.velocity, "velocity", 150, "magnet velocity (units/s)")
	return cmd
}

func runExplain(cmd *cobra.Command, o *explainOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tu, err := newTutor(ctx, cfg, logger)
	if err != nil {
		return err
	}

	p := cfg.Params()
	req := tutor.Request{
		EMF:      p.EMF(o.position, o.velocity, cfg.Controls.Turns),
		Flux:     p.Flux(o.position),
		Velocity: o.velocity,
		Turns:    cfg.Controls.Turns,
	}
	fmt.Printf("emf %.2f V, flux %.2f Wb, velocity %.1f, N=%d\n\n", req.EMF, req.Flux, req.Velocity, req.Turns)
	fmt.Println(tu.Explain(ctx, req))
	return nil
}
