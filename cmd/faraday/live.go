package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/faraday/internal/sim"
	"github.com/san-kum/faraday/internal/stream"
	"github.com/san-kum/faraday/internal/tui"
	"github.com/spf13/cobra"
)

type liveOpts struct {
	runFor     time.Duration
	renderRate int
	addr       string
}

// signalContext cancels on interrupt and, when d > 0, after d.
func signalContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if d <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	return ctx, func() {
		cancel()
		stop()
	}
}

func newLiveCmd() *cobra.Command {
	o := &liveOpts{}
	cmd := &cobra.Command{
		Use:   "live",
		Short: "run the oscillating magnet with a redrawn terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, o)
		},
	}
	cmd.Flags().DurationVar(&o.runFor, "for", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().IntVar(&o.renderRate, "render-fps", 20, "redraw rate")
	return cmd
}

func runLive(cmd *cobra.Command, o *liveOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Controls.Playing = true
	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	session := cfg.NewSession()
	renderer := tui.NewLiveRenderer(os.Stdout, cfg.Travel(), o.renderRate, cfg.Display.Theme)
	session.AddObserver(renderer)

	ctx, cancel := signalContext(cmd.Context(), o.runFor)
	defer cancel()

	renderer.Start()
	defer renderer.Stop()

	session.Start(0)
	err = sim.NewDriver(cfg.Controls.FPS).Run(ctx, func(now float64) { session.Tick(now) })
	logger.Info("live view stopped", "ticks", session.Ticks(), "frames", renderer.Frames(), "skipped", session.Skipped())
	return ignoreStop(err)
}

func newServeCmd() *cobra.Command {
	o := &liveOpts{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the lab headless and stream snapshots over a websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, o)
		},
	}
	cmd.Flags().StringVar(&o.addr, "addr", "", "listen address (default from config)")
	cmd.Flags().DurationVar(&o.runFor, "for", 0, "stop after this long (0 runs until interrupted)")
	return cmd
}

func runServe(cmd *cobra.Command, o *liveOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if o.addr != "" {
		cfg.Stream.Addr = o.addr
	}
	cfg.Controls.Playing = true
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	hub := stream.NewHub(logger)
	session := cfg.NewSession()
	session.AddObserver(hub)

	ctx, cancel := signalContext(cmd.Context(), o.runFor)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		session.Start(0)
		errc <- sim.NewDriver(cfg.Controls.FPS).Run(ctx, func(now float64) { session.Tick(now) })
	}()

	serveErr := stream.Serve(ctx, cfg.Stream.Addr, hub)
	cancel()
	driveErr := <-errc

	logger.Info("feed stopped", "ticks", session.Ticks(), "dropped", hub.Dropped())
	if serveErr != nil {
		return serveErr
	}
	return ignoreStop(driveErr)
}
