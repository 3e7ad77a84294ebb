package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/faraday/internal/analysis"
	"github.com/san-kum/faraday/internal/config"
	"github.com/san-kum/faraday/internal/export"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/spf13/cobra"
)

// scenarioOpts holds the flags shared by the headless commands. Each
// command binds its own copy.
type scenarioOpts struct {
	mode     string
	duration float64
	from     float64
	to       float64
	jitter   int
	out      string
	format   string
	portrait string
}

func (o *scenarioOpts) bind(cmd *cobra.Command, defMode string, defDuration float64) {
	cmd.Flags().StringVar(&o.mode, "mode", defMode, "magnet motion (sweep, oscillate)")
	cmd.Flags().Float64Var(&o.duration, "time", defDuration, "duration in seconds")
	cmd.Flags().Float64Var(&o.from, "from", -150, "sweep start position")
	cmd.Flags().Float64Var(&o.to, "to", 0, "sweep end position")
	cmd.Flags().IntVar(&o.jitter, "jitter", 0, "repeat every nth timestamp")
}

func (o *scenarioOpts) scenario(cfg *config.Config) sim.Scenario {
	return sim.Scenario{
		Name:     o.mode,
		Mode:     sim.Mode(o.mode),
		FPS:      float64(cfg.Controls.FPS),
		Duration: o.duration,
		Turns:    cfg.Controls.Turns,
		Speed:    cfg.Controls.Speed,
		From:     o.from,
		To:       o.to,
		Jitter:   o.jitter,
	}
}

func newRunCmd() *cobra.Command {
	o := &scenarioOpts{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless scenario and export the trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, o)
		},
	}
	o.bind(cmd, string(sim.ModeOscillate), 5)
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (.csv, .json, .png, .svg)")
	cmd.Flags().StringVar(&o.format, "format", "csv", "stdout format when --out is not set (csv, json)")
	return cmd
}

func runScenario(cmd *cobra.Command, o *scenarioOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sc := o.scenario(cfg)
	start := time.Now()
	tr, err := cfg.NewRunner().Run(cmd.Context(), sc)
	if err != nil {
		return err
	}
	logger.Info("run complete", "mode", sc.Mode, "frames", len(tr.Frames), "skipped", tr.Skipped, "elapsed", time.Since(start))

	if o.out != "" {
		if err := export.ToFile(o.out, tr); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info("wrote trace", "path", o.out)
		return nil
	}

	f, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if f == export.FormatPNG || f == export.FormatSVG {
		return fmt.Errorf("%s needs --out", f)
	}
	return export.Write(os.Stdout, tr, f)
}

func newSweepCmd() *cobra.Command {
	o := &scenarioOpts{mode: string(sim.ModeSweep)}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the magnet toward the coil and chart flux and EMF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, o)
		},
	}
	cmd.Flags().Float64Var(&o.duration, "time", 1, "sweep duration in seconds")
	cmd.Flags().Float64Var(&o.from, "from", -150, "start position")
	cmd.Flags().Float64Var(&o.to, "to", 0, "end position")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "also write a chart (.png, .svg)")
	return cmd
}

func runSweep(cmd *cobra.Command, o *scenarioOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc := sim.SweepScenario()
	sc.FPS = float64(cfg.Controls.FPS)
	sc.Duration = o.duration
	sc.Turns = cfg.Controls.Turns
	sc.From, sc.To = o.from, o.to

	tr, err := cfg.NewRunner().Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	emf := tr.Column(func(f sim.Frame) float64 { return f.EMF })
	flux := tr.Column(func(f sim.Frame) float64 { return f.Flux })
	if len(emf) < 2 {
		return fmt.Errorf("sweep too short: %d frames", len(emf))
	}

	fmt.Printf("sweep %.0f -> %.0f over %.2fs, N=%d\n\n", sc.From, sc.To, sc.Duration, sc.Turns)
	fmt.Println(asciigraph.Plot(flux,
		asciigraph.Height(8),
		asciigraph.Width(70),
		asciigraph.SeriesColors(asciigraph.Cyan),
		asciigraph.Caption("flux (Wb)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(emf,
		asciigraph.Height(8),
		asciigraph.Width(70),
		asciigraph.SeriesColors(asciigraph.Yellow),
		asciigraph.Caption("emf (V)"),
	))

	peak := analysis.Peak(tr)
	expected := cfg.Params().PeakSlopePosition()
	fmt.Printf("\npeak emf: %.3f V at x=%.1f (t=%.3fs)\n", peak.EMF, peak.Position, peak.Time)
	fmt.Printf("steepest flux at x=±%.1f\n", expected)

	if o.out != "" {
		if err := export.ToFile(o.out, tr); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("chart: %s\n", o.out)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	o := &scenarioOpts{}
	cmd := &cobra.Command{
		Use:   "compare [turns...]",
		Short: "run one scenario for several coil turn counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, o)
		},
	}
	o.bind(cmd, string(sim.ModeOscillate), 5)
	return cmd
}

func parseTurns(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("turns %q: %w", a, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func runCompare(cmd *cobra.Command, args []string, o *scenarioOpts) error {
	counts, err := parseTurns(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc := o.scenario(cfg)
	start := time.Now()
	traces, err := sim.NewEnsemble(cfg.NewRunner(), counts).Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d coils (%s, %.1fs, speed %.1f) in %v\n\n", len(counts), sc.Mode, sc.Duration, sc.Speed, time.Since(start).Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TURNS\tPEAK EMF\tAT X\tRMS EMF\tEMF HZ")
	for _, tr := range traces {
		peak := analysis.Peak(tr)
		m := export.Metrics(tr)
		fmt.Fprintf(w, "%d\t%.3f\t%.1f\t%.3f\t%.2f\n",
			tr.Scenario.Turns, peak.EMF, peak.Position, m["rms_emf"], m["emf_hz"])
	}
	return w.Flush()
}

func newAnalyzeCmd() *cobra.Command {
	o := &scenarioOpts{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum, statistics and EMF portrait of a headless run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, o)
		},
	}
	o.bind(cmd, string(sim.ModeOscillate), 10)
	cmd.Flags().StringVar(&o.portrait, "portrait", "", "write the EMF-position portrait (.png, .svg)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, o *scenarioOpts) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := cfg.NewRunner().Run(cmd.Context(), o.scenario(cfg))
	if err != nil {
		return err
	}
	if len(tr.Frames) < 2 {
		return fmt.Errorf("run too short: %d frames", len(tr.Frames))
	}

	rate := float64(cfg.Controls.FPS)
	emf := tr.Column(func(f sim.Frame) float64 { return f.EMF })
	pos := tr.Column(func(f sim.Frame) float64 { return f.Position })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMEAN\tSTD\tMIN\tMAX\tRMS\tHZ")
	for _, row := range []struct {
		name   string
		values []float64
	}{
		{"position", pos},
		{"flux", tr.Column(func(f sim.Frame) float64 { return f.Flux })},
		{"emf", emf},
	} {
		s := analysis.Summarize(row.values)
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			row.name, s.Mean, s.Std, s.Min, s.Max, s.RMS, analysis.DominantFrequency(row.values, rate))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	freqs, power := analysis.Spectrum(emf, rate)
	if len(power) > 1 {
		n := len(power) / 4
		if n < 2 {
			n = len(power)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(power[:n],
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("emf power spectrum, 0-%.1f hz", freqs[n-1])),
		))
	}

	fmt.Printf("\nemf vs position\n%s\n", analysis.EMFPortrait(tr).ASCII(60, 16))
	if c := analysis.Crossings(tr); len(c) > 0 {
		fmt.Printf("coil centre crossings: %d, first at %.3fs\n", len(c), c[0])
	}

	if o.portrait != "" {
		f, err := export.FormatFromPath(o.portrait)
		if err != nil {
			return err
		}
		file, err := os.Create(o.portrait)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.WritePortrait(file, analysis.EMFPortrait(tr), f); err != nil {
			return err
		}
		fmt.Printf("portrait: %s\n", o.portrait)
	}
	return nil
}
