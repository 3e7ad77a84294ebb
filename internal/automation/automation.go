// Package automation runs batches of headless scenarios described in YAML
// and scans one control across a range.
package automation

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/faraday/internal/analysis"
	"github.com/san-kum/faraday/internal/export"
	"github.com/san-kum/faraday/internal/sim"
	"gopkg.in/yaml.v3"
)

// Script is a named sequence of runs.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single run. Zero fields take the base scenario's value.
type Step struct {
	Mode     string  `yaml:"mode"`
	Turns    int     `yaml:"turns"`
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	FPS      float64 `yaml:"fps"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Jitter   int     `yaml:"jitter"`
	SaveAs   string  `yaml:"save_as"`
}

func (st Step) scenario(base sim.Scenario) sim.Scenario {
	sc := base
	if st.Mode != "" {
		sc.Mode = sim.Mode(st.Mode)
		sc.Name = st.Mode
	}
	if st.Turns != 0 {
		sc.Turns = st.Turns
	}
	if st.Speed != 0 {
		sc.Speed = st.Speed
	}
	if st.Duration != 0 {
		sc.Duration = st.Duration
	}
	if st.FPS != 0 {
		sc.FPS = st.FPS
	}
	if st.From != 0 || st.To != 0 {
		sc.From, sc.To = st.From, st.To
	}
	sc.Jitter = st.Jitter
	return sc
}

// LoadScript loads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%s: no steps", path)
	}
	return &s, nil
}

// RunScript executes every step in order, writing traces for steps with
// save_as set. It stops at the first failing step and returns the traces
// completed so far.
func RunScript(ctx context.Context, s *Script, r *sim.Runner, base sim.Scenario, logger *log.Logger) ([]*sim.Trace, error) {
	if logger == nil {
		logger = log.Default()
	}
	traces := make([]*sim.Trace, 0, len(s.Steps))

	for i, step := range s.Steps {
		sc := step.scenario(base)
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(s.Steps)), "mode", sc.Mode, "turns", sc.Turns)

		tr, err := r.Run(ctx, sc)
		if err != nil {
			return traces, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.SaveAs != "" {
			if err := export.ToFile(step.SaveAs, tr); err != nil {
				return traces, fmt.Errorf("step %d save: %w", i+1, err)
			}
			logger.Debug("saved", "path", step.SaveAs)
		}
		traces = append(traces, tr)
	}
	return traces, nil
}

// Param names the control a scan varies.
type Param string

const (
	ParamTurns Param = "turns"
	ParamSpeed Param = "speed"
)

// Scan runs a scenario across evenly spaced values of one control.
type Scan struct {
	Param    Param
	Min, Max float64
	Steps    int
}

// ScanResult summarises one scan point.
type ScanResult struct {
	Value   float64
	PeakEMF float64
	PeakAt  float64
	RMSEMF  float64
	MaxFlux float64
	Frames  int
	Skipped int
}

func (s Scan) values() ([]float64, error) {
	if s.Steps < 1 {
		return nil, fmt.Errorf("scan needs at least one step, got %d", s.Steps)
	}
	if s.Max < s.Min {
		return nil, fmt.Errorf("scan range [%g, %g] is empty", s.Min, s.Max)
	}
	if s.Steps == 1 {
		return []float64{s.Min}, nil
	}
	out := make([]float64, s.Steps)
	step := (s.Max - s.Min) / float64(s.Steps-1)
	for i := range out {
		out[i] = s.Min + float64(i)*step
	}
	return out, nil
}

func (s Scan) apply(sc sim.Scenario, v float64) (sim.Scenario, error) {
	switch s.Param {
	case ParamTurns:
		sc.Turns = int(math.Round(v))
	case ParamSpeed:
		sc.Speed = v
	default:
		return sc, fmt.Errorf("cannot scan %q (want turns or speed)", s.Param)
	}
	return sc, nil
}

// RunScan executes the scan sequentially.
func RunScan(ctx context.Context, s Scan, r *sim.Runner, base sim.Scenario) ([]ScanResult, error) {
	values, err := s.values()
	if err != nil {
		return nil, err
	}

	results := make([]ScanResult, 0, len(values))
	for _, v := range values {
		sc, err := s.apply(base, v)
		if err != nil {
			return nil, err
		}
		tr, err := r.Run(ctx, sc)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", s.Param, v, err)
		}

		peak := analysis.Peak(tr)
		emf := analysis.Summarize(tr.Column(func(f sim.Frame) float64 { return f.EMF }))
		flux := analysis.Summarize(tr.Column(func(f sim.Frame) float64 { return f.Flux }))
		results = append(results, ScanResult{
			Value:   v,
			PeakEMF: peak.EMF,
			PeakAt:  peak.Position,
			RMSEMF:  emf.RMS,
			MaxFlux: flux.Max,
			Frames:  len(tr.Frames),
			Skipped: tr.Skipped,
		})
	}
	return results, nil
}
