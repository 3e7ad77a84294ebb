package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/faraday/internal/analysis"
	"github.com/san-kum/faraday/internal/induction"
	"github.com/san-kum/faraday/internal/sim"
)

type ExportData struct {
	Scenario sim.Scenario       `json:"scenario"`
	Steps    int                `json:"steps"`
	Skipped  int                `json:"skipped"`
	Frames   []sim.Frame        `json:"frames"`
	History  []induction.Sample `json:"history"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Metrics are the headline numbers of a run.
func Metrics(tr *sim.Trace) map[string]float64 {
	emf := tr.Column(func(f sim.Frame) float64 { return f.EMF })
	peak := analysis.Peak(tr)
	sum := analysis.Summarize(emf)
	return map[string]float64{
		"peak_emf":      peak.EMF,
		"peak_position": peak.Position,
		"peak_time":     peak.Time,
		"rms_emf":       sum.RMS,
		"max_flux":      analysis.Summarize(tr.Column(func(f sim.Frame) float64 { return f.Flux })).Max,
		"emf_hz":        analysis.DominantFrequency(emf, tr.Scenario.FPS),
	}
}

func WriteJSON(w io.Writer, tr *sim.Trace) error {
	data := ExportData{
		Scenario: tr.Scenario,
		Steps:    len(tr.Frames),
		Skipped:  tr.Skipped,
		Frames:   tr.Frames,
		History:  tr.History,
		Metrics:  Metrics(tr),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
