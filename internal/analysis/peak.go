package analysis

import (
	"math"

	"github.com/san-kum/faraday/internal/sim"
)

// PeakInfo locates the extreme EMF of a run.
type PeakInfo struct {
	Index    int     `json:"index"`
	Time     float64 `json:"time"`
	Position float64 `json:"position"`
	EMF      float64 `json:"emf"`
}

// Peak returns the frame with the largest |EMF|. Index is -1 for an empty
// trace.
func Peak(tr *sim.Trace) PeakInfo {
	p := PeakInfo{Index: -1}
	if tr == nil {
		return p
	}
	for i, f := range tr.Frames {
		if p.Index < 0 || math.Abs(f.EMF) > math.Abs(p.EMF) {
			p = PeakInfo{Index: i, Time: f.Time, Position: f.Position, EMF: f.EMF}
		}
	}
	return p
}
