package induction

import (
	"fmt"
	"math"
)

// Flux returns Φ(x) = scale · exp(-(x/width)²). It peaks at x = 0 and
// decays symmetrically toward zero.
func (p Params) Flux(x float64) float64 {
	r := x / p.FluxWidth
	return p.FluxScale * math.Exp(-r*r)
}

// FluxSlope returns dΦ/dx in closed form.
func (p Params) FluxSlope(x float64) float64 {
	return p.Flux(x) * (-2 * x / (p.FluxWidth * p.FluxWidth))
}

// EMF returns the instantaneous induced EMF, -N · dΦ/dx · v.
func (p Params) EMF(x, v float64, turns int) float64 {
	dPhiDt := p.FluxSlope(x) * v
	return -float64(turns) * dPhiDt
}

// PeakSlopePosition is the positive position where |dΦ/dx| is maximal,
// width/√2.
func (p Params) PeakSlopePosition() float64 {
	return p.FluxWidth / math.Sqrt2
}

// Blend is the single-pole low-pass filter used for velocity and the
// displayed EMF: prev·alpha + raw·(1-alpha).
func Blend(prev, raw, alpha float64) float64 {
	return prev*alpha + raw*(1-alpha)
}

// Round1 rounds to one decimal place, the resolution of history samples.
func Round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // no negative zero in samples
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite reports ErrNonFinite, naming the offending value, if v is NaN or
// infinite.
func Finite(name string, v float64) error {
	if !finite(v) {
		return fmt.Errorf("%w: %s = %v", ErrNonFinite, name, v)
	}
	return nil
}
