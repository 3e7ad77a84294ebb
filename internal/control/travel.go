package control

import "math"

// Viewport geometry in simulation units. The coil sits at 0.
const (
	ViewportWidth = 800.0
	MagnetWidth   = 120.0
	MagnetHeight  = 40.0

	// GrabMargin widens the pick area around the magnet body.
	GrabMargin = 50.0

	// DefaultAmplitude keeps the oscillating magnet clear of the edges.
	DefaultAmplitude = 300.0
)

// Travel is the clamped interval of valid magnet positions.
type Travel struct {
	Viewport    float64
	MagnetWidth float64
}

func DefaultTravel() Travel {
	return Travel{Viewport: ViewportWidth, MagnetWidth: MagnetWidth}
}

// Max is half the viewport minus half the magnet, so the magnet never
// overlaps the viewport edge.
func (t Travel) Max() float64 {
	return t.Viewport/2 - t.MagnetWidth/2
}

func (t Travel) Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	m := t.Max()
	return math.Max(-m, math.Min(m, x))
}

func (t Travel) Contains(x float64) bool {
	return math.Abs(x) <= t.Max()
}
