package control

import "math"

// Source resolves the magnet position for a host timestamp in
// milliseconds.
type Source interface {
	Resolve(now float64) float64
	source()
}

// Manual holds a position set by the user.
type Manual struct {
	Value float64
}

func (m Manual) Resolve(float64) float64 { return m.Value }
func (Manual) source()                   {}

// Oscillating drives the magnet harmonically about the coil centre.
type Oscillating struct {
	Amplitude float64
	Speed     float64
}

func (o Oscillating) Omega() float64 { return 2 * o.Speed }

func (o Oscillating) Resolve(now float64) float64 {
	return o.Amplitude * math.Sin(now*0.001*o.Omega())
}

func (Oscillating) source() {}

const (
	MinSpeed     = 0.5
	MaxSpeed     = 3.0
	SpeedStep    = 0.5
	DefaultSpeed = 1.0
)

// ClampSpeed pins s to [MinSpeed, MaxSpeed] and snaps it to SpeedStep.
func ClampSpeed(s float64) float64 {
	if math.IsNaN(s) {
		return DefaultSpeed
	}
	s = math.Round(s/SpeedStep) * SpeedStep
	return math.Max(MinSpeed, math.Min(MaxSpeed, s))
}
