package induction

import (
	"fmt"
	"math"
)

const (
	FluxScale = 100.0
	FluxWidth = 150.0

	// VelocitySmoothing is the pole of the velocity low-pass filter.
	VelocitySmoothing = 0.5
	// EMFSmoothing is the pole of the displayed EMF filter. Raw EMF is a
	// derivative and needs heavier damping than velocity.
	EMFSmoothing = 0.8

	SampleEvery     = 5
	HistoryCapacity = 50

	MinTurns     = 1
	MaxTurns     = 20
	DefaultTurns = 5
)

// Params holds the tunable constants of the core.
type Params struct {
	FluxScale         float64
	FluxWidth         float64
	VelocitySmoothing float64
	EMFSmoothing      float64
	SampleEvery       int
	HistoryCapacity   int
}

func DefaultParams() Params {
	return Params{
		FluxScale:         FluxScale,
		FluxWidth:         FluxWidth,
		VelocitySmoothing: VelocitySmoothing,
		EMFSmoothing:      EMFSmoothing,
		SampleEvery:       SampleEvery,
		HistoryCapacity:   HistoryCapacity,
	}
}

func (p Params) Validate() error {
	switch {
	case p.FluxScale <= 0 || math.IsNaN(p.FluxScale):
		return fmt.Errorf("%w: flux scale must be positive, got %f", ErrParams, p.FluxScale)
	case p.FluxWidth <= 0 || math.IsNaN(p.FluxWidth):
		return fmt.Errorf("%w: flux width must be positive, got %f", ErrParams, p.FluxWidth)
	case p.VelocitySmoothing < 0 || p.VelocitySmoothing >= 1:
		return fmt.Errorf("%w: velocity smoothing must be in [0,1), got %f", ErrParams, p.VelocitySmoothing)
	case p.EMFSmoothing < 0 || p.EMFSmoothing >= 1:
		return fmt.Errorf("%w: emf smoothing must be in [0,1), got %f", ErrParams, p.EMFSmoothing)
	case p.SampleEvery < 1:
		return fmt.Errorf("%w: sample cadence must be >= 1, got %d", ErrParams, p.SampleEvery)
	case p.HistoryCapacity < 1:
		return fmt.Errorf("%w: history capacity must be >= 1, got %d", ErrParams, p.HistoryCapacity)
	}
	return nil
}

// ValidTurns reports ErrTurnsRange for winding counts the controls would
// never produce.
func ValidTurns(n int) error {
	if n < MinTurns || n > MaxTurns {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrTurnsRange, n, MinTurns, MaxTurns)
	}
	return nil
}

// ClampTurns pins n to [MinTurns, MaxTurns].
func ClampTurns(n int) int {
	if n < MinTurns {
		return MinTurns
	}
	if n > MaxTurns {
		return MaxTurns
	}
	return n
}
