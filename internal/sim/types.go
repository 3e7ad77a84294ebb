package sim

import (
	"fmt"

	"github.com/san-kum/faraday/internal/induction"
)

// Mode selects how a scripted run moves the magnet.
type Mode string

const (
	ModeOscillate Mode = "oscillate"
	ModeSweep     Mode = "sweep"
)

// Scenario is a headless, deterministic run. Frames are spaced 1000/FPS
// milliseconds apart starting at t=0.
type Scenario struct {
	Name     string
	Mode     Mode
	FPS      float64
	Duration float64 // seconds
	Turns    int
	Speed    float64

	// Sweep endpoints. The magnet moves linearly from From to To.
	From, To float64

	// Jitter repeats every Nth timestamp, exercising the non-positive dt
	// guard. Zero disables it.
	Jitter int
}

// SweepScenario moves the magnet at constant velocity from -150 to the
// coil centre over one second with five turns.
func SweepScenario() Scenario {
	return Scenario{
		Name:     "sweep",
		Mode:     ModeSweep,
		FPS:      60,
		Duration: 1,
		Turns:    5,
		Speed:    1,
		From:     -150,
		To:       0,
	}
}

func OscillateScenario(turns int, speed, duration float64) Scenario {
	return Scenario{
		Name:     "oscillate",
		Mode:     ModeOscillate,
		FPS:      60,
		Duration: duration,
		Turns:    turns,
		Speed:    speed,
	}
}

func (sc Scenario) Frames() int { return int(sc.Duration * sc.FPS) }

func (sc Scenario) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"fps", sc.FPS}, {"duration", sc.Duration}, {"speed", sc.Speed}, {"from", sc.From}, {"to", sc.To},
	} {
		if err := induction.Finite(f.name, f.v); err != nil {
			return err
		}
	}
	if sc.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %f", sc.FPS)
	}
	if sc.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", sc.Duration)
	}
	if err := induction.ValidTurns(sc.Turns); err != nil {
		return err
	}
	switch sc.Mode {
	case ModeOscillate, ModeSweep:
	default:
		return fmt.Errorf("unknown mode %q", sc.Mode)
	}
	return nil
}

// Frame is one accepted tick of a scripted run.
type Frame struct {
	Time       float64 `json:"time"` // seconds
	Position   float64 `json:"position"`
	Velocity   float64 `json:"velocity"`
	Flux       float64 `json:"flux"`
	EMF        float64 `json:"emf"`
	EMFDisplay float64 `json:"emf_display"`
}

// Trace is the result of a scripted run.
type Trace struct {
	Scenario Scenario           `json:"scenario"`
	Frames   []Frame            `json:"frames"`
	History  []induction.Sample `json:"history"`
	Skipped  int                `json:"skipped"`
}

func (tr *Trace) Column(pick func(Frame) float64) []float64 {
	out := make([]float64, len(tr.Frames))
	for i, f := range tr.Frames {
		out[i] = pick(f)
	}
	return out
}
