package sim

import (
	"context"

	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
)

// Runner replays scenarios through a fresh session each time.
type Runner struct {
	params    induction.Params
	travel    control.Travel
	amplitude float64
	observers []Observer
}

func NewRunner(p induction.Params, travel control.Travel, amplitude float64) *Runner {
	return &Runner{params: p, travel: travel, amplitude: amplitude}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, sc Scenario) (*Trace, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	s := NewSession(r.params, control.NewMagnet(r.travel, r.amplitude))
	for _, o := range r.observers {
		s.AddObserver(o)
	}
	s.SetTurns(sc.Turns)
	s.SetSpeed(sc.Speed)

	frames := sc.Frames()
	trace := &Trace{Scenario: sc, Frames: make([]Frame, 0, frames)}
	step := 1000 / sc.FPS

	switch sc.Mode {
	case ModeSweep:
		s.BeginDrag(sc.From)
	case ModeOscillate:
		s.SetPlaying(true)
	}
	s.Start(0)

	for i := 1; i <= frames; i++ {
		select {
		case <-ctx.Done():
			return trace, ctx.Err()
		default:
		}

		now := float64(i) * step
		if sc.Jitter > 0 && i%sc.Jitter == 0 {
			now = float64(i-1) * step
		}
		if sc.Mode == ModeSweep {
			s.DragTo(sc.From + (sc.To-sc.From)*float64(i)/float64(frames))
		}
		if !s.Tick(now) {
			continue
		}

		st := s.Snapshot().State
		trace.Frames = append(trace.Frames, Frame{
			Time:       st.Time,
			Position:   st.Position,
			Velocity:   st.Velocity,
			Flux:       st.Flux,
			EMF:        st.EMF,
			EMFDisplay: st.EMFDisplay,
		})
	}

	if sc.Mode == ModeSweep {
		s.EndDrag()
	}
	trace.History = s.Snapshot().History
	trace.Skipped = s.Skipped()
	return trace, nil
}
