package sim

import (
	"math"
	"testing"

	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
)

func newTestSession() *Session {
	return NewSession(induction.DefaultParams(), control.NewMagnet(control.DefaultTravel(), control.DefaultAmplitude))
}

func TestSession_DragInterruptsPlay(t *testing.T) {
	s := newTestSession()
	s.Start(0)
	s.SetPlaying(true)
	s.Tick(16)
	if !s.Snapshot().State.Playing {
		t.Fatal("auto-play did not start")
	}

	s.BeginDrag(50)
	s.Tick(32)
	s.EndDrag()
	s.Tick(48)

	st := s.Snapshot().State
	if st.Playing {
		t.Error("auto-play resumed after drag release")
	}
	if st.Position != 50 {
		t.Errorf("position = %v, want 50", st.Position)
	}
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	s.Start(0)
	s.SetPlaying(true)
	for i := 1; i <= 60; i++ {
		s.Tick(float64(i) * 16)
	}
	if len(s.Snapshot().History) == 0 {
		t.Fatal("no history recorded")
	}

	s.Reset()
	snap := s.Snapshot()
	if snap.State.Position != 0 || snap.State.Playing || len(snap.History) != 0 {
		t.Errorf("reset incomplete: pos=%v playing=%v history=%d",
			snap.State.Position, snap.State.Playing, len(snap.History))
	}
}

func TestSession_ObserversGetCopies(t *testing.T) {
	s := newTestSession()
	s.Start(0)
	s.SetPlaying(true)

	var got []Snapshot
	s.AddObserver(ObserverFunc(func(snap Snapshot) {
		if len(snap.History) > 0 {
			snap.History[0].EMF = 1e9
		}
		got = append(got, snap)
	}))

	for i := 1; i <= 20; i++ {
		s.Tick(float64(i) * 16)
	}
	s.Tick(20 * 16) // duplicate, skipped

	if len(got) != 20 {
		t.Errorf("observer called %d times, want 20", len(got))
	}
	if h := s.Snapshot().History; len(h) > 0 && h[0].EMF == 1e9 {
		t.Error("observer mutated session history")
	}
	if s.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", s.Skipped())
	}
}

func TestSession_SettersClamp(t *testing.T) {
	s := newTestSession()
	s.SetTurns(100)
	s.SetSpeed(9)
	snap := s.Snapshot()
	if snap.State.Turns != induction.MaxTurns {
		t.Errorf("turns = %d", snap.State.Turns)
	}
	if snap.Speed != control.MaxSpeed {
		t.Errorf("speed = %v", snap.Speed)
	}
}

func TestSession_RejectedTickHoldsMagnet(t *testing.T) {
	s := newTestSession()
	s.Start(0)
	s.SetPlaying(true)
	for i := 1; i <= 30; i++ {
		s.Tick(float64(i) * 16)
	}
	before := s.Snapshot().State

	for _, now := range []float64{200, 480, math.NaN()} {
		if s.Tick(now) {
			t.Fatalf("Tick(%v) accepted after t=480", now)
		}
		got := s.Snapshot().State
		if got.Position != before.Position || got.Flux != before.Flux {
			t.Errorf("Tick(%v) moved magnet: pos %v -> %v", now, before.Position, got.Position)
		}
		if want := s.Params().Flux(got.Position); got.Flux != want {
			t.Errorf("flux %v does not match position (want %v)", got.Flux, want)
		}
	}

	s.SetPlaying(false)
	s.Tick(496)
	if pos := s.Snapshot().State.Position; pos != before.Position {
		t.Errorf("paused at %v, want last accepted %v", pos, before.Position)
	}
}
