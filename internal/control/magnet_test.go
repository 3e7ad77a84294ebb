package control

import (
	"math"
	"testing"
)

func TestTravel_Max(t *testing.T) {
	tr := DefaultTravel()
	if tr.Max() != 340 {
		t.Errorf("Max() = %v, want 340", tr.Max())
	}

	tests := []struct{ in, want float64 }{
		{0, 0},
		{-500, -340},
		{500, 340},
		{339.9, 339.9},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := tr.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMagnet_DragStopsAutoPlay(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.SetPlaying(true)
	if !m.Playing() {
		t.Fatal("SetPlaying(true) ignored")
	}

	m.BeginDrag(10)
	if m.Playing() {
		t.Error("drag did not stop auto-play")
	}
	if _, ok := m.Source().(Manual); !ok {
		t.Errorf("source during drag = %T, want Manual", m.Source())
	}

	m.DragTo(900)
	if m.Position() != 340 {
		t.Errorf("drag not clamped: %v", m.Position())
	}

	m.EndDrag()
	if m.Playing() || m.Dragging() {
		t.Errorf("after release playing=%v dragging=%v", m.Playing(), m.Dragging())
	}
}

func TestMagnet_CannotPlayWhileDragging(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.BeginDrag(0)
	m.SetPlaying(true)
	if m.Playing() {
		t.Error("auto-play enabled during drag")
	}
}

func TestMagnet_DragToOutsideDragIgnored(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.DragTo(100)
	if m.Position() != 0 {
		t.Errorf("position moved without a drag: %v", m.Position())
	}
}

func TestMagnet_ResolveOscillator(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.SetSpeed(1)
	m.SetPlaying(true)

	// omega = 2, quarter period at t = pi/4 s
	now := math.Pi / 4 * 1000
	if got := m.Resolve(now); math.Abs(got-DefaultAmplitude) > 1e-9 {
		t.Errorf("Resolve(%v) = %v, want %v", now, got, DefaultAmplitude)
	}

	m.SetPlaying(false)
	if got := m.Resolve(now + 500); math.Abs(got-DefaultAmplitude) > 1e-9 {
		t.Errorf("paused magnet moved to %v", got)
	}
}

func TestMagnet_AmplitudeCappedByTravel(t *testing.T) {
	m := NewMagnet(DefaultTravel(), 1000)
	if m.Amplitude() != 340 {
		t.Errorf("Amplitude() = %v, want 340", m.Amplitude())
	}
}

func TestMagnet_Reset(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.SetPlaying(true)
	m.Resolve(400)
	m.Reset()
	if m.Position() != 0 || m.Playing() || m.Dragging() {
		t.Errorf("reset left pos=%v playing=%v dragging=%v", m.Position(), m.Playing(), m.Dragging())
	}
}

func TestMagnet_Nudge(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.SetPlaying(true)
	m.Nudge(-400)
	if m.Position() != -340 || m.Playing() {
		t.Errorf("nudge: pos=%v playing=%v", m.Position(), m.Playing())
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0.5},
		{0.7, 0.5},
		{1.3, 1.5},
		{2.9, 3},
		{10, 3},
		{math.NaN(), DefaultSpeed},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMagnet_PeekDoesNotMove(t *testing.T) {
	m := NewMagnet(DefaultTravel(), DefaultAmplitude)
	m.SetPlaying(true)

	quarter := 1000 * math.Pi / 2 / (2 * m.Speed())
	if got := m.Peek(quarter); math.Abs(got-DefaultAmplitude) > 1e-9 {
		t.Errorf("Peek = %v, want %v", got, DefaultAmplitude)
	}
	if m.Position() != 0 {
		t.Errorf("Peek moved the magnet to %v", m.Position())
	}

	m.Place(500)
	if m.Position() != 340 {
		t.Errorf("Place not clamped: %v", m.Position())
	}
}
