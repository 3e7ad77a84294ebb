package control

import (
	"math"
	"testing"
)

func TestOscillating_Resolve(t *testing.T) {
	o := Oscillating{Amplitude: 300, Speed: 2}
	if o.Omega() != 4 {
		t.Errorf("Omega() = %v", o.Omega())
	}
	tests := []struct{ now, want float64 }{
		{0, 0},
		{math.Pi / 8 * 1000, 300},
		{math.Pi / 4 * 1000, 0},
		{3 * math.Pi / 8 * 1000, -300},
	}
	for _, tt := range tests {
		if got := o.Resolve(tt.now); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Resolve(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestManual_Resolve(t *testing.T) {
	var s Source = Manual{Value: -42}
	for _, now := range []float64{0, 1e3, 1e6} {
		if s.Resolve(now) != -42 {
			t.Errorf("manual source drifted at %v", now)
		}
	}
}
