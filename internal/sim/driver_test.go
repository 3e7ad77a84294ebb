package sim

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestDriver_StopsOnCancel(t *testing.T) {
	d := NewDriver(200)
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int64
	var last atomic.Value
	last.Store(0.0)

	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, func(now float64) {
			if prev := last.Load().(float64); now <= prev {
				t.Errorf("timestamp went backwards: %v <= %v", now, prev)
			}
			last.Store(now)
			ticks.Add(1)
		})
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop")
	}

	n := ticks.Load()
	if n == 0 {
		t.Fatal("no ticks delivered")
	}
	time.Sleep(30 * time.Millisecond)
	if ticks.Load() != n {
		t.Error("tick fired after Run returned")
	}
}

func TestDriver_RejectsZeroFPS(t *testing.T) {
	if err := NewDriver(0).Run(context.Background(), func(float64) {}); err == nil {
		t.Error("expected error for zero fps")
	}
}
