package sim

import (
	"context"
	"fmt"
	"time"
)

// Driver is the frame clock: it calls tick with a monotonic timestamp in
// milliseconds at a fixed rate. Ticks never overlap.
type Driver struct {
	fps   int
	epoch time.Time
}

func NewDriver(fps int) *Driver {
	return &Driver{fps: fps}
}

// Run blocks until ctx is done. The ticker is stopped before Run returns,
// so no tick fires after it.
func (d *Driver) Run(ctx context.Context, tick func(now float64)) error {
	if d.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", d.fps)
	}

	d.epoch = time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(d.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			tick(Millis(t.Sub(d.epoch)))
		}
	}
}

// Millis converts a duration to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
