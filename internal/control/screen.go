package control

import "math"

// Track maps a horizontal strip of Columns screen cells onto the viewport.
type Track struct {
	Columns  int
	Viewport float64
}

func (t Track) unit() float64 { return t.Viewport / float64(t.Columns) }

// ToSim converts a cell column to a simulation position (cell centre).
func (t Track) ToSim(col int) float64 {
	return (float64(col)+0.5)*t.unit() - t.Viewport/2
}

// ToScreen converts a simulation position to the nearest column.
func (t Track) ToScreen(x float64) int {
	return int(math.Floor((x + t.Viewport/2) / t.unit()))
}

// Grab reports whether a press at col picks up a magnet at position x, and
// the offset to keep between pointer and magnet while dragging.
func (t Track) Grab(col int, x float64) (offset float64, ok bool) {
	d := t.ToSim(col) - x
	if math.Abs(d) >= MagnetWidth/2+GrabMargin {
		return 0, false
	}
	return d, true
}

// Drag converts a pointer column into a magnet position given the grab
// offset.
func (t Track) Drag(col int, offset float64) float64 {
	return t.ToSim(col) - offset
}
