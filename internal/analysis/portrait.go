package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/faraday/internal/sim"
)

type Point struct{ X, Y float64 }

// Portrait is a set of (x, y) points from a run.
type Portrait struct {
	Points []Point
}

// EMFPortrait plots EMF against magnet position. An oscillating magnet
// traces a closed loop: the sign of EMF follows the direction of travel.
func EMFPortrait(tr *sim.Trace) *Portrait {
	p := &Portrait{Points: make([]Point, len(tr.Frames))}
	for i, f := range tr.Frames {
		p.Points[i] = Point{X: f.Position, Y: f.EMF}
	}
	return p
}

// ASCII renders the portrait with axes where they fall inside the bounds.
func (p *Portrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	pad := func(lo, hi float64) (float64, float64) {
		r := hi - lo
		if r == 0 {
			r = 1
		}
		return lo - r*0.1, hi + r*0.1
	}
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	col := func(x float64) int { return int((x - minX) / (maxX - minX) * float64(width-1)) }
	row := func(y float64) int { return height - 1 - int((y-minY)/(maxY-minY)*float64(height-1)) }

	if minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := range grid {
			grid[r][c] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		r := row(0)
		for c := range grid[r] {
			if grid[r][c] == '│' {
				grid[r][c] = '┼'
			} else {
				grid[r][c] = '─'
			}
		}
	}
	for _, pt := range p.Points {
		grid[row(pt.Y)][col(pt.X)] = '•'
	}

	var sb strings.Builder
	for _, r := range grid {
		sb.WriteString(string(r))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Crossings returns the interpolated times at which the magnet passes the
// coil centre, in either direction.
func Crossings(tr *sim.Trace) []float64 {
	var out []float64
	for i := 1; i < len(tr.Frames); i++ {
		a, b := tr.Frames[i-1], tr.Frames[i]
		if (a.Position < 0 && b.Position >= 0) || (a.Position > 0 && b.Position <= 0) {
			frac := a.Position / (a.Position - b.Position)
			out = append(out, a.Time+frac*(b.Time-a.Time))
		}
	}
	return out
}
