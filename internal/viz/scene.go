package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
)

type cellKind uint8

const (
	kindBlank cellKind = iota
	kindAxis
	kindField
	kindCoil
	kindWire
	kindSouth
	kindNorth
	kindHandle
)

// CoilWidth is the axial length of the winding in simulation units. More
// turns make a longer coil.
func CoilWidth(turns int) float64 { return 20 + float64(turns)*8 }

// scene is a character grid of the magnet and coil.
type scene struct {
	cols, rows int
	runes      [][]rune
	kinds      [][]cellKind
}

func newScene(cols, rows int) *scene {
	sc := &scene{cols: cols, rows: rows, runes: make([][]rune, rows), kinds: make([][]cellKind, rows)}
	for r := range sc.runes {
		sc.runes[r] = []rune(strings.Repeat(" ", cols))
		sc.kinds[r] = make([]cellKind, cols)
	}
	return sc
}

func (sc *scene) put(col, row int, r rune, k cellKind) {
	if col < 0 || row < 0 || col >= sc.cols || row >= sc.rows {
		return
	}
	sc.runes[row][col] = r
	sc.kinds[row][col] = k
}

func (sc *scene) at(col, row int) cellKind {
	if col < 0 || row < 0 || col >= sc.cols || row >= sc.rows {
		return kindBlank
	}
	return sc.kinds[row][col]
}

// layoutScene draws back to front: axis, field lines, coil, magnet and the
// front half of each loop.
func layoutScene(st induction.State, travel control.Travel, cols, rows int) *scene {
	sc := newScene(cols, rows)
	if cols < 4 || rows < 3 {
		return sc
	}
	track := control.Track{Columns: cols, Viewport: travel.Viewport}
	mid := rows / 2

	for c := 0; c < cols; c++ {
		sc.put(c, mid, '─', kindAxis)
	}

	sc.fieldLines(track, st.Position, travel.MagnetWidth, mid)

	loops := sc.coilColumns(track, st.Turns)
	half := max(1, rows/3)
	for _, c := range loops {
		for r := mid - half; r < mid; r++ {
			sc.put(c, r, '│', kindCoil)
		}
		sc.put(c, mid-half, '╭', kindCoil)
	}
	centre := track.ToScreen(0)
	for r := mid + 1; r < rows; r++ {
		sc.put(centre, r, '┃', kindWire)
	}

	left := track.ToScreen(st.Position - travel.MagnetWidth/2)
	right := track.ToScreen(st.Position+travel.MagnetWidth/2) - 1
	split := (left + right + 1) / 2
	for c := left; c <= right; c++ {
		k := kindSouth
		if c >= split {
			k = kindNorth
		}
		sc.put(c, mid, ' ', k)
	}
	sc.put((left+split-1)/2, mid, 'S', kindSouth)
	sc.put((split+right)/2, mid, 'N', kindNorth)
	if st.Dragging {
		sc.put(track.ToScreen(st.Position), mid-1, '⇔', kindHandle)
	}

	for _, c := range loops {
		for r := mid + 1; r <= mid+half; r++ {
			sc.put(c, r, '│', kindCoil)
		}
		sc.put(c, mid+half, '╰', kindCoil)
		if k := sc.at(c, mid); k != kindSouth && k != kindNorth {
			sc.put(c, mid, '┼', kindCoil)
		}
	}
	return sc
}

// coilColumns spreads one column per turn across the coil length. Turns
// that land on the same column share it.
func (sc *scene) coilColumns(track control.Track, turns int) []int {
	w := CoilWidth(turns)
	seen := make(map[int]bool)
	cols := make([]int, 0, turns)
	for i := 0; i < turns; i++ {
		x := -w / 2
		if turns > 1 {
			x += float64(i) * w / float64(turns-1)
		}
		c := track.ToScreen(x)
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	return cols
}

func (sc *scene) fieldLines(track control.Track, x, magnetWidth float64, mid int) {
	for i := 0; i < 3; i++ {
		scale := 1 + float64(i)*0.5
		rx := magnetWidth * scale
		ry := float64(sc.rows/2) * scale / 2
		for a := 0.0; a < 2*math.Pi; a += 0.05 {
			c := track.ToScreen(x + rx*math.Cos(a))
			r := mid - int(math.Round(ry*math.Sin(a)))
			if r == mid {
				continue
			}
			if (c+r)%2 == 0 {
				sc.put(c, r, '·', kindField)
			}
		}
	}
}

// magnetSpan returns the first and last column occupied by the magnet on
// the middle row, or -1, -1.
func (sc *scene) magnetSpan() (int, int) {
	mid := sc.rows / 2
	first, last := -1, -1
	for c := 0; c < sc.cols; c++ {
		if k := sc.at(c, mid); k == kindSouth || k == kindNorth {
			if first < 0 {
				first = c
			}
			last = c
		}
	}
	return first, last
}

func (sc *scene) render(s Styles) string {
	style := func(k cellKind) lipgloss.Style {
		switch k {
		case kindAxis, kindField:
			return s.Hint
		case kindCoil, kindWire:
			return s.Coil
		case kindSouth:
			return s.MagnetS
		case kindNorth:
			return s.MagnetN
		case kindHandle:
			return s.Value
		}
		return lipgloss.NewStyle()
	}

	lines := make([]string, sc.rows)
	for r := 0; r < sc.rows; r++ {
		var b strings.Builder
		start := 0
		for c := 1; c <= sc.cols; c++ {
			if c < sc.cols && sc.kinds[r][c] == sc.kinds[r][start] {
				continue
			}
			b.WriteString(style(sc.kinds[r][start]).Render(string(sc.runes[r][start:c])))
			start = c
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderScene draws the magnet at st.Position inside the coil.
func RenderScene(st induction.State, travel control.Travel, cols, rows int, s Styles) string {
	return layoutScene(st, travel, cols, rows).render(s)
}
