package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/san-kum/faraday/internal/viz"
)

const (
	width       = 72
	sceneRows   = 7
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the lab on a plain ANSI terminal after each tick,
// at most frameRate times per second. It is a sim.Observer.
type LiveRenderer struct {
	mu        sync.Mutex
	out       io.Writer
	travel    control.Travel
	frameRate int
	lastFrame time.Time
	styles    viz.Styles
	frames    int
}

func NewLiveRenderer(out io.Writer, travel control.Travel, frameRate int, theme string) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		travel:    travel,
		frameRate: frameRate,
		styles:    viz.NewStyles(viz.GetTheme(theme)),
	}
}

func (r *LiveRenderer) OnTick(snap sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frameRate > 0 && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.frames++
	fmt.Fprint(r.out, r.render(snap))
}

func (r *LiveRenderer) render(snap sim.Snapshot) string {
	st := snap.State
	var b strings.Builder
	b.WriteString(clearScreen)
	mode := "paused"
	if st.Playing {
		mode = "playing"
	}
	b.WriteString(fmt.Sprintf("  faraday  t=%.2fs  %s\n", st.Time, mode))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range strings.Split(viz.RenderScene(st, r.travel, width, sceneRows, r.styles), "\n") {
		b.WriteString("  " + row + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  x=%7.1f  v=%7.1f  flux=%6.2f  emf=%7.2f  gauge=%+6.1f  N=%d\n",
		st.Position, st.Velocity, st.Flux, st.EMF, viz.GaugeReading(st.EMFDisplay), st.Turns))
	b.WriteString("  flux " + viz.Meter(st.Flux, 100, 30) + "\n")
	return b.String()
}

// Frames reports how many frames were drawn.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
