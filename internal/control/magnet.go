package control

// Magnet tracks the user-facing position controls: drag state, auto-play
// and oscillation speed. Drag always takes precedence over auto-play.
type Magnet struct {
	travel    Travel
	amplitude float64
	speed     float64
	position  float64
	dragging  bool
	playing   bool
}

func NewMagnet(travel Travel, amplitude float64) *Magnet {
	if amplitude > travel.Max() {
		amplitude = travel.Max()
	}
	return &Magnet{travel: travel, amplitude: amplitude, speed: DefaultSpeed}
}

// Source returns the variant in effect for the next tick.
func (m *Magnet) Source() Source {
	if m.playing && !m.dragging {
		return Oscillating{Amplitude: m.amplitude, Speed: m.speed}
	}
	return Manual{Value: m.position}
}

// Peek evaluates the current source at now without moving the magnet.
func (m *Magnet) Peek(now float64) float64 {
	return m.travel.Clamp(m.Source().Resolve(now))
}

// Resolve evaluates the current source at now and remembers the result so
// a later pause holds the magnet where the oscillator left it.
func (m *Magnet) Resolve(now float64) float64 {
	m.Place(m.Peek(now))
	return m.position
}

// Place records x as where the magnet is. Callers that Peek first use it
// once the position has been accepted.
func (m *Magnet) Place(x float64) { m.position = m.travel.Clamp(x) }

// BeginDrag grabs the magnet at x. Auto-play is switched off.
func (m *Magnet) BeginDrag(x float64) {
	m.dragging = true
	m.playing = false
	m.position = m.travel.Clamp(x)
}

// DragTo moves a grabbed magnet. Calls outside a drag are ignored.
func (m *Magnet) DragTo(x float64) {
	if !m.dragging {
		return
	}
	m.position = m.travel.Clamp(x)
}

// EndDrag releases the magnet where it is. Auto-play stays off.
func (m *Magnet) EndDrag() { m.dragging = false }

// Nudge moves the magnet by dx as a discrete manual interaction.
func (m *Magnet) Nudge(dx float64) {
	m.playing = false
	m.position = m.travel.Clamp(m.position + dx)
}

func (m *Magnet) SetPlaying(on bool) {
	if m.dragging {
		on = false
	}
	m.playing = on
}

func (m *Magnet) TogglePlay() { m.SetPlaying(!m.playing) }

func (m *Magnet) SetSpeed(s float64) { m.speed = ClampSpeed(s) }

// Reset centres the magnet and stops auto-play.
func (m *Magnet) Reset() {
	m.position = 0
	m.playing = false
	m.dragging = false
}

func (m *Magnet) Position() float64  { return m.position }
func (m *Magnet) Dragging() bool     { return m.dragging }
func (m *Magnet) Playing() bool      { return m.playing }
func (m *Magnet) Speed() float64     { return m.speed }
func (m *Magnet) Amplitude() float64 { return m.amplitude }
func (m *Magnet) Travel() Travel     { return m.travel }
