package induction

// Carry is everything one tick hands to the next.
type Carry struct {
	Time       float64 // milliseconds
	Position   float64
	Velocity   float64
	EMFDisplay float64
	Ticks      int
}

// Input is the per-tick observation: host clock in milliseconds, resolved
// magnet position, and coil turns.
type Input struct {
	Time     float64
	Position float64
	Turns    int
}

// Output is the derived state of one accepted tick.
type Output struct {
	Velocity   float64
	Flux       float64
	EMF        float64
	EMFDisplay float64
	Sample     Sample
	Sampled    bool
}

// Advance computes one physics tick. It reports false, and returns prev
// untouched, when elapsed time is not positive.
func Advance(prev Carry, in Input, p Params) (Carry, Output, bool) {
	dt := (in.Time - prev.Time) / 1000
	if !(dt > 0) {
		return prev, Output{}, false
	}

	raw := (in.Position - prev.Position) / dt
	v := Blend(prev.Velocity, raw, p.VelocitySmoothing)

	flux := p.Flux(in.Position)
	emf := p.EMF(in.Position, v, in.Turns)
	display := Blend(prev.EMFDisplay, emf, p.EMFSmoothing)

	next := Carry{
		Time:       in.Time,
		Position:   in.Position,
		Velocity:   v,
		EMFDisplay: display,
		Ticks:      prev.Ticks + 1,
	}
	out := Output{Velocity: v, Flux: flux, EMF: emf, EMFDisplay: display}
	if next.Ticks%p.SampleEvery == 0 {
		out.Sampled = true
		out.Sample = Sample{
			Time: Round1(in.Time / 1000),
			Flux: Round1(flux),
			EMF:  Round1(emf),
		}
	}
	return next, out, true
}

// State is the simulation state as seen by presentation. Dragging and
// Playing are owned by the position source and filled in by the session.
type State struct {
	Position   float64 `json:"position"`
	Velocity   float64 `json:"velocity"`
	Flux       float64 `json:"flux"`
	EMF        float64 `json:"emf"`
	EMFDisplay float64 `json:"emf_display"`
	Turns      int     `json:"turns"`
	Dragging   bool    `json:"dragging"`
	Playing    bool    `json:"playing"`
	Time       float64 `json:"time"` // seconds
}

// Core owns the carried filter state and the history buffer.
type Core struct {
	params  Params
	carry   Carry
	started bool
	state   State
	history *History
	skipped int
}

func NewCore(p Params) *Core {
	c := &Core{
		params:  p,
		history: NewHistory(p.HistoryCapacity),
	}
	c.state = State{Flux: p.Flux(0), Turns: DefaultTurns}
	return c
}

// Start sets the clock epoch (milliseconds) and the magnet position the
// first velocity is measured from. A Step before Start does this with its
// own arguments and is otherwise a no-op.
func (c *Core) Start(now, position float64) {
	c.carry.Time = now
	c.carry.Position = position
	c.state.Time = now / 1000
	c.state.Position = position
	c.state.Flux = c.params.Flux(position)
	c.started = true
}

// Step advances the core to now (milliseconds) with the magnet at
// position. Non-positive elapsed time and non-finite input are skipped.
func (c *Core) Step(now, position float64) (Output, bool) {
	if !finite(now) || !finite(position) {
		c.skipped++
		return Output{}, false
	}
	if !c.started {
		c.Start(now, position)
		return Output{}, false
	}

	next, out, ok := Advance(c.carry, Input{Time: now, Position: position, Turns: c.state.Turns}, c.params)
	if !ok {
		c.skipped++
		return Output{}, false
	}
	c.carry = next
	c.state.Position = position
	c.state.Velocity = out.Velocity
	c.state.Flux = out.Flux
	c.state.EMF = out.EMF
	c.state.EMFDisplay = out.EMFDisplay
	c.state.Time = now / 1000
	if out.Sampled {
		c.history.Push(out.Sample)
	}
	return out, true
}

// SetTurns clamps n into the valid winding range.
func (c *Core) SetTurns(n int) { c.state.Turns = ClampTurns(n) }

func (c *Core) Turns() int { return c.state.Turns }

// Reset returns the magnet to the coil centre, zeroes the filters and
// clears history. The clock epoch is kept so the next tick has a valid dt.
func (c *Core) Reset() {
	c.carry = Carry{Time: c.carry.Time}
	c.history.Clear()
	turns := c.state.Turns
	c.state = State{Flux: c.params.Flux(0), Turns: turns, Time: c.state.Time}
}

func (c *Core) State() State      { return c.state }
func (c *Core) History() []Sample { return c.history.Samples() }
func (c *Core) HistoryLen() int   { return c.history.Len() }
func (c *Core) Params() Params    { return c.params }
func (c *Core) Ticks() int        { return c.carry.Ticks }
func (c *Core) Skipped() int      { return c.skipped }
